//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/caresched/agenteval/log"
	"github.com/caresched/agenteval/result"
	"github.com/caresched/agenteval/scenario"
)

// RunAll executes the given scenarios and returns one result per scenario, in
// input order. A nil subset runs the full catalog. Individual failures are
// absorbed per scenario; a batch of N scenarios always yields N results.
//
// The default is sequential execution because the collaborator is treated as a
// possibly rate-limited remote dependency; WithParallelism enables a bounded
// worker pool.
func (r *Runner) RunAll(ctx context.Context, scenarios []*scenario.Scenario) []*result.Result {
	if scenarios == nil {
		scenarios = r.catalog.List()
	}
	if r.parallelism <= 1 || len(scenarios) <= 1 {
		results := make([]*result.Result, 0, len(scenarios))
		for _, sc := range scenarios {
			results = append(results, r.RunScenario(ctx, sc))
		}
		return results
	}
	return r.runAllParallel(ctx, scenarios)
}

type batchRunParam struct {
	idx     int
	ctx     context.Context
	sc      *scenario.Scenario
	runner  *Runner
	results []*result.Result
	wg      *sync.WaitGroup
}

func (r *Runner) runAllParallel(ctx context.Context, scenarios []*scenario.Scenario) []*result.Result {
	results := make([]*result.Result, len(scenarios))
	pool, err := ants.NewPoolWithFunc(r.parallelism, func(args any) {
		param, ok := args.(*batchRunParam)
		if !ok {
			panic(fmt.Sprintf("batch run pool args type error: %T", args))
		}
		defer param.wg.Done()
		param.results[param.idx] = param.runner.RunScenario(param.ctx, param.sc)
	})
	if err != nil {
		log.Warnf("create batch run pool: %v, falling back to sequential execution", err)
		for i, sc := range scenarios {
			results[i] = r.RunScenario(ctx, sc)
		}
		return results
	}
	defer pool.Release()
	var wg sync.WaitGroup
	for i, sc := range scenarios {
		wg.Add(1)
		param := &batchRunParam{
			idx:     i,
			ctx:     ctx,
			sc:      sc,
			runner:  r,
			results: results,
			wg:      &wg,
		}
		if err := pool.Invoke(param); err != nil {
			// Pool refused the task; run it inline so the batch stays complete.
			wg.Done()
			results[i] = r.RunScenario(ctx, sc)
		}
	}
	wg.Wait()
	return results
}
