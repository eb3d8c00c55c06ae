//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caresched/agenteval/agent/agenttest"
	"github.com/caresched/agenteval/dashboard"
	"github.com/caresched/agenteval/metric/conversation"
	"github.com/caresched/agenteval/metric/success"
	"github.com/caresched/agenteval/metric/token"
	"github.com/caresched/agenteval/result"
	"github.com/caresched/agenteval/runner"
	"github.com/caresched/agenteval/scenario"
)

var (
	runScenarioID  string
	runExportPath  string
	runVerbose     bool
	runParallelism int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run scenarios against the built-in scripted demo agent",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runScenarioID, "scenario", "", "run only this scenario id")
	runCmd.Flags().StringVar(&runExportPath, "export", "", "write the aggregate dashboard JSON to this path")
	runCmd.Flags().BoolVar(&runVerbose, "verbose", false, "log per-turn progress")
	runCmd.Flags().IntVar(&runParallelism, "parallelism", 0, "concurrent scenario runs (overrides config)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if runParallelism > 0 {
		cfg.Parallelism = runParallelism
	}

	scorer, err := conversation.New(conversation.WithWeights(cfg.Weights))
	if err != nil {
		return fmt.Errorf("build scorer: %w", err)
	}
	estimator := token.New(
		token.WithTokensPerWord(cfg.TokensPerWord),
		token.WithPricing(cfg.Pricing),
	)
	evaluator := success.New(success.WithNaturalnessThreshold(cfg.NaturalnessThreshold))

	catalog := scenario.Default()
	r, err := runner.New(catalog, &agenttest.Scripted{},
		runner.WithTimeout(cfg.Timeout()),
		runner.WithVerbose(runVerbose),
		runner.WithScorer(scorer),
		runner.WithEstimator(estimator),
		runner.WithSuccessEvaluator(evaluator),
		runner.WithParallelism(cfg.Parallelism),
	)
	if err != nil {
		return fmt.Errorf("build runner: %w", err)
	}

	ctx := cmd.Context()
	var results []*result.Result
	if runScenarioID != "" {
		res, err := r.Run(ctx, runScenarioID)
		if err != nil {
			return err
		}
		results = append(results, res)
	} else {
		results = r.RunAll(ctx, nil)
	}

	for _, res := range results {
		status := "FAIL"
		if res.SuccessAchieved {
			status = "PASS"
		}
		fmt.Printf("%-6s %-45s %s  score=%.3f  tools=%d  %.2fs\n",
			res.ScenarioID, res.ScenarioName, status,
			res.Metrics.Conversation.Overall,
			len(res.ToolsCalled), res.DurationSeconds)
		for _, msg := range res.Errors {
			fmt.Printf("       error: %s\n", msg)
		}
	}

	rpt := dashboard.New().Aggregate(results)
	fmt.Printf("\n%d scenarios, %d passed, %d failed, success rate %.1f%%\n",
		rpt.Summary.TotalScenarios, rpt.Summary.Passed, rpt.Summary.Failed,
		rpt.Summary.SuccessRate*100)

	if runExportPath != "" {
		if err := dashboard.Export(rpt, runExportPath); err != nil {
			return fmt.Errorf("export dashboard: %w", err)
		}
		fmt.Printf("Dashboard exported to %s\n", runExportPath)
	}
	return nil
}
