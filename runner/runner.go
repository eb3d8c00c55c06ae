//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package runner drives scenarios against the external agent collaborator and
// assembles per-run results.
package runner

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/caresched/agenteval/agent"
	"github.com/caresched/agenteval/log"
	"github.com/caresched/agenteval/metric"
	"github.com/caresched/agenteval/metric/conversation"
	"github.com/caresched/agenteval/metric/latency"
	"github.com/caresched/agenteval/metric/success"
	"github.com/caresched/agenteval/metric/token"
	"github.com/caresched/agenteval/metric/toolusage"
	"github.com/caresched/agenteval/result"
	"github.com/caresched/agenteval/scenario"
	"github.com/caresched/agenteval/transcript"
)

// DefaultTimeout bounds a single collaborator invocation.
const DefaultTimeout = 30 * time.Second

// Runner executes scenarios against an agent collaborator. The collaborator
// invocation is the only blocking operation; everything else is a pure
// transform over the recorded transcript.
type Runner struct {
	catalog      *scenario.Catalog
	collaborator agent.Collaborator
	scorer       *conversation.Scorer
	estimator    *token.Estimator
	evaluator    *success.Evaluator
	timeout      time.Duration
	verbose      bool
	parallelism  int
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout bounds each collaborator invocation. A timeout is recorded as a
// per-scenario failure and never aborts a batch.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithVerbose enables per-turn progress logging.
func WithVerbose(verbose bool) Option {
	return func(r *Runner) {
		r.verbose = verbose
	}
}

// WithScorer overrides the conversation scorer.
func WithScorer(s *conversation.Scorer) Option {
	return func(r *Runner) {
		r.scorer = s
	}
}

// WithEstimator overrides the token estimator.
func WithEstimator(e *token.Estimator) Option {
	return func(r *Runner) {
		r.estimator = e
	}
}

// WithSuccessEvaluator overrides the success evaluator.
func WithSuccessEvaluator(e *success.Evaluator) Option {
	return func(r *Runner) {
		r.evaluator = e
	}
}

// WithParallelism runs batches on a bounded worker pool of the given size.
// Use only when the collaborator tolerates concurrent calls; the default is
// sequential execution.
func WithParallelism(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.parallelism = n
		}
	}
}

// New creates a Runner over the given catalog and collaborator.
func New(catalog *scenario.Catalog, collaborator agent.Collaborator, opt ...Option) (*Runner, error) {
	if catalog == nil {
		return nil, errors.New("catalog is nil")
	}
	if collaborator == nil {
		return nil, errors.New("collaborator is nil")
	}
	r := &Runner{
		catalog:      catalog,
		collaborator: collaborator,
		timeout:      DefaultTimeout,
		parallelism:  1,
	}
	for _, o := range opt {
		o(r)
	}
	if r.scorer == nil {
		scorer, err := conversation.New()
		if err != nil {
			return nil, err
		}
		r.scorer = scorer
	}
	if r.estimator == nil {
		r.estimator = token.New()
	}
	if r.evaluator == nil {
		r.evaluator = success.New()
	}
	return r, nil
}

// Run executes the scenario with the given id.
// Returns a scenario.NotFoundError for an unknown id; collaborator faults are
// absorbed into the result, never returned.
func (r *Runner) Run(ctx context.Context, scenarioID string) (*result.Result, error) {
	sc, err := r.catalog.Get(scenarioID)
	if err != nil {
		return nil, err
	}
	return r.RunScenario(ctx, sc), nil
}

// RunScenario drives one scenario to completion and always returns a result.
// Collaborator exceptions, timeouts and malformed responses are recorded on
// the result with whatever partial metrics could still be computed.
func (r *Runner) RunScenario(ctx context.Context, sc *scenario.Scenario) *result.Result {
	start := time.Now()
	if r.verbose {
		log.Infof("running scenario %s: %s", sc.ID, sc.Name)
	}
	var tr transcript.Transcript
	var runErrs *multierror.Error
	var warnings []string
	message := sc.InitialMessage
	followUps := sc.FollowUps
	for i := 0; i < invocationBudget(sc); i++ {
		tr = append(tr, transcript.Turn{Role: transcript.RoleUser, Content: message})
		if r.verbose {
			log.Infof("user: %s", message)
		}
		resp, span, err := r.invoke(ctx, sc.PatientID, message)
		if err != nil {
			runErrs = multierror.Append(runErrs, &agent.InvocationError{PatientID: sc.PatientID, Err: err})
			break
		}
		sanitized, warns := agent.Sanitize(resp)
		warnings = append(warnings, warns...)
		if sanitized == nil {
			runErrs = multierror.Append(runErrs,
				&agent.InvocationError{PatientID: sc.PatientID, Err: errors.New("collaborator returned nil response")})
			break
		}
		toolCalls := make([]transcript.ToolCall, 0, len(sanitized.ToolsUsed))
		for _, name := range sanitized.ToolsUsed {
			toolCalls = append(toolCalls, transcript.ToolCall{Name: name})
		}
		tr = append(tr, transcript.Turn{
			Role:        transcript.RoleAssistant,
			Content:     sanitized.Message,
			AgentName:   sanitized.AgentName,
			ToolCalls:   toolCalls,
			StartedAt:   span.Start,
			CompletedAt: span.End,
		})
		if r.verbose {
			log.Infof("agent (%s): %s", sanitized.AgentName, sanitized.Message)
		}
		if sanitized.Success {
			break
		}
		if len(followUps) == 0 {
			break
		}
		message, followUps = followUps[0], followUps[1:]
	}
	return r.buildResult(sc, tr, start, runErrs, warnings)
}

// invoke performs one bounded collaborator call and records its span.
func (r *Runner) invoke(ctx context.Context, patientID, message string) (*agent.Response, latency.Span, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	span := latency.Span{Start: time.Now()}
	resp, err := r.collaborator.Invoke(callCtx, patientID, message)
	span.End = time.Now()
	return resp, span, err
}

func (r *Runner) buildResult(sc *scenario.Scenario, tr transcript.Transcript,
	start time.Time, runErrs *multierror.Error, warnings []string) *result.Result {
	conv := r.scorer.Score(tr, sc)
	tools := toolusage.Analyze(tr.ToolCalls(), sc.ExpectedTools, tr)
	lat := latency.Track(latency.SpansFromTranscript(tr))
	successReport := r.evaluator.Evaluate(sc, tr, tools, conv)
	achieved := successReport.Passed && runErrs.ErrorOrNil() == nil
	tokens := r.estimator.Estimate(tr, achieved)
	end := time.Now()
	res := &result.Result{
		RunID:           uuid.NewString(),
		ScenarioID:      sc.ID,
		ScenarioName:    sc.Name,
		PatientID:       sc.PatientID,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: end.Sub(start).Seconds(),
		Transcript:      tr,
		ToolsCalled:     tr.ToolNames(),
		AgentsUsed:      tr.AgentNames(),
		SuccessAchieved: achieved,
		CriteriaMet:     successReport.CriteriaMet(),
		Errors:          errorStrings(runErrs),
		Warnings:        warnings,
		Metrics: result.MetricsBundle{
			Conversation: conv,
			ToolUsage:    tools,
			Latency:      lat,
			Tokens:       tokens,
			Success:      successReport,
		},
	}
	if r.verbose {
		log.Infof("scenario %s finished: success=%t score=%.3f duration=%.2fs",
			sc.ID, res.SuccessAchieved, conv.Overall, res.DurationSeconds)
		log.Debugf("scenario %s %s: overall=%.3f, %s: calls=%d redundant=%d, %s: avg=%.3fs, %s: total=%d",
			sc.ID, metric.Conversation, conv.Overall,
			metric.ToolUsage, tools.TotalCalls, tools.RedundantCalls,
			metric.Latency, lat.AvgResponseTime,
			metric.Tokens, tokens.TotalTokens)
	}
	return res
}

// invocationBudget bounds the number of collaborator calls for a scenario.
func invocationBudget(sc *scenario.Scenario) int {
	budget := (sc.EstimatedTurns + 1) / 2
	if budget < 1 {
		budget = 1
	}
	return budget
}

func errorStrings(errs *multierror.Error) []string {
	out := []string{}
	if errs == nil {
		return out
	}
	for _, err := range errs.Errors {
		out = append(out, err.Error())
	}
	return out
}
