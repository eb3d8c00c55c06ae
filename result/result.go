//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package result defines the immutable record produced by one scenario run.
package result

import (
	"time"

	"github.com/caresched/agenteval/metric/conversation"
	"github.com/caresched/agenteval/metric/latency"
	"github.com/caresched/agenteval/metric/success"
	"github.com/caresched/agenteval/metric/token"
	"github.com/caresched/agenteval/metric/toolusage"
	"github.com/caresched/agenteval/transcript"
)

// MetricsBundle aggregates the four independent score families plus the
// success evaluation for one run.
type MetricsBundle struct {
	// Conversation holds the quality sub-scores and overall score.
	Conversation conversation.Scores `json:"conversation"`
	// ToolUsage holds frequency, redundancy and coverage statistics.
	ToolUsage *toolusage.Report `json:"tool_usage"`
	// Latency holds the response-time distribution.
	Latency *latency.Report `json:"latency"`
	// Tokens holds estimated token counts and cost.
	Tokens *token.Report `json:"tokens"`
	// Success holds the per-criterion evaluation.
	Success *success.Report `json:"success"`
}

// Result bundles everything produced by running one scenario. It is built
// once per run and never mutated afterwards; each run yields a fresh,
// independent Result.
type Result struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id"`
	// ScenarioID references the scenario that was run.
	ScenarioID string `json:"scenario_id"`
	// ScenarioName is the scenario display name.
	ScenarioName string `json:"scenario_name"`
	// PatientID is the opaque subject identifier.
	PatientID string `json:"patient_id"`
	// StartTime is when the run began.
	StartTime time.Time `json:"start_time"`
	// EndTime is when the run finished.
	EndTime time.Time `json:"end_time"`
	// DurationSeconds is the wall-clock run duration.
	DurationSeconds float64 `json:"duration_seconds"`
	// Transcript is the conversation produced by the run.
	Transcript transcript.Transcript `json:"conversation_history"`
	// ToolsCalled lists every tool name issued, in order.
	ToolsCalled []string `json:"tools_called"`
	// AgentsUsed lists the distinct agent names seen, in first-seen order.
	AgentsUsed []string `json:"agents_used"`
	// SuccessAchieved is the overall pass/fail outcome.
	SuccessAchieved bool `json:"success_achieved"`
	// CriteriaMet maps each mandatory criterion to its outcome.
	CriteriaMet map[string]bool `json:"success_criteria_met"`
	// Errors lists failures absorbed during the run (collaborator faults).
	Errors []string `json:"errors"`
	// Warnings lists non-fatal anomalies (malformed response fields).
	Warnings []string `json:"warnings"`
	// Metrics bundles the computed metric families.
	Metrics MetricsBundle `json:"metrics"`
}
