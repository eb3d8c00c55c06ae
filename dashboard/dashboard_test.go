//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package dashboard

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresched/agenteval/metric/conversation"
	"github.com/caresched/agenteval/metric/latency"
	"github.com/caresched/agenteval/metric/token"
	"github.com/caresched/agenteval/metric/toolusage"
	"github.com/caresched/agenteval/result"
	"github.com/caresched/agenteval/transcript"
)

func sampleResults() []*result.Result {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return []*result.Result{
		{
			RunID:           "run-1",
			ScenarioID:      "SC001",
			StartTime:       start,
			EndTime:         start.Add(3 * time.Second),
			DurationSeconds: 3.0,
			AgentsUsed:      []string{"Orthopedic Agent", "Scheduling Agent"},
			SuccessAchieved: true,
			CriteriaMet:     map[string]bool{"appointment_booked": true, "insurance_verified": true},
			Transcript: transcript.Transcript{
				{
					Role:      transcript.RoleAssistant,
					AgentName: "Scheduling Agent",
					ToolCalls: []transcript.ToolCall{{Name: "book_appointment"}},
				},
			},
			Metrics: result.MetricsBundle{
				Conversation: conversation.Scores{
					Relevance: 0.6, Helpfulness: 0.7, Accuracy: 0.9, Naturalness: 0.8, Overall: 0.74,
				},
				ToolUsage: &toolusage.Report{
					TotalCalls: 2,
					Frequency:  map[string]int{"book_appointment": 1, "verify_insurance": 1},
				},
				Latency: &latency.Report{AvgResponseTime: 1.5, ResponseTimes: []float64{1.0, 2.0}},
				Tokens:  &token.Report{TotalTokens: 300, EstimatedCost: 0.0001, TokensPerTurn: 75},
			},
		},
		{
			RunID:           "run-2",
			ScenarioID:      "SC002",
			StartTime:       start.Add(10 * time.Second),
			EndTime:         start.Add(15 * time.Second),
			DurationSeconds: 5.0,
			AgentsUsed:      []string{"Cardiology Agent"},
			SuccessAchieved: false,
			CriteriaMet:     map[string]bool{"appointment_booked": false, "insurance_verified": true},
			Errors:          []string{"collaborator timed out"},
			Metrics: result.MetricsBundle{
				Conversation: conversation.Scores{
					Relevance: 0.3, Helpfulness: 0.2, Accuracy: 0.5, Naturalness: 0.4, Overall: 0.34,
				},
				ToolUsage: &toolusage.Report{
					TotalCalls: 1,
					Frequency:  map[string]int{"verify_insurance": 1},
				},
				Latency: &latency.Report{AvgResponseTime: 4.0, ResponseTimes: []float64{4.0}},
				Tokens:  &token.Report{TotalTokens: 100, EstimatedCost: 0.00005, TokensPerTurn: 50},
			},
		},
	}
}

func TestAggregateSummary(t *testing.T) {
	rpt := New().Aggregate(sampleResults())

	assert.Equal(t, 2, rpt.Summary.TotalScenarios)
	assert.Equal(t, 1, rpt.Summary.Passed)
	assert.Equal(t, 1, rpt.Summary.Failed)
	assert.Equal(t, 0.5, rpt.Summary.SuccessRate)
	assert.Equal(t, "2025-06-01T09:00:15Z", rpt.Summary.GeneratedAt)
}

func TestAggregateEmpty(t *testing.T) {
	rpt := New().Aggregate(nil)
	assert.Zero(t, rpt.Summary.TotalScenarios)
	assert.NotNil(t, rpt.Tools.Frequency)
	assert.NotNil(t, rpt.PerAgent)
	assert.NotNil(t, rpt.Success.CriteriaMetCounts)
	assert.NotNil(t, rpt.Conversation.ScoreDistribution)
}

func TestAggregateToolTable(t *testing.T) {
	rpt := New().Aggregate(sampleResults())
	assert.Equal(t, 3, rpt.Tools.TotalCalls)
	assert.Equal(t, map[string]int{"book_appointment": 1, "verify_insurance": 2}, rpt.Tools.Frequency)
	assert.Equal(t, "verify_insurance", rpt.Tools.MostUsed)

	sum := 0
	for _, count := range rpt.Tools.Frequency {
		sum += count
	}
	assert.Equal(t, rpt.Tools.TotalCalls, sum)
}

func TestAggregateConversationAndLatency(t *testing.T) {
	rpt := New().Aggregate(sampleResults())
	assert.InDelta(t, 0.54, rpt.Conversation.AverageScore, 1e-9)
	assert.Equal(t, 0.34, rpt.Conversation.MinScore)
	assert.Equal(t, 0.74, rpt.Conversation.MaxScore)
	assert.Len(t, rpt.Conversation.ScoreDistribution, 2)

	assert.InDelta(t, 8.0, rpt.Latency.TotalDuration, 1e-9)
	assert.InDelta(t, 4.0, rpt.Latency.AvgDuration, 1e-9)
	assert.InDelta(t, 3.0, rpt.Latency.MinDuration, 1e-9)
}

func TestAggregatePerAgent(t *testing.T) {
	rpt := New().Aggregate(sampleResults())
	require.Contains(t, rpt.PerAgent, "Scheduling Agent")
	require.Contains(t, rpt.PerAgent, "Cardiology Agent")

	sched := rpt.PerAgent["Scheduling Agent"]
	assert.Equal(t, 1, sched.TotalInvocations)
	assert.Equal(t, 1.0, sched.SuccessRate)
	assert.Equal(t, 300, sched.TotalTokensUsed)
	assert.Equal(t, map[string]int{"book_appointment": 1}, sched.ToolsCalled)

	cardio := rpt.PerAgent["Cardiology Agent"]
	assert.Equal(t, 0.0, cardio.SuccessRate)
	assert.Equal(t, []string{"collaborator timed out"}, cardio.CommonErrors)
}

func TestCommonErrorsRankedAndBounded(t *testing.T) {
	flaky := func(errs ...string) *result.Result {
		return &result.Result{
			AgentsUsed: []string{"Flaky Agent"},
			Errors:     errs,
		}
	}
	results := []*result.Result{
		flaky("timeout", "bad gateway"),
		flaky("timeout", "refused"),
		flaky("timeout", "bad gateway", "parse error a", "parse error b", "parse error c"),
	}

	rpt := New().Aggregate(results)
	require.Contains(t, rpt.PerAgent, "Flaky Agent")

	got := rpt.PerAgent["Flaky Agent"].CommonErrors
	assert.Len(t, got, 5)
	// Highest frequency first, then singletons in lexical order; "refused"
	// falls off the end of the bounded list.
	assert.Equal(t, []string{
		"timeout",
		"bad gateway",
		"parse error a",
		"parse error b",
		"parse error c",
	}, got)
	assert.NotContains(t, got, "refused")
}

func TestAggregateSuccessMetrics(t *testing.T) {
	rpt := New().Aggregate(sampleResults())
	assert.Equal(t, 1, rpt.Success.CriteriaMetCounts["appointment_booked"])
	assert.Equal(t, 2, rpt.Success.CriteriaMetCounts["insurance_verified"])
	assert.Equal(t, 0.5, rpt.Success.CriteriaSuccessRates["appointment_booked"])
	assert.Equal(t, 1.0, rpt.Success.CriteriaSuccessRates["insurance_verified"])
}

func TestAggregateTwiceIsByteIdentical(t *testing.T) {
	results := sampleResults()
	agg := New()

	first, err := json.Marshal(agg.Aggregate(results))
	require.NoError(t, err)
	second, err := json.Marshal(agg.Aggregate(results))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExportSchemaKeys(t *testing.T) {
	data, err := json.Marshal(New().Aggregate(sampleResults()))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{
		"summary", "conversation_metrics", "tool_metrics",
		"latency_metrics", "token_metrics", "per_agent", "success_metrics",
	} {
		assert.Contains(t, raw, key)
	}
}

func TestExportAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports", "dashboard.json")
	rpt := New().Aggregate(sampleResults())

	require.NoError(t, Export(rpt, path))

	// Atomic write leaves no temp file behind.
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, rpt.Summary, loaded.Summary)
	assert.Equal(t, rpt.Tools.Frequency, loaded.Tools.Frequency)
	assert.Equal(t, rpt.Success, loaded.Success)
}

func TestExportNilReport(t *testing.T) {
	err := Export(nil, filepath.Join(t.TempDir(), "out.json"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
