//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package toolusage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresched/agenteval/transcript"
)

func calls(names ...string) []transcript.ToolCall {
	out := make([]transcript.ToolCall, 0, len(names))
	for _, name := range names {
		out = append(out, transcript.ToolCall{Name: name})
	}
	return out
}

func TestAnalyzeFrequencyInvariants(t *testing.T) {
	report := Analyze(calls(
		"check_provider_availability",
		"search_appointment_slots",
		"search_appointment_slots",
		"book_appointment",
	), nil, nil)

	assert.Equal(t, 4, report.TotalCalls)
	assert.Equal(t, 3, report.UniqueTools)
	sum := 0
	for _, count := range report.Frequency {
		assert.GreaterOrEqual(t, count, 0)
		sum += count
	}
	assert.Equal(t, report.TotalCalls, sum)
	assert.Equal(t, "search_appointment_slots", report.MostUsed)
	assert.GreaterOrEqual(t, report.RedundantCalls, 0)
	assert.LessOrEqual(t, report.RedundantCalls, report.TotalCalls)
}

func TestAnalyzeEmptySequence(t *testing.T) {
	report := Analyze(nil, nil, nil)
	assert.Zero(t, report.TotalCalls)
	assert.Zero(t, report.UniqueTools)
	assert.Empty(t, report.Frequency)
	assert.Empty(t, report.Sequence)
	assert.Zero(t, report.RedundantCalls)
	assert.Empty(t, report.MostUsed)
}

func TestRedundantIdenticalRepeat(t *testing.T) {
	report := Analyze([]transcript.ToolCall{
		{Name: "search_appointment_slots", Arguments: `{"day":"monday"}`},
		{Name: "search_appointment_slots", Arguments: `{"day":"monday"}`},
	}, nil, nil)
	assert.Equal(t, 1, report.RedundantCalls)
}

func TestRepeatWithDifferentArgumentsNotRedundant(t *testing.T) {
	report := Analyze([]transcript.ToolCall{
		{Name: "search_appointment_slots", Arguments: `{"day":"monday"}`},
		{Name: "search_appointment_slots", Arguments: `{"day":"tuesday"}`},
	}, nil, nil)
	assert.Zero(t, report.RedundantCalls)
}

func TestRepeatAfterInterveningCallNotRedundant(t *testing.T) {
	report := Analyze([]transcript.ToolCall{
		{Name: "search_appointment_slots"},
		{Name: "verify_insurance"},
		{Name: "search_appointment_slots"},
	}, nil, nil)
	assert.Zero(t, report.RedundantCalls)
}

func TestCoverageDiff(t *testing.T) {
	expected := []string{
		"check_provider_availability",
		"verify_insurance",
		"book_appointment",
	}
	report := Analyze(calls(
		"check_provider_availability",
		"get_weather",
		"book_appointment",
	), expected, nil)

	assert.Equal(t, []string{"verify_insurance"}, report.MissingTools)
	assert.Equal(t, []string{"get_weather"}, report.UnexpectedTools)
}

func TestFullCoverageHasNoDiff(t *testing.T) {
	expected := []string{"verify_insurance", "book_appointment"}
	report := Analyze(calls("verify_insurance", "book_appointment"), expected, nil)
	assert.Empty(t, report.MissingTools)
	assert.Empty(t, report.UnexpectedTools)
}

func TestSuccessRateReflectsProductiveUse(t *testing.T) {
	tr := transcript.Transcript{
		{Role: transcript.RoleUser, Content: "Can you check my insurance?"},
		{
			Role:      transcript.RoleAssistant,
			Content:   "Your insurance is active and covers the visit.",
			ToolCalls: []transcript.ToolCall{{Name: "verify_insurance"}, {Name: "get_weather"}},
		},
	}
	report := Analyze(tr.ToolCalls(), nil, tr)
	require.Contains(t, report.SuccessRate, "verify_insurance")
	assert.Equal(t, 1.0, report.SuccessRate["verify_insurance"])
	// The weather lookup's output never shows up in the reply.
	assert.Equal(t, 0.0, report.SuccessRate["get_weather"])
}

func TestMissingToolsScoreZero(t *testing.T) {
	report := Analyze(nil, []string{"book_appointment"}, nil)
	assert.Equal(t, []string{"book_appointment"}, report.MissingTools)
	assert.Equal(t, 0.0, report.SuccessRate["book_appointment"])
}
