//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caresched/agenteval/transcript"
)

func TestEstimateTextFollowsFactor(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 100))

	e := New()
	assert.Equal(t, 130, e.EstimateText(text))

	e = New(WithTokensPerWord(2.0))
	assert.Equal(t, 200, e.EstimateText(text))
}

func TestEstimateSplitsRoles(t *testing.T) {
	tr := transcript.Transcript{
		{Role: transcript.RoleUser, Content: "one two three four"},
		{Role: transcript.RoleAssistant, Content: "five six"},
	}
	report := New().Estimate(tr, false)

	// 4 and 2 words at factor 1.3, truncated.
	assert.Equal(t, 5, report.PromptTokens)
	assert.Equal(t, 2, report.CompletionTokens)
	assert.Equal(t, report.PromptTokens+report.CompletionTokens, report.TotalTokens)
	assert.InDelta(t, float64(report.TotalTokens)/2, report.TokensPerTurn, 1e-9)
}

func TestEstimateCostFormula(t *testing.T) {
	pricing := Pricing{Model: "test", InputPerMTok: 1.0, OutputPerMTok: 2.0}
	tr := transcript.Transcript{
		{Role: transcript.RoleUser, Content: strings.TrimSpace(strings.Repeat("w ", 100))},
		{Role: transcript.RoleAssistant, Content: strings.TrimSpace(strings.Repeat("w ", 100))},
	}
	report := New(WithPricing(pricing)).Estimate(tr, true)

	want := float64(report.PromptTokens)/1e6*1.0 + float64(report.CompletionTokens)/1e6*2.0
	assert.InDelta(t, want, report.EstimatedCost, 1e-12)
}

func TestEfficiencyRequiresSuccess(t *testing.T) {
	tr := transcript.Transcript{
		{Role: transcript.RoleAssistant, Content: "ten little words in a short assistant reply right here"},
	}
	e := New()

	failed := e.Estimate(tr, false)
	assert.Zero(t, failed.Efficiency)

	passed := e.Estimate(tr, true)
	assert.InDelta(t, 1.0/float64(passed.TotalTokens), passed.Efficiency, 1e-12)
}

func TestEstimateEmptyTranscript(t *testing.T) {
	report := New().Estimate(nil, true)
	assert.Zero(t, report.TotalTokens)
	assert.Zero(t, report.EstimatedCost)
	assert.Zero(t, report.TokensPerTurn)
	assert.Zero(t, report.Efficiency)
}

func TestWithTokensPerWordIgnoresInvalidFactor(t *testing.T) {
	e := New(WithTokensPerWord(-1))
	assert.Equal(t, int(10*DefaultTokensPerWord), e.EstimateText(strings.TrimSpace(strings.Repeat("w ", 10))))
}
