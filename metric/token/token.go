//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package token estimates token consumption and monetary cost for a run.
//
// Token counts are approximated from word counts using a configurable
// tokens-per-word factor; they are estimates, never exact counts.
package token

import (
	"strings"

	"github.com/caresched/agenteval/transcript"
)

// DefaultTokensPerWord is the default words-to-tokens estimation factor
// (roughly 1 token per 0.75 English words).
const DefaultTokensPerWord = 1.3

// Pricing is the per-model price table used to estimate cost.
type Pricing struct {
	// Model names the priced model.
	Model string `json:"model" yaml:"model"`
	// InputPerMTok is the USD price per 1M prompt tokens.
	InputPerMTok float64 `json:"input_per_mtok" yaml:"input_per_mtok"`
	// OutputPerMTok is the USD price per 1M completion tokens.
	OutputPerMTok float64 `json:"output_per_mtok" yaml:"output_per_mtok"`
}

// DefaultPricing returns gpt-4o-mini pricing ($0.150 / $0.600 per 1M tokens).
func DefaultPricing() Pricing {
	return Pricing{
		Model:         "gpt-4o-mini",
		InputPerMTok:  0.150,
		OutputPerMTok: 0.600,
	}
}

// Report holds the token economics of one run.
type Report struct {
	// PromptTokens estimates tokens in user turns.
	PromptTokens int `json:"prompt_tokens"`
	// CompletionTokens estimates tokens in assistant turns.
	CompletionTokens int `json:"completion_tokens"`
	// TotalTokens is the sum of prompt and completion tokens.
	TotalTokens int `json:"total_tokens"`
	// EstimatedCost is the estimated USD cost under the configured pricing.
	EstimatedCost float64 `json:"estimated_cost"`
	// TokensPerTurn is the mean token count per transcript turn.
	TokensPerTurn float64 `json:"tokens_per_turn"`
	// Efficiency relates outcome to consumption: success (1 or 0) divided by
	// total tokens.
	Efficiency float64 `json:"token_efficiency"`
}

// Estimator estimates token counts and cost from transcripts.
type Estimator struct {
	tokensPerWord float64
	pricing       Pricing
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithTokensPerWord overrides the words-to-tokens factor.
func WithTokensPerWord(factor float64) Option {
	return func(e *Estimator) {
		if factor > 0 {
			e.tokensPerWord = factor
		}
	}
}

// WithPricing overrides the price table.
func WithPricing(p Pricing) Option {
	return func(e *Estimator) {
		e.pricing = p
	}
}

// New creates an Estimator with the default factor and pricing.
func New(opt ...Option) *Estimator {
	e := &Estimator{
		tokensPerWord: DefaultTokensPerWord,
		pricing:       DefaultPricing(),
	}
	for _, o := range opt {
		o(e)
	}
	return e
}

// EstimateText estimates the token count of a single text.
func (e *Estimator) EstimateText(text string) int {
	return int(float64(len(strings.Fields(text))) * e.tokensPerWord)
}

// Estimate computes token economics for a transcript. success feeds the
// efficiency ratio. An empty transcript yields the zero report.
func (e *Estimator) Estimate(tr transcript.Transcript, success bool) *Report {
	report := &Report{}
	for _, turn := range tr {
		tokens := e.EstimateText(turn.Content)
		switch turn.Role {
		case transcript.RoleUser:
			report.PromptTokens += tokens
		case transcript.RoleAssistant:
			report.CompletionTokens += tokens
		}
	}
	report.TotalTokens = report.PromptTokens + report.CompletionTokens
	report.EstimatedCost = float64(report.PromptTokens)/1e6*e.pricing.InputPerMTok +
		float64(report.CompletionTokens)/1e6*e.pricing.OutputPerMTok
	if len(tr) > 0 {
		report.TokensPerTurn = float64(report.TotalTokens) / float64(len(tr))
	}
	if report.TotalTokens > 0 && success {
		report.Efficiency = 1.0 / float64(report.TotalTokens)
	}
	return report
}
