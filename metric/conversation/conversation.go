//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package conversation scores transcript quality along four heuristic
// sub-dimensions and folds them into one weighted overall score.
//
// The scores are lexical heuristics, not ground truth. Every sub-score and the
// overall score lie in [0, 1]; an empty transcript scores 0 everywhere.
package conversation

import (
	"fmt"

	"github.com/caresched/agenteval/scenario"
	"github.com/caresched/agenteval/transcript"
)

// Weights configures the contribution of each sub-score to the overall score.
// The four weights must sum to 1. The defaults are tunable configuration, not
// domain constants.
type Weights struct {
	Relevance   float64 `json:"relevance" yaml:"relevance"`
	Helpfulness float64 `json:"helpfulness" yaml:"helpfulness"`
	Accuracy    float64 `json:"accuracy" yaml:"accuracy"`
	Naturalness float64 `json:"naturalness" yaml:"naturalness"`
}

// DefaultWeights returns the default sub-score weights.
func DefaultWeights() Weights {
	return Weights{
		Relevance:   0.30,
		Helpfulness: 0.30,
		Accuracy:    0.25,
		Naturalness: 0.15,
	}
}

// Validate checks that the weights are non-negative and sum to 1.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"relevance":   w.Relevance,
		"helpfulness": w.Helpfulness,
		"accuracy":    w.Accuracy,
		"naturalness": w.Naturalness,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s is negative", name)
		}
	}
	sum := w.Relevance + w.Helpfulness + w.Accuracy + w.Naturalness
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("weights sum to %.3f, want 1", sum)
	}
	return nil
}

// Scores holds the four sub-scores and the weighted overall score for one run.
type Scores struct {
	// Relevance measures lexical overlap with patient intent and domain terms.
	Relevance float64 `json:"relevance_score"`
	// Helpfulness measures actionable content per assistant turn.
	Helpfulness float64 `json:"helpfulness_score"`
	// Accuracy rewards tool-backed confidence and penalizes unbacked hedging.
	Accuracy float64 `json:"accuracy_score"`
	// Naturalness rewards varied, conversational phrasing.
	Naturalness float64 `json:"naturalness_score"`
	// Overall is the weighted sum of the four sub-scores.
	Overall float64 `json:"overall_score"`
	// TotalTurns counts all turns in the transcript.
	TotalTurns int `json:"total_turns"`
	// AvgResponseWords is the mean assistant turn length in words.
	AvgResponseWords float64 `json:"avg_response_length"`
}

// SubScorer scores one quality dimension of a transcript. Implementations are
// pure functions over their inputs so heuristics can be swapped or tuned
// without touching aggregation or success evaluation.
type SubScorer interface {
	// Name returns the sub-dimension name.
	Name() string
	// Score returns a value in [0, 1] for the transcript. The scenario supplies
	// context such as the initial request; it may be nil.
	Score(tr transcript.Transcript, sc *scenario.Scenario) float64
}

// Scorer computes conversation quality scores.
type Scorer struct {
	weights     Weights
	relevance   SubScorer
	helpfulness SubScorer
	accuracy    SubScorer
	naturalness SubScorer
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithWeights overrides the default sub-score weights.
func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		s.weights = w
	}
}

// WithRelevanceScorer overrides the relevance heuristic.
func WithRelevanceScorer(sub SubScorer) Option {
	return func(s *Scorer) {
		s.relevance = sub
	}
}

// WithHelpfulnessScorer overrides the helpfulness heuristic.
func WithHelpfulnessScorer(sub SubScorer) Option {
	return func(s *Scorer) {
		s.helpfulness = sub
	}
}

// WithAccuracyScorer overrides the accuracy heuristic.
func WithAccuracyScorer(sub SubScorer) Option {
	return func(s *Scorer) {
		s.accuracy = sub
	}
}

// WithNaturalnessScorer overrides the naturalness heuristic.
func WithNaturalnessScorer(sub SubScorer) Option {
	return func(s *Scorer) {
		s.naturalness = sub
	}
}

// New creates a Scorer with the default heuristics and weights.
func New(opt ...Option) (*Scorer, error) {
	s := &Scorer{
		weights:     DefaultWeights(),
		relevance:   &relevanceScorer{},
		helpfulness: &helpfulnessScorer{},
		accuracy:    &accuracyScorer{},
		naturalness: &naturalnessScorer{},
	}
	for _, o := range opt {
		o(s)
	}
	if err := s.weights.Validate(); err != nil {
		return nil, fmt.Errorf("validate weights: %w", err)
	}
	return s, nil
}

// Score evaluates the transcript. An empty transcript, or one without
// assistant turns, scores 0.0 on every dimension without error.
func (s *Scorer) Score(tr transcript.Transcript, sc *scenario.Scenario) Scores {
	scores := Scores{TotalTurns: len(tr)}
	assistant := tr.AssistantTurns()
	if len(tr) == 0 || len(assistant) == 0 {
		return scores
	}
	scores.Relevance = s.relevance.Score(tr, sc)
	scores.Helpfulness = s.helpfulness.Score(tr, sc)
	scores.Accuracy = s.accuracy.Score(tr, sc)
	scores.Naturalness = s.naturalness.Score(tr, sc)
	scores.Overall = scores.Relevance*s.weights.Relevance +
		scores.Helpfulness*s.weights.Helpfulness +
		scores.Accuracy*s.weights.Accuracy +
		scores.Naturalness*s.weights.Naturalness
	var words int
	for _, t := range assistant {
		words += wordCount(t.Content)
	}
	scores.AvgResponseWords = float64(words) / float64(len(assistant))
	return scores
}
