//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package conversation

import (
	"regexp"
	"strings"

	"github.com/caresched/agenteval/internal/stats"
	"github.com/caresched/agenteval/scenario"
	"github.com/caresched/agenteval/transcript"
)

// helpfulIndicators match concrete, actionable content: times, dates,
// provider names, costs and scheduling confirmations.
var helpfulIndicators = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}:\d{2}`),
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
	regexp.MustCompile(`dr\.?\s+\w+`),
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`appointment`),
	regexp.MustCompile(`confirmed`),
	regexp.MustCompile(`available`),
	regexp.MustCompile(`insurance`),
	regexp.MustCompile(`copay`),
}

const (
	// indicatorWeight is earned per matching indicator, capped at 1 per turn.
	indicatorWeight = 0.15
	// shortReplyWords is the length below which a reply is likely unhelpful.
	shortReplyWords = 10
	// verboseReplyWords is the length above which verbosity is penalized.
	verboseReplyWords = 100
	shortReplyFactor  = 0.5
	verboseFactor     = 0.9
)

// helpfulnessScorer counts actionable content markers per assistant turn,
// shaped by reply length, and averages across turns.
type helpfulnessScorer struct{}

func (h *helpfulnessScorer) Name() string { return "helpfulness" }

func (h *helpfulnessScorer) Score(tr transcript.Transcript, _ *scenario.Scenario) float64 {
	assistant := tr.AssistantTurns()
	if len(assistant) == 0 {
		return 0
	}
	var total float64
	for _, turn := range assistant {
		content := strings.ToLower(turn.Content)
		var score float64
		for _, re := range helpfulIndicators {
			if re.MatchString(content) {
				score += indicatorWeight
			}
		}
		words := wordCount(content)
		if words < shortReplyWords {
			score *= shortReplyFactor
		} else if words > verboseReplyWords {
			score *= verboseFactor
		}
		total += stats.Clamp01(score)
	}
	return stats.Clamp01(total / float64(len(assistant)))
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
