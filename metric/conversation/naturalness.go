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

// naturalIndicators match conversational phrasing.
var naturalIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(hi|hello|thanks|thank you|please)\b`),
	regexp.MustCompile(`(?i)\b(great|perfect|wonderful|excellent)\b`),
	regexp.MustCompile(`\?`),
	regexp.MustCompile(`!`),
}

// roboticIndicators match templated or machine-shaped output.
var roboticIndicators = []*regexp.Regexp{
	regexp.MustCompile(`^\s*error:`),
	regexp.MustCompile(`^\s*warning:`),
	regexp.MustCompile(`\{.*\}`),
	regexp.MustCompile(`^\s*\[.*\]`),
}

const (
	naturalnessBaseline = 0.5
	naturalBonus        = 0.1
	roboticPenalty      = 0.3
	multiSentenceBonus  = 0.1
	// templatePenalty is applied per repeated turn opening across the run.
	templatePenalty = 0.1
	// uniformityPenalty is applied when sentence lengths barely vary.
	uniformityPenalty = 0.15
	// uniformityStdDevFloor is the sentence-length stddev (in words) under
	// which phrasing counts as templated.
	uniformityStdDevFloor = 1.0
	openingWords          = 3
)

// naturalnessScorer rewards varied, conversational replies and penalizes
// repetitive templated phrasing and extreme sentence-length uniformity.
type naturalnessScorer struct{}

func (n *naturalnessScorer) Name() string { return "naturalness" }

func (n *naturalnessScorer) Score(tr transcript.Transcript, _ *scenario.Scenario) float64 {
	assistant := tr.AssistantTurns()
	if len(assistant) == 0 {
		return 0
	}
	var total float64
	var sentenceLengths []float64
	openings := make(map[string]int)
	for _, turn := range assistant {
		score := naturalnessBaseline
		for _, re := range naturalIndicators {
			if re.MatchString(turn.Content) {
				score += naturalBonus
			}
		}
		for _, re := range roboticIndicators {
			if re.MatchString(turn.Content) {
				score -= roboticPenalty
			}
		}
		sents := splitSentences(turn.Content)
		if len(sents) > 1 {
			score += multiSentenceBonus
		}
		for _, s := range sents {
			sentenceLengths = append(sentenceLengths, float64(wordCount(s)))
		}
		openings[turnOpening(turn.Content)]++
		total += stats.Clamp01(score)
	}
	score := total / float64(len(assistant))

	// Identical openings across turns read as a template.
	repeated := 0
	for _, count := range openings {
		if count > 1 {
			repeated += count - 1
		}
	}
	score -= float64(repeated) / float64(len(assistant)) * templatePenalty
	// Near-identical sentence lengths read as generated filler.
	if len(sentenceLengths) >= 3 && stats.StdDev(sentenceLengths) < uniformityStdDevFloor {
		score -= uniformityPenalty
	}
	return stats.Clamp01(score)
}

// turnOpening returns the lowercase first words of a turn.
func turnOpening(content string) string {
	fields := strings.Fields(strings.ToLower(content))
	if len(fields) > openingWords {
		fields = fields[:openingWords]
	}
	return strings.Join(fields, " ")
}
