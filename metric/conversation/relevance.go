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
	"strings"

	"github.com/caresched/agenteval/internal/stats"
	"github.com/caresched/agenteval/internal/textutil"
	"github.com/caresched/agenteval/scenario"
	"github.com/caresched/agenteval/transcript"
)

// domainVocabulary lists scheduling-domain terms whose presence in an
// assistant reply earns the relevance bonus.
var domainVocabulary = []string{
	"appointment", "schedule", "available", "book", "confirm",
	"insurance", "provider", "doctor", "time", "date",
}

// domainTermBonus is added when a reply uses domain vocabulary.
const domainTermBonus = 0.2

// relevanceScorer scores lexical overlap between each user request and the
// assistant reply that follows it, with a bonus for domain vocabulary.
type relevanceScorer struct{}

func (r *relevanceScorer) Name() string { return "relevance" }

func (r *relevanceScorer) Score(tr transcript.Transcript, sc *scenario.Scenario) float64 {
	var sum float64
	pairs := 0
	for i := 0; i+1 < len(tr); i++ {
		if tr[i].Role != transcript.RoleUser || tr[i+1].Role != transcript.RoleAssistant {
			continue
		}
		userWords := textutil.WordSet(tr[i].Content)
		if sc != nil {
			// The scenario's initial request is part of the patient intent even
			// on later turns.
			for w := range textutil.WordSet(sc.InitialMessage) {
				userWords[w] = struct{}{}
			}
		}
		agentWords := textutil.WordSet(tr[i+1].Content)
		overlap := textutil.Overlap(userWords, agentWords)
		ratio := float64(overlap) / float64(max(len(userWords), 1))
		if textutil.ContainsAny(strings.ToLower(tr[i+1].Content), domainVocabulary) {
			ratio += domainTermBonus
		}
		sum += stats.Clamp01(ratio)
		pairs++
	}
	if pairs == 0 {
		return 0
	}
	return stats.Clamp01(sum / float64(pairs))
}
