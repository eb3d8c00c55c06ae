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

// hedgePhrases indicate claims that are not traceable to tool evidence.
var hedgePhrases = []string{
	"i think", "maybe", "probably", "i'm not sure",
	"i don't know", "possibly",
}

// confidentPhrases indicate statements grounded in looked-up data.
var confidentPhrases = []string{
	"confirmed", "verified", "available", "scheduled",
	"according to", "based on",
}

const (
	accuracyBaseline  = 0.7
	hedgePenalty      = 0.1
	confidenceBonus   = 0.1
	toolEvidenceBonus = 0.2
)

// accuracyScorer rewards confident, tool-backed statements. Hedging is only
// penalized on turns with no tool call to back the claim; a hedged statement
// accompanied by tool evidence is treated as appropriately qualified.
type accuracyScorer struct{}

func (a *accuracyScorer) Name() string { return "accuracy" }

func (a *accuracyScorer) Score(tr transcript.Transcript, _ *scenario.Scenario) float64 {
	assistant := tr.AssistantTurns()
	if len(assistant) == 0 {
		return 0
	}
	var total float64
	for _, turn := range assistant {
		content := strings.ToLower(turn.Content)
		score := accuracyBaseline
		toolBacked := len(turn.ToolCalls) > 0
		if !toolBacked {
			score -= float64(textutil.CountMatches(content, hedgePhrases)) * hedgePenalty
		}
		score += float64(textutil.CountMatches(content, confidentPhrases)) * confidenceBonus
		if toolBacked {
			score += toolEvidenceBonus
		}
		total += stats.Clamp01(score)
	}
	return stats.Clamp01(total / float64(len(assistant)))
}
