//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package toolusage analyzes the ordered tool-call sequence of a run:
// frequency, redundancy and coverage against the scenario's expected tools.
package toolusage

import (
	"sort"
	"strings"

	"github.com/caresched/agenteval/transcript"
)

// Report holds the tool-usage statistics for one run.
//
// Invariants: counts are non-negative, the frequency values sum to TotalCalls,
// and RedundantCalls never exceeds TotalCalls.
type Report struct {
	// TotalCalls counts every tool invocation.
	TotalCalls int `json:"total_calls"`
	// UniqueTools counts distinct tool names.
	UniqueTools int `json:"unique_tools"`
	// Frequency maps tool name to call count.
	Frequency map[string]int `json:"tool_frequency"`
	// MostUsed is the most frequently called tool, ties broken lexically.
	MostUsed string `json:"most_used_tool,omitempty"`
	// LeastUsed is the least frequently called tool, ties broken lexically.
	LeastUsed string `json:"least_used_tool,omitempty"`
	// Sequence is the ordered list of tool names as issued.
	Sequence []string `json:"tool_sequence"`
	// RedundantCalls counts repeated invocations that gained no new information.
	RedundantCalls int `json:"redundant_calls"`
	// MissingTools lists expected tools that were never called.
	MissingTools []string `json:"missing_tools,omitempty"`
	// UnexpectedTools lists called tools outside the expected list.
	UnexpectedTools []string `json:"unexpected_tools,omitempty"`
	// SuccessRate estimates, per tool, whether its results were used
	// productively by the surrounding conversation.
	SuccessRate map[string]float64 `json:"tool_success_rate"`
}

// Analyze computes tool-usage statistics for an ordered call sequence.
// expected is the scenario's expected tool list; tr supplies the surrounding
// transcript for the productive-use heuristic and may be nil.
// An empty call sequence yields a well-formed zero report.
func Analyze(calls []transcript.ToolCall, expected []string, tr transcript.Transcript) *Report {
	report := &Report{
		Frequency:   map[string]int{},
		Sequence:    []string{},
		SuccessRate: map[string]float64{},
	}
	for _, call := range calls {
		report.Sequence = append(report.Sequence, call.Name)
		report.Frequency[call.Name]++
	}
	report.TotalCalls = len(calls)
	report.UniqueTools = len(report.Frequency)
	report.MostUsed, report.LeastUsed = frequencyExtremes(report.Frequency)
	report.RedundantCalls = countRedundant(calls)
	report.MissingTools, report.UnexpectedTools = coverageDiff(report.Frequency, expected)
	for name := range report.Frequency {
		if usedProductively(name, tr) {
			report.SuccessRate[name] = 1.0
		} else {
			report.SuccessRate[name] = 0.0
		}
	}
	for _, name := range report.MissingTools {
		report.SuccessRate[name] = 0.0
	}
	return report
}

// countRedundant counts calls that repeat the previous call's effective
// signature. A repeated signature is redundant only when no different call
// intervened, i.e. nothing new was learned in between.
func countRedundant(calls []transcript.ToolCall) int {
	redundant := 0
	for i := 1; i < len(calls); i++ {
		if signature(calls[i]) == signature(calls[i-1]) {
			redundant++
		}
	}
	return redundant
}

func signature(call transcript.ToolCall) string {
	return call.Name + "\x00" + call.Arguments
}

// coverageDiff returns expected tools never called and called tools outside
// the expected list, both preserving first-seen order.
func coverageDiff(frequency map[string]int, expected []string) (missing, unexpected []string) {
	expectedSet := make(map[string]struct{}, len(expected))
	for _, name := range expected {
		expectedSet[name] = struct{}{}
		if _, called := frequency[name]; !called {
			missing = append(missing, name)
		}
	}
	extras := make([]string, 0)
	for name := range frequency {
		if _, ok := expectedSet[name]; !ok {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	return missing, extras
}

// frequencyExtremes returns the most and least used tool names, breaking ties
// lexically so the result is deterministic.
func frequencyExtremes(frequency map[string]int) (most, least string) {
	names := make([]string, 0, len(frequency))
	for name := range frequency {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if most == "" || frequency[name] > frequency[most] {
			most = name
		}
		if least == "" || frequency[name] < frequency[least] {
			least = name
		}
	}
	return most, least
}

// usedProductively reports whether assistant content following the tool's
// call references the tool's topic, indicating its result fed the reply.
// Calls whose output is never referenced look ignored and score 0.
func usedProductively(toolName string, tr transcript.Transcript) bool {
	topics := topicTokens(toolName)
	if len(topics) == 0 {
		return false
	}
	seen := false
	for _, turn := range tr {
		if !seen {
			for _, call := range turn.ToolCalls {
				if call.Name == toolName {
					seen = true
					break
				}
			}
		}
		if !seen || turn.Role != transcript.RoleAssistant {
			continue
		}
		content := strings.ToLower(turn.Content)
		for _, topic := range topics {
			if strings.Contains(content, topic) {
				return true
			}
		}
	}
	return false
}

// topicTokens derives content keywords from a tool name, dropping generic
// verbs that never appear in prose.
func topicTokens(toolName string) []string {
	skip := map[string]struct{}{
		"check": {}, "get": {}, "search": {}, "list": {},
		"status": {}, "verify": {}, "book": {}, "lookup": {},
	}
	var out []string
	for _, token := range strings.Split(strings.ToLower(toolName), "_") {
		if _, ok := skip[token]; ok {
			continue
		}
		if len(token) < 4 {
			continue
		}
		out = append(out, token)
	}
	return out
}
