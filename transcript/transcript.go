//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package transcript models the ordered conversation produced by a scenario run.
package transcript

import (
	"strings"
	"time"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	// RoleUser marks a turn authored by the simulated patient.
	RoleUser Role = "user"
	// RoleAssistant marks a turn authored by the agent under test.
	RoleAssistant Role = "assistant"
)

// ToolCall records a single tool invocation attributed to a turn.
// Arguments holds the effective argument signature as an opaque string;
// it may be empty when the collaborator reports tool names only.
type ToolCall struct {
	// Name is the tool name.
	Name string `json:"name"`
	// Arguments is the effective argument signature, if known.
	Arguments string `json:"arguments,omitempty"`
}

// Turn is a single entry in a conversation transcript.
type Turn struct {
	// Role is the author of the turn.
	Role Role `json:"role"`
	// Content is the text content of the turn.
	Content string `json:"content"`
	// AgentName names the agent that produced an assistant turn.
	AgentName string `json:"agent_name,omitempty"`
	// ToolCalls lists the tool invocations issued while producing this turn.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	// StartedAt is when processing of this turn began. Zero when untimed.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt is when processing of this turn finished. Zero when untimed.
	CompletedAt time.Time `json:"completed_at,omitempty"`
}

// Timed reports whether the turn carries a complete processing span.
func (t Turn) Timed() bool {
	return !t.StartedAt.IsZero() && !t.CompletedAt.IsZero()
}

// Transcript is the ordered, append-only sequence of turns from one run.
type Transcript []Turn

// AssistantTurns returns the assistant turns in order.
func (tr Transcript) AssistantTurns() []Turn {
	var out []Turn
	for _, t := range tr {
		if t.Role == RoleAssistant {
			out = append(out, t)
		}
	}
	return out
}

// UserTurns returns the user turns in order.
func (tr Transcript) UserTurns() []Turn {
	var out []Turn
	for _, t := range tr {
		if t.Role == RoleUser {
			out = append(out, t)
		}
	}
	return out
}

// ToolCalls returns every tool call in transcript order.
func (tr Transcript) ToolCalls() []ToolCall {
	var out []ToolCall
	for _, t := range tr {
		out = append(out, t.ToolCalls...)
	}
	return out
}

// ToolNames returns the names of every tool call in transcript order.
func (tr Transcript) ToolNames() []string {
	var out []string
	for _, t := range tr {
		for _, call := range t.ToolCalls {
			out = append(out, call.Name)
		}
	}
	return out
}

// AgentNames returns the distinct agent names in first-seen order.
func (tr Transcript) AgentNames() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range tr {
		if t.AgentName == "" {
			continue
		}
		if _, ok := seen[t.AgentName]; ok {
			continue
		}
		seen[t.AgentName] = struct{}{}
		out = append(out, t.AgentName)
	}
	return out
}

// JoinedContent concatenates the lowercase content of every turn, separated by
// single spaces. Scorers use it for whole-conversation keyword checks.
func (tr Transcript) JoinedContent() string {
	parts := make([]string, 0, len(tr))
	for _, t := range tr {
		parts = append(parts, strings.ToLower(t.Content))
	}
	return strings.Join(parts, " ")
}
