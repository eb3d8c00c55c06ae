//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package transcript

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sample() Transcript {
	return Transcript{
		{Role: RoleUser, Content: "Hello"},
		{
			Role:      RoleAssistant,
			AgentName: "Router Agent",
			Content:   "Hi there",
			ToolCalls: []ToolCall{{Name: "lookup_patient"}},
		},
		{Role: RoleUser, Content: "Book it"},
		{
			Role:      RoleAssistant,
			AgentName: "Scheduling Agent",
			Content:   "Done",
			ToolCalls: []ToolCall{{Name: "book_appointment"}, {Name: "verify_insurance"}},
		},
		{Role: RoleAssistant, AgentName: "Router Agent", Content: "Anything else?"},
	}
}

func TestTurnFilters(t *testing.T) {
	tr := sample()
	assert.Len(t, tr.UserTurns(), 2)
	assert.Len(t, tr.AssistantTurns(), 3)
}

func TestToolCallsInOrder(t *testing.T) {
	assert.Equal(t, []string{"lookup_patient", "book_appointment", "verify_insurance"}, sample().ToolNames())
	assert.Len(t, sample().ToolCalls(), 3)
}

func TestAgentNamesFirstSeenDistinct(t *testing.T) {
	assert.Equal(t, []string{"Router Agent", "Scheduling Agent"}, sample().AgentNames())
}

func TestJoinedContent(t *testing.T) {
	assert.Equal(t, "hello hi there book it done anything else?", sample().JoinedContent())
}

func TestTimed(t *testing.T) {
	now := time.Now()
	assert.False(t, Turn{}.Timed())
	assert.False(t, Turn{StartedAt: now}.Timed())
	assert.True(t, Turn{StartedAt: now, CompletedAt: now.Add(time.Second)}.Timed())
}
