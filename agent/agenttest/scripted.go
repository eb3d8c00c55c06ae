//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package agenttest provides scripted collaborators for tests and demos.
package agenttest

import (
	"context"
	"strings"
	"time"

	"github.com/caresched/agenteval/agent"
)

// Scripted is a keyword-routed collaborator that simulates a scheduling agent.
// It stands in for the real agent system in tests and the CLI demo; replace it
// with your own Collaborator to evaluate a production agent.
type Scripted struct {
	// Delay simulates per-call processing time.
	Delay time.Duration
}

// Invoke implements agent.Collaborator.
func (s *Scripted) Invoke(ctx context.Context, patientID, message string) (*agent.Response, error) {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "book it") || strings.Contains(lower, "please book") ||
		strings.Contains(lower, "please confirm") || strings.Contains(lower, "works for me"):
		return &agent.Response{
			Message: "Perfect, your appointment is booked and confirmed. I've verified your insurance coverage " +
				"and you'll receive a reminder with the exact time and location. Is there anything else I can help with?",
			AgentName: "Scheduling Agent",
			ToolsUsed: []string{"verify_insurance", "book_appointment"},
			Success:   true,
		}, nil
	case strings.Contains(lower, "knee") || strings.Contains(lower, "orthopedic"):
		return &agent.Response{
			Message: "I'd be happy to help schedule your orthopedic follow-up appointment. " +
				"Let me check Dr. Martinez's availability for you. " +
				"I have appointments available this Thursday at 10:00 AM or Friday at 2:30 PM. " +
				"Would either of those work for you?",
			AgentName: "Orthopedic Agent",
			ToolsUsed: []string{"check_provider_availability", "search_appointment_slots"},
			Success:   false,
		}, nil
	case strings.Contains(lower, "chest pain") || strings.Contains(lower, "cardiolog"):
		return &agent.Response{
			Message: "I understand you're experiencing chest pain and need to see a cardiologist. " +
				"I've verified your Medicare coverage and confirmed your referral is on file. " +
				"Given the urgency, I can schedule you for tomorrow at 2:00 PM with Dr. Patel. " +
				"Is that acceptable?",
			AgentName: "Cardiology Agent",
			ToolsUsed: []string{"verify_insurance", "check_referral_status", "check_provider_availability", "search_appointment_slots"},
			Success:   false,
		}, nil
	case strings.Contains(lower, "reschedule"):
		return &agent.Response{
			Message: "I can help you reschedule your appointment with Dr. Nguyen. " +
				"To avoid Tuesday, I have Wednesday at 3:00 PM or Thursday at 9:00 AM available. " +
				"Which would you prefer?",
			AgentName: "Primary Care Agent",
			ToolsUsed: []string{"check_provider_availability", "search_appointment_slots"},
			Success:   false,
		}, nil
	case strings.Contains(lower, "annual physical") || strings.Contains(lower, "wellness"):
		return &agent.Response{
			Message: "I'd be happy to help schedule your annual physical. " +
				"Your United Healthcare plan covers preventive care at 100%. " +
				"Dr. White has availability next Monday at 8:30 AM or Friday at 1:00 PM. " +
				"Which works better for you?",
			AgentName: "Primary Care Agent",
			ToolsUsed: []string{"verify_insurance", "check_provider_availability", "search_appointment_slots"},
			Success:   false,
		}, nil
	default:
		return &agent.Response{
			Message: "I'd be happy to help you schedule an appointment. " +
				"Could you tell me more about what type of appointment you need?",
			AgentName: "Router Agent",
			ToolsUsed: []string{},
			Success:   false,
		}, nil
	}
}
