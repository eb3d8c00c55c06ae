//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package scenario defines scripted evaluation scenarios and their catalog.
package scenario

// Difficulty tags the expected complexity of a scenario.
type Difficulty string

const (
	// DifficultySimple marks single-intent scenarios with few expected tools.
	DifficultySimple Difficulty = "simple"
	// DifficultyMedium marks scenarios with preferences or protocol lookups.
	DifficultyMedium Difficulty = "medium"
	// DifficultyComplex marks scenarios combining urgency, coverage and referrals.
	DifficultyComplex Difficulty = "complex"
)

// Well-known tags interpreted by the success evaluator.
const (
	// TagFollowUp exempts a scenario from new-referral and insurance checks.
	TagFollowUp = "follow-up"
	// TagUrgent marks scenarios whose handling must reflect urgency.
	TagUrgent = "urgent"
)

// Scenario is an immutable scripted test case for the agent under test.
// Construct once at catalog-build time and never mutate.
type Scenario struct {
	// ID uniquely identifies the scenario within a catalog.
	ID string `json:"scenario_id"`
	// Name is a short display name.
	Name string `json:"name"`
	// Description explains what the scenario exercises.
	Description string `json:"description"`
	// PatientID is the opaque subject identifier passed to the collaborator.
	PatientID string `json:"patient_id"`
	// InitialMessage opens the conversation.
	InitialMessage string `json:"initial_message"`
	// ExpectedSpecialty is the specialty the agent should route to.
	ExpectedSpecialty string `json:"expected_specialty"`
	// PreferredProvider is the provider the patient asked for, if any.
	PreferredProvider string `json:"preferred_provider,omitempty"`
	// ExpectedTools lists the tool names a correct run should issue, in order.
	ExpectedTools []string `json:"expected_tools"`
	// Criteria declares which success criteria are mandatory for this scenario.
	Criteria SuccessCriteria `json:"success_criteria"`
	// Difficulty tags the scenario complexity.
	Difficulty Difficulty `json:"difficulty_level"`
	// Tags carries free-form labels used for filtering and evaluator hints.
	Tags []string `json:"tags,omitempty"`
	// EstimatedTurns is the expected conversation length in turns.
	EstimatedTurns int `json:"estimated_turns"`
	// FollowUps holds scripted patient replies for multi-turn runs.
	FollowUps []string `json:"follow_ups,omitempty"`
}

// HasTag reports whether the scenario carries the given tag.
func (s *Scenario) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsFollowUp reports whether the scenario is a follow-up visit.
func (s *Scenario) IsFollowUp() bool {
	return s.HasTag(TagFollowUp)
}

// IsUrgent reports whether the scenario is flagged urgent.
func (s *Scenario) IsUrgent() bool {
	return s.HasTag(TagUrgent)
}
