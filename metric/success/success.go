//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package success evaluates a run against the scenario's mandatory success
// criteria. Each criterion has an independent detector; overall success is the
// logical AND over exactly the criteria the scenario marks mandatory.
package success

import (
	"strings"

	"github.com/caresched/agenteval/internal/textutil"
	"github.com/caresched/agenteval/metric/conversation"
	"github.com/caresched/agenteval/metric/toolusage"
	"github.com/caresched/agenteval/scenario"
	"github.com/caresched/agenteval/transcript"
)

// DefaultNaturalnessThreshold is the naturalness sub-score a conversation must
// exceed to satisfy the conversation_natural criterion.
const DefaultNaturalnessThreshold = 0.6

// bookingTools are the tool names that indicate a booking was attempted.
var bookingTools = []string{"book_appointment"}

// bookingIndicators confirm a booking in conversation content.
var bookingIndicators = []string{"confirmed", "scheduled", "booked", "appointment set"}

// urgencyIndicators show urgency-appropriate handling.
var urgencyIndicators = []string{"urgent", "asap", "soon", "emergency", "priority", "earliest", "tomorrow", "today"}

// CriterionResult records the outcome of one criterion detector.
type CriterionResult struct {
	// Criterion names the evaluated criterion.
	Criterion scenario.Criterion `json:"criterion"`
	// Met reports whether the criterion is satisfied.
	Met bool `json:"met"`
	// Skipped marks criteria exempted for this scenario (never counted as
	// failing).
	Skipped bool `json:"skipped,omitempty"`
	// Reason explains the outcome.
	Reason string `json:"reason,omitempty"`
}

// Report is the success evaluation of one run.
type Report struct {
	// Results lists the mandatory criteria outcomes in canonical order.
	Results []CriterionResult `json:"results"`
	// Passed is the AND over all mandatory, non-skipped criteria.
	Passed bool `json:"passed"`
}

// CriteriaMet returns the per-criterion outcomes keyed by criterion name.
func (r *Report) CriteriaMet() map[string]bool {
	out := make(map[string]bool, len(r.Results))
	for _, res := range r.Results {
		out[string(res.Criterion)] = res.Met
	}
	return out
}

// Evaluator applies the criterion detectors. It is stateless and safe for
// concurrent use.
type Evaluator struct {
	naturalnessThreshold float64
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithNaturalnessThreshold overrides the conversation_natural threshold.
func WithNaturalnessThreshold(threshold float64) Option {
	return func(e *Evaluator) {
		e.naturalnessThreshold = threshold
	}
}

// New creates an Evaluator.
func New(opt ...Option) *Evaluator {
	e := &Evaluator{naturalnessThreshold: DefaultNaturalnessThreshold}
	for _, o := range opt {
		o(e)
	}
	return e
}

// Evaluate checks every mandatory criterion of the scenario against the run's
// transcript, tool-usage report and conversation scores. Identical inputs
// always yield identical results.
func (e *Evaluator) Evaluate(sc *scenario.Scenario, tr transcript.Transcript,
	tools *toolusage.Report, conv conversation.Scores) *Report {
	report := &Report{Passed: true}
	content := tr.JoinedContent()
	for _, criterion := range sc.Criteria.Mandatory() {
		result := e.check(criterion, sc, tr, tools, conv, content)
		report.Results = append(report.Results, result)
		if !result.Met && !result.Skipped {
			report.Passed = false
		}
	}
	return report
}

func (e *Evaluator) check(criterion scenario.Criterion, sc *scenario.Scenario,
	tr transcript.Transcript, tools *toolusage.Report, conv conversation.Scores,
	content string) CriterionResult {
	switch criterion {
	case scenario.CriterionAppointmentBooked:
		return checkBooked(content, tools)
	case scenario.CriterionSpecialtyIdentified:
		return checkSpecialty(sc, tr, content)
	case scenario.CriterionInsuranceVerified:
		return checkInsurance(sc, content, tools)
	case scenario.CriterionReferralChecked:
		return checkReferral(sc, content, tools)
	case scenario.CriterionProviderMatched:
		return checkProvider(sc, content, tools)
	case scenario.CriterionUrgencyHandled:
		return checkUrgency(content, tools)
	case scenario.CriterionToolsUsed:
		return checkToolCoverage(tools)
	case scenario.CriterionNaturalConversation:
		return e.checkNatural(conv)
	default:
		return CriterionResult{Criterion: criterion, Met: false, Reason: "unknown criterion"}
	}
}

// checkBooked requires a booking-tool call plus a confirmation in content.
func checkBooked(content string, tools *toolusage.Report) CriterionResult {
	result := CriterionResult{Criterion: scenario.CriterionAppointmentBooked}
	called := false
	for _, name := range bookingTools {
		if tools.Frequency[name] > 0 {
			called = true
			break
		}
	}
	if !called {
		result.Reason = "no booking tool call issued"
		return result
	}
	if !textutil.ContainsAny(content, bookingIndicators) {
		result.Reason = "booking tool called but no confirmation in conversation"
		return result
	}
	result.Met = true
	return result
}

// checkSpecialty requires the routed agent name to match the expected
// specialty, falling back to the specialty being named in conversation.
func checkSpecialty(sc *scenario.Scenario, tr transcript.Transcript, content string) CriterionResult {
	result := CriterionResult{Criterion: scenario.CriterionSpecialtyIdentified}
	if sc.ExpectedSpecialty == "" {
		result.Met = true
		result.Reason = "no expected specialty declared"
		return result
	}
	expected := strings.ToLower(sc.ExpectedSpecialty)
	for _, name := range tr.AgentNames() {
		if specialtyMatches(name, expected) {
			result.Met = true
			result.Reason = "routed to " + name
			return result
		}
	}
	// The specialty being discussed by name is weaker evidence of routing but
	// still counts, mirroring keyword-only detection.
	if token := firstWord(expected); token != "" && strings.Contains(content, token) {
		result.Met = true
		result.Reason = "specialty referenced in conversation"
		return result
	}
	result.Reason = "expected specialty " + sc.ExpectedSpecialty + " never identified"
	return result
}

func specialtyMatches(agentName, expectedLower string) bool {
	for _, token := range strings.Fields(strings.ToLower(agentName)) {
		if token == "agent" || len(token) < 4 {
			continue
		}
		if strings.Contains(expectedLower, token) {
			return true
		}
	}
	return false
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// checkInsurance is skipped entirely for follow-up visits.
func checkInsurance(sc *scenario.Scenario, content string, tools *toolusage.Report) CriterionResult {
	result := CriterionResult{Criterion: scenario.CriterionInsuranceVerified}
	if sc.IsFollowUp() {
		result.Met = true
		result.Skipped = true
		result.Reason = "exempt: follow-up visit"
		return result
	}
	if tools.Frequency["verify_insurance"] > 0 || strings.Contains(content, "insurance") {
		result.Met = true
		return result
	}
	result.Reason = "insurance never verified"
	return result
}

// checkReferral is skipped entirely for follow-up visits, which are exempt
// from new-referral logic.
func checkReferral(sc *scenario.Scenario, content string, tools *toolusage.Report) CriterionResult {
	result := CriterionResult{Criterion: scenario.CriterionReferralChecked}
	if sc.IsFollowUp() {
		result.Met = true
		result.Skipped = true
		result.Reason = "exempt: follow-up visit"
		return result
	}
	for name := range tools.Frequency {
		if strings.HasPrefix(name, "check_referral") {
			result.Met = true
			return result
		}
	}
	if strings.Contains(content, "referral") {
		result.Met = true
		return result
	}
	result.Reason = "referral never checked"
	return result
}

// checkProvider requires the declared preferred provider to be referenced.
func checkProvider(sc *scenario.Scenario, content string, tools *toolusage.Report) CriterionResult {
	result := CriterionResult{Criterion: scenario.CriterionProviderMatched}
	if sc.PreferredProvider != "" {
		if strings.Contains(content, strings.ToLower(sc.PreferredProvider)) {
			result.Met = true
			return result
		}
		result.Reason = "preferred provider " + sc.PreferredProvider + " never referenced"
		return result
	}
	// Without a declared preference, any provider discussion backed by an
	// availability check satisfies the criterion.
	if textutil.ContainsAny(content, []string{"dr.", "doctor", "provider"}) &&
		tools.Frequency["check_provider_availability"] > 0 {
		result.Met = true
		return result
	}
	result.Reason = "no provider preference handling observed"
	return result
}

// checkUrgency looks for an urgency-appropriate action in content or tools.
func checkUrgency(content string, tools *toolusage.Report) CriterionResult {
	result := CriterionResult{Criterion: scenario.CriterionUrgencyHandled}
	if textutil.ContainsAny(content, urgencyIndicators) {
		result.Met = true
		return result
	}
	for name := range tools.Frequency {
		if strings.Contains(name, "urgent") || strings.Contains(name, "priority") {
			result.Met = true
			return result
		}
	}
	result.Reason = "no urgency-appropriate action observed"
	return result
}

// checkToolCoverage requires the coverage diff to show no missing tools.
func checkToolCoverage(tools *toolusage.Report) CriterionResult {
	result := CriterionResult{Criterion: scenario.CriterionToolsUsed}
	if len(tools.MissingTools) == 0 && tools.TotalCalls > 0 {
		result.Met = true
		return result
	}
	if tools.TotalCalls == 0 {
		result.Reason = "no tools called"
		return result
	}
	result.Reason = "missing expected tools: " + strings.Join(tools.MissingTools, ", ")
	return result
}

func (e *Evaluator) checkNatural(conv conversation.Scores) CriterionResult {
	result := CriterionResult{Criterion: scenario.CriterionNaturalConversation}
	if conv.Naturalness > e.naturalnessThreshold {
		result.Met = true
		return result
	}
	result.Reason = "naturalness below threshold"
	return result
}
