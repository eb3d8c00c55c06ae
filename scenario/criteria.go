//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package scenario

// Criterion names one independently-checkable pass/fail condition.
type Criterion string

// The fixed set of success criteria a scenario may mandate.
const (
	CriterionAppointmentBooked   Criterion = "appointment_booked"
	CriterionSpecialtyIdentified Criterion = "correct_specialty_identified"
	CriterionInsuranceVerified   Criterion = "insurance_verified"
	CriterionReferralChecked     Criterion = "referral_checked"
	CriterionProviderMatched     Criterion = "provider_matched_preferences"
	CriterionUrgencyHandled      Criterion = "appropriate_urgency"
	CriterionToolsUsed           Criterion = "tools_used_correctly"
	CriterionNaturalConversation Criterion = "conversation_natural"
)

// AllCriteria lists every criterion in canonical order.
var AllCriteria = []Criterion{
	CriterionAppointmentBooked,
	CriterionSpecialtyIdentified,
	CriterionInsuranceVerified,
	CriterionReferralChecked,
	CriterionProviderMatched,
	CriterionUrgencyHandled,
	CriterionToolsUsed,
	CriterionNaturalConversation,
}

// SuccessCriteria declares which criteria are mandatory for a scenario.
// Each field set to true makes the corresponding criterion block overall
// success; criteria left false never block success for that scenario.
type SuccessCriteria struct {
	AppointmentBooked   bool `json:"appointment_booked"`
	SpecialtyIdentified bool `json:"correct_specialty_identified"`
	InsuranceVerified   bool `json:"insurance_verified"`
	ReferralChecked     bool `json:"referral_checked"`
	ProviderMatched     bool `json:"provider_matched_preferences"`
	UrgencyHandled      bool `json:"appropriate_urgency"`
	ToolsUsed           bool `json:"tools_used_correctly"`
	NaturalConversation bool `json:"conversation_natural"`
}

// Mandatory returns the mandatory criteria in canonical order.
func (c SuccessCriteria) Mandatory() []Criterion {
	var out []Criterion
	for _, criterion := range AllCriteria {
		if c.Requires(criterion) {
			out = append(out, criterion)
		}
	}
	return out
}

// Requires reports whether the given criterion is mandatory.
func (c SuccessCriteria) Requires(criterion Criterion) bool {
	switch criterion {
	case CriterionAppointmentBooked:
		return c.AppointmentBooked
	case CriterionSpecialtyIdentified:
		return c.SpecialtyIdentified
	case CriterionInsuranceVerified:
		return c.InsuranceVerified
	case CriterionReferralChecked:
		return c.ReferralChecked
	case CriterionProviderMatched:
		return c.ProviderMatched
	case CriterionUrgencyHandled:
		return c.UrgencyHandled
	case CriterionToolsUsed:
		return c.ToolsUsed
	case CriterionNaturalConversation:
		return c.NaturalConversation
	default:
		return false
	}
}
