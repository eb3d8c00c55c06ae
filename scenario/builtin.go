//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package scenario

// Default returns the built-in catalog of scheduling scenarios.
// Adding a scenario means declaring a new immutable record here (or building a
// custom catalog); the engine never branches on individual scenarios.
func Default() *Catalog {
	c, err := NewCatalog(builtinScenarios()...)
	if err != nil {
		// The built-in definitions are validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return c
}

func builtinScenarios() []*Scenario {
	return []*Scenario{
		{
			ID:                "SC001",
			Name:              "Orthopedic Post-Op Follow-up",
			Description:       "Patient Sarah Martinez needs 2-week post-op knee replacement follow-up",
			PatientID:         "PT001",
			InitialMessage:    "Hi, I had knee replacement surgery two weeks ago and need to schedule my follow-up appointment with Dr. Martinez.",
			ExpectedSpecialty: "Orthopedic Surgery",
			PreferredProvider: "Dr. Martinez",
			ExpectedTools: []string{
				"check_provider_availability",
				"search_appointment_slots",
				"verify_insurance",
				"book_appointment",
			},
			Criteria: SuccessCriteria{
				AppointmentBooked:   true,
				SpecialtyIdentified: true,
				InsuranceVerified:   true,
				ProviderMatched:     true,
				UrgencyHandled:      true,
				ToolsUsed:           true,
				NaturalConversation: true,
			},
			Difficulty:     DifficultyMedium,
			EstimatedTurns: 6,
			Tags:           []string{"orthopedic", "post-op", "follow-up", "clinical-protocol", "provider-matching"},
			FollowUps: []string{
				"Great, I'm flexible on times. The earliest slot with Dr. Martinez works for me, please book it.",
				"Yes, that time is confirmed on my end. Thank you!",
			},
		},
		{
			ID:                "SC002",
			Name:              "Cardiology New Patient with Urgent Symptoms",
			Description:       "Patient James Wilson has chest pain, needs cardiologist, Medicare insurance with referral requirements",
			PatientID:         "PT002",
			InitialMessage:    "Hello, I've been having some chest pain and my doctor referred me to see a cardiologist. I'm on Medicare. Can you help me schedule an appointment?",
			ExpectedSpecialty: "Cardiology",
			ExpectedTools: []string{
				"check_referral_status",
				"verify_insurance",
				"check_provider_availability",
				"search_appointment_slots",
				"book_appointment",
			},
			Criteria: SuccessCriteria{
				AppointmentBooked:   true,
				SpecialtyIdentified: true,
				InsuranceVerified:   true,
				ReferralChecked:     true,
				UrgencyHandled:      true,
				ToolsUsed:           true,
				NaturalConversation: true,
			},
			Difficulty:     DifficultyComplex,
			EstimatedTurns: 8,
			Tags:           []string{"cardiology", "new-patient", "urgent", "medicare", "referral", "chest-pain"},
			FollowUps: []string{
				"Yes, the sooner the better given the chest pain. Please book the earliest available slot.",
				"Tomorrow works. Please confirm the booking.",
				"Understood, thank you for getting me in so quickly.",
			},
		},
		{
			ID:                "SC003",
			Name:              "Complex Rescheduling with Provider Preference",
			Description:       "Patient Lisa Chen has appointment conflict and needs to reschedule with specific provider preference",
			PatientID:         "PT003",
			InitialMessage:    "I have an appointment scheduled for next Tuesday but I have a work conflict. Can I reschedule to a different day? I'd prefer to stay with Dr. Nguyen if possible.",
			ExpectedSpecialty: "Primary Care",
			PreferredProvider: "Dr. Nguyen",
			ExpectedTools: []string{
				"check_provider_availability",
				"search_appointment_slots",
				"book_appointment",
			},
			Criteria: SuccessCriteria{
				AppointmentBooked:   true,
				SpecialtyIdentified: true,
				ProviderMatched:     true,
				ToolsUsed:           true,
				NaturalConversation: true,
			},
			Difficulty:     DifficultyMedium,
			EstimatedTurns: 5,
			Tags:           []string{"primary-care", "rescheduling", "provider-preference", "constraint-satisfaction"},
			FollowUps: []string{
				"Wednesday afternoon with Dr. Nguyen would be perfect, please book it.",
				"Confirmed, thanks for the help!",
			},
		},
		{
			ID:                "SC004",
			Name:              "Primary Care Annual Physical",
			Description:       "Patient Michael Thompson wants to schedule annual wellness exam with insurance coverage verification",
			PatientID:         "PT004",
			InitialMessage:    "I'd like to schedule my annual physical. I have United Healthcare insurance. What times are available?",
			ExpectedSpecialty: "Primary Care",
			PreferredProvider: "Dr. White",
			ExpectedTools: []string{
				"check_provider_availability",
				"verify_insurance",
				"search_appointment_slots",
				"book_appointment",
			},
			Criteria: SuccessCriteria{
				AppointmentBooked:   true,
				SpecialtyIdentified: true,
				InsuranceVerified:   true,
				ProviderMatched:     true,
				ToolsUsed:           true,
				NaturalConversation: true,
			},
			Difficulty:     DifficultySimple,
			EstimatedTurns: 4,
			Tags:           []string{"primary-care", "preventive", "wellness", "insurance-verification", "routine"},
			FollowUps: []string{
				"Monday morning works great, please book it with Dr. White.",
			},
		},
	}
}
