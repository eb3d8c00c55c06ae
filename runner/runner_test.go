//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresched/agenteval/agent"
	"github.com/caresched/agenteval/agent/agenttest"
	"github.com/caresched/agenteval/scenario"
)

func TestNewValidatesInputs(t *testing.T) {
	_, err := New(nil, &agenttest.Scripted{})
	require.Error(t, err)

	_, err = New(scenario.Default(), nil)
	require.Error(t, err)
}

func TestRunUnknownScenario(t *testing.T) {
	r, err := New(scenario.Default(), &agenttest.Scripted{})
	require.NoError(t, err)

	_, err = r.Run(context.Background(), "SC999")
	require.Error(t, err)
	assert.True(t, scenario.IsNotFound(err))
}

func TestRunScriptedBookingScenario(t *testing.T) {
	r, err := New(scenario.Default(), &agenttest.Scripted{})
	require.NoError(t, err)

	res, err := r.Run(context.Background(), "SC001")
	require.NoError(t, err)

	assert.True(t, res.SuccessAchieved)
	assert.Greater(t, res.Metrics.Conversation.Overall, 0.6)
	assert.Empty(t, res.Errors)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "PT001", res.PatientID)
	assert.ElementsMatch(t, []string{
		"check_provider_availability",
		"search_appointment_slots",
		"verify_insurance",
		"book_appointment",
	}, res.ToolsCalled)
	assert.Empty(t, res.Metrics.ToolUsage.MissingTools)
	assert.True(t, res.CriteriaMet["appointment_booked"])
	assert.GreaterOrEqual(t, res.DurationSeconds, 0.0)
	assert.Equal(t, len(res.Metrics.Latency.ResponseTimes), res.Metrics.Latency.APICallCount)
}

func TestRunAbsorbsCollaboratorFailure(t *testing.T) {
	failing := agent.Func(func(ctx context.Context, patientID, message string) (*agent.Response, error) {
		return nil, errors.New("upstream unavailable")
	})
	r, err := New(scenario.Default(), failing)
	require.NoError(t, err)

	res, err := r.Run(context.Background(), "SC002")
	require.NoError(t, err)

	assert.False(t, res.SuccessAchieved)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0], "upstream unavailable")
	// Partial metrics are still computed over the user-only transcript.
	assert.NotNil(t, res.Metrics.Tokens)
	assert.Zero(t, res.Metrics.Conversation.Overall)
}

func TestRunRecordsWarningsForMalformedResponse(t *testing.T) {
	partial := agent.Func(func(ctx context.Context, patientID, message string) (*agent.Response, error) {
		return &agent.Response{Message: "All set, your appointment is confirmed.", Success: true}, nil
	})
	r, err := New(scenario.Default(), partial)
	require.NoError(t, err)

	res, err := r.Run(context.Background(), "SC004")
	require.NoError(t, err)

	assert.NotEmpty(t, res.Warnings)
	assert.Equal(t, []string{"unknown"}, res.AgentsUsed)
}

func TestRunAllYieldsOneResultPerScenario(t *testing.T) {
	r, err := New(scenario.Default(), &agenttest.Scripted{})
	require.NoError(t, err)

	results := r.RunAll(context.Background(), nil)
	require.Len(t, results, scenario.Default().Len())
	for i, sc := range scenario.Default().List() {
		assert.Equal(t, sc.ID, results[i].ScenarioID)
	}
}

func TestRunAllContinuesPastFailures(t *testing.T) {
	calls := 0
	flaky := agent.Func(func(ctx context.Context, patientID, message string) (*agent.Response, error) {
		calls++
		if patientID == "PT002" {
			return nil, errors.New("boom")
		}
		return (&agenttest.Scripted{}).Invoke(ctx, patientID, message)
	})
	r, err := New(scenario.Default(), flaky)
	require.NoError(t, err)

	results := r.RunAll(context.Background(), nil)
	require.Len(t, results, 4)
	assert.False(t, results[1].SuccessAchieved)
	assert.NotEmpty(t, results[1].Errors)
	assert.True(t, results[0].SuccessAchieved)
	assert.Greater(t, calls, 4)
}

func TestRunAllParallelPreservesOrder(t *testing.T) {
	r, err := New(scenario.Default(), &agenttest.Scripted{}, WithParallelism(4))
	require.NoError(t, err)

	results := r.RunAll(context.Background(), nil)
	require.Len(t, results, 4)
	for i, sc := range scenario.Default().List() {
		require.NotNil(t, results[i])
		assert.Equal(t, sc.ID, results[i].ScenarioID)
	}
}

func TestRunAllSubset(t *testing.T) {
	r, err := New(scenario.Default(), &agenttest.Scripted{})
	require.NoError(t, err)

	sc, err := scenario.Default().Get("SC003")
	require.NoError(t, err)

	results := r.RunAll(context.Background(), []*scenario.Scenario{sc})
	require.Len(t, results, 1)
	assert.Equal(t, "SC003", results[0].ScenarioID)
}

func TestInvocationBudget(t *testing.T) {
	assert.Equal(t, 1, invocationBudget(&scenario.Scenario{}))
	assert.Equal(t, 2, invocationBudget(&scenario.Scenario{EstimatedTurns: 4}))
	assert.Equal(t, 3, invocationBudget(&scenario.Scenario{EstimatedTurns: 6}))
	assert.Equal(t, 4, invocationBudget(&scenario.Scenario{EstimatedTurns: 8}))
}
