//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package agent defines the narrow capability interface to the agent under test.
package agent

import (
	"context"
	"fmt"
)

// Response is the observable output of one collaborator invocation.
type Response struct {
	// Message is the assistant's reply text.
	Message string `json:"message"`
	// AgentName names the agent that produced the reply.
	AgentName string `json:"agent_name"`
	// ToolsUsed lists the tool names issued while producing the reply, in order.
	ToolsUsed []string `json:"tools_used"`
	// Success signals that the agent considers the task complete.
	Success bool `json:"success"`
}

// Collaborator is the capability interface to the conversational agent under
// test. The engine never inspects agent internals; any richer behavior
// (multi-turn state, memory) stays on the collaborator's side of this boundary.
type Collaborator interface {
	// Invoke sends one patient message and returns the agent's response.
	Invoke(ctx context.Context, patientID, message string) (*Response, error)
}

// Func adapts a plain function to the Collaborator interface.
type Func func(ctx context.Context, patientID, message string) (*Response, error)

// Invoke implements Collaborator.
func (f Func) Invoke(ctx context.Context, patientID, message string) (*Response, error) {
	return f(ctx, patientID, message)
}

// InvocationError reports that the collaborator raised or timed out.
// Runs recording an InvocationError fail individually; a batch continues.
type InvocationError struct {
	// PatientID is the subject of the failed invocation.
	PatientID string
	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *InvocationError) Error() string {
	return fmt.Sprintf("agent invocation for patient %s failed: %v", e.PatientID, e.Err)
}

// Unwrap returns the underlying error.
func (e *InvocationError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a collaborator response missing a required
// field. It is recorded as a warning; the run continues with defaults.
type MalformedResponseError struct {
	// Field is the missing or empty response field.
	Field string
	// Default describes the substituted value, if any.
	Default string
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	if e.Default == "" {
		return fmt.Sprintf("malformed response: %s is empty", e.Field)
	}
	return fmt.Sprintf("malformed response: %s missing, defaulted to %s", e.Field, e.Default)
}

// Sanitize fills defaults for missing response fields and returns a warning
// for each substitution. A nil response is not sanitizable and yields nil.
// Per the collaborator contract, missing fields are defaulted with a recorded
// warning rather than failing the run.
func Sanitize(resp *Response) (*Response, []string) {
	if resp == nil {
		return nil, []string{"malformed response: response is nil"}
	}
	out := &Response{
		Message:   resp.Message,
		AgentName: resp.AgentName,
		ToolsUsed: append([]string(nil), resp.ToolsUsed...),
		Success:   resp.Success,
	}
	var warnings []string
	if out.Message == "" {
		warnings = append(warnings, (&MalformedResponseError{Field: "message"}).Error())
	}
	if out.AgentName == "" {
		out.AgentName = "unknown"
		warnings = append(warnings, (&MalformedResponseError{Field: "agent_name", Default: "unknown"}).Error())
	}
	if out.ToolsUsed == nil {
		out.ToolsUsed = []string{}
		warnings = append(warnings, (&MalformedResponseError{Field: "tools_used", Default: "empty list"}).Error())
	}
	return out, warnings
}
