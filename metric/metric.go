//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package metric names the score families computed for one scenario run.
// The families themselves live in the subpackages.
package metric

// Metric family names, matching the keys under "metrics" in an exported
// result.
const (
	Conversation = "conversation"
	ToolUsage    = "tool_usage"
	Latency      = "latency"
	Tokens       = "tokens"
	Success      = "success"
)
