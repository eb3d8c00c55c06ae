//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Command agenteval runs the scenario catalog against a collaborator agent
// and reports per-scenario and aggregate metrics.
package main

func main() {
	Execute()
}
