//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caresched/agenteval/config"
	"github.com/caresched/agenteval/log"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "agenteval",
	Short: "Scenario-based evaluation harness for scheduling agents",
	Long: "agenteval replays scripted patient scenarios against a scheduling agent and " +
		"scores the transcripts for conversation quality, tool usage, latency, token cost " +
		"and success criteria.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", log.LevelInfo, "log level (debug, info, warn, error)")
}

// loadConfig resolves the effective configuration for a command invocation.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
