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
	"strings"

	"github.com/spf13/cobra"

	"github.com/caresched/agenteval/scenario"
)

var (
	listTag        string
	listDifficulty string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the scenarios in the built-in catalog",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listTag, "tag", "", "only show scenarios carrying this tag")
	listCmd.Flags().StringVar(&listDifficulty, "difficulty", "", "only show scenarios of this difficulty")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	catalog := scenario.Default()
	scenarios := catalog.List()
	if listTag != "" {
		scenarios = catalog.ByTag(listTag)
	}
	if listDifficulty != "" {
		filtered := scenarios[:0:0]
		for _, sc := range scenarios {
			if sc.Difficulty == scenario.Difficulty(listDifficulty) {
				filtered = append(filtered, sc)
			}
		}
		scenarios = filtered
	}
	if len(scenarios) == 0 {
		fmt.Println("No scenarios match.")
		return nil
	}
	for _, sc := range scenarios {
		fmt.Printf("%-6s %-45s %-8s tags=%s tools=%d\n",
			sc.ID, sc.Name, sc.Difficulty, strings.Join(sc.Tags, ","), len(sc.ExpectedTools))
	}
	return nil
}
