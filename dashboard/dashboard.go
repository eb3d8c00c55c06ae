//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package dashboard folds a collection of scenario results into a single
// cross-run report suitable for external consumption. Aggregation is a pure
// fold over its input: aggregating the same collection twice yields identical
// output, byte for byte once serialized.
package dashboard

import (
	"slices"
	"sort"
	"time"

	"github.com/caresched/agenteval/internal/stats"
	"github.com/caresched/agenteval/result"
)

// Summary holds the run-count overview of an aggregation.
type Summary struct {
	TotalScenarios int     `json:"total_scenarios"`
	Passed         int     `json:"passed"`
	Failed         int     `json:"failed"`
	SuccessRate    float64 `json:"success_rate"`
	// GeneratedAt derives from the latest result end time rather than the
	// wall clock, so repeated aggregation of the same results is stable.
	GeneratedAt string `json:"generated_at"`
}

// ConversationSummary aggregates conversation quality across runs.
type ConversationSummary struct {
	AverageScore      float64   `json:"average_score"`
	MinScore          float64   `json:"min_score"`
	MaxScore          float64   `json:"max_score"`
	MedianScore       float64   `json:"median_score"`
	P90Score          float64   `json:"p90_score"`
	AvgRelevance      float64   `json:"avg_relevance"`
	AvgHelpfulness    float64   `json:"avg_helpfulness"`
	AvgAccuracy       float64   `json:"avg_accuracy"`
	AvgNaturalness    float64   `json:"avg_naturalness"`
	ScoreDistribution []float64 `json:"score_distribution"`
}

// ToolSummary is the combined tool-frequency table across all runs.
type ToolSummary struct {
	TotalCalls     int            `json:"total_calls"`
	UniqueTools    int            `json:"unique_tools"`
	Frequency      map[string]int `json:"tool_frequency"`
	MostUsed       string         `json:"most_used_tool"`
	RedundantCalls int            `json:"redundant_calls"`
}

// LatencySummary aggregates run durations and response times.
type LatencySummary struct {
	TotalDuration   float64 `json:"total_duration"`
	AvgDuration     float64 `json:"avg_duration"`
	MinDuration     float64 `json:"min_duration"`
	MaxDuration     float64 `json:"max_duration"`
	MedianDuration  float64 `json:"median_duration"`
	AvgResponseTime float64 `json:"avg_response_time"`
	P95ResponseTime float64 `json:"p95_response_time"`
}

// TokenSummary aggregates token economics across runs.
type TokenSummary struct {
	TotalTokens      int     `json:"total_tokens"`
	AvgPerScenario   float64 `json:"avg_tokens_per_scenario"`
	EstimatedCost    float64 `json:"estimated_cost"`
	AvgTokensPerTurn float64 `json:"avg_tokens_per_turn"`
}

// AgentReport is the per-agent-name breakdown, grouped by the agent names
// recorded in the transcripts.
type AgentReport struct {
	AgentName            string         `json:"agent_name"`
	TotalInvocations     int            `json:"total_invocations"`
	SuccessRate          float64        `json:"success_rate"`
	AvgConversationScore float64        `json:"avg_conversation_score"`
	AvgResponseTime      float64        `json:"avg_response_time"`
	TotalTokensUsed      int            `json:"total_tokens_used"`
	ToolsCalled          map[string]int `json:"tools_called"`
	CommonErrors         []string       `json:"common_errors"`
}

// SuccessSummary counts how often each criterion was met across runs.
type SuccessSummary struct {
	CriteriaMetCounts    map[string]int     `json:"criteria_met_counts"`
	CriteriaSuccessRates map[string]float64 `json:"criteria_success_rates"`
}

// Report is the cross-run aggregate. Its field names and nesting form the
// compatibility surface consumed by external tooling and must stay stable.
type Report struct {
	Summary      Summary                 `json:"summary"`
	Conversation ConversationSummary     `json:"conversation_metrics"`
	Tools        ToolSummary             `json:"tool_metrics"`
	Latency      LatencySummary          `json:"latency_metrics"`
	Tokens       TokenSummary            `json:"token_metrics"`
	PerAgent     map[string]*AgentReport `json:"per_agent"`
	Success      SuccessSummary          `json:"success_metrics"`
}

// Aggregator folds scenario results into a Report. It holds no state between
// calls; every aggregation recomputes the report from scratch.
type Aggregator struct{}

// New creates an Aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Aggregate builds a Report over the given results. An empty or nil
// collection yields a zero report with empty tables, not an error.
func (a *Aggregator) Aggregate(results []*result.Result) *Report {
	rpt := emptyReport()
	if len(results) == 0 {
		return rpt
	}

	total := len(results)
	passed := 0
	var latest time.Time
	for _, res := range results {
		if res.SuccessAchieved {
			passed++
		}
		if res.EndTime.After(latest) {
			latest = res.EndTime
		}
	}
	rpt.Summary = Summary{
		TotalScenarios: total,
		Passed:         passed,
		Failed:         total - passed,
		SuccessRate:    stats.Round(float64(passed)/float64(total), 3),
		GeneratedAt:    latest.UTC().Format(time.RFC3339),
	}

	rpt.Conversation = aggregateConversation(results)
	rpt.Tools = aggregateTools(results)
	rpt.Latency = aggregateLatency(results)
	rpt.Tokens = aggregateTokens(results)
	rpt.PerAgent = aggregateAgents(results)
	rpt.Success = aggregateSuccess(results, total)
	return rpt
}

func emptyReport() *Report {
	return &Report{
		Conversation: ConversationSummary{ScoreDistribution: []float64{}},
		Tools:        ToolSummary{Frequency: map[string]int{}},
		PerAgent:     map[string]*AgentReport{},
		Success: SuccessSummary{
			CriteriaMetCounts:    map[string]int{},
			CriteriaSuccessRates: map[string]float64{},
		},
	}
}

func aggregateConversation(results []*result.Result) ConversationSummary {
	overall := make([]float64, 0, len(results))
	var relevance, helpfulness, accuracy, naturalness []float64
	for _, res := range results {
		sc := res.Metrics.Conversation
		overall = append(overall, sc.Overall)
		relevance = append(relevance, sc.Relevance)
		helpfulness = append(helpfulness, sc.Helpfulness)
		accuracy = append(accuracy, sc.Accuracy)
		naturalness = append(naturalness, sc.Naturalness)
	}
	distribution := make([]float64, len(overall))
	for i, v := range overall {
		distribution[i] = stats.Round(v, 3)
	}
	return ConversationSummary{
		AverageScore:      stats.Round(stats.Mean(overall), 3),
		MinScore:          stats.Round(stats.Min(overall), 3),
		MaxScore:          stats.Round(stats.Max(overall), 3),
		MedianScore:       stats.Round(stats.Median(overall), 3),
		P90Score:          stats.Round(stats.Percentile(overall, 90), 3),
		AvgRelevance:      stats.Round(stats.Mean(relevance), 3),
		AvgHelpfulness:    stats.Round(stats.Mean(helpfulness), 3),
		AvgAccuracy:       stats.Round(stats.Mean(accuracy), 3),
		AvgNaturalness:    stats.Round(stats.Mean(naturalness), 3),
		ScoreDistribution: distribution,
	}
}

func aggregateTools(results []*result.Result) ToolSummary {
	frequency := map[string]int{}
	totalCalls := 0
	redundant := 0
	for _, res := range results {
		usage := res.Metrics.ToolUsage
		if usage == nil {
			continue
		}
		totalCalls += usage.TotalCalls
		redundant += usage.RedundantCalls
		for name, count := range usage.Frequency {
			frequency[name] += count
		}
	}
	mostUsed := ""
	best := 0
	for name, count := range frequency {
		if count > best || (count == best && (mostUsed == "" || name < mostUsed)) {
			mostUsed = name
			best = count
		}
	}
	return ToolSummary{
		TotalCalls:     totalCalls,
		UniqueTools:    len(frequency),
		Frequency:      frequency,
		MostUsed:       mostUsed,
		RedundantCalls: redundant,
	}
}

func aggregateLatency(results []*result.Result) LatencySummary {
	durations := make([]float64, 0, len(results))
	var responseTimes []float64
	for _, res := range results {
		durations = append(durations, res.DurationSeconds)
		if res.Metrics.Latency != nil {
			responseTimes = append(responseTimes, res.Metrics.Latency.ResponseTimes...)
		}
	}
	total := 0.0
	for _, d := range durations {
		total += d
	}
	return LatencySummary{
		TotalDuration:   stats.Round(total, 2),
		AvgDuration:     stats.Round(stats.Mean(durations), 2),
		MinDuration:     stats.Round(stats.Min(durations), 2),
		MaxDuration:     stats.Round(stats.Max(durations), 2),
		MedianDuration:  stats.Round(stats.Median(durations), 2),
		AvgResponseTime: stats.Round(stats.Mean(responseTimes), 2),
		P95ResponseTime: stats.Round(stats.Percentile(responseTimes, 95), 2),
	}
}

func aggregateTokens(results []*result.Result) TokenSummary {
	totalTokens := 0
	totalCost := 0.0
	var perTurn []float64
	for _, res := range results {
		tokens := res.Metrics.Tokens
		if tokens == nil {
			continue
		}
		totalTokens += tokens.TotalTokens
		totalCost += tokens.EstimatedCost
		perTurn = append(perTurn, tokens.TokensPerTurn)
	}
	return TokenSummary{
		TotalTokens:      totalTokens,
		AvgPerScenario:   stats.Round(float64(totalTokens)/float64(len(results)), 1),
		EstimatedCost:    stats.Round(totalCost, 4),
		AvgTokensPerTurn: stats.Round(stats.Mean(perTurn), 1),
	}
}

func aggregateAgents(results []*result.Result) map[string]*AgentReport {
	reports := map[string]*AgentReport{}
	for _, res := range results {
		for _, name := range res.AgentsUsed {
			if _, ok := reports[name]; !ok {
				reports[name] = &AgentReport{
					AgentName:    name,
					ToolsCalled:  map[string]int{},
					CommonErrors: []string{},
				}
			}
		}
	}
	for name, rpt := range reports {
		var scores, times []float64
		errCounts := map[string]int{}
		passed := 0
		for _, res := range results {
			if !slices.Contains(res.AgentsUsed, name) {
				continue
			}
			rpt.TotalInvocations++
			if res.SuccessAchieved {
				passed++
			}
			scores = append(scores, res.Metrics.Conversation.Overall)
			if res.Metrics.Latency != nil {
				times = append(times, res.Metrics.Latency.AvgResponseTime)
			}
			if res.Metrics.Tokens != nil {
				rpt.TotalTokensUsed += res.Metrics.Tokens.TotalTokens
			}
			for _, turn := range res.Transcript {
				if turn.AgentName != name {
					continue
				}
				for _, call := range turn.ToolCalls {
					rpt.ToolsCalled[call.Name]++
				}
			}
			for _, msg := range res.Errors {
				errCounts[msg]++
			}
		}
		if rpt.TotalInvocations > 0 {
			rpt.SuccessRate = stats.Round(float64(passed)/float64(rpt.TotalInvocations), 3)
		}
		rpt.AvgConversationScore = stats.Round(stats.Mean(scores), 3)
		rpt.AvgResponseTime = stats.Round(stats.Mean(times), 2)
		rpt.CommonErrors = commonErrors(errCounts)
	}
	return reports
}

// maxCommonErrors bounds the per-agent error list to the most frequent few.
const maxCommonErrors = 5

// commonErrors ranks error strings by frequency, highest first, ties broken
// lexically so aggregation stays deterministic.
func commonErrors(counts map[string]int) []string {
	ranked := make([]string, 0, len(counts))
	for msg := range counts {
		ranked = append(ranked, msg)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > maxCommonErrors {
		ranked = ranked[:maxCommonErrors]
	}
	return ranked
}

func aggregateSuccess(results []*result.Result, total int) SuccessSummary {
	counts := map[string]int{}
	for _, res := range results {
		for criterion, met := range res.CriteriaMet {
			if met {
				counts[criterion]++
			}
		}
	}
	rates := make(map[string]float64, len(counts))
	for criterion, count := range counts {
		rates[criterion] = stats.Round(float64(count)/float64(total), 3)
	}
	return SuccessSummary{
		CriteriaMetCounts:    counts,
		CriteriaSuccessRates: rates,
	}
}
