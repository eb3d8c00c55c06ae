//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package latency derives response-time statistics from per-turn processing
// spans recorded during a run.
package latency

import (
	"time"

	"github.com/caresched/agenteval/internal/stats"
	"github.com/caresched/agenteval/transcript"
)

// externalShareFactor is the assumed share of wall-clock time spent inside
// the external collaborator call. A documented approximation, not a
// measurement.
const externalShareFactor = 0.8

// Span is one turn's processing interval.
type Span struct {
	// Start is when the collaborator invocation began.
	Start time.Time
	// End is when the collaborator invocation returned.
	End time.Time
}

// Seconds returns the span duration in seconds.
func (s Span) Seconds() float64 {
	return s.End.Sub(s.Start).Seconds()
}

// Report holds response-time statistics for one run. All durations are in
// seconds. A run with zero timed turns yields the zero report, not an error.
type Report struct {
	// TotalDuration is the sum of all response times.
	TotalDuration float64 `json:"total_duration"`
	// AvgResponseTime is the mean response time per timed turn.
	AvgResponseTime float64 `json:"avg_response_time"`
	// MinResponseTime is the fastest response.
	MinResponseTime float64 `json:"min_response_time"`
	// MaxResponseTime is the slowest response.
	MaxResponseTime float64 `json:"max_response_time"`
	// MedianResponseTime is the median response time.
	MedianResponseTime float64 `json:"median_response_time"`
	// ResponseTimes lists the per-turn response times in order.
	ResponseTimes []float64 `json:"response_times"`
	// APICallCount estimates the number of external collaborator calls.
	APICallCount int `json:"api_call_count"`
	// EstimatedAPILatency estimates time spent inside the external calls.
	EstimatedAPILatency float64 `json:"estimated_api_latency"`
}

// Track computes response-time statistics from ordered per-turn spans.
func Track(spans []Span) *Report {
	report := &Report{ResponseTimes: []float64{}}
	for _, span := range spans {
		if span.Start.IsZero() || span.End.IsZero() || span.End.Before(span.Start) {
			continue
		}
		report.ResponseTimes = append(report.ResponseTimes, span.Seconds())
	}
	if len(report.ResponseTimes) == 0 {
		return report
	}
	var total float64
	for _, t := range report.ResponseTimes {
		total += t
	}
	report.TotalDuration = total
	report.AvgResponseTime = stats.Mean(report.ResponseTimes)
	report.MinResponseTime = stats.Min(report.ResponseTimes)
	report.MaxResponseTime = stats.Max(report.ResponseTimes)
	report.MedianResponseTime = stats.Median(report.ResponseTimes)
	report.APICallCount = len(report.ResponseTimes)
	report.EstimatedAPILatency = total * externalShareFactor
	return report
}

// SpansFromTranscript extracts the processing spans of timed turns, in order.
func SpansFromTranscript(tr transcript.Transcript) []Span {
	var spans []Span
	for _, turn := range tr {
		if !turn.Timed() {
			continue
		}
		spans = append(spans, Span{Start: turn.StartedAt, End: turn.CompletedAt})
	}
	return spans
}
