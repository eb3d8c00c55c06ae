//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.5))
	assert.Equal(t, 1.0, Clamp01(1.5))
	assert.Equal(t, 0.42, Clamp01(0.42))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.667, Round(2.0/3.0, 3))
	assert.Equal(t, 1.23, Round(1.2345, 2))
	assert.Equal(t, 0.0, Round(0.0001, 3))
}

func TestMeanMedian(t *testing.T) {
	values := []float64{1.0, 2.0, 3.0}
	assert.Equal(t, 2.0, Mean(values))
	assert.Equal(t, 2.0, Median(values))
	assert.Equal(t, 1.0, Min(values))
	assert.Equal(t, 3.0, Max(values))

	// Even length yields the mean of the two middle values.
	assert.Equal(t, 2.5, Median([]float64{1.0, 2.0, 3.0, 4.0}))
}

func TestEmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 0.0, Min(nil))
	assert.Equal(t, 0.0, Max(nil))
	assert.Equal(t, 0.0, Percentile(nil, 50))
	assert.Equal(t, 0.0, StdDev(nil))
}

func TestPercentile(t *testing.T) {
	values := []float64{1.0, 2.0, 3.0, 4.0, 5.0}
	assert.Equal(t, 3.0, Percentile(values, 50))
	assert.Equal(t, 1.0, Percentile(values, 0))
	assert.Equal(t, 5.0, Percentile(values, 100))
	assert.InDelta(t, 4.6, Percentile(values, 90), 1e-9)
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{3.0, 1.0, 2.0}
	Median(values)
	assert.Equal(t, []float64{3.0, 1.0, 2.0}, values)
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, StdDev([]float64{5.0}))
	assert.InDelta(t, 2.0, StdDev([]float64{2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0}), 1e-9)
}
