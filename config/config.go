//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package config holds the tunable evaluation settings. The scoring weights
// and estimation constants are documented heuristics, not ground truth, so
// they are surfaced here as configuration rather than hardwired.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/caresched/agenteval/metric/conversation"
	"github.com/caresched/agenteval/metric/success"
	"github.com/caresched/agenteval/metric/token"
)

// Config collects the tunable knobs of the evaluation engine.
type Config struct {
	// Weights blend the four conversation sub-scores into the overall score.
	Weights conversation.Weights `yaml:"weights"`
	// TokensPerWord is the words-to-tokens estimation factor.
	TokensPerWord float64 `yaml:"tokens_per_word"`
	// Pricing is the per-model price table used for cost estimation.
	Pricing token.Pricing `yaml:"pricing"`
	// NaturalnessThreshold is the minimum naturalness sub-score for the
	// conversation-natural criterion to pass.
	NaturalnessThreshold float64 `yaml:"naturalness_threshold"`
	// TimeoutSeconds bounds each collaborator invocation.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// Parallelism bounds concurrent scenario runs in a batch. 1 means
	// sequential execution.
	Parallelism int `yaml:"parallelism"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Weights:              conversation.DefaultWeights(),
		TokensPerWord:        token.DefaultTokensPerWord,
		Pricing:              token.DefaultPricing(),
		NaturalnessThreshold: success.DefaultNaturalnessThreshold,
		TimeoutSeconds:       30,
		Parallelism:          1,
	}
}

// Load reads a YAML config file and overlays it on the defaults, so a file
// only needs to mention the settings it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs *multierror.Error
	if err := c.Weights.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c.TokensPerWord <= 0 {
		errs = multierror.Append(errs, errors.New("tokens_per_word must be positive"))
	}
	if c.Pricing.InputPerMTok < 0 || c.Pricing.OutputPerMTok < 0 {
		errs = multierror.Append(errs, errors.New("pricing rates must be non-negative"))
	}
	if c.NaturalnessThreshold < 0 || c.NaturalnessThreshold > 1 {
		errs = multierror.Append(errs, errors.New("naturalness_threshold must be in [0,1]"))
	}
	if c.TimeoutSeconds <= 0 {
		errs = multierror.Append(errs, errors.New("timeout_seconds must be positive"))
	}
	if c.Parallelism <= 0 {
		errs = multierror.Append(errs, errors.New("parallelism must be positive"))
	}
	return errs.ErrorOrNil()
}

// Timeout returns the invocation timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
