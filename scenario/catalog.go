//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package scenario

import (
	"errors"
	"fmt"
)

// NotFoundError reports a lookup for a scenario id the catalog does not hold.
type NotFoundError struct {
	// ID is the scenario id that was requested.
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("scenario %s not found", e.ID)
}

// IsNotFound reports whether err is a scenario NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Catalog is an immutable, ordered registry of scenarios. It has no lifecycle
// beyond construction and is safe to share across concurrent runs.
type Catalog struct {
	scenarios []*Scenario
	byID      map[string]*Scenario
}

// NewCatalog builds a catalog from the given scenarios.
// Scenario ids must be unique and non-empty.
func NewCatalog(scenarios ...*Scenario) (*Catalog, error) {
	c := &Catalog{
		scenarios: make([]*Scenario, 0, len(scenarios)),
		byID:      make(map[string]*Scenario, len(scenarios)),
	}
	for _, s := range scenarios {
		if s == nil {
			return nil, errors.New("scenario is nil")
		}
		if s.ID == "" {
			return nil, errors.New("scenario id is empty")
		}
		if _, ok := c.byID[s.ID]; ok {
			return nil, fmt.Errorf("duplicate scenario id %s", s.ID)
		}
		c.byID[s.ID] = s
		c.scenarios = append(c.scenarios, s)
	}
	return c, nil
}

// Get returns the scenario with the given id.
// Returns a NotFoundError when the id is unknown.
func (c *Catalog) Get(id string) (*Scenario, error) {
	if s, ok := c.byID[id]; ok {
		return s, nil
	}
	return nil, &NotFoundError{ID: id}
}

// Len returns the number of scenarios in the catalog.
func (c *Catalog) Len() int {
	return len(c.scenarios)
}

// List returns the scenarios in registration order. The returned slice is a
// copy; the catalog itself is never mutated.
func (c *Catalog) List() []*Scenario {
	return append([]*Scenario(nil), c.scenarios...)
}

// ByTag returns the scenarios carrying the given tag, in registration order.
func (c *Catalog) ByTag(tag string) []*Scenario {
	var out []*Scenario
	for _, s := range c.scenarios {
		if s.HasTag(tag) {
			out = append(out, s)
		}
	}
	return out
}

// ByDifficulty returns the scenarios of the given difficulty, in registration
// order.
func (c *Catalog) ByDifficulty(d Difficulty) []*Scenario {
	var out []*Scenario
	for _, s := range c.scenarios {
		if s.Difficulty == d {
			out = append(out, s)
		}
	}
	return out
}
