// SPDX-License-Identifier: MIT
// Package: lvlcentrality/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Assemble(bopts, cons...) resolves cfg and runs cons
//     in order against a fresh Blueprint; BuildGraph freezes the result.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edge lists.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlcentrality/core"
)

// Blueprint is the mutable edge list a constructor writes into before it is
// frozen by core.NewGraph.
type Blueprint struct {
	// N is the number of nodes; constructors only ever grow it.
	N int
	// Edges in emission order.
	Edges []core.Edge
	// Labels[i] is the label of node i, filled by Assemble from the IDFn.
	Labels []string
}

// grow ensures the blueprint spans at least n nodes.
func (b *Blueprint) grow(n int) {
	if n > b.N {
		b.N = n
	}
}

// edge appends u→v with the next configured weight.
func (b *Blueprint) edge(cfg builderConfig, u, v int) {
	b.Edges = append(b.Edges, core.Edge{From: u, To: v, Weight: cfg.weight()})
}

// Constructor applies a deterministic topology to a Blueprint using the
// resolved builderConfig. Constructors validate parameters first and leave
// the blueprint untouched on error.
type Constructor func(b *Blueprint, cfg builderConfig) error

// Assemble resolves bopts and applies all constructors in order to an empty
// Blueprint. Any constructor error is wrapped with "Assemble: %w" and
// returned immediately.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func Assemble(bopts []BuilderOption, cons ...Constructor) (*Blueprint, error) {
	cfg := newBuilderConfig(bopts...)
	b := &Blueprint{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Assemble: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("Assemble: %w", err)
		}
	}

	b.Labels = make([]string, b.N)
	for i := range b.Labels {
		b.Labels[i] = cfg.idFn(i)
	}

	return b, nil
}

// BuildGraph assembles the constructors and freezes the blueprint into a
// core.Graph with graph options gopts (e.g. core.WithSymmetric()).
//
// Errors:
//   - Constructor sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - ErrConstructFailed wrapping the core error when the blueprint is
//     rejected (e.g. no constructors, so no nodes).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b, err := Assemble(bopts, cons...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	g, err := core.NewGraph(b.N, b.Edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}
