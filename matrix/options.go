// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Table construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Tables always reject NaN/Inf. The missing-value sentinel (MissingValue)
//     is finite, so sources that encode unknowns as NaN must translate them
//     to MissingValue at ingestion.
package matrix

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRelation is the table name used when the source declares none.
	DefaultRelation = "untitled"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRelationInvalid = "matrix: WithRelation: name must not be blank"
	panicColumnsInvalid  = "matrix: WithColumns: column name must not be blank"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	relation string   // DefaultRelation
	columns  []Column // nil ⇒ anonymous continuous columns
}

// ---------- Constructors (WithX) ----------

// WithRelation names the table (ARFF "@relation").
// Panics when name is blank.
func WithRelation(name string) Option {
	if strings.TrimSpace(name) == "" {
		panic(panicRelationInvalid)
	}

	return func(o *Options) { o.relation = name }
}

// WithColumns attaches column metadata. The slice is deep-copied, so the
// caller may reuse it. Panics when any column name is blank.
func WithColumns(cols ...Column) Option {
	cp := make([]Column, len(cols))
	for i, c := range cols {
		if strings.TrimSpace(c.Name) == "" {
			panic(panicColumnsInvalid)
		}
		cp[i] = c.clone()
	}

	return func(o *Options) { o.columns = cp }
}

// gatherOptions applies user setters over the documented defaults.
// Implementation:
//   - Stage 1: fill fields from Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k) for k options, Space O(1) (+ column copy).
func gatherOptions(user ...Option) Options {
	o := Options{
		relation: DefaultRelation,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
