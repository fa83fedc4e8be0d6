// Package engine implements the Wellness Mirror scenario scorer.
//
// The scorer is a pure function: the same SimulatorInput always produces the
// same SimulationResult. There is no I/O, no clock, no randomness, and no
// state carried between calls, so Score is safe to call concurrently from
// any number of goroutines.
//
// ARCHITECTURE:
//
// Rule-Table Evaluation:
// Scoring is driven by an ordered table of rule records rather than a chain
// of conditionals. Each record carries its predicate, score delta, optional
// risk signal, optional twin-state update, and trace detail. The table order
// NEVER changes at runtime - it is the evaluation order, and the decision
// trace preserves it step for step so replays are diffable.
//
// Banded Families:
// Rules that band the same measurement (symptom severity, symptom duration,
// medication adherence, systolic BP) share a family. Within a family the
// highest band appears first in the table and only the first matching band
// fires.
//
// The scorer is total: it never returns an error and never panics for
// well-formed inputs. Out-of-range values are the loader's problem (see
// internal/scenario) - garbage in, garbage score out.
package engine
