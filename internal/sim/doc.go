// Package sim defines the value objects exchanged with the Wellness Mirror
// scoring engine.
//
// All types here are plain values: a SimulatorInput has no identity beyond
// its field values and is never mutated in place - every edit produces a new
// snapshot. A SimulationResult is fully determined by the input that produced
// it, which is what makes golden-trace comparison and replay diffing work.
//
// The package also owns canonical JSON serialization (see MarshalCanonical).
// Any byte-level comparison of results - golden files, replay determinism
// checks - MUST go through the canonical marshaler, never encoding/json
// directly, so that key order and string normalization stay stable.
package sim
