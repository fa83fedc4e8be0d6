// Package scenario loads scoring scenarios from YAML files and validates
// their inputs against an embedded CUE schema.
//
// Validation happens at the load boundary, not in the engine: the scorer
// stays a total function, and anything that came from a file gets range and
// enum checking with positioned errors before it reaches Score. Inputs
// constructed programmatically (demos, tests) may skip validation.
package scenario
