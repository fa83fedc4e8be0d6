// Package harness runs scoring scenarios end to end and verifies them
// against expectations and golden trace files.
//
// A scenario run is: validate the input (file-loaded scenarios arrive
// pre-validated), score it, then check any expectations declared in the
// scenario. Golden comparison serializes a deterministic snapshot of the
// result through sim.MarshalCanonical and diffs it byte for byte against
// testdata/golden/{name}.golden via goldie.
//
// To regenerate golden files:
//
//	go test ./internal/harness -update
package harness
