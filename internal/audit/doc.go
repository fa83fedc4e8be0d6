// Package audit derives privacy-redacted summary records from scoring runs
// and hands them to a persistence sink.
//
// REDACTION INVARIANT: no free-text field of the input (symptom description,
// lifestyle event text) ever appears in a Record, verbatim or as a
// substring. Only categorical, numeric, and boolean summaries plus counts
// are copied. Tests fuzz this with marker strings.
//
// Persistence is best-effort and fire-and-forget: a Sink failure is logged
// and discarded, never surfaced to the scoring caller. The bounded
// newest-first retention (25 records) is owned by the sink implementations,
// not by ambient global state.
package audit
