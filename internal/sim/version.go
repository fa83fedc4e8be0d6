package sim

// Rule-set version tags. Returned verbatim in every SimulationResult so
// downstream consumers can check compatibility when caching or diffing
// results. Bump the matching tag whenever a rule in that family changes.
const (
	// PipelineVersion identifies the overall scoring pipeline.
	PipelineVersion = "wm-pipeline@0.1.0"

	// PolicyVersion covers the symptom/duration/adherence policy rules.
	PolicyVersion = "policy@2026.02"

	// GuardrailVersion covers the lab and lifestyle guardrail rules.
	GuardrailVersion = "guardrails@2026.02"

	// CoverageVersion covers the insurance/coverage rules.
	CoverageVersion = "coverage@2026.02"
)
