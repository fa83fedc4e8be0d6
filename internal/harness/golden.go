package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/cdgonzal/myveevee/internal/sim"
)

// Snapshot renders a scoring result as canonical JSON for golden
// comparison and replay diffing. The snapshot covers everything
// deterministic about a run: versions, score, level, signals, twin deltas,
// ranked recommendations, and the full decision trace.
func Snapshot(scenarioName string, out sim.SimulationResult) ([]byte, error) {
	signals := make([]any, len(out.RiskSignals))
	for i, s := range out.RiskSignals {
		signals[i] = s
	}

	twins := make([]any, len(out.TwinStateUpdates))
	for i, tw := range out.TwinStateUpdates {
		twins[i] = map[string]any{
			"field":     tw.Field,
			"direction": tw.Direction,
			"summary":   tw.Summary,
		}
	}

	recs := make([]any, len(out.Recommendations))
	for i, rec := range out.Recommendations {
		recs[i] = map[string]any{
			"id":       rec.ID,
			"priority": rec.Priority,
			"title":    rec.Title,
		}
	}

	trace := make([]any, len(out.DecisionTrace))
	for i, step := range out.DecisionTrace {
		trace[i] = map[string]any{
			"stage":   step.Stage,
			"ruleId":  step.RuleID,
			"detail":  step.Detail,
			"outcome": step.Outcome,
		}
	}

	return sim.MarshalCanonical(map[string]any{
		"scenario":         scenarioName,
		"pipelineVersion":  out.PipelineVersion,
		"policyVersion":    out.PolicyVersion,
		"guardrailVersion": out.GuardrailVersion,
		"coverageVersion":  out.CoverageVersion,
		"riskScore":        out.RiskScore,
		"riskLevel":        out.RiskLevel,
		"riskSignals":      signals,
		"twinStateUpdates": twins,
		"recommendations":  recs,
		"decisionTrace":    trace,
	})
}

// AssertGolden compares a result snapshot against
// testdata/golden/{name}.golden. Golden files are the source of truth for
// expected scoring behavior; regenerate with -update after an intentional
// rule change (and bump the matching version tag).
func AssertGolden(t *testing.T, name string, out sim.SimulationResult) {
	t.Helper()

	snapshot, err := Snapshot(name, out)
	if err != nil {
		t.Fatalf("snapshot %s: %v", name, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, snapshot)
}
