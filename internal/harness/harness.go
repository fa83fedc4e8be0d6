package harness

import (
	"fmt"

	"github.com/cdgonzal/myveevee/internal/engine"
	"github.com/cdgonzal/myveevee/internal/scenario"
	"github.com/cdgonzal/myveevee/internal/sim"
)

// Result is the outcome of one scenario run.
type Result struct {
	Scenario *scenario.Scenario
	Output   sim.SimulationResult

	// Failures lists expectation mismatches, in check order.
	// Empty means the scenario passed.
	Failures []string
}

// Passed reports whether every declared expectation held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Run scores a scenario and checks its expectations.
// Scoring itself cannot fail; Failures carries any mismatches.
func Run(sc *scenario.Scenario) *Result {
	out := engine.Score(sc.Input)
	res := &Result{Scenario: sc, Output: out}
	if sc.Expect != nil {
		res.Failures = checkExpectation(sc.Expect, out)
	}
	return res
}

// checkExpectation compares a result against declared expectations.
// Only set fields are checked.
func checkExpectation(exp *scenario.Expectation, out sim.SimulationResult) []string {
	var failures []string

	if exp.RiskScore != nil && out.RiskScore != *exp.RiskScore {
		failures = append(failures, fmt.Sprintf("riskScore: got %d, want %d", out.RiskScore, *exp.RiskScore))
	}
	if exp.RiskLevel != "" && out.RiskLevel != exp.RiskLevel {
		failures = append(failures, fmt.Sprintf("riskLevel: got %s, want %s", out.RiskLevel, exp.RiskLevel))
	}

	if len(exp.RecommendationIDs) > 0 {
		got := make([]string, len(out.Recommendations))
		for i, rec := range out.Recommendations {
			got[i] = rec.ID
		}
		if !equalStrings(got, exp.RecommendationIDs) {
			failures = append(failures, fmt.Sprintf("recommendationIds: got %v, want %v", got, exp.RecommendationIDs))
		}
	}

	for _, want := range exp.Signals {
		if !containsString(out.RiskSignals, want) {
			failures = append(failures, fmt.Sprintf("riskSignals: missing %q", want))
		}
	}

	return failures
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
