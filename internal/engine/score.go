package engine

import (
	"fmt"
	"sort"

	"github.com/cdgonzal/myveevee/internal/sim"
)

// Score runs the full scoring pipeline against one scenario snapshot.
//
// Total function: for any well-formed input it returns a result and never
// panics. The result is fully determined by the input - no clock, no
// randomness - so calling twice with the same snapshot yields deep-equal
// results.
func Score(input sim.SimulatorInput) sim.SimulationResult {
	riskScore := 0
	riskSignals := []string{}
	twinUpdates := []sim.TwinStateUpdate{}
	trace := []sim.DecisionTraceStep{}

	trace = append(trace, sim.DecisionTraceStep{
		Stage:   sim.StageInput,
		RuleID:  "INGEST-001",
		Detail:  "Input payload normalized to Digital Twin schema.",
		Outcome: sim.OutcomeApplied,
	})

	// Evaluate the rule table in declaration order. Within a banded family
	// only the first match fires.
	firedFamilies := map[string]bool{}
	for _, rule := range scoreRules {
		if rule.family != "" && firedFamilies[rule.family] {
			continue
		}
		if !rule.match(&input) {
			continue
		}
		if rule.family != "" {
			firedFamilies[rule.family] = true
		}

		riskScore += rule.delta
		if rule.signal != "" {
			riskSignals = append(riskSignals, rule.signal)
		}
		if rule.twin != nil {
			twinUpdates = append(twinUpdates, *rule.twin)
		}
		trace = append(trace, sim.DecisionTraceStep{
			Stage:   rule.stage,
			RuleID:  rule.id,
			Detail:  rule.detail,
			Outcome: sim.OutcomeApplied,
		})
	}

	riskLevel := riskLevelFor(riskScore)

	recommendations := []sim.Recommendation{}
	for _, rule := range recommendationRules {
		if rule.match(&input, riskLevel) {
			recommendations = append(recommendations, rule.build(&input, riskLevel))
		}
	}
	// Stable sort: equal priorities keep generation order, so adding a rule
	// later never reshuffles existing ties.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Priority > recommendations[j].Priority
	})

	trace = append(trace, sim.DecisionTraceStep{
		Stage:   sim.StageReasoning,
		RuleID:  "RANK-RECOMMENDATIONS",
		Detail:  fmt.Sprintf("Recommendations ranked by priority with riskLevel=%s and riskScore=%d.", riskLevel, riskScore),
		Outcome: sim.OutcomeApplied,
	})
	trace = append(trace, sim.DecisionTraceStep{
		Stage:   sim.StageOutput,
		RuleID:  "OUTPUT-STRUCTURED",
		Detail:  "Generated structured outputs: deltas, signals, recommendations, follow-up questions, trace.",
		Outcome: sim.OutcomeApplied,
	})

	questions := make([]string, len(followUpQuestions))
	copy(questions, followUpQuestions)

	return sim.SimulationResult{
		PipelineVersion:   sim.PipelineVersion,
		PolicyVersion:     sim.PolicyVersion,
		GuardrailVersion:  sim.GuardrailVersion,
		CoverageVersion:   sim.CoverageVersion,
		RiskScore:         riskScore,
		RiskLevel:         riskLevel,
		RiskSignals:       riskSignals,
		TwinStateUpdates:  twinUpdates,
		Recommendations:   recommendations,
		FollowUpQuestions: questions,
		DecisionTrace:     trace,
	}
}

// riskLevelFor maps a score to its band. Thresholds evaluated high to low.
func riskLevelFor(score int) sim.RiskLevel {
	switch {
	case score >= 85:
		return sim.RiskUrgent
	case score >= 70:
		return sim.RiskHigh
	case score >= 40:
		return sim.RiskModerate
	default:
		return sim.RiskLow
	}
}
