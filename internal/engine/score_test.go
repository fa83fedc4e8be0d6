package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdgonzal/myveevee/internal/sim"
)

// quietInput is a snapshot that trips no scoring rule: score 0, level low.
func quietInput() sim.SimulatorInput {
	in := sim.DefaultSimulatorInput()
	in.Profile.HasChronicCondition = false
	in.Insurance.HasPCPAssigned = true
	in.Symptom.DurationDays = 1
	in.Symptom.Severity = sim.SeverityLow
	in.BehaviorChange.SleepHours = 8
	in.Medication.AdherencePercent = 95
	in.Labs = sim.Labs{}
	return in
}

func TestScore_DefaultScenario(t *testing.T) {
	out := Score(sim.DefaultSimulatorInput())

	// 20 (moderate) + 8 (7-13d) + 8 (adherence 60-79) + 12 (sleep<6)
	// + 18 (a1c>=8) + 7 (bp 130-139) + 8 (chronic) + 6 (no PCP) = 87
	assert.Equal(t, 87, out.RiskScore)
	assert.Equal(t, sim.RiskUrgent, out.RiskLevel)

	ids := make([]string, len(out.Recommendations))
	priorities := make([]int, len(out.Recommendations))
	for i, rec := range out.Recommendations {
		ids[i] = rec.ID
		priorities[i] = rec.Priority
	}
	assert.Equal(t, []string{"care-next-step", "pcp-navigation", "adherence-plan", "sleep-intervention"}, ids)
	assert.Equal(t, []int{100, 82, 78, 65}, priorities)
}

func TestScore_QuietScenario(t *testing.T) {
	out := Score(quietInput())

	assert.Equal(t, 0, out.RiskScore)
	assert.Equal(t, sim.RiskLow, out.RiskLevel)
	assert.Empty(t, out.RiskSignals)
	assert.Empty(t, out.TwinStateUpdates)

	require.Len(t, out.Recommendations, 1)
	assert.Equal(t, "care-next-step", out.Recommendations[0].ID)
	assert.Equal(t, "Schedule a clinician follow-up", out.Recommendations[0].Title)
	assert.Equal(t, 70, out.Recommendations[0].Priority)
}

func TestScore_VersionTags(t *testing.T) {
	out := Score(quietInput())

	assert.Equal(t, "wm-pipeline@0.1.0", out.PipelineVersion)
	assert.Equal(t, "policy@2026.02", out.PolicyVersion)
	assert.Equal(t, "guardrails@2026.02", out.GuardrailVersion)
	assert.Equal(t, "coverage@2026.02", out.CoverageVersion)
}

func TestRiskLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  sim.RiskLevel
	}{
		{0, sim.RiskLow},
		{39, sim.RiskLow},
		{40, sim.RiskModerate},
		{69, sim.RiskModerate},
		{70, sim.RiskHigh},
		{84, sim.RiskHigh},
		{85, sim.RiskUrgent},
		{200, sim.RiskUrgent},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, riskLevelFor(tt.score), "score %d", tt.score)
	}
}

func TestScore_BandedFamilies_OnlyHighestBandFires(t *testing.T) {
	in := quietInput()
	in.Symptom.Severity = sim.SeverityHigh
	in.Symptom.DurationDays = 20
	in.Medication.AdherencePercent = 50
	in.Labs.SystolicBP = labValue(150)

	out := Score(in)

	fired := map[string]bool{}
	for _, step := range out.DecisionTrace {
		fired[step.RuleID] = true
	}

	assert.True(t, fired["SYMPTOM-SEVERITY-HIGH"])
	assert.False(t, fired["SYMPTOM-SEVERITY-MODERATE"], "lower severity band must not fire")
	assert.True(t, fired["SYMPTOM-DURATION-14D"])
	assert.False(t, fired["SYMPTOM-DURATION-7D"], "lower duration band must not fire")
	assert.True(t, fired["ADHERENCE-LOW"])
	assert.False(t, fired["ADHERENCE-MID"], "lower adherence band must not fire")
	assert.True(t, fired["LAB-BP-HIGH"])
	assert.False(t, fired["LAB-BP-ELEVATED"], "lower BP band must not fire")

	// 35 + 15 + 15 + 12... sleep is 8 here, so no sleep rule.
	assert.Equal(t, 35+15+15+12, out.RiskScore)
}

func TestScore_MissingLabsNeverFire(t *testing.T) {
	in := quietInput()
	in.Labs = sim.Labs{} // all unknown

	out := Score(in)

	for _, step := range out.DecisionTrace {
		assert.NotEqual(t, "LAB-A1C-HIGH", step.RuleID)
		assert.NotEqual(t, "LAB-BP-HIGH", step.RuleID)
		assert.NotEqual(t, "LAB-BP-ELEVATED", step.RuleID)
	}
}

func TestScore_PCPGapContract(t *testing.T) {
	in := quietInput()
	in.Insurance.HasPCPAssigned = false
	in.Insurance.Payer = "Cigna"

	out := Score(in)

	assert.Contains(t, out.RiskSignals, "No assigned PCP on file")

	var pcpRec *sim.Recommendation
	for i := range out.Recommendations {
		if out.Recommendations[i].ID == "pcp-navigation" {
			pcpRec = &out.Recommendations[i]
		}
	}
	require.NotNil(t, pcpRec, "pcp-navigation recommendation must be present")
	assert.Equal(t, 82, pcpRec.Priority)
	assert.Contains(t, pcpRec.CoverageNote, "Cigna")
}

func TestScore_RecommendationsSortedByPriority(t *testing.T) {
	inputs := []sim.SimulatorInput{
		sim.DefaultSimulatorInput(),
		quietInput(),
	}
	severe := quietInput()
	severe.Symptom.Severity = sim.SeverityHigh
	severe.Symptom.DurationDays = 30
	severe.Medication.AdherencePercent = 10
	severe.BehaviorChange.SleepHours = 3
	inputs = append(inputs, severe)

	for _, in := range inputs {
		out := Score(in)
		for i := 0; i+1 < len(out.Recommendations); i++ {
			assert.GreaterOrEqual(t,
				out.Recommendations[i].Priority,
				out.Recommendations[i+1].Priority,
				"recommendations must be non-increasing by priority")
		}
	}
}

func TestScore_TraceBookends(t *testing.T) {
	for _, in := range []sim.SimulatorInput{sim.DefaultSimulatorInput(), quietInput()} {
		out := Score(in)

		require.NotEmpty(t, out.DecisionTrace)
		assert.Equal(t, sim.StageInput, out.DecisionTrace[0].Stage)
		assert.Equal(t, "INGEST-001", out.DecisionTrace[0].RuleID)

		last := out.DecisionTrace[len(out.DecisionTrace)-1]
		assert.Equal(t, sim.StageOutput, last.Stage)
		assert.Equal(t, "OUTPUT-STRUCTURED", last.RuleID)

		secondLast := out.DecisionTrace[len(out.DecisionTrace)-2]
		assert.Equal(t, sim.StageReasoning, secondLast.Stage)
	}
}

// Re-summing the deltas of traced scoring rules must reproduce the score.
func TestScore_TraceDeltasSumToScore(t *testing.T) {
	deltaByRule := map[string]int{}
	for _, rule := range scoreRules {
		deltaByRule[rule.id] = rule.delta
	}

	for _, in := range []sim.SimulatorInput{sim.DefaultSimulatorInput(), quietInput()} {
		out := Score(in)

		sum := 0
		for _, step := range out.DecisionTrace {
			sum += deltaByRule[step.RuleID] // bookends map to 0
		}
		assert.Equal(t, out.RiskScore, sum)
	}
}

func TestScore_Idempotent(t *testing.T) {
	in := sim.DefaultSimulatorInput()

	first := Score(in)
	second := Score(in)

	assert.Equal(t, first, second, "same input must produce deep-equal results")
}

func TestScore_HighLevelGetsPriority90(t *testing.T) {
	// 35 (high severity) + 15 (14d) + 12 (sleep<6) + 8 (chronic) = 70 -> high
	in := quietInput()
	in.Symptom.Severity = sim.SeverityHigh
	in.Symptom.DurationDays = 14
	in.BehaviorChange.SleepHours = 5
	in.Profile.HasChronicCondition = true

	out := Score(in)

	require.Equal(t, 70, out.RiskScore)
	require.Equal(t, sim.RiskHigh, out.RiskLevel)
	assert.Equal(t, "care-next-step", out.Recommendations[0].ID)
	assert.Equal(t, 90, out.Recommendations[0].Priority)
	assert.Equal(t, "Schedule a clinician follow-up", out.Recommendations[0].Title)
}

func labValue(v float64) *float64 {
	return &v
}
