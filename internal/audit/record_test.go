package audit

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdgonzal/myveevee/internal/engine"
	"github.com/cdgonzal/myveevee/internal/sim"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestBuilder_Record(t *testing.T) {
	when := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	b := NewBuilderWith(NewFixedGenerator("wm-test-0001"), fixedClock(when))

	input := sim.DefaultSimulatorInput()
	result := engine.Score(input)
	rec := b.Record(input, result, "unit-test")

	assert.Equal(t, "wm-test-0001", rec.RunID)
	assert.Equal(t, "2026-02-14T09:30:00Z", rec.Timestamp)
	assert.Equal(t, "unit-test", rec.Source)

	assert.Equal(t, sim.Age35to49, rec.InputSummary.AgeRange)
	assert.Equal(t, "FL", rec.InputSummary.State)
	assert.Equal(t, "Aetna", rec.InputSummary.Payer)
	assert.Equal(t, sim.SeverityModerate, rec.InputSummary.Severity)
	assert.Equal(t, 10, rec.InputSummary.DurationDays)
	assert.Equal(t, 1, rec.InputSummary.MedicationCount)
	assert.True(t, rec.InputSummary.HasLabs)
	assert.True(t, rec.InputSummary.FreeTextRedacted)

	assert.Equal(t, result.RiskScore, rec.OutputSummary.RiskScore)
	assert.Equal(t, result.RiskLevel, rec.OutputSummary.RiskLevel)
	assert.Equal(t, len(result.Recommendations), rec.OutputSummary.RecommendationCount)
	assert.Equal(t, len(result.RiskSignals), rec.OutputSummary.RiskSignalCount)
	assert.Equal(t, len(result.DecisionTrace), rec.OutputSummary.TraceSteps)
	assert.Equal(t, sim.PipelineVersion, rec.OutputSummary.PipelineVersion)
}

func TestBuilder_HasLabs(t *testing.T) {
	b := NewBuilderWith(UUIDv7Generator{}, time.Now)

	input := sim.DefaultSimulatorInput()
	input.Labs = sim.Labs{}
	rec := b.Record(input, engine.Score(input), "t")
	assert.False(t, rec.InputSummary.HasLabs)

	bp := 120.0
	input.Labs = sim.Labs{SystolicBP: &bp}
	rec = b.Record(input, engine.Score(input), "t")
	assert.True(t, rec.InputSummary.HasLabs)
}

// Free text from the input must never reach the audit record, verbatim or
// as a substring. Fuzz with random marker strings to catch any copied field.
func TestBuilder_RedactionProperty(t *testing.T) {
	b := NewBuilder()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		symptomMarker := fmt.Sprintf("SYMPTOM-MARKER-%d-%d", i, rng.Int63())
		eventMarker := fmt.Sprintf("EVENT-MARKER-%d-%d", i, rng.Int63())

		input := sim.DefaultSimulatorInput()
		input.Symptom.Description = "patient reports " + symptomMarker + " daily"
		input.LifestyleEvent.Event = eventMarker + " started last week"

		rec := b.Record(input, engine.Score(input), "fuzz")

		encoded, err := json.Marshal(rec)
		require.NoError(t, err)

		assert.NotContains(t, string(encoded), symptomMarker,
			"symptom description leaked into audit record")
		assert.NotContains(t, string(encoded), eventMarker,
			"lifestyle event leaked into audit record")
	}
}

func TestBuilder_RunIDsUnique(t *testing.T) {
	b := NewBuilder()
	input := sim.DefaultSimulatorInput()
	result := engine.Score(input)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		rec := b.Record(input, result, "t")
		assert.False(t, seen[rec.RunID], "run ID %s generated twice", rec.RunID)
		seen[rec.RunID] = true
		assert.True(t, strings.HasPrefix(rec.RunID, "wm-"))
	}
}

// Two records for the same run differ only in runId and timestamp.
func TestBuilder_RecordsDifferOnlyInIdentity(t *testing.T) {
	when := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	input := sim.DefaultSimulatorInput()
	result := engine.Score(input)

	first := NewBuilderWith(NewFixedGenerator("wm-a"), fixedClock(when)).Record(input, result, "t")
	second := NewBuilderWith(NewFixedGenerator("wm-b"), fixedClock(when.Add(time.Minute))).Record(input, result, "t")

	second.RunID = first.RunID
	second.Timestamp = first.Timestamp
	assert.Equal(t, first, second)
}

func TestFixedGenerator_PanicsWhenExhausted(t *testing.T) {
	g := NewFixedGenerator("one")
	assert.Equal(t, "one", g.Generate())
	assert.Panics(t, func() { g.Generate() })
}
