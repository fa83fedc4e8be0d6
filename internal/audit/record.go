package audit

import (
	"time"

	"github.com/cdgonzal/myveevee/internal/sim"
)

// InputSummary is the redacted projection of a SimulatorInput. Free-text
// fields are replaced by the FreeTextRedacted marker; list fields by counts.
type InputSummary struct {
	AgeRange            sim.AgeRange        `json:"ageRange"`
	State               string              `json:"state"`
	Payer               string              `json:"payer"`
	Severity            sim.SymptomSeverity `json:"severity"`
	DurationDays        int                 `json:"durationDays"`
	AdherencePercent    float64             `json:"adherencePercent"`
	SleepHours          float64             `json:"sleepHours"`
	HasChronicCondition bool                `json:"hasChronicCondition"`
	HasPCPAssigned      bool                `json:"hasPcpAssigned"`
	MedicationCount     int                 `json:"medicationCount"`
	HasLabs             bool                `json:"hasLabs"`
	FreeTextRedacted    bool                `json:"freeTextRedacted"`
}

// OutputSummary is the count-level projection of a SimulationResult.
type OutputSummary struct {
	RiskScore           int           `json:"riskScore"`
	RiskLevel           sim.RiskLevel `json:"riskLevel"`
	RecommendationCount int           `json:"recommendationCount"`
	RiskSignalCount     int           `json:"riskSignalCount"`
	TraceSteps          int           `json:"traceSteps"`
	PipelineVersion     string        `json:"pipelineVersion"`
}

// Record is one redacted audit entry for a scoring run.
type Record struct {
	RunID         string        `json:"runId"`
	Timestamp     string        `json:"timestamp"` // ISO-8601 / RFC 3339 UTC
	Source        string        `json:"source"`
	InputSummary  InputSummary  `json:"inputSummary"`
	OutputSummary OutputSummary `json:"outputSummary"`
}

// Builder derives Records. The run-ID generator and clock are injected so
// tests can pin both; everything else about a Record is a pure projection
// of (input, result, source).
type Builder struct {
	gen RunIDGenerator
	now func() time.Time
}

// NewBuilder returns a production Builder: UUIDv7 run IDs and wall-clock
// timestamps.
func NewBuilder() *Builder {
	return NewBuilderWith(UUIDv7Generator{}, time.Now)
}

// NewBuilderWith returns a Builder with an explicit generator and clock.
func NewBuilderWith(gen RunIDGenerator, now func() time.Time) *Builder {
	return &Builder{gen: gen, now: now}
}

// Record builds the redacted audit record for one run.
//
// source is a free-form caller tag ("cli-score", "simulator-page") naming
// where the run originated. It is caller-controlled, not input-derived, so
// it is exempt from the redaction invariant.
func (b *Builder) Record(input sim.SimulatorInput, result sim.SimulationResult, source string) Record {
	return Record{
		RunID:     b.gen.Generate(),
		Timestamp: b.now().UTC().Format(time.RFC3339),
		Source:    source,
		InputSummary: InputSummary{
			AgeRange:            input.Profile.AgeRange,
			State:               input.Profile.State,
			Payer:               input.Insurance.Payer,
			Severity:            input.Symptom.Severity,
			DurationDays:        input.Symptom.DurationDays,
			AdherencePercent:    input.Medication.AdherencePercent,
			SleepHours:          input.BehaviorChange.SleepHours,
			HasChronicCondition: input.Profile.HasChronicCondition,
			HasPCPAssigned:      input.Insurance.HasPCPAssigned,
			MedicationCount:     len(input.Medication.CurrentlyTaking),
			HasLabs:             hasLabs(input.Labs),
			FreeTextRedacted:    true,
		},
		OutputSummary: OutputSummary{
			RiskScore:           result.RiskScore,
			RiskLevel:           result.RiskLevel,
			RecommendationCount: len(result.Recommendations),
			RiskSignalCount:     len(result.RiskSignals),
			TraceSteps:          len(result.DecisionTrace),
			PipelineVersion:     result.PipelineVersion,
		},
	}
}

// hasLabs reports whether any lab value is known. Presence is the nil
// check on the pointer, not the value: a recorded zero still counts.
func hasLabs(labs sim.Labs) bool {
	return labs.A1C != nil || labs.SystolicBP != nil || labs.LDL != nil
}
