package sim

// AgeRange is one of the four age bands collected on intake.
type AgeRange string

// Valid age bands.
const (
	Age18to34 AgeRange = "18-34"
	Age35to49 AgeRange = "35-49"
	Age50to64 AgeRange = "50-64"
	Age65Plus AgeRange = "65+"
)

// PlanType identifies the insurance plan category.
type PlanType string

// Valid plan types.
const (
	PlanCommercial PlanType = "commercial"
	PlanMedicare   PlanType = "medicare"
	PlanMedicaid   PlanType = "medicaid"
	PlanExchange   PlanType = "exchange"
)

// SymptomSeverity is the caller-reported symptom severity.
type SymptomSeverity string

// Valid severities.
const (
	SeverityLow      SymptomSeverity = "low"
	SeverityModerate SymptomSeverity = "moderate"
	SeverityHigh     SymptomSeverity = "high"
)

// EventTiming says whether a lifestyle event is ongoing or recently ended.
type EventTiming string

// Valid timings.
const (
	TimingCurrent EventTiming = "current"
	TimingRecent  EventTiming = "recent"
)

// Profile holds demographic context for a scenario.
type Profile struct {
	AgeRange            AgeRange `json:"ageRange" yaml:"ageRange"`
	State               string   `json:"state" yaml:"state"` // 2-letter code
	HasChronicCondition bool     `json:"hasChronicCondition" yaml:"hasChronicCondition"`
}

// Insurance holds coverage context for a scenario.
type Insurance struct {
	Payer          string   `json:"payer" yaml:"payer"`
	PlanType       PlanType `json:"planType" yaml:"planType"`
	HasPCPAssigned bool     `json:"hasPcpAssigned" yaml:"hasPcpAssigned"`
}

// Symptom describes the presenting complaint.
// Description is free text and MUST NOT leak into audit records.
type Symptom struct {
	Description  string          `json:"description" yaml:"description"`
	DurationDays int             `json:"durationDays" yaml:"durationDays"`
	Severity     SymptomSeverity `json:"severity" yaml:"severity"`
}

// BehaviorChange captures recent sleep and exercise patterns.
type BehaviorChange struct {
	SleepHours          float64 `json:"sleepHours" yaml:"sleepHours"`
	ExerciseDaysPerWeek float64 `json:"exerciseDaysPerWeek" yaml:"exerciseDaysPerWeek"`
}

// Medication captures the current regimen and self-reported adherence.
type Medication struct {
	CurrentlyTaking  []string `json:"currentlyTaking" yaml:"currentlyTaking"`
	AdherencePercent float64  `json:"adherencePercent" yaml:"adherencePercent"`
}

// Labs holds optional recent lab values. A nil field means "unknown",
// which is distinct from zero: an unknown lab never trips a threshold.
type Labs struct {
	A1C        *float64 `json:"a1c,omitempty" yaml:"a1c,omitempty"`
	SystolicBP *float64 `json:"systolicBp,omitempty" yaml:"systolicBp,omitempty"`
	LDL        *float64 `json:"ldl,omitempty" yaml:"ldl,omitempty"`
}

// LifestyleEvent describes a recent life change that may affect health.
// Event is free text and MUST NOT leak into audit records.
type LifestyleEvent struct {
	Event  string      `json:"event" yaml:"event"`
	Timing EventTiming `json:"timing" yaml:"timing"`
}

// SimulatorInput is a complete scenario snapshot. It is a pure value:
// construct one per run, never mutate it afterwards.
type SimulatorInput struct {
	Profile        Profile        `json:"profile" yaml:"profile"`
	Insurance      Insurance      `json:"insurance" yaml:"insurance"`
	Symptom        Symptom        `json:"symptom" yaml:"symptom"`
	BehaviorChange BehaviorChange `json:"behaviorChange" yaml:"behaviorChange"`
	Medication     Medication     `json:"medication" yaml:"medication"`
	Labs           Labs           `json:"labs" yaml:"labs"`
	LifestyleEvent LifestyleEvent `json:"lifestyleEvent" yaml:"lifestyleEvent"`
}
