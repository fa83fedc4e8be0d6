package engine

import "github.com/cdgonzal/myveevee/internal/sim"

// Banded family names. Within a family, only the first matching rule in
// table order fires; the table lists higher bands first.
const (
	familySeverity  = "symptom-severity"
	familyDuration  = "symptom-duration"
	familyAdherence = "med-adherence"
	familyBP        = "lab-bp"
)

// scoreRule is one data-described scoring rule.
//
// A fired rule always adds its delta to the risk score and appends one trace
// step. Signal and twin are optional extras: lower bands accumulate score
// quietly without surfacing a signal or a twin-state delta.
type scoreRule struct {
	id     string
	stage  sim.TraceStage
	family string // empty for independent rules
	match  func(in *sim.SimulatorInput) bool
	delta  int
	signal string               // optional risk signal text
	twin   *sim.TwinStateUpdate // optional twin-state delta
	detail string               // trace detail
}

// scoreRules is the scoring rule table in evaluation order. The order is a
// published contract: the decision trace replays it step for step.
//
// Covered by sim.PolicyVersion (policy stage), sim.GuardrailVersion
// (guardrail stage), and sim.CoverageVersion (coverage stage) - bump the
// matching tag when editing a rule.
var scoreRules = []scoreRule{
	{
		id:     "SYMPTOM-SEVERITY-HIGH",
		stage:  sim.StagePolicy,
		family: familySeverity,
		match: func(in *sim.SimulatorInput) bool {
			return in.Symptom.Severity == sim.SeverityHigh
		},
		delta:  35,
		signal: "High symptom severity detected",
		twin: &sim.TwinStateUpdate{
			Field:     "symptom.priority",
			Direction: sim.TwinUp,
			Summary:   "Escalate triage priority",
		},
		detail: "Severity=high increased risk by 35.",
	},
	{
		id:     "SYMPTOM-SEVERITY-MODERATE",
		stage:  sim.StagePolicy,
		family: familySeverity,
		match: func(in *sim.SimulatorInput) bool {
			return in.Symptom.Severity == sim.SeverityModerate
		},
		delta:  20,
		signal: "Moderate symptoms need near-term follow-up",
		twin: &sim.TwinStateUpdate{
			Field:     "symptom.priority",
			Direction: sim.TwinWatch,
			Summary:   "Monitor and schedule non-urgent follow-up",
		},
		detail: "Severity=moderate increased risk by 20.",
	},
	{
		id:     "SYMPTOM-DURATION-14D",
		stage:  sim.StagePolicy,
		family: familyDuration,
		match: func(in *sim.SimulatorInput) bool {
			return in.Symptom.DurationDays >= 14
		},
		delta:  15,
		signal: "Persistent symptom duration",
		twin: &sim.TwinStateUpdate{
			Field:     "symptom.duration",
			Direction: sim.TwinUp,
			Summary:   "Persistent symptoms increase action urgency",
		},
		detail: "Duration >=14 days increased risk by 15.",
	},
	{
		id:     "SYMPTOM-DURATION-7D",
		stage:  sim.StagePolicy,
		family: familyDuration,
		match: func(in *sim.SimulatorInput) bool {
			return in.Symptom.DurationDays >= 7
		},
		delta:  8,
		detail: "Duration >=7 days increased risk by 8.",
	},
	{
		id:     "ADHERENCE-LOW",
		stage:  sim.StagePolicy,
		family: familyAdherence,
		match: func(in *sim.SimulatorInput) bool {
			return in.Medication.AdherencePercent < 60
		},
		delta:  15,
		signal: "Low medication adherence",
		twin: &sim.TwinStateUpdate{
			Field:     "medication.adherence",
			Direction: sim.TwinDown,
			Summary:   "Adherence drop likely increases symptom burden",
		},
		detail: "Adherence <60% increased risk by 15.",
	},
	{
		id:     "ADHERENCE-MID",
		stage:  sim.StagePolicy,
		family: familyAdherence,
		match: func(in *sim.SimulatorInput) bool {
			return in.Medication.AdherencePercent < 80
		},
		delta:  8,
		detail: "Adherence <80% increased risk by 8.",
	},
	{
		id:    "SLEEP-LOW",
		stage: sim.StageGuardrail,
		match: func(in *sim.SimulatorInput) bool {
			return in.BehaviorChange.SleepHours < 6
		},
		delta:  12,
		signal: "Insufficient sleep pattern",
		twin: &sim.TwinStateUpdate{
			Field:     "lifestyle.recovery",
			Direction: sim.TwinDown,
			Summary:   "Short sleep can compound symptoms and stress",
		},
		detail: "Sleep <6 hours increased risk by 12.",
	},
	{
		id:    "LAB-A1C-HIGH",
		stage: sim.StageGuardrail,
		match: func(in *sim.SimulatorInput) bool {
			return in.Labs.A1C != nil && *in.Labs.A1C >= 8
		},
		delta:  18,
		signal: "A1c above target range",
		twin: &sim.TwinStateUpdate{
			Field:     "labs.a1c",
			Direction: sim.TwinUp,
			Summary:   "Elevated A1c requires tighter follow-up plan",
		},
		detail: "A1c >=8 increased risk by 18.",
	},
	{
		id:     "LAB-BP-HIGH",
		stage:  sim.StageGuardrail,
		family: familyBP,
		match: func(in *sim.SimulatorInput) bool {
			return in.Labs.SystolicBP != nil && *in.Labs.SystolicBP >= 140
		},
		delta:  12,
		signal: "Elevated blood pressure reading",
		detail: "Systolic BP >=140 increased risk by 12.",
	},
	{
		id:     "LAB-BP-ELEVATED",
		stage:  sim.StageGuardrail,
		family: familyBP,
		match: func(in *sim.SimulatorInput) bool {
			return in.Labs.SystolicBP != nil && *in.Labs.SystolicBP >= 130
		},
		delta:  7,
		detail: "Systolic BP >=130 increased risk by 7.",
	},
	{
		id:    "CHRONIC-COND-YES",
		stage: sim.StageGuardrail,
		match: func(in *sim.SimulatorInput) bool {
			return in.Profile.HasChronicCondition
		},
		delta:  8,
		detail: "Chronic condition flag increased risk by 8.",
	},
	{
		id:    "PCP-MISSING",
		stage: sim.StageCoverage,
		match: func(in *sim.SimulatorInput) bool {
			return !in.Insurance.HasPCPAssigned
		},
		delta:  6,
		signal: "No assigned PCP on file",
		detail: "No PCP assigned increased risk by 6 and added navigation recommendation.",
	},
}

// recommendationRule builds one recommendation when its predicate matches.
// Rules are evaluated in table order; the final list is stable-sorted by
// descending priority afterwards, so equal priorities keep table order.
type recommendationRule struct {
	match func(in *sim.SimulatorInput, level sim.RiskLevel) bool
	build func(in *sim.SimulatorInput, level sim.RiskLevel) sim.Recommendation
}

var recommendationRules = []recommendationRule{
	{
		// Primary care-next-step: always present, shaped by risk level.
		match: func(*sim.SimulatorInput, sim.RiskLevel) bool { return true },
		build: func(_ *sim.SimulatorInput, level sim.RiskLevel) sim.Recommendation {
			title := "Schedule a clinician follow-up"
			if level == sim.RiskUrgent {
				title = "Escalate to urgent clinical triage"
			}
			priority := 70
			switch level {
			case sim.RiskUrgent:
				priority = 100
			case sim.RiskHigh:
				priority = 90
			}
			return sim.Recommendation{
				ID:           "care-next-step",
				Title:        title,
				Rationale:    "Symptom severity, duration, and profile context indicate follow-up should be prioritized.",
				Priority:     priority,
				CoverageNote: "Check in-network urgent care or telehealth options for fastest access.",
			}
		},
	},
	{
		match: func(in *sim.SimulatorInput, _ sim.RiskLevel) bool {
			return !in.Insurance.HasPCPAssigned
		},
		build: func(in *sim.SimulatorInput, _ sim.RiskLevel) sim.Recommendation {
			return sim.Recommendation{
				ID:           "pcp-navigation",
				Title:        "Assign an in-network PCP",
				Rationale:    "No PCP on file can delay coordinated follow-up and referrals.",
				Priority:     82,
				CoverageNote: "Prioritize " + in.Insurance.Payer + " in-network PCP options first.",
			}
		},
	},
	{
		match: func(in *sim.SimulatorInput, _ sim.RiskLevel) bool {
			return in.Medication.AdherencePercent < 80
		},
		build: func(*sim.SimulatorInput, sim.RiskLevel) sim.Recommendation {
			return sim.Recommendation{
				ID:           "adherence-plan",
				Title:        "Start a medication adherence plan",
				Rationale:    "Lower adherence can increase variability in outcomes.",
				Priority:     78,
				CoverageNote: "Review formulary and refill support options under current plan.",
			}
		},
	},
	{
		match: func(in *sim.SimulatorInput, _ sim.RiskLevel) bool {
			return in.BehaviorChange.SleepHours < 6
		},
		build: func(*sim.SimulatorInput, sim.RiskLevel) sim.Recommendation {
			return sim.Recommendation{
				ID:           "sleep-intervention",
				Title:        "Stabilize sleep schedule for 2 weeks",
				Rationale:    "Improved sleep can reduce compounding symptom and fatigue signals.",
				Priority:     65,
				CoverageNote: "Behavioral coaching may be covered under wellness benefits.",
			}
		},
	},
}

// followUpQuestions is static for every run. Not yet input-sensitive; when
// product wants personalization this becomes another rule pass.
var followUpQuestions = []string{
	"Are symptoms worsening, improving, or unchanged over the last 48 hours?",
	"Do you have any red-flag symptoms today (chest pain, severe shortness of breath, confusion)?",
	"Can you complete a telehealth visit in the next 24-48 hours?",
}
