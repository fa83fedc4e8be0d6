package sim

// StarterScenario is a named, ready-to-run scenario snapshot used for demos
// and as seed fixtures in tests.
type StarterScenario struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Summary string         `json:"summary"`
	Input   SimulatorInput `json:"input"`
}

// DefaultSimulatorInput returns the canonical demo snapshot: moderate
// symptoms of 10 days, mid adherence, short sleep, elevated labs, chronic
// condition, no PCP assigned. Scores 87 (urgent) under the current rule set.
//
// A fresh value is built on every call so callers can edit their copy
// (including the lab pointers) without aliasing anyone else's snapshot.
func DefaultSimulatorInput() SimulatorInput {
	return SimulatorInput{
		Profile: Profile{
			AgeRange:            Age35to49,
			State:               "FL",
			HasChronicCondition: true,
		},
		Insurance: Insurance{
			Payer:          "Aetna",
			PlanType:       PlanCommercial,
			HasPCPAssigned: false,
		},
		Symptom: Symptom{
			Description:  "Recurring headaches with fatigue",
			DurationDays: 10,
			Severity:     SeverityModerate,
		},
		BehaviorChange: BehaviorChange{
			SleepHours:          5,
			ExerciseDaysPerWeek: 1,
		},
		Medication: Medication{
			CurrentlyTaking:  []string{"Metformin"},
			AdherencePercent: 70,
		},
		Labs: Labs{
			A1C:        ptr(8.1),
			SystolicBP: ptr(138.0),
			LDL:        ptr(132.0),
		},
		LifestyleEvent: LifestyleEvent{
			Event:  "Started a new night-shift job",
			Timing: TimingRecent,
		},
	}
}

// StarterScenarios returns the built-in demo scenarios, in display order.
func StarterScenarios() []StarterScenario {
	adherenceDip := DefaultSimulatorInput()
	adherenceDip.Medication = Medication{
		CurrentlyTaking:  []string{"Metformin", "Lisinopril"},
		AdherencePercent: 55,
	}
	adherenceDip.Symptom = Symptom{
		Description:  "Increased thirst and intermittent dizziness",
		DurationDays: 14,
		Severity:     SeverityModerate,
	}

	improvement := DefaultSimulatorInput()
	improvement.BehaviorChange = BehaviorChange{
		SleepHours:          7,
		ExerciseDaysPerWeek: 4,
	}
	improvement.LifestyleEvent = LifestyleEvent{
		Event:  "Started a structured morning routine",
		Timing: TimingCurrent,
	}

	return []StarterScenario{
		{
			ID:      "sx-fatigue-coverage",
			Title:   "Fatigue + Headache with PCP Gap",
			Summary: "Simulate triage and coverage-aware next steps without an assigned PCP.",
			Input:   DefaultSimulatorInput(),
		},
		{
			ID:      "med-adherence-swing",
			Title:   "Medication Adherence Dip",
			Summary: "See impact on risk priority when adherence falls over 30 days.",
			Input:   adherenceDip,
		},
		{
			ID:      "behavior-improvement",
			Title:   "Lifestyle Improvement Plan",
			Summary: "Test how better sleep and activity can shift the recommendation ranking.",
			Input:   improvement,
		},
	}
}

func ptr(v float64) *float64 {
	return &v
}
