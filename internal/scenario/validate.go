package scenario

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/cdgonzal/myveevee/internal/sim"
)

//go:embed schema.cue
var schemaCUE string

// ValidateInput checks a snapshot against the embedded CUE schema.
// Returns nil when the input satisfies every constraint; otherwise an error
// listing each violation with its field path.
//
// A fresh CUE context is built per call. Validation runs at CLI/file
// granularity, so compile cost is irrelevant and no shared state means no
// locking.
func ValidateInput(in sim.SimulatorInput) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile input schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#SimulatorInput"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("lookup input schema: %w", err)
	}

	val := ctx.Encode(inputMap(in))
	if err := val.Err(); err != nil {
		return fmt.Errorf("encode input: %w", err)
	}

	unified := def.Unify(val)
	if err := unified.Validate(cue.Concrete(true), cue.Final()); err != nil {
		return &ValidationError{Issues: issueList(err)}
	}
	return nil
}

// ValidationError reports one or more schema violations.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return "input validation failed: " + e.Issues[0]
	}
	return fmt.Sprintf("input validation failed (%d issues): %s", len(e.Issues), e.Issues[0])
}

// issueList flattens a CUE error into per-field messages.
func issueList(err error) []string {
	var issues []string
	for _, e := range cueerrors.Errors(err) {
		path := cueerrors.Path(e)
		msg := e.Error()
		if len(path) > 0 {
			issues = append(issues, fmt.Sprintf("%s: %s", pathString(path), msg))
		} else {
			issues = append(issues, msg)
		}
	}
	if len(issues) == 0 {
		issues = append(issues, err.Error())
	}
	return issues
}

func pathString(path []string) string {
	out := ""
	for i, p := range path {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}

// inputMap projects a snapshot into the plain map the CUE encoder expects.
// Unknown labs are omitted entirely - a nil pointer must not become null,
// which would fail unification against the optional number fields.
func inputMap(in sim.SimulatorInput) map[string]any {
	meds := make([]any, len(in.Medication.CurrentlyTaking))
	for i, m := range in.Medication.CurrentlyTaking {
		meds[i] = m
	}

	labs := map[string]any{}
	if in.Labs.A1C != nil {
		labs["a1c"] = *in.Labs.A1C
	}
	if in.Labs.SystolicBP != nil {
		labs["systolicBp"] = *in.Labs.SystolicBP
	}
	if in.Labs.LDL != nil {
		labs["ldl"] = *in.Labs.LDL
	}

	return map[string]any{
		"profile": map[string]any{
			"ageRange":            string(in.Profile.AgeRange),
			"state":               in.Profile.State,
			"hasChronicCondition": in.Profile.HasChronicCondition,
		},
		"insurance": map[string]any{
			"payer":          in.Insurance.Payer,
			"planType":       string(in.Insurance.PlanType),
			"hasPcpAssigned": in.Insurance.HasPCPAssigned,
		},
		"symptom": map[string]any{
			"description":  in.Symptom.Description,
			"durationDays": in.Symptom.DurationDays,
			"severity":     string(in.Symptom.Severity),
		},
		"behaviorChange": map[string]any{
			"sleepHours":          in.BehaviorChange.SleepHours,
			"exerciseDaysPerWeek": in.BehaviorChange.ExerciseDaysPerWeek,
		},
		"medication": map[string]any{
			"currentlyTaking":  meds,
			"adherencePercent": in.Medication.AdherencePercent,
		},
		"labs": labs,
		"lifestyleEvent": map[string]any{
			"event":  in.LifestyleEvent.Event,
			"timing": string(in.LifestyleEvent.Timing),
		},
	}
}
