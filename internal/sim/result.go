package sim

// RiskLevel is the banded interpretation of a risk score.
type RiskLevel string

// Risk levels, lowest to highest.
const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskUrgent   RiskLevel = "urgent"
)

// TwinDirection describes how a digital-twin field is expected to move.
type TwinDirection string

// Twin directions.
const (
	TwinUp    TwinDirection = "up"
	TwinDown  TwinDirection = "down"
	TwinWatch TwinDirection = "watch"
)

// TwinStateUpdate is a simulated effect on one field of the personal-health
// digital twin.
type TwinStateUpdate struct {
	Field     string        `json:"field"`
	Direction TwinDirection `json:"direction"`
	Summary   string        `json:"summary"`
}

// Recommendation is one ranked next step. Higher priority sorts first.
type Recommendation struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Rationale    string `json:"rationale"`
	Priority     int    `json:"priority"`
	CoverageNote string `json:"coverageNote"`
}

// TraceStage identifies which phase of the pipeline emitted a trace step.
type TraceStage string

// Trace stages, in pipeline order.
const (
	StageInput     TraceStage = "input"
	StagePolicy    TraceStage = "policy"
	StageGuardrail TraceStage = "guardrail"
	StageCoverage  TraceStage = "coverage"
	StageReasoning TraceStage = "reasoning"
	StageOutput    TraceStage = "output"
)

// TraceOutcome records how a rule resolved.
type TraceOutcome string

// Trace outcomes.
const (
	OutcomeApplied    TraceOutcome = "applied"
	OutcomeNotApplied TraceOutcome = "not_applied"
	OutcomeAdvisory   TraceOutcome = "advisory"
)

// DecisionTraceStep is one entry in the ordered decision trace.
// Steps are appended at the exact point a rule fires, so the trace order
// IS the evaluation order - replays must be diffable step for step.
type DecisionTraceStep struct {
	Stage   TraceStage   `json:"stage"`
	RuleID  string       `json:"ruleId"`
	Detail  string       `json:"detail"`
	Outcome TraceOutcome `json:"outcome"`
}

// SimulationResult is the full output of one scoring run.
//
// The four version tags identify the rule set that produced the result and
// are returned verbatim on every run. Bump them whenever a rule changes -
// downstream consumers diff results across releases by these tags.
type SimulationResult struct {
	PipelineVersion   string              `json:"pipelineVersion"`
	PolicyVersion     string              `json:"policyVersion"`
	GuardrailVersion  string              `json:"guardrailVersion"`
	CoverageVersion   string              `json:"coverageVersion"`
	RiskScore         int                 `json:"riskScore"`
	RiskLevel         RiskLevel           `json:"riskLevel"`
	RiskSignals       []string            `json:"riskSignals"`
	TwinStateUpdates  []TwinStateUpdate   `json:"twinStateUpdates"`
	Recommendations   []Recommendation    `json:"recommendations"`
	FollowUpQuestions []string            `json:"followUpQuestions"`
	DecisionTrace     []DecisionTraceStep `json:"decisionTrace"`
}
