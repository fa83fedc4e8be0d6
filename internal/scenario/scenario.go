package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cdgonzal/myveevee/internal/sim"
)

// Scenario is one scoring scenario: an input snapshot plus optional
// expectations used by the conformance harness and the replay command.
type Scenario struct {
	// Name uniquely identifies this scenario. Required; also names the
	// golden file when the scenario is golden-tested.
	Name string `yaml:"name"`

	// Description explains what the scenario exercises.
	Description string `yaml:"description,omitempty"`

	// Input is the snapshot handed to the engine.
	Input sim.SimulatorInput `yaml:"input"`

	// Expect holds optional assertions on the result. Nil means
	// "score it, assert nothing".
	Expect *Expectation `yaml:"expect,omitempty"`
}

// Expectation asserts on a scoring result. All fields are optional;
// only set fields are checked.
type Expectation struct {
	// RiskScore is the exact expected score.
	RiskScore *int `yaml:"riskScore,omitempty"`

	// RiskLevel is the expected band.
	RiskLevel sim.RiskLevel `yaml:"riskLevel,omitempty"`

	// RecommendationIDs is the full expected recommendation ID list,
	// in ranked order.
	RecommendationIDs []string `yaml:"recommendationIds,omitempty"`

	// Signals are risk-signal strings that must each be present.
	Signals []string `yaml:"signals,omitempty"`
}

// Load reads a scenario from a YAML file and validates its input against
// the embedded CUE schema. Returns a positioned error on schema violations.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("load scenario %s: parse yaml: %w", path, err)
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("load scenario %s: missing required field: name", path)
	}

	if err := ValidateInput(sc.Input); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	return &sc, nil
}

// FromStarter returns the built-in starter scenario with the given ID.
// Starter inputs are constructed in code and skip schema validation.
func FromStarter(id string) (*Scenario, error) {
	for _, st := range sim.StarterScenarios() {
		if st.ID == id {
			return &Scenario{
				Name:        st.ID,
				Description: st.Summary,
				Input:       st.Input,
			}, nil
		}
	}
	return nil, fmt.Errorf("unknown starter scenario: %s", id)
}
