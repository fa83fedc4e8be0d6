package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/cdgonzal/myveevee/internal/scenario"
)

// resolveScenario turns a command argument into a scenario: a path to a
// YAML file, or the ID of a built-in starter scenario.
//
// File loading includes CUE schema validation, so a resolved file scenario
// is always in-range. Starter scenarios are constructed in code and trusted.
// Validation failures map to ExitFailure, everything else to
// ExitCommandError.
func resolveScenario(arg string) (*scenario.Scenario, error) {
	if _, statErr := os.Stat(arg); statErr == nil {
		sc, err := scenario.Load(arg)
		if err != nil {
			var vErr *scenario.ValidationError
			if errors.As(err, &vErr) {
				return nil, WrapExitError(ExitFailure, "scenario failed validation", err)
			}
			return nil, WrapExitError(ExitCommandError, "failed to load scenario", err)
		}
		return sc, nil
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return nil, WrapExitError(ExitCommandError, "cannot access scenario file", statErr)
	}

	sc, err := scenario.FromStarter(arg)
	if err != nil {
		return nil, WrapExitError(ExitCommandError,
			"argument is neither a scenario file nor a starter scenario ID", err)
	}
	return sc, nil
}
