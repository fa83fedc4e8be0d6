package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenario.yaml>",
		Short: "Validate a scenario file without scoring it",
		Long: `Validate a scenario YAML file against the input schema.

Checks enums (age range, plan type, severity, timing), the 2-letter state
code, and numeric bounds (duration 1-365 days, adherence 0-100, sleep 0-24
hours, lab reference ranges). Exits 1 on validation failure, 2 if the file
cannot be read.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	sc, err := resolveScenario(path)
	if err != nil {
		return err
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if formatter.JSON() {
		return formatter.Success(map[string]any{
			"scenario": sc.Name,
			"valid":    true,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Scenario %q is valid.\n", sc.Name)
	return nil
}
