package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cdgonzal/myveevee/internal/engine"
)

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <scenario>",
		Short: "Print the decision trace for a scenario",
		Long: `Score a scenario and print only its decision trace.

The trace lists every fired rule in evaluation order, from the input
ingestion step through policy, guardrail, and coverage rules to the
reasoning and output bookends. Trace order is a published contract: two
runs of the same snapshot always produce the identical trace.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runTrace(opts *RootOptions, arg string, cmd *cobra.Command) error {
	sc, err := resolveScenario(arg)
	if err != nil {
		return err
	}

	out := engine.Score(sc.Input)

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if formatter.JSON() {
		return formatter.Success(map[string]any{
			"scenario":      sc.Name,
			"riskScore":     out.RiskScore,
			"riskLevel":     out.RiskLevel,
			"decisionTrace": out.DecisionTrace,
		})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Decision trace for %q (%d steps):\n", sc.Name, len(out.DecisionTrace))
	for i, step := range out.DecisionTrace {
		fmt.Fprintf(w, "%3d. [%-9s] %-26s %s\n", i+1, step.Stage, step.RuleID, step.Detail)
	}
	return nil
}
