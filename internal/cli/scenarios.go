package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cdgonzal/myveevee/internal/sim"
)

// NewScenariosCommand creates the scenarios command.
func NewScenariosCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List built-in starter scenarios",
		Long: `List the built-in starter scenarios. Any listed ID can be passed
to score, trace, or replay in place of a scenario file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(rootOpts, cmd)
		},
	}
	return cmd
}

func runScenarios(opts *RootOptions, cmd *cobra.Command) error {
	starters := sim.StarterScenarios()

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if formatter.JSON() {
		type entry struct {
			ID      string `json:"id"`
			Title   string `json:"title"`
			Summary string `json:"summary"`
		}
		entries := make([]entry, len(starters))
		for i, st := range starters {
			entries[i] = entry{ID: st.ID, Title: st.Title, Summary: st.Summary}
		}
		return formatter.Success(entries)
	}

	w := cmd.OutOrStdout()
	for _, st := range starters {
		fmt.Fprintf(w, "%-22s %s\n", st.ID, st.Title)
		fmt.Fprintf(w, "%-22s   %s\n", "", st.Summary)
	}
	return nil
}
