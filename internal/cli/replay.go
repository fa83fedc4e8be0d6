package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cdgonzal/myveevee/internal/engine"
	"github.com/cdgonzal/myveevee/internal/harness"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Times int
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay <scenario>",
		Short: "Verify deterministic replay of a scenario",
		Long: `Score a scenario repeatedly and verify every run produces
byte-identical canonical output.

The scorer is pure, so any divergence means a nondeterminism bug (map
iteration leaking into output order, hidden state, clock access). Exits 1
on divergence with the first differing run.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Times, "times", 2, "number of runs to compare")

	return cmd
}

func runReplay(opts *ReplayOptions, arg string, cmd *cobra.Command) error {
	if opts.Times < 2 {
		return NewExitError(ExitCommandError, "--times must be at least 2")
	}

	sc, err := resolveScenario(arg)
	if err != nil {
		return err
	}

	baseline, err := harness.Snapshot(sc.Name, engine.Score(sc.Input))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to snapshot baseline run", err)
	}

	for i := 1; i < opts.Times; i++ {
		snapshot, err := harness.Snapshot(sc.Name, engine.Score(sc.Input))
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to snapshot run %d", i+1), err)
		}
		if !bytes.Equal(baseline, snapshot) {
			fmt.Fprintf(cmd.ErrOrStderr(), "run 1:  %s\n", baseline)
			fmt.Fprintf(cmd.ErrOrStderr(), "run %d: %s\n", i+1, snapshot)
			return NewExitError(ExitFailure,
				fmt.Sprintf("replay diverged: run %d differs from run 1", i+1))
		}
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if formatter.JSON() {
		return formatter.Success(map[string]any{
			"scenario":      sc.Name,
			"runs":          opts.Times,
			"deterministic": true,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deterministic: %d runs of %q produced identical output.\n", opts.Times, sc.Name)
	return nil
}
