package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cdgonzal/myveevee/internal/audit"
	"github.com/cdgonzal/myveevee/internal/harness"
	"github.com/cdgonzal/myveevee/internal/sim"
	"github.com/cdgonzal/myveevee/internal/store"
)

// ScoreOptions holds flags for the score command.
type ScoreOptions struct {
	*RootOptions
	Database string
	Source   string
}

// NewScoreCommand creates the score command.
func NewScoreCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScoreOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "score <scenario>",
		Short: "Score a scenario and print the result",
		Long: `Score a scenario snapshot with the deterministic rule engine.

The argument is a scenario YAML file or a built-in starter scenario ID
(see "myveevee scenarios"). File inputs are schema-validated before
scoring. If the scenario declares expectations, mismatches are reported
and the command exits 1.

With --db, a privacy-redacted audit record is persisted best-effort to the
given SQLite database; storage failures never fail the command.

Example:
  myveevee score scenario.yaml
  myveevee score sx-fatigue-coverage --db ./audit.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite audit database (optional)")
	cmd.Flags().StringVar(&opts.Source, "source", "cli-score", "source tag recorded in the audit trail")

	return cmd
}

func runScore(opts *ScoreOptions, arg string, cmd *cobra.Command) error {
	sc, err := resolveScenario(arg)
	if err != nil {
		return err
	}

	slog.Debug("scoring scenario", "name", sc.Name)
	res := harness.Run(sc)

	if opts.Database != "" {
		persistAudit(cmd, opts.Database, sc.Input, res.Output, opts.Source)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if formatter.JSON() {
		if err := formatter.Success(res.Output); err != nil {
			return WrapExitError(ExitCommandError, "failed to write output", err)
		}
	} else {
		writeResultText(cmd, sc.Name, res.Output)
	}

	if !res.Passed() {
		for _, f := range res.Failures {
			fmt.Fprintf(cmd.ErrOrStderr(), "expectation failed: %s\n", f)
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%d expectation(s) failed", len(res.Failures)))
	}
	return nil
}

// persistAudit writes the audit record best-effort. Open failures are
// logged and swallowed like persist failures: audit trouble must never
// surface as a scoring error.
func persistAudit(cmd *cobra.Command, dbPath string, input sim.SimulatorInput, result sim.SimulationResult, source string) {
	st, err := store.Open(dbPath)
	if err != nil {
		slog.Warn("audit store unavailable", "path", dbPath, "error", err)
		return
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Warn("error closing audit store", "error", closeErr)
		}
	}()

	rec := audit.NewBuilder().Record(input, result, source)
	audit.BestEffortPersist(cmd.Context(), st, rec)
	slog.Debug("audit record persisted", "run_id", rec.RunID)
}

func writeResultText(cmd *cobra.Command, name string, out sim.SimulationResult) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Scenario: %s\n", name)
	fmt.Fprintf(w, "Risk: %d (%s)\n", out.RiskScore, out.RiskLevel)

	if len(out.RiskSignals) > 0 {
		fmt.Fprintln(w, "Signals:")
		for _, s := range out.RiskSignals {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}

	if len(out.TwinStateUpdates) > 0 {
		fmt.Fprintln(w, "Twin state updates:")
		for _, tw := range out.TwinStateUpdates {
			fmt.Fprintf(w, "  %s %s: %s\n", tw.Field, arrow(tw.Direction), tw.Summary)
		}
	}

	fmt.Fprintln(w, "Recommendations:")
	for _, rec := range out.Recommendations {
		fmt.Fprintf(w, "  [%3d] %s: %s\n", rec.Priority, rec.ID, rec.Title)
	}

	fmt.Fprintln(w, "Follow-up questions:")
	for _, q := range out.FollowUpQuestions {
		fmt.Fprintf(w, "  - %s\n", q)
	}

	fmt.Fprintf(w, "Versions: %s\n", strings.Join([]string{
		out.PipelineVersion, out.PolicyVersion, out.GuardrailVersion, out.CoverageVersion,
	}, ", "))
}

func arrow(dir sim.TwinDirection) string {
	switch dir {
	case sim.TwinUp:
		return "↑"
	case sim.TwinDown:
		return "↓"
	default:
		return "~"
	}
}
