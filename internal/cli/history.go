package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cdgonzal/myveevee/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent audit records",
		Long: `Show recent audit records from the SQLite audit database,
newest first. Records are redacted summaries - no free text from any
scenario input is ever stored.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite audit database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "max records to show (default: all retained)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open audit database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing audit database", "error", closeErr)
		}
	}()

	records, err := st.Recent(cmd.Context(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read audit records", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if formatter.JSON() {
		return formatter.Success(records)
	}

	w := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(w, "No audit records.")
		return nil
	}
	for _, rec := range records {
		fmt.Fprintf(w, "%s  %s  score=%d level=%s recs=%d source=%s\n",
			rec.Timestamp,
			rec.RunID,
			rec.OutputSummary.RiskScore,
			rec.OutputSummary.RiskLevel,
			rec.OutputSummary.RecommendationCount,
			rec.Source,
		)
	}
	return nil
}
