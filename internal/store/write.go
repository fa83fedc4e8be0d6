package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cdgonzal/myveevee/internal/audit"
)

// Persist inserts an audit record and trims the log back to the retention
// cap, both inside one transaction so a crash never leaves the table over
// cap. Duplicate run IDs are silently ignored (ON CONFLICT DO NOTHING) -
// persisting the same record twice is idempotent.
//
// Implements audit.Sink.
func (s *Store) Persist(ctx context.Context, rec audit.Record) error {
	inputJSON, err := json.Marshal(rec.InputSummary)
	if err != nil {
		return fmt.Errorf("persist audit record: marshal input summary: %w", err)
	}
	outputJSON, err := json.Marshal(rec.OutputSummary)
	if err != nil {
		return fmt.Errorf("persist audit record: marshal output summary: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("persist audit record: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	_, err = tx.ExecContext(ctx, `
		INSERT INTO audit_records
		(run_id, recorded_at, source, risk_score, risk_level, pipeline_version, input_summary, output_summary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO NOTHING
	`,
		rec.RunID,
		rec.Timestamp,
		rec.Source,
		rec.OutputSummary.RiskScore,
		string(rec.OutputSummary.RiskLevel),
		rec.OutputSummary.PipelineVersion,
		string(inputJSON),
		string(outputJSON),
	)
	if err != nil {
		return fmt.Errorf("persist audit record: insert: %w", err)
	}

	// Bounded retention: keep only the newest max rows. Insert order is the
	// rowid order, so "newest" is the highest id.
	_, err = tx.ExecContext(ctx, `
		DELETE FROM audit_records
		WHERE id NOT IN (
			SELECT id FROM audit_records ORDER BY id DESC LIMIT ?
		)
	`, s.max)
	if err != nil {
		return fmt.Errorf("persist audit record: trim: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("persist audit record: commit: %w", err)
	}
	return nil
}
