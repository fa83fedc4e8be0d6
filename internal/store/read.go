package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cdgonzal/myveevee/internal/audit"
)

// Recent returns up to n audit records, newest first.
// n <= 0 returns all retained records.
func (s *Store) Recent(ctx context.Context, n int) ([]audit.Record, error) {
	if n <= 0 {
		n = s.max
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, recorded_at, source, input_summary, output_summary
		FROM audit_records
		ORDER BY id DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("read audit records: %w", err)
	}
	defer rows.Close()

	var records []audit.Record
	for rows.Next() {
		var (
			rec        audit.Record
			inputJSON  string
			outputJSON string
		)
		if err := rows.Scan(&rec.RunID, &rec.Timestamp, &rec.Source, &inputJSON, &outputJSON); err != nil {
			return nil, fmt.Errorf("read audit records: scan: %w", err)
		}
		if err := json.Unmarshal([]byte(inputJSON), &rec.InputSummary); err != nil {
			return nil, fmt.Errorf("read audit records: decode input summary for %s: %w", rec.RunID, err)
		}
		if err := json.Unmarshal([]byte(outputJSON), &rec.OutputSummary); err != nil {
			return nil, fmt.Errorf("read audit records: decode output summary for %s: %w", rec.RunID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read audit records: %w", err)
	}
	return records, nil
}

// Count returns the number of retained audit records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM audit_records").Scan(&n); err != nil {
		return 0, fmt.Errorf("count audit records: %w", err)
	}
	return n, nil
}
