package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/parladev/parla/internal/review"
)

// AttemptRepo persists attempt records and serves the per-line history
// windows that drive adaptive hinting. It implements review.History.
type AttemptRepo struct {
	db *sql.DB
}

var _ review.History = (*AttemptRepo)(nil)

// Append stores one attempt record.
func (r *AttemptRepo) Append(ctx context.Context, rec review.AttemptRecord) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO attempts (
		id, session_id, created_at, line, response, question, answer,
		question_lang, answer_lang, hint_strength, attempts, elapsed_secs, ratio
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.SessionID,
		rec.Timestamp.UTC().Format(time.RFC3339Nano),
		rec.Line,
		rec.Response,
		rec.Question,
		rec.Answer,
		rec.QuestionLang,
		rec.AnswerLang,
		rec.HintStrength,
		rec.Attempts,
		rec.ElapsedSeconds,
		rec.Ratio,
	)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

// Recent returns the correctness ratios of the newest k attempts for a
// line, newest first.
func (r *AttemptRepo) Recent(ctx context.Context, line string, k int) ([]float64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ratio FROM attempts WHERE line = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		line, k,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent ratios: %w", err)
	}
	defer rows.Close()

	var ratios []float64
	for rows.Next() {
		var ratio float64
		if err := rows.Scan(&ratio); err != nil {
			return nil, fmt.Errorf("scan ratio: %w", err)
		}
		ratios = append(ratios, ratio)
	}
	return ratios, rows.Err()
}

// Summary aggregates the whole attempt history for the stats screen.
type Summary struct {
	TotalAttempts int
	DistinctLines int
	MeanRatio     float64
	LastAttempt   time.Time
}

// Summary computes history-wide aggregates.
func (r *AttemptRepo) Summary(ctx context.Context) (*Summary, error) {
	var s Summary
	var last sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT
		COUNT(*),
		COUNT(DISTINCT line),
		COALESCE(AVG(ratio), 0),
		MAX(created_at)
	FROM attempts`).Scan(&s.TotalAttempts, &s.DistinctLines, &s.MeanRatio, &last)
	if err != nil {
		return nil, fmt.Errorf("summary query: %w", err)
	}
	if last.Valid {
		if t, err := time.Parse(time.RFC3339Nano, last.String); err == nil {
			s.LastAttempt = t
		}
	}
	return &s, nil
}

// LineStats describes one vocabulary line's history.
type LineStats struct {
	Line      string
	Attempts  int
	MeanRatio float64
	LastSeen  time.Time
}

// WeakestLines returns up to limit lines ordered by ascending mean ratio,
// the lines most in need of review.
func (r *AttemptRepo) WeakestLines(ctx context.Context, limit int) ([]LineStats, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT
		line, COUNT(*), AVG(ratio), MAX(created_at)
	FROM attempts
	GROUP BY line
	ORDER BY AVG(ratio) ASC, MAX(created_at) DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("weakest lines query: %w", err)
	}
	defer rows.Close()

	var stats []LineStats
	for rows.Next() {
		var ls LineStats
		var seen string
		if err := rows.Scan(&ls.Line, &ls.Attempts, &ls.MeanRatio, &seen); err != nil {
			return nil, fmt.Errorf("scan line stats: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, seen); err == nil {
			ls.LastSeen = t
		}
		stats = append(stats, ls)
	}
	return stats, rows.Err()
}

// Reset deletes the entire attempt history.
func (r *AttemptRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
		return fmt.Errorf("reset attempts: %w", err)
	}
	return nil
}
