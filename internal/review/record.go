package review

import (
	"context"
	"time"
)

// AttemptRecord is the immutable outcome of one answer submission, handed
// to the persistence collaborator by value.
type AttemptRecord struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"session_id"`
	Timestamp      time.Time `json:"timestamp"`
	Line           string    `json:"line"`
	Response       string    `json:"response"`
	Question       string    `json:"question"`
	Answer         string    `json:"answer"`
	QuestionLang   string    `json:"question_lang"`
	AnswerLang     string    `json:"answer_lang"`
	HintStrength   int       `json:"hint_strength"`
	Attempts       int       `json:"attempts"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	Ratio          float64   `json:"ratio"` // 0.0-1.0, 1.0 = first-try exact match
}

// History is the persistence collaborator for attempt records.
type History interface {
	// Append stores one attempt record.
	Append(ctx context.Context, rec AttemptRecord) error

	// Recent returns the correctness ratios of the newest k attempts for
	// the given line, newest first.
	Recent(ctx context.Context, line string, k int) ([]float64, error)
}
