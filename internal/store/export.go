package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/parladev/parla/internal/review"
)

// ExportVersion tags export files so future schema changes stay readable.
const ExportVersion = 1

// Export is the JSON file shape for attempt-history dumps.
type Export struct {
	Version    int                    `json:"version"`
	ExportedAt time.Time              `json:"exported_at"`
	Attempts   []review.AttemptRecord `json:"attempts"`
}

// exportSchema validates imported dumps before any row touches the database.
const exportSchema = `{
	"type": "object",
	"required": ["version", "attempts"],
	"properties": {
		"version": {"type": "integer", "minimum": 1},
		"exported_at": {"type": "string"},
		"attempts": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "line", "ratio"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"session_id": {"type": "string"},
					"timestamp": {"type": "string"},
					"line": {"type": "string", "minLength": 1},
					"response": {"type": "string"},
					"question": {"type": "string"},
					"answer": {"type": "string"},
					"question_lang": {"type": "string"},
					"answer_lang": {"type": "string"},
					"hint_strength": {"type": "integer", "minimum": 0},
					"attempts": {"type": "integer", "minimum": 0},
					"elapsed_seconds": {"type": "number", "minimum": 0},
					"ratio": {"type": "number", "minimum": 0, "maximum": 1}
				}
			}
		}
	}
}`

var (
	compiledExportSchema *jsonschema.Schema
	compileExportOnce    sync.Once
	compileExportErr     error
)

func exportSchemaCompiled() (*jsonschema.Schema, error) {
	compileExportOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(exportSchema), &parsed); err != nil {
			compileExportErr = fmt.Errorf("parse export schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://attempt-export.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileExportErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledExportSchema, compileExportErr = c.Compile(url)
	})
	return compiledExportSchema, compileExportErr
}

// ExportJSON writes the full attempt history as indented JSON.
func (r *AttemptRepo) ExportJSON(ctx context.Context, w io.Writer) error {
	rows, err := r.db.QueryContext(ctx, `SELECT
		id, session_id, created_at, line, response, question, answer,
		question_lang, answer_lang, hint_strength, attempts, elapsed_secs, ratio
	FROM attempts ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	exp := Export{
		Version:    ExportVersion,
		ExportedAt: time.Now().UTC(),
		Attempts:   []review.AttemptRecord{},
	}
	for rows.Next() {
		var rec review.AttemptRecord
		var created string
		if err := rows.Scan(
			&rec.ID, &rec.SessionID, &created, &rec.Line, &rec.Response,
			&rec.Question, &rec.Answer, &rec.QuestionLang, &rec.AnswerLang,
			&rec.HintStrength, &rec.Attempts, &rec.ElapsedSeconds, &rec.Ratio,
		); err != nil {
			return fmt.Errorf("scan attempt: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			rec.Timestamp = t
		}
		exp.Attempts = append(exp.Attempts, rec)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(exp); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// ImportJSON reads a dump produced by ExportJSON, validates it against the
// export schema, and inserts the records. Records whose id already exists
// are skipped, so re-importing the same file is safe. Returns the number
// of records inserted.
func (r *AttemptRepo) ImportJSON(ctx context.Context, rd io.Reader) (int, error) {
	raw, err := io.ReadAll(rd)
	if err != nil {
		return 0, fmt.Errorf("read import: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return 0, fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := exportSchemaCompiled()
	if err != nil {
		return 0, err
	}
	if err := schema.Validate(parsed); err != nil {
		return 0, fmt.Errorf("import rejected: %w", err)
	}

	var exp Export
	if err := json.Unmarshal(raw, &exp); err != nil {
		return 0, fmt.Errorf("decode export: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO attempts (
		id, session_id, created_at, line, response, question, answer,
		question_lang, answer_lang, hint_strength, attempts, elapsed_secs, ratio
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, rec := range exp.Attempts {
		res, err := stmt.ExecContext(ctx,
			rec.ID, rec.SessionID, rec.Timestamp.UTC().Format(time.RFC3339Nano),
			rec.Line, rec.Response, rec.Question, rec.Answer,
			rec.QuestionLang, rec.AnswerLang, rec.HintStrength,
			rec.Attempts, rec.ElapsedSeconds, rec.Ratio,
		)
		if err != nil {
			return 0, fmt.Errorf("insert attempt %s: %w", rec.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return inserted, nil
}
