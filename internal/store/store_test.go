package store

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/parladev/parla/internal/review"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(id, line string, ratio float64, at time.Time) review.AttemptRecord {
	return review.AttemptRecord{
		ID:             id,
		SessionID:      "sess-1",
		Timestamp:      at,
		Line:           line,
		Response:       "hola",
		Question:       "hello",
		Answer:         "hola",
		QuestionLang:   "en",
		AnswerLang:     "es",
		HintStrength:   0,
		Attempts:       1,
		ElapsedSeconds: 2.5,
		Ratio:          ratio,
	}
}

func TestStore_OpenMigratesSchema(t *testing.T) {
	s := openTestStore(t)

	var n int
	err := s.DB().QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'attempts'`,
	).Scan(&n)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("attempts table missing")
	}
}

func TestAttemptRepo_AppendAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Attempts()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ratios := []float64{0.3, 0.5, 1.0, 0.8}
	for i, r := range ratios {
		rec := testRecord("id-"+string(rune('a'+i)), "hello;hola", r, base.Add(time.Duration(i)*time.Minute))
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.Append(ctx, testRecord("id-z", "bye;adios", 0.9, base)); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Recent(ctx, "hello;hola", 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.8, 1.0, 0.5} // newest first
	if len(got) != len(want) {
		t.Fatalf("recent = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("recent[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	none, err := repo.Recent(ctx, "unknown;line", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("expected no ratios for unseen line, got %v", none)
	}
}

func TestAttemptRepo_Summary(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Attempts()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if err := repo.Append(ctx, testRecord("a", "hello;hola", 1.0, base)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Append(ctx, testRecord("b", "bye;adios", 0.5, base.Add(time.Hour))); err != nil {
		t.Fatal(err)
	}

	sum, err := repo.Summary(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if sum.TotalAttempts != 2 || sum.DistinctLines != 2 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.MeanRatio != 0.75 {
		t.Errorf("mean ratio = %v, want 0.75", sum.MeanRatio)
	}
	if !sum.LastAttempt.Equal(base.Add(time.Hour)) {
		t.Errorf("last attempt = %v", sum.LastAttempt)
	}
}

func TestAttemptRepo_WeakestLines(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Attempts()

	base := time.Now().UTC()
	for i, tc := range []struct {
		id, line string
		ratio    float64
	}{
		{"a", "hard;dificil", 0.2},
		{"b", "hard;dificil", 0.4},
		{"c", "easy;facil", 1.0},
	} {
		if err := repo.Append(ctx, testRecord(tc.id, tc.line, tc.ratio, base.Add(time.Duration(i)*time.Second))); err != nil {
			t.Fatal(err)
		}
	}

	weak, err := repo.WeakestLines(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(weak) != 2 {
		t.Fatalf("weakest = %+v", weak)
	}
	if weak[0].Line != "hard;dificil" || weak[0].Attempts != 2 {
		t.Errorf("weakest[0] = %+v", weak[0])
	}
	if weak[0].MeanRatio < 0.29 || weak[0].MeanRatio > 0.31 {
		t.Errorf("weakest mean = %v, want ~0.3", weak[0].MeanRatio)
	}
}

func TestAttemptRepo_Reset(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Attempts()

	if err := repo.Append(ctx, testRecord("a", "hello;hola", 1.0, time.Now())); err != nil {
		t.Fatal(err)
	}
	if err := repo.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	sum, err := repo.Summary(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if sum.TotalAttempts != 0 {
		t.Errorf("attempts after reset = %d", sum.TotalAttempts)
	}
}

func TestAttemptRepo_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := openTestStore(t).Attempts()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if err := src.Append(ctx, testRecord("a", "hello;hola", 1.0, base)); err != nil {
		t.Fatal(err)
	}
	if err := src.Append(ctx, testRecord("b", "bye;adios", 0.5, base.Add(time.Minute))); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := src.ExportJSON(ctx, &buf); err != nil {
		t.Fatal(err)
	}

	dst := openTestStore(t).Attempts()
	n, err := dst.ImportJSON(ctx, bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("imported = %d, want 2", n)
	}

	got, err := dst.Recent(ctx, "hello;hola", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 1.0 {
		t.Errorf("imported ratios = %v", got)
	}

	// Importing the same dump again is a no-op.
	n, err = dst.ImportJSON(ctx, bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("re-import inserted %d rows", n)
	}
}

func TestAttemptRepo_ImportRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Attempts()

	cases := []struct {
		name string
		body string
	}{
		{"not json", `{{{`},
		{"missing version", `{"attempts": []}`},
		{"ratio out of range", `{"version": 1, "attempts": [{"id": "x", "line": "a;b", "ratio": 2.0}]}`},
		{"empty id", `{"version": 1, "attempts": [{"id": "", "line": "a;b", "ratio": 0.5}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := repo.ImportJSON(ctx, strings.NewReader(tc.body)); err == nil {
				t.Fatal("expected import rejection")
			}
		})
	}
}
