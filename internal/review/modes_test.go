package review

import (
	"context"
	"testing"

	"github.com/parladev/parla/internal/vocab"
)

func TestLearn_CopyThenMemory(t *testing.T) {
	ctx := context.Background()
	mode := &Learn{MaxAttempts: 2}
	s := New(mode, []*vocab.ReviewItem{mustItem(t, "hello;hola")}, Options{Rand: testRand()})

	if err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}

	// Copy stage: answer is shown, no hint.
	pres := s.Current()
	if pres.Prompt.Reveal != "hola" {
		t.Fatalf("copy stage reveal = %q, want hola", pres.Prompt.Reveal)
	}
	if pres.Hint != "" {
		t.Error("copy stage should not carry a masked hint")
	}

	// Wrong copy retries the same stage.
	if _, err := s.Submit(ctx, "halo"); err != nil {
		t.Fatal(err)
	}
	if s.Current().Prompt.Reveal != "hola" {
		t.Fatal("still in copy stage expected")
	}

	// Correct copy moves to the memory stage of the same item.
	if _, err := s.Submit(ctx, "hola"); err != nil {
		t.Fatal(err)
	}
	pres = s.Current()
	if pres.Prompt.Reveal != "" {
		t.Fatalf("memory stage should hide the answer, got %q", pres.Prompt.Reveal)
	}
	if s.Phase() != PhaseAwaiting {
		t.Fatal("expected awaiting in memory stage")
	}

	// Correct from memory finishes the item.
	if _, err := s.Submit(ctx, "hola"); err != nil {
		t.Fatal(err)
	}
	if s.Phase() != PhaseDone {
		t.Fatalf("phase = %v, want done", s.Phase())
	}
}

func TestLearn_MemoryFailureLoopsBack(t *testing.T) {
	ctx := context.Background()
	mode := &Learn{MaxAttempts: 2}
	s := New(mode, []*vocab.ReviewItem{mustItem(t, "hello;hola")}, Options{Rand: testRand()})

	if err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Submit(ctx, "hola"); err != nil { // copy stage done
		t.Fatal(err)
	}

	// Exhaust the memory stage.
	if _, err := s.Submit(ctx, "nope"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Submit(ctx, "nope"); err != nil {
		t.Fatal(err)
	}

	// Back in the copy stage with the answer visible.
	if s.Current().Prompt.Reveal != "hola" {
		t.Fatalf("expected relearn with reveal, got %q", s.Current().Prompt.Reveal)
	}
	if len(s.Missed()) != 1 {
		t.Errorf("missed = %d, want 1", len(s.Missed()))
	}
}

func TestTranslate_ListenThenTranslate(t *testing.T) {
	ctx := context.Background()
	mode := &Translate{
		ListenMinScore:            90,
		ListenAttemptsToReveal:    2,
		TranslateMinScore:         90,
		TranslateAttemptsToReveal: 2,
	}
	s := New(mode, []*vocab.ReviewItem{mustItem(t, "hello;hola")}, Options{Rand: testRand()})

	if err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}

	// Listen stage scores against the side-2 phrase.
	pres := s.Current()
	if len(pres.Prompt.Answers) != 1 || pres.Prompt.Answers[0] != "hola" {
		t.Fatalf("listen answers = %v", pres.Prompt.Answers)
	}

	// One miss: retry without reveal (threshold is 2 attempts).
	if _, err := s.Submit(ctx, "ola"); err != nil {
		t.Fatal(err)
	}
	if s.Current().ShowAnswer {
		t.Error("reveal too early")
	}

	// Second miss reveals.
	if _, err := s.Submit(ctx, "xx"); err != nil {
		t.Fatal(err)
	}
	if !s.Current().ShowAnswer {
		t.Error("expected reveal after two misses")
	}

	// Correct listen moves to the translate stage.
	if _, err := s.Submit(ctx, "hola"); err != nil {
		t.Fatal(err)
	}
	pres = s.Current()
	if pres.Prompt.Question != "hola" {
		t.Fatalf("translate stage question = %q, want hola", pres.Prompt.Question)
	}
	if len(pres.Prompt.Answers) != 1 || pres.Prompt.Answers[0] != "hello" {
		t.Fatalf("translate answers = %v", pres.Prompt.Answers)
	}

	if _, err := s.Submit(ctx, "hello"); err != nil {
		t.Fatal(err)
	}
	if s.Phase() != PhaseDone {
		t.Fatalf("phase = %v, want done", s.Phase())
	}
}

func TestTranslate_SkipTranslate(t *testing.T) {
	ctx := context.Background()
	mode := &Translate{ListenMinScore: 90, ListenAttemptsToReveal: 2, SkipTranslate: true}
	s := New(mode, []*vocab.ReviewItem{mustItem(t, "hello;hola")}, Options{Rand: testRand()})

	if err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Submit(ctx, "hola"); err != nil {
		t.Fatal(err)
	}
	if s.Phase() != PhaseDone {
		t.Fatal("skip-translate should finish after the listen stage")
	}
}

func TestRapid_RevealThenAdvance(t *testing.T) {
	ctx := context.Background()
	s := New(&Rapid{ShowLang1First: true}, []*vocab.ReviewItem{mustItem(t, "hello;hola")},
		Options{Rand: testRand()})

	if err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}
	pres := s.Current()
	if pres.Prompt.Question != "hello" || pres.Prompt.Reveal != "" {
		t.Fatalf("first phase = %+v", pres.Prompt)
	}
	if pres.Prompt.AcceptsInput {
		t.Error("rapid mode takes no typed input")
	}

	if err := s.Continue(ctx); err != nil {
		t.Fatal(err)
	}
	pres = s.Current()
	if pres.Prompt.Reveal != "hola" {
		t.Fatalf("second phase reveal = %q, want hola", pres.Prompt.Reveal)
	}

	s.MarkMissed()
	if err := s.Continue(ctx); err != nil {
		t.Fatal(err)
	}
	if s.Phase() != PhaseDone {
		t.Fatal("expected done")
	}
	if len(s.Missed()) != 1 {
		t.Errorf("missed = %d, want 1", len(s.Missed()))
	}
}

func TestListen_SpeakScript(t *testing.T) {
	mode := &Listen{SlowRepeat: true}
	pr := mode.Present(mustItem(t, "hello;hola"), testRand())
	if pr.AcceptsInput {
		t.Error("listen mode takes no typed input")
	}
	if len(pr.Speak) != 3 {
		t.Fatalf("speak script = %v, want 3 utterances", pr.Speak)
	}
	if pr.Speak[0].Lang != "en" || pr.Speak[1].Slow != true || pr.Speak[2].Slow != false {
		t.Errorf("speak script order wrong: %+v", pr.Speak)
	}
}
