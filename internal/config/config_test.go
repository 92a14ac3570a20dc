package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Review.ReviewNum != 20 || !cfg.Review.Shuffle || cfg.Review.MinScore != 90 {
		t.Errorf("review defaults = %+v", cfg.Review)
	}
	if cfg.Learn.MaxAttempts != 3 {
		t.Errorf("learn defaults = %+v", cfg.Learn)
	}
	if cfg.Source.Lang1.Code != "en" || cfg.Source.Lang2.Code != "es" {
		t.Errorf("language defaults = %+v / %+v", cfg.Source.Lang1, cfg.Source.Lang2)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Review.ReviewNum != 20 {
		t.Errorf("fallback reviewnum = %d", cfg.Review.ReviewNum)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true); err == nil {
		t.Error("explicit missing path should fail")
	}
}

func TestLoad_ReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
source:
  file: /tmp/vocab.txt
  lang1: {code: de, name: German}
  lang2: {code: fr, name: French}
review:
  reviewnum: 5
  shuffle: false
  min_score: 80
translate:
  skip_translate: true
listen:
  slow_repeat: false
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Source.File != "/tmp/vocab.txt" || cfg.Source.Lang1.Code != "de" {
		t.Errorf("source = %+v", cfg.Source)
	}
	if cfg.Review.ReviewNum != 5 || cfg.Review.Shuffle || cfg.Review.MinScore != 80 {
		t.Errorf("review = %+v", cfg.Review)
	}
	if !cfg.Translate.SkipTranslate {
		t.Error("skip_translate not read")
	}
	// An explicit false must survive the load, not revert to the default.
	if cfg.Listen.SlowRepeat {
		t.Error("listen.slow_repeat = true, want the explicit false kept")
	}
	// Unset sections keep their defaults.
	if cfg.Learn.MaxAttempts != 3 {
		t.Errorf("learn.max_attempts = %d, want default 3", cfg.Learn.MaxAttempts)
	}
	if !cfg.Rapid.ShowLang1First {
		t.Error("rapid.show_lang1_first lost its default")
	}
}

func TestLoad_FalseBoolsSurviveResave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	// Toggle every true-default bool off, as the settings editor would.
	cfg := Default()
	cfg.Review.Shuffle = false
	cfg.Learn.Talk2 = false
	cfg.Listen.SlowRepeat = false
	cfg.Rapid.ShowLang1First = false
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if got.Review.Shuffle || got.Learn.Talk2 || got.Listen.SlowRepeat || got.Rapid.ShowLang1First {
		t.Errorf("toggled-off bools reverted on reload: %+v %+v %+v %+v",
			got.Review, got.Learn, got.Listen, got.Rapid)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Review.ReviewNum = 7
	cfg.Source.File = "/data/es.txt"
	cfg.Rapid.ShowLang1First = false
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if got.Review.ReviewNum != 7 || got.Source.File != "/data/es.txt" {
		t.Errorf("round trip = %+v", got)
	}
	if got.Rapid.ShowLang1First {
		t.Error("rapid.show_lang1_first lost in round trip")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative reviewnum", func(c *Config) { c.Review.ReviewNum = -1 }},
		{"score above 100", func(c *Config) { c.Review.MinScore = 101 }},
		{"negative listen score", func(c *Config) { c.Translate.ListenMinScore = -5 }},
		{"zero learn attempts", func(c *Config) { c.Learn.MaxAttempts = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestFields_GetSetRoundTrip(t *testing.T) {
	cfg := Default()

	for _, f := range Fields() {
		cur := f.Get(cfg)
		if err := f.Set(cfg, cur); err != nil {
			t.Errorf("field %s rejects its own value %q: %v", f.Name, cur, err)
		}
		if got := f.Get(cfg); got != cur {
			t.Errorf("field %s changed %q -> %q on identity set", f.Name, cur, got)
		}
	}
}

func TestFields_ParseAndReject(t *testing.T) {
	cfg := Default()
	byName := make(map[string]Field)
	for _, f := range Fields() {
		byName[f.Name] = f
	}

	rn := byName["review.reviewnum"]
	if err := rn.Set(cfg, "42"); err != nil {
		t.Fatal(err)
	}
	if cfg.Review.ReviewNum != 42 {
		t.Errorf("reviewnum = %d", cfg.Review.ReviewNum)
	}
	if err := rn.Set(cfg, "many"); err == nil {
		t.Error("int field should reject non-numeric input")
	}

	sh := byName["review.shuffle"]
	if err := sh.Set(cfg, "false"); err != nil {
		t.Fatal(err)
	}
	if cfg.Review.Shuffle {
		t.Error("shuffle not updated")
	}
	if err := sh.Set(cfg, "maybe"); err == nil {
		t.Error("bool field should reject non-boolean input")
	}
}
