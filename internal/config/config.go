// Package config loads and persists the trainer's settings. Priority is
// ENV > YAML > defaults, via cleanenv tags on the structs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/parladev/parla/internal/vocab"
)

// Review holds the knobs shared by every review mode.
//
// Defaults live in defaults(), never in env-default tags: cleanenv
// applies env-default to any zero-valued field after the file is read,
// which would silently flip an explicit false (or 0) back to the
// default on the next load.
type Review struct {
	// ReviewNum caps how many items one session draws. 0 means all.
	ReviewNum int `yaml:"reviewnum" env:"PARLA_REVIEWNUM"`

	// Shuffle randomizes item order before sampling.
	Shuffle bool `yaml:"shuffle" env:"PARLA_SHUFFLE"`

	// MinScore is the fuzzy-match score (0-100) an answer must reach.
	MinScore int `yaml:"min_score" env:"PARLA_MIN_SCORE"`
}

// Learn configures the copy-then-recall mode.
type Learn struct {
	// MaxAttempts before the item drops back to the copy stage.
	MaxAttempts int `yaml:"max_attempts"`

	// Talk1/Talk2 toggle speech per language side.
	Talk1 bool `yaml:"talk1"`
	Talk2 bool `yaml:"talk2"`
}

// Translate configures the listen-then-translate mode.
type Translate struct {
	ListenMinScore            int  `yaml:"listen_min_score"`
	ListenAttemptsToReveal    int  `yaml:"listen_attempts_to_reveal"`
	TranslateMinScore         int  `yaml:"translate_min_score"`
	TranslateAttemptsToReveal int  `yaml:"translate_attempts_to_reveal"`
	SkipTranslate             bool `yaml:"skip_translate"`
}

// Listen configures the passive listening mode.
type Listen struct {
	SlowRepeat bool `yaml:"slow_repeat"`
}

// Rapid configures the flashcard mode.
type Rapid struct {
	ShowLang1First bool `yaml:"show_lang1_first"`
}

// Speech configures the text-to-speech collaborator.
type Speech struct {
	Enabled bool   `yaml:"enabled" env:"PARLA_SPEECH"`
	APIKey  string `yaml:"-" env:"OPENAI_API_KEY"`
	Model   string `yaml:"model"`
	Voice   string `yaml:"voice"`
}

// Source names the vocabulary file and the two languages on its sides.
type Source struct {
	File  string         `yaml:"file" env:"PARLA_VOCAB"`
	Lang1 vocab.Language `yaml:"lang1"`
	Lang2 vocab.Language `yaml:"lang2"`
}

// Config is the whole settings tree.
type Config struct {
	Source    Source    `yaml:"source"`
	Review    Review    `yaml:"review"`
	Learn     Learn     `yaml:"learn"`
	Translate Translate `yaml:"translate"`
	Listen    Listen    `yaml:"listen"`
	Rapid     Rapid     `yaml:"rapid"`
	Speech    Speech    `yaml:"speech"`
}

// defaults is the built-in settings tree. Load starts from it, so fields
// a config file omits keep these values while explicit ones (including
// false and 0) stick.
func defaults() Config {
	return Config{
		Source: Source{
			Lang1: vocab.Language{Code: "en", Name: "English"},
			Lang2: vocab.Language{Code: "es", Name: "Spanish"},
		},
		Review: Review{ReviewNum: 20, Shuffle: true, MinScore: 90},
		Learn:  Learn{MaxAttempts: 3, Talk2: true},
		Translate: Translate{
			ListenMinScore:            90,
			ListenAttemptsToReveal:    3,
			TranslateMinScore:         90,
			TranslateAttemptsToReveal: 3,
		},
		Listen: Listen{SlowRepeat: true},
		Rapid:  Rapid{ShowLang1First: true},
		Speech: Speech{Model: "tts-1", Voice: "alloy"},
	}
}

// Default returns the built-in settings with environment overrides
// applied.
func Default() *Config {
	cfg := defaults()
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		// Only reachable with malformed env values; keep the defaults.
		cfg = defaults()
	}
	return &cfg
}

// Load reads settings from path over the built-in defaults. A missing
// file is not an error when the path was not explicitly requested:
// defaults plus environment apply.
func Load(path string, explicit bool) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		cfg := Default()
		return cfg, cfg.Validate()
	}

	cfg := defaults()
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Save writes the settings tree to path as YAML, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate rejects values no mode can run with.
func (c *Config) Validate() error {
	if c.Review.ReviewNum < 0 {
		return fmt.Errorf("reviewnum must be >= 0, got %d", c.Review.ReviewNum)
	}
	for name, score := range map[string]int{
		"review.min_score":              c.Review.MinScore,
		"translate.listen_min_score":    c.Translate.ListenMinScore,
		"translate.translate_min_score": c.Translate.TranslateMinScore,
	} {
		if score < 0 || score > 100 {
			return fmt.Errorf("%s must be in [0, 100], got %d", name, score)
		}
	}
	if c.Learn.MaxAttempts < 1 {
		return fmt.Errorf("learn.max_attempts must be >= 1, got %d", c.Learn.MaxAttempts)
	}
	return nil
}

// DefaultPath resolves the config file path:
// $PARLA_CONFIG, then $XDG_CONFIG_HOME/parla/config.yaml, then
// ~/.config/parla/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("PARLA_CONFIG"); p != "" {
		return p, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "parla", "config.yaml"), nil
}
