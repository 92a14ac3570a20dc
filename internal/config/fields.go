package config

import (
	"fmt"
	"strconv"
)

// FieldKind tells the editor what input widget and parsing a field needs.
type FieldKind int

const (
	KindString FieldKind = iota
	KindInt
	KindBool
)

// Field is one editable setting. The settings screen renders the
// enumerated list below; fields are named and wired by hand, nothing is
// discovered at runtime.
type Field struct {
	Name string
	Kind FieldKind
	Get  func(*Config) string
	Set  func(*Config, string) error
}

func intField(name string, get func(*Config) *int) Field {
	return Field{
		Name: name,
		Kind: KindInt,
		Get:  func(c *Config) string { return strconv.Itoa(*get(c)) },
		Set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: not a number: %q", name, v)
			}
			*get(c) = n
			return nil
		},
	}
}

func boolField(name string, get func(*Config) *bool) Field {
	return Field{
		Name: name,
		Kind: KindBool,
		Get:  func(c *Config) string { return strconv.FormatBool(*get(c)) },
		Set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: not a boolean: %q", name, v)
			}
			*get(c) = b
			return nil
		},
	}
}

func stringField(name string, get func(*Config) *string) Field {
	return Field{
		Name: name,
		Kind: KindString,
		Get:  func(c *Config) string { return *get(c) },
		Set: func(c *Config, v string) error {
			*get(c) = v
			return nil
		},
	}
}

// Fields returns the editable settings in display order.
func Fields() []Field {
	return []Field{
		stringField("source.file", func(c *Config) *string { return &c.Source.File }),
		stringField("source.lang1.code", func(c *Config) *string { return &c.Source.Lang1.Code }),
		stringField("source.lang1.name", func(c *Config) *string { return &c.Source.Lang1.Name }),
		stringField("source.lang2.code", func(c *Config) *string { return &c.Source.Lang2.Code }),
		stringField("source.lang2.name", func(c *Config) *string { return &c.Source.Lang2.Name }),
		intField("review.reviewnum", func(c *Config) *int { return &c.Review.ReviewNum }),
		boolField("review.shuffle", func(c *Config) *bool { return &c.Review.Shuffle }),
		intField("review.min_score", func(c *Config) *int { return &c.Review.MinScore }),
		intField("learn.max_attempts", func(c *Config) *int { return &c.Learn.MaxAttempts }),
		boolField("learn.talk1", func(c *Config) *bool { return &c.Learn.Talk1 }),
		boolField("learn.talk2", func(c *Config) *bool { return &c.Learn.Talk2 }),
		intField("translate.listen_min_score", func(c *Config) *int { return &c.Translate.ListenMinScore }),
		intField("translate.listen_attempts_to_reveal", func(c *Config) *int { return &c.Translate.ListenAttemptsToReveal }),
		intField("translate.translate_min_score", func(c *Config) *int { return &c.Translate.TranslateMinScore }),
		intField("translate.translate_attempts_to_reveal", func(c *Config) *int { return &c.Translate.TranslateAttemptsToReveal }),
		boolField("translate.skip_translate", func(c *Config) *bool { return &c.Translate.SkipTranslate }),
		boolField("listen.slow_repeat", func(c *Config) *bool { return &c.Listen.SlowRepeat }),
		boolField("rapid.show_lang1_first", func(c *Config) *bool { return &c.Rapid.ShowLang1First }),
		boolField("speech.enabled", func(c *Config) *bool { return &c.Speech.Enabled }),
		stringField("speech.model", func(c *Config) *string { return &c.Speech.Model }),
		stringField("speech.voice", func(c *Config) *string { return &c.Speech.Voice }),
	}
}
