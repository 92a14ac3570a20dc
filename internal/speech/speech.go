// Package speech turns prompt text into audio. Synthesis goes through the
// OpenAI speech endpoint and results are cached on disk, so each phrase is
// billed once and replays come from the cache.
package speech

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Synthesizer renders sanitized text to encoded audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string, slow bool) ([]byte, error)
}

// PlayFunc plays one audio file and blocks until playback ends.
type PlayFunc func(ctx context.Context, path string) error

// Speaker synthesizes through an on-disk cache and hands the file to a
// player. It satisfies the session's speech collaborator.
type Speaker struct {
	synth Synthesizer
	dir   string
	play  PlayFunc
}

// New returns a caching speaker. cacheDir is created on first use; play
// may be nil, in which case files are cached but nothing is heard (useful
// for warming the cache).
func New(synth Synthesizer, cacheDir string, play PlayFunc) *Speaker {
	return &Speaker{synth: synth, dir: cacheDir, play: play}
}

// Speak voices one utterance, synthesizing only on a cache miss.
func (s *Speaker) Speak(ctx context.Context, text, lang string, slow bool) error {
	clean := Sanitize(text)
	if clean == "" {
		return nil
	}

	path := filepath.Join(s.dir, CacheKey(clean, lang, slow)+".mp3")
	if _, err := os.Stat(path); err != nil {
		audio, err := s.synth.Synthesize(ctx, clean, lang, slow)
		if err != nil {
			return fmt.Errorf("synthesize %q: %w", clean, err)
		}
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
		if err := writeAtomic(path, audio); err != nil {
			return fmt.Errorf("cache audio: %w", err)
		}
	}

	if s.play == nil {
		return nil
	}
	return s.play(ctx, path)
}

// CacheKey is stable across runs for the same utterance.
func CacheKey(text, lang string, slow bool) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%t", lang, text, slow)
	return hex.EncodeToString(h.Sum(nil))[:32]
}

// Sanitize strips the notation that belongs on screen, not in audio:
// alternative markers, mask symbols, and wrapping quotes.
func Sanitize(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch r {
		case '/', '|', '*', '"', '“', '”':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// DefaultCacheDir resolves the audio cache directory:
// $XDG_CACHE_HOME/parla/audio, falling back to ~/.cache/parla/audio.
func DefaultCacheDir() (string, error) {
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		cacheHome = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheHome, "parla", "audio"), nil
}
