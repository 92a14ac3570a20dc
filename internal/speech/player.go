package speech

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// playerCommands lists CLI audio players in preference order per platform.
func playerCommands() [][]string {
	if runtime.GOOS == "darwin" {
		return [][]string{{"afplay"}}
	}
	return [][]string{
		{"mpv", "--no-terminal", "--really-quiet"},
		{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
		{"mpg123", "-q"},
	}
}

// SystemPlayer returns a PlayFunc backed by the first audio player found
// on PATH, or an error when none is installed.
func SystemPlayer() (PlayFunc, error) {
	for _, cmd := range playerCommands() {
		bin, err := exec.LookPath(cmd[0])
		if err != nil {
			continue
		}
		args := cmd[1:]
		return func(ctx context.Context, path string) error {
			c := exec.CommandContext(ctx, bin, append(append([]string{}, args...), path)...)
			if err := c.Run(); err != nil {
				return fmt.Errorf("play %s: %w", path, err)
			}
			return nil
		}, nil
	}
	return nil, fmt.Errorf("no audio player found (tried mpv, ffplay, mpg123)")
}

// Noop satisfies the session's speech collaborator without producing
// sound. Used when speech is disabled or no API key is configured.
type Noop struct{}

func (Noop) Speak(context.Context, string, string, bool) error { return nil }
