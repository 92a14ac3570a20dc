package vocab

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

// ValidLines filters raw file content down to reviewable lines: blank
// lines, comments, and lines without exactly one delimiter are dropped.
func ValidLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || IsComment(line) {
			continue
		}
		if strings.Count(line, Delimiter) != 1 {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// LoadResult carries the items parsed from a source plus the per-line
// errors for entries that had to be skipped.
type LoadResult struct {
	Items   []*ReviewItem
	Skipped []error
}

// Provider supplies review items for a session.
type Provider interface {
	// Items returns up to reviewnum parsed items, shuffled when requested.
	Items(reviewnum int, shuffle bool, rng *rand.Rand) (*LoadResult, error)
}

// FileProvider loads items from a single vocabulary file. Path is mutable
// so the file-selector screen can retarget it; the selection lives here,
// scoped to the session, not in any process-wide state.
type FileProvider struct {
	Path  string
	Lang1 Language
	Lang2 Language
}

func (p *FileProvider) Items(reviewnum int, shuffle bool, rng *rand.Rand) (*LoadResult, error) {
	lines, err := readValidLines(p.Path)
	if err != nil {
		return nil, err
	}
	return buildItems(lines, reviewnum, shuffle, rng, p.Lang1, p.Lang2), nil
}

// SiblingFiles lists files next to the current path sharing its extension,
// optionally filtered by a substring term. Used by the file selector.
func (p *FileProvider) SiblingFiles(term string) ([]string, error) {
	dir := filepath.Dir(p.Path)
	ext := filepath.Ext(p.Path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list vocab dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		if term != "" && !strings.Contains(e.Name(), term) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Select retargets the provider at a sibling file by name.
func (p *FileProvider) Select(name string) {
	p.Path = filepath.Join(filepath.Dir(p.Path), name)
}

// MultiFileProvider loads items from several vocabulary files in order.
type MultiFileProvider struct {
	Paths []string
	Lang1 Language
	Lang2 Language
}

func (p *MultiFileProvider) Items(reviewnum int, shuffle bool, rng *rand.Rand) (*LoadResult, error) {
	if len(p.Paths) == 0 {
		return nil, fmt.Errorf("no vocabulary files configured")
	}
	var lines []string
	for _, path := range p.Paths {
		l, err := readValidLines(path)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l...)
	}
	return buildItems(lines, reviewnum, shuffle, rng, p.Lang1, p.Lang2), nil
}

func readValidLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocab file: %w", err)
	}
	return ValidLines(string(content)), nil
}

// buildItems samples the requested number of lines and parses each one.
// Lines that fail to parse are skipped and reported, never fatal.
func buildItems(lines []string, reviewnum int, shuffle bool, rng *rand.Rand, lang1, lang2 Language) *LoadResult {
	if shuffle {
		lines = append([]string(nil), lines...)
		rng.Shuffle(len(lines), func(i, j int) {
			lines[i], lines[j] = lines[j], lines[i]
		})
	}
	if reviewnum > 0 && reviewnum < len(lines) {
		lines = lines[:reviewnum]
	}

	res := &LoadResult{}
	for i, line := range lines {
		item, err := ParseItem(line, i+1, lang1, lang2)
		if err != nil {
			res.Skipped = append(res.Skipped, err)
			continue
		}
		res.Items = append(res.Items, item)
	}
	return res
}
