// Package words provides the accepted-word dictionary and the level list
// the puzzle validates guesses against.
package words

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/vovakirdan/termo/internal/game"
)

//go:embed data/pt_br.txt
var defaultList []byte

// Dictionary is a set of accepted words plus the campaign levels.
// Level targets are always accepted.
type Dictionary struct {
	words  map[string]struct{}
	levels []game.Level
}

// New builds a dictionary from a word list and the campaign levels.
// Words are trimmed and lowercased; entries with characters outside a-z
// are skipped.
func New(list []string, levels []game.Level) *Dictionary {
	normalized := lo.Uniq(lo.FilterMap(list, func(w string, _ int) (string, bool) {
		w = strings.ToLower(strings.TrimSpace(w))
		return w, isWord(w)
	}))

	d := &Dictionary{
		words:  make(map[string]struct{}, len(normalized)+len(levels)),
		levels: levels,
	}
	lo.ForEach(normalized, func(w string, _ int) {
		d.words[w] = struct{}{}
	})
	lo.ForEach(levels, func(lvl game.Level, _ int) {
		d.words[lvl.Target] = struct{}{}
	})
	return d
}

// Default returns the built-in Portuguese list with the given levels.
func Default(levels []game.Level) *Dictionary {
	list, err := Parse(bytes.NewReader(defaultList))
	if err != nil {
		panic(fmt.Sprintf("words: embedded list: %v", err))
	}
	return New(list, levels)
}

// Load reads a word list file (one word per line, '#' comments).
func Load(path string, levels []game.Level) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot open %s: %w", path, err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("words: cannot read %s: %w", path, err)
	}
	return New(list, levels), nil
}

// Parse returns the non-empty, non-comment lines of r.
func Parse(r io.Reader) ([]string, error) {
	var list []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	return list, sc.Err()
}

// Contains reports whether word is accepted. Lookup is case-insensitive.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Levels returns the campaign levels.
func (d *Dictionary) Levels() []game.Level {
	return d.levels
}

// Len returns the number of accepted words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// WithLength returns the accepted words of n letters, sorted.
func (d *Dictionary) WithLength(n int) []string {
	out := lo.Filter(lo.Keys(d.words), func(w string, _ int) bool {
		return len(w) == n
	})
	slices.Sort(out)
	return out
}

func isWord(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
