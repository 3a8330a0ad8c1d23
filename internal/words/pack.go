// Package words provides the word lists puzzles are generated from.
// Built-in packs are embedded in the binary; extra packs can be loaded
// from a directory of YAML files.
package words

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/zyedidia/generic/mapset"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownPack = errors.New("words: unknown pack")
	ErrNoWords     = errors.New("words: no usable words")
	ErrMissingID   = errors.New("words: pack has no id")
)

// Pack is a named category of words.
type Pack struct {
	ID       string
	Name     string
	Words    []string // normalised: uppercase, letters only, unique
	FilePath string   // empty for built-in packs
}

// yamlPack is the on-disk form of a pack.
type yamlPack struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}

// ParsePack decodes a YAML pack and normalises its words.
func ParsePack(data []byte) (Pack, error) {
	var yp yamlPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	id := strings.ToLower(strings.TrimSpace(yp.ID))
	if id == "" {
		return Pack{}, ErrMissingID
	}
	name := strings.TrimSpace(yp.Name)
	if name == "" {
		name = id
	}

	return Pack{
		ID:    id,
		Name:  name,
		Words: Normalize(yp.Words),
	}, nil
}

// Normalize trims and uppercases words, dropping empty entries, words with
// non-letter runes and repeats. The first occurrence keeps its position.
func Normalize(words []string) []string {
	seen := mapset.New[string]()
	out := make([]string, 0, len(words))

	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" || !lettersOnly(w) || seen.Has(w) {
			continue
		}
		seen.Put(w)
		out = append(out, w)
	}
	return out
}

func lettersOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
