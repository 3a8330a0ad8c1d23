package words

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed packs/*.yaml
var builtinFS embed.FS

// Builtin returns the packs compiled into the binary, sorted by ID.
func Builtin() ([]Pack, error) {
	var packs []Pack

	err := fs.WalkDir(builtinFS, "packs", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isPackFile(path) {
			return nil
		}
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return err
		}
		p, err := ParsePack(data)
		if err != nil {
			return fmt.Errorf("parsing builtin pack %s: %w", path, err)
		}
		packs = append(packs, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortPacks(packs)
	return packs, nil
}

// Loader loads word packs from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a new pack loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all pack files.
// Invalid files are skipped. A missing root yields no packs.
func (l *Loader) LoadAll() ([]Pack, error) {
	var packs []Pack

	if _, err := os.Stat(l.Root); os.IsNotExist(err) {
		return nil, nil
	}

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isPackFile(path) {
			return nil
		}

		p, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		packs = append(packs, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortPacks(packs)
	return packs, nil
}

// LoadFile loads a single pack file.
func (l *Loader) LoadFile(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	p, err := ParsePack(data)
	if err != nil {
		return Pack{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	p.FilePath = path
	return p, nil
}

func isPackFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func sortPacks(packs []Pack) {
	sort.SliceStable(packs, func(i, j int) bool {
		return packs[i].ID < packs[j].ID
	})
}
