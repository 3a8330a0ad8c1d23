package words

import (
	"fmt"
	"math/rand"
	"sort"
	"unicode/utf8"
)

// Catalog indexes packs by ID.
type Catalog struct {
	packs map[string]Pack
	ids   []string
}

// NewCatalog builds a catalog. A later pack replaces an earlier one with
// the same ID, so user packs can override built-ins.
func NewCatalog(packs ...Pack) *Catalog {
	c := &Catalog{packs: make(map[string]Pack, len(packs))}
	for _, p := range packs {
		if _, ok := c.packs[p.ID]; !ok {
			c.ids = append(c.ids, p.ID)
		}
		c.packs[p.ID] = p
	}
	sort.Strings(c.ids)
	return c
}

// Load builds the catalog from the built-in packs plus any packs found
// under userDir. An empty userDir loads built-ins only.
func Load(userDir string) (*Catalog, error) {
	packs, err := Builtin()
	if err != nil {
		return nil, err
	}
	if userDir != "" {
		extra, err := NewLoader(userDir).LoadAll()
		if err != nil {
			return nil, err
		}
		packs = append(packs, extra...)
	}
	return NewCatalog(packs...), nil
}

// IDs returns all pack IDs in sorted order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Packs returns all packs in ID order.
func (c *Catalog) Packs() []Pack {
	out := make([]Pack, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.packs[id])
	}
	return out
}

// Len returns the number of packs.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Get returns the pack with the given ID.
func (c *Catalog) Get(id string) (Pack, error) {
	p, ok := c.packs[id]
	if !ok {
		return Pack{}, fmt.Errorf("%w: %q", ErrUnknownPack, id)
	}
	return p, nil
}

// Random returns a random pack ID, or "" for an empty catalog.
func (c *Catalog) Random(rng *rand.Rand) string {
	if len(c.ids) == 0 {
		return ""
	}
	return c.ids[rng.Intn(len(c.ids))]
}

// Pick draws up to count distinct words from pack id that are at most
// maxLen letters long. count <= 0 takes every fitting word; maxLen <= 0
// disables the length filter.
func (c *Catalog) Pick(rng *rand.Rand, id string, count, maxLen int) ([]string, error) {
	p, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	fitting := make([]string, 0, len(p.Words))
	for _, w := range p.Words {
		if maxLen <= 0 || utf8.RuneCountInString(w) <= maxLen {
			fitting = append(fitting, w)
		}
	}
	if len(fitting) == 0 {
		return nil, fmt.Errorf("%w: pack %q has nothing up to %d letters", ErrNoWords, id, maxLen)
	}

	rng.Shuffle(len(fitting), func(i, j int) {
		fitting[i], fitting[j] = fitting[j], fitting[i]
	})
	if count > 0 && count < len(fitting) {
		fitting = fitting[:count]
	}
	return fitting, nil
}
