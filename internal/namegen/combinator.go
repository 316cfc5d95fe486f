// Package namegen assembles the candidate set of 3D object names from the
// vocabulary registry and reduces it to a sorted, duplicate-free sequence.
package namegen

import (
	"fmt"
	"sort"

	"blendgen/internal/vocabulary"
)

// Policy controls how many nouns of the flat noun ordering receive each
// modifier class. A limit of 0 disables the class; a negative limit crosses
// every noun. Every noun is always emitted bare regardless of limits, which
// keeps the output total over the registry.
type Policy struct {
	MaterialLimit int
	SizeLimit     int
	StyleLimit    int
	ColorLimit    int
}

// DefaultPolicy mirrors the prefix limits the dataset was originally built
// with: materials over the first 50 nouns, sizes over 40, styles over 30,
// colors over 25.
func DefaultPolicy() Policy {
	return Policy{
		MaterialLimit: 50,
		SizeLimit:     40,
		StyleLimit:    30,
		ColorLimit:    25,
	}
}

// Combinator produces object-name candidates from a registry under a fixed
// policy. Combine is pure: no I/O, no shared state.
type Combinator struct {
	registry *vocabulary.Registry
	policy   Policy
}

// NewCombinator returns a combinator over the given registry and policy.
func NewCombinator(reg *vocabulary.Registry, policy Policy) *Combinator {
	return &Combinator{registry: reg, policy: policy}
}

// Combine returns the full candidate set. Duplicate combinations (e.g. a
// modifier+noun string that equals an existing noun) collapse silently.
func (c *Combinator) Combine() map[string]struct{} {
	set := make(map[string]struct{})

	nouns := c.registry.AllNouns()
	for _, n := range nouns {
		set[n] = struct{}{}
	}

	cross := func(class vocabulary.ModifierClass, limit int) {
		if limit == 0 {
			return
		}
		if limit < 0 || limit > len(nouns) {
			limit = len(nouns)
		}
		mods := c.registry.Modifiers(class)
		for _, n := range nouns[:limit] {
			for _, m := range mods {
				set[fmt.Sprintf("%s %s", m, n)] = struct{}{}
			}
		}
	}

	cross(vocabulary.ModifierMaterials, c.policy.MaterialLimit)
	cross(vocabulary.ModifierSizes, c.policy.SizeLimit)
	cross(vocabulary.ModifierStyles, c.policy.StyleLimit)
	cross(vocabulary.ModifierColors, c.policy.ColorLimit)

	return set
}

// Sorted flattens a candidate set into a strictly increasing sequence.
// Ordering is case-sensitive lexicographic (sort.Strings); the vocabularies
// are all lowercase so case never actually differentiates entries.
func Sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Generate runs the full in-memory pipeline: combine, dedupe, sort.
func (c *Combinator) Generate() []string {
	return Sorted(c.Combine())
}
