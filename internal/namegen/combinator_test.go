package namegen

import (
	"sort"
	"strings"
	"testing"

	"blendgen/internal/vocabulary"

	"github.com/google/go-cmp/cmp"
)

func twoNounRegistry() *vocabulary.Registry {
	return vocabulary.NewCustomRegistry(
		[]vocabulary.Category{vocabulary.CategoryFurniture},
		map[vocabulary.Category][]string{
			vocabulary.CategoryFurniture: {"chair", "table"},
		},
		map[vocabulary.ModifierClass][]string{
			vocabulary.ModifierMaterials: {"wooden", "metal"},
		},
	)
}

func TestCombineScenario(t *testing.T) {
	c := NewCombinator(twoNounRegistry(), Policy{MaterialLimit: -1})
	got := c.Generate()
	want := []string{"chair", "metal chair", "metal table", "table", "wooden chair", "wooden table"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected name list (-want +got):\n%s", diff)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	reg := vocabulary.NewRegistry()
	policy := DefaultPolicy()
	a := NewCombinator(reg, policy).Generate()
	b := NewCombinator(reg, policy).Generate()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("two runs differ (-first +second):\n%s", diff)
	}
}

func TestGenerateSortedNoDuplicates(t *testing.T) {
	names := NewCombinator(vocabulary.NewRegistry(), DefaultPolicy()).Generate()
	if len(names) == 0 {
		t.Fatal("expected names")
	}
	if !sort.StringsAreSorted(names) {
		t.Error("output not sorted")
	}
	for i := 1; i < len(names); i++ {
		if names[i] == names[i-1] {
			t.Errorf("duplicate name %q at %d", names[i], i)
		}
	}
}

func TestGenerateCoverage(t *testing.T) {
	reg := vocabulary.NewRegistry()
	names := NewCombinator(reg, DefaultPolicy()).Generate()

	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	for _, c := range reg.Categories() {
		for _, noun := range reg.Nouns(c) {
			if !set[noun] {
				t.Errorf("category %s: noun %q missing from output", c, noun)
			}
		}
	}
}

func TestPolicyLimits(t *testing.T) {
	// Zero limits disable all crossing: bare nouns only.
	names := NewCombinator(vocabulary.NewRegistry(), Policy{}).Generate()
	if len(names) != vocabulary.NewRegistry().NounCount() {
		t.Errorf("expected bare nouns only, got %d names for %d nouns",
			len(names), vocabulary.NewRegistry().NounCount())
	}
	for _, n := range names {
		if strings.Contains(n, " ") && !nounHasSpace(n) {
			t.Errorf("unexpected modified name %q under zero policy", n)
		}
	}
}

// nounHasSpace reports whether n is itself a multi-word base noun.
func nounHasSpace(n string) bool {
	for _, noun := range vocabulary.NewRegistry().AllNouns() {
		if noun == n {
			return true
		}
	}
	return false
}

func TestEmptyRegistryProducesEmptyList(t *testing.T) {
	reg := vocabulary.NewCustomRegistry(nil, nil, nil)
	names := NewCombinator(reg, DefaultPolicy()).Generate()
	if len(names) != 0 {
		t.Errorf("expected empty output, got %d names", len(names))
	}
}
