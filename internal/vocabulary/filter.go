package vocabulary

import (
	"strings"
	"unicode"
)

// Filter applies the heuristic cleanup pass used when assembling object
// names: it rejects strings that are unlikely to describe a concrete,
// renderable physical object.
type Filter struct {
	MinLength int
	MaxLength int
	MaxWords  int
}

// NewFilter returns a filter with the standard limits.
func NewFilter() *Filter {
	return &Filter{
		MinLength: 3,
		MaxLength: 25,
		MaxWords:  3,
	}
}

// Suffixes that indicate abstract concepts rather than physical objects.
var abstractSuffixes = []string{
	"ism", "ist", "ity", "ness", "tion", "sion", "ment", "ance", "ence",
	"ship", "hood", "dom", "ology", "ography", "icism", "phile", "phobe",
	"crat", "cracy",
}

// Agent-noun exceptions that end in an abstract-looking suffix but name
// real objects.
var suffixExceptions = map[string]bool{
	"speaker":  true,
	"hammer":   true,
	"ladder":   true,
	"computer": true,
	"printer":  true,
}

// Substrings that mark place names or geographic features.
var placeIndicators = []string{
	"peninsula", "island", "bridge", "street", "river", "mountain", "valley",
	"city", "town", "country", "province", "ocean", "canyon", "desert",
	"avenue", "boulevard", "plaza", "university", "hospital", "airport",
}

var disallowedChars = "()[]{}#@$%^&*+=<>?/\\|`~"

// Keep reports whether a candidate name survives the cleanup pass.
// The decision depends only on the input string, so a filtered list is
// as deterministic as its source.
func (f *Filter) Keep(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) < f.MinLength || len(name) > f.MaxLength {
		return false
	}
	if len(strings.Fields(name)) > f.MaxWords {
		return false
	}
	if strings.ContainsAny(name, disallowedChars) {
		return false
	}
	for _, r := range name {
		if unicode.IsDigit(r) {
			return false
		}
	}
	for _, ind := range placeIndicators {
		if strings.Contains(name, ind) {
			return false
		}
	}
	if suffixExceptions[name] {
		return true
	}
	// Only the final word decides abstractness; "coffee maker" stays even
	// though "maker" is agentive.
	words := strings.Fields(name)
	last := words[len(words)-1]
	for _, suf := range abstractSuffixes {
		if strings.HasSuffix(last, suf) && !suffixExceptions[last] {
			return false
		}
	}
	return true
}

// Apply filters a slice of names, preserving input order.
func (f *Filter) Apply(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if f.Keep(n) {
			out = append(out, n)
		}
	}
	return out
}
