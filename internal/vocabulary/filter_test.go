package vocabulary

import "testing"

func TestFilterKeep(t *testing.T) {
	f := NewFilter()

	keep := []string{
		"chair", "wooden table", "coffee maker", "hammer", "computer",
		"stainless steel pan", "lamp",
	}
	for _, name := range keep {
		if !f.Keep(name) {
			t.Errorf("expected to keep %q", name)
		}
	}

	reject := []string{
		"ab",                       // too short
		"x2000",                    // digit
		"capitalism",               // abstract suffix
		"happiness",                // abstract suffix
		"mountain bike peninsula",  // place indicator
		"chair (wooden)",           // special characters
		"very large wooden chair",  // four words
		"extraordinarily long object name here", // too long
	}
	for _, name := range reject {
		if f.Keep(name) {
			t.Errorf("expected to reject %q", name)
		}
	}
}

func TestFilterApplyPreservesOrder(t *testing.T) {
	f := NewFilter()
	in := []string{"chair", "capitalism", "table", "x9", "lamp"}
	got := f.Apply(in)
	want := []string{"chair", "table", "lamp"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFilterDeterministic(t *testing.T) {
	f := NewFilter()
	in := []string{"chair", "socialism", "wooden chair", "router"}
	a := f.Apply(in)
	b := f.Apply(in)
	if len(a) != len(b) {
		t.Fatalf("filter not deterministic: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("filter not deterministic at %d: %q vs %q", i, a[i], b[i])
		}
	}
}
