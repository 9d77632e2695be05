package lexical

import "testing"

func TestSingularizeIrregular(t *testing.T) {
	cases := map[string]string{
		"children": "child",
		"people":   "person",
		"mice":     "mouse",
		"analyses": "analysis",
		"criteria": "criterion",
		"indices":  "index",
	}
	for in, want := range cases {
		if got := Singularize(in); got != want {
			t.Errorf("Singularize(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestSingularizeSuffixRules(t *testing.T) {
	cases := map[string]string{
		"libraries":  "library",
		"frameworks": "framework",
		"boxes":      "box",
		"glasses":    "glass",
		"buses":      "bus",
		"cases":      "case",
		"wolves":     "wolf",
		"knives":     "knife",
		"glass":      "glass", // -ss is not a plural
		"repos":      "repo",
	}
	for in, want := range cases {
		if got := Singularize(in); got != want {
			t.Errorf("Singularize(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestPluralizeIrregular(t *testing.T) {
	cases := map[string]string{
		"child":     "children",
		"person":    "people",
		"criterion": "criteria",
		"analysis":  "analyses",
	}
	for in, want := range cases {
		if got := Pluralize(in); got != want {
			t.Errorf("Pluralize(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestPluralizeSuffixRules(t *testing.T) {
	cases := map[string]string{
		"library":   "libraries",
		"framework": "frameworks",
		"box":       "boxes",
		"church":    "churches",
		"knife":     "knives",
		"leaf":      "leaves",
		"roof":      "roofs",
		"day":       "days",
		"query":     "queries",
	}
	for in, want := range cases {
		if got := Pluralize(in); got != want {
			t.Errorf("Pluralize(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestInflectionRoundTrip(t *testing.T) {
	words := []string{"framework", "library", "category", "box", "knife", "wolf", "church", "child"}
	for _, w := range words {
		if got := Singularize(Pluralize(w)); got != w {
			t.Errorf("Round trip for %q: got %q", w, got)
		}
	}
}

func TestInflectionStablePlurals(t *testing.T) {
	// Already-plural input stays put in both directions
	if got := Pluralize("data"); got != "data" {
		t.Errorf("Expected data, got %q", got)
	}
	if got := Pluralize("children"); got != "children" {
		t.Errorf("Expected children, got %q", got)
	}
	if got := Singularize("library"); got != "library" {
		t.Errorf("Expected library, got %q", got)
	}
}

func TestAreSingularPluralPair(t *testing.T) {
	if !AreSingularPluralPair("framework", "frameworks") {
		t.Error("framework/frameworks should pair")
	}
	if !AreSingularPluralPair("children", "child") {
		t.Error("children/child should pair")
	}
	if AreSingularPluralPair("framework", "framework") {
		t.Error("Identical terms are not a pair")
	}
	if AreSingularPluralPair("box", "wolf") {
		t.Error("Unrelated terms should not pair")
	}
}
