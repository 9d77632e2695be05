package lexical

import "strings"

// Irregular and domain noun forms, consulted before suffix rules.
var singularToPlural = map[string]string{
	"child":      "children",
	"person":     "people",
	"mouse":      "mice",
	"goose":      "geese",
	"foot":       "feet",
	"tooth":      "teeth",
	"analysis":   "analyses",
	"criterion":  "criteria",
	"phenomenon": "phenomena",
	"index":      "indices",
	"matrix":     "matrices",
	"vertex":     "vertices",
	"bus":        "buses",
	"schema":     "schemas",
	"datum":      "data",
	"framework":  "frameworks",
	"library":    "libraries",
	"technology": "technologies",
	"repository": "repositories",
	"dependency": "dependencies",
	"database":   "databases",
	"query":      "queries",
}

var pluralToSingular = invertInflections()

func invertInflections() map[string]string {
	m := make(map[string]string, len(singularToPlural))
	for s, p := range singularToPlural {
		m[p] = s
	}
	return m
}

// -ves plurals whose singular ends in -fe rather than -f.
var vesToSingular = map[string]string{
	"knives": "knife",
	"wives":  "wife",
	"lives":  "life",
}

// -f singulars that pluralize with a plain s.
var fTakesPlainS = map[string]bool{
	"roof":   true,
	"proof":  true,
	"belief": true,
	"chef":   true,
	"chief":  true,
}

// Singularize returns the lowercase singular form of a word. Known
// singulars pass through unchanged.
func Singularize(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return w
	}
	if s, ok := pluralToSingular[w]; ok {
		return s
	}
	if _, ok := singularToPlural[w]; ok {
		return w
	}

	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 3:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "es") && len(w) > 2 && sibilantStem(w[:len(w)-2]):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ves") && len(w) > 3:
		if s, ok := vesToSingular[w]; ok {
			return s
		}
		return w[:len(w)-3] + "f"
	case strings.HasSuffix(w, "ss"):
		return w
	case strings.HasSuffix(w, "s") && len(w) > 1:
		return w[:len(w)-1]
	}
	return w
}

// Pluralize returns the lowercase plural form of a word. Known plurals
// pass through unchanged.
func Pluralize(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return w
	}
	if p, ok := singularToPlural[w]; ok {
		return p
	}
	if _, ok := pluralToSingular[w]; ok {
		return w
	}

	switch {
	case strings.HasSuffix(w, "y") && len(w) > 1 && !isVowel(w[len(w)-2]):
		return w[:len(w)-1] + "ies"
	case endsSibilant(w):
		return w + "es"
	case strings.HasSuffix(w, "fe") && len(w) > 2:
		return w[:len(w)-2] + "ves"
	case strings.HasSuffix(w, "ff"):
		return w + "s"
	case strings.HasSuffix(w, "f") && len(w) > 1 && !fTakesPlainS[w]:
		return w[:len(w)-1] + "ves"
	}
	return w + "s"
}

// AreSingularPluralPair reports whether a and b are the same noun in
// different number, in either direction.
func AreSingularPluralPair(a, b string) bool {
	na, nb := NormalizeTerm(a), NormalizeTerm(b)
	if na == "" || nb == "" || na == nb {
		return false
	}
	return Singularize(na) == nb || Singularize(nb) == na ||
		Pluralize(na) == nb || Pluralize(nb) == na
}

func endsSibilant(w string) bool {
	return strings.HasSuffix(w, "s") || strings.HasSuffix(w, "x") ||
		strings.HasSuffix(w, "z") || strings.HasSuffix(w, "ch") ||
		strings.HasSuffix(w, "sh")
}

// sibilantStem is the singularizing counterpart of endsSibilant. A bare
// trailing s is ambiguous there (cases vs buses), so only unambiguous
// sibilant endings strip an -es.
func sibilantStem(stem string) bool {
	return strings.HasSuffix(stem, "x") || strings.HasSuffix(stem, "z") ||
		strings.HasSuffix(stem, "ch") || strings.HasSuffix(stem, "sh") ||
		strings.HasSuffix(stem, "ss")
}
