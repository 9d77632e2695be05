package lexical

import (
	"sort"
	"strings"
)

// acronymTable maps lowercase acronyms to their kebab-case expansions.
// The table covers the technical vocabulary the host app tags with.
var acronymTable = map[string][]string{
	"ai":    {"artificial-intelligence"},
	"ml":    {"machine-learning"},
	"nlp":   {"natural-language-processing"},
	"api":   {"application-programming-interface"},
	"ui":    {"user-interface"},
	"ux":    {"user-experience"},
	"db":    {"database"},
	"k8s":   {"kubernetes"},
	"ci":    {"continuous-integration"},
	"cd":    {"continuous-deployment", "continuous-delivery"},
	"aws":   {"amazon-web-services"},
	"gcp":   {"google-cloud-platform"},
	"sql":   {"structured-query-language"},
	"html":  {"hypertext-markup-language"},
	"css":   {"cascading-style-sheets"},
	"js":    {"javascript"},
	"ts":    {"typescript"},
	"http":  {"hypertext-transfer-protocol"},
	"https": {"hypertext-transfer-protocol-secure"},
	"json":  {"javascript-object-notation"},
	"xml":   {"extensible-markup-language"},
	"yaml":  {"yaml-aint-markup-language"},
	"cli":   {"command-line-interface"},
	"sdk":   {"software-development-kit"},
	"ide":   {"integrated-development-environment"},
	"os":    {"operating-system"},
	"vm":    {"virtual-machine"},
	"gpu":   {"graphics-processing-unit"},
	"cpu":   {"central-processing-unit"},
	"rest":  {"representational-state-transfer"},
	"crud":  {"create-read-update-delete"},
	"jwt":   {"json-web-token"},
	"ssh":   {"secure-shell"},
	"tls":   {"transport-layer-security"},
	"dns":   {"domain-name-system"},
	"cdn":   {"content-delivery-network"},
	"orm":   {"object-relational-mapping"},
	"mvc":   {"model-view-controller"},
	"oop":   {"object-oriented-programming"},
	"tdd":   {"test-driven-development"},
	"pr":    {"pull-request"},
	"url":   {"uniform-resource-locator"},
	"uri":   {"uniform-resource-identifier"},
}

// expansionToAcronym is the reverse index, keyed by kebab expansion.
var expansionToAcronym = invertAcronyms()

func invertAcronyms() map[string]string {
	m := make(map[string]string)
	for acr, exps := range acronymTable {
		for _, e := range exps {
			m[e] = strings.ToUpper(acr)
		}
	}
	return m
}

// ExpandAcronym returns the known expansions of an acronym, kebab-cased,
// or nil when the acronym is not in the table. Periods and case are
// ignored ("A.I." expands like "ai"). The result is never an empty
// non-nil slice.
func ExpandAcronym(acr string) []string {
	exps, ok := acronymTable[kebabKey(acr)]
	if !ok {
		return nil
	}
	out := make([]string, len(exps))
	copy(out, exps)
	return out
}

// ContractToAcronym returns the acronym for an expansion, or "" when
// unknown. Spaces, underscores and hyphens are interchangeable.
func ContractToAcronym(expansion string) string {
	return expansionToAcronym[kebabKey(expansion)]
}

// AreAcronymMatches reports whether one term is a known acronym of the
// other in either direction, or when both normalize to the same known
// acronym ("A.I." vs "ai").
func AreAcronymMatches(a, b string) bool {
	ka, kb := kebabKey(a), kebabKey(b)
	if ka == "" || kb == "" {
		return false
	}
	if ka == kb {
		_, known := acronymTable[ka]
		return known
	}
	for _, e := range acronymTable[ka] {
		if e == kb {
			return true
		}
	}
	for _, e := range acronymTable[kb] {
		if e == ka {
			return true
		}
	}
	return false
}

// Acronyms returns every acronym in the table, uppercase and sorted.
func Acronyms() []string {
	out := make([]string, 0, len(acronymTable))
	for acr := range acronymTable {
		out = append(out, strings.ToUpper(acr))
	}
	sort.Strings(out)
	return out
}

// Expansions returns every expansion in the table, kebab-case and sorted.
func Expansions() []string {
	out := make([]string, 0, len(expansionToAcronym))
	for e := range expansionToAcronym {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// kebabKey lowercases a term, strips periods and joins word separators
// with hyphens.
func kebabKey(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '\t' || r == '\n'
	})
	return strings.Join(fields, "-")
}
