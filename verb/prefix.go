package verb

import (
	"sort"
	"strings"
)

// recognizedPrefixes is the closed set of 22 prefixes that combine with any
// known verb lemma to form a new accepted verb (§3 "Derived forms" /
// §4.B step 2), grounded on vbatushev-morph/extended.go's knownPrefixes
// table (same flat-list-of-agglutination-prefixes shape, adapted from
// Russian to the fixed Spanish closed set the spec enumerates).
var recognizedPrefixes = []string{
	"contra", "extra", "entre", "sobre", "super", "trans",
	"anti", "auto", "ante", "semi", "inter",
	"des", "pre", "sub", "dis", "pos", "pro",
	"re", "co", "ex", "bi",
	"con",
}

var prefixesByLengthDesc = sortedPrefixes()

func sortedPrefixes() []string {
	out := append([]string(nil), recognizedPrefixes...)
	sort.Slice(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

// StripPrefix tries every recognized prefix, longest first, and returns the
// first one that leaves a residue long enough to itself be a plausible verb
// infinitive (at least 2 letters + an -ar/-er/-ir ending, so >= 4 runes).
func StripPrefix(word string) (residue, prefix string, ok bool) {
	for _, p := range prefixesByLengthDesc {
		if strings.HasPrefix(word, p) {
			rest := word[len(p):]
			if len([]rune(rest)) >= 4 {
				return rest, p, true
			}
		}
	}
	return word, "", false
}
