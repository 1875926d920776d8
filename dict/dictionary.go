package dict

import (
	"regexp"
	"strings"

	"github.com/escriba/corrector/internal/ortho"
)

// Dictionary wraps the trie with the plural-derivation fallback described
// in §4.A: an exact miss on a form ending in a plural-compatible suffix is
// retried against the regenerated singular candidate(s).
type Dictionary struct {
	trie  *Trie
	names map[string]bool // proper names, case-sensitive (§6)
}

// NewDictionary wraps trie (built via Load/MergeFile) for lookup use.
func NewDictionary(trie *Trie) *Dictionary {
	return &Dictionary{trie: trie, names: map[string]bool{}}
}

// Trie exposes the underlying trie, e.g. for the spelling engine's
// prefix-budgeted descent.
func (d *Dictionary) Trie() *Trie { return d.trie }

// LoadNames merges the given proper names (case-sensitive) into the
// dictionary's name set.
func (d *Dictionary) LoadNames(names []string) {
	for _, n := range names {
		d.names[n] = true
	}
}

// IsName reports whether surface is a known proper name (exact, case-sensitive).
func (d *Dictionary) IsName(surface string) bool { return d.names[surface] }

// Lookup returns the entries for surface, trying an exact match first and
// falling back to plural derivation (§4.A) when the exact match fails and
// surface ends in a plural-compatible suffix.
func (d *Dictionary) Lookup(surface string) []Entry {
	key := ortho.Lower(surface)
	if es := d.trie.Lookup(key); es != nil {
		return es
	}
	for _, cand := range singularCandidates(key) {
		base := d.trie.Lookup(cand)
		if len(base) == 0 {
			continue
		}
		var out []Entry
		for _, e := range base {
			if e.Invariant() {
				continue
			}
			if e.Category != CategoryNoun && e.Category != CategoryAdjective {
				continue
			}
			plural := e
			plural.Number = NumberPlural
			out = append(out, plural)
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// Contains reports whether surface is known by exact, plural, or name
// lookup. It does not consult the verb recognizer or numeric patterns —
// those are layered on top by package spell, which owns the full
// "known word" decision (§4.C).
func (d *Dictionary) Contains(surface string) bool {
	if d.trie.Contains(ortho.Lower(surface)) {
		return true
	}
	if len(d.Lookup(surface)) > 0 {
		return true
	}
	return d.IsName(surface)
}

// singularCandidates returns, in preference order, the singular forms a
// plural surface key might derive from (§4.A):
//   - "-s"  -> drop final "s"
//   - "-es" -> drop "es" (e.g. "meses" -> "mes")
//   - "-ces" -> drop "ces", append "z" (z/c alternation: "luces" -> "luz")
func singularCandidates(key string) []string {
	var out []string
	if strings.HasSuffix(key, "ces") && len(key) > 3 {
		out = append(out, key[:len(key)-3]+"z")
	}
	if strings.HasSuffix(key, "es") && len(key) > 2 {
		out = append(out, key[:len(key)-2])
	}
	if strings.HasSuffix(key, "s") && len(key) > 1 {
		out = append(out, key[:len(key)-1])
	}
	return out
}

// Pluralize derives the regular plural of a singular surface form (forward
// direction of §4.A, exercised by the plural round-trip test in
// loader_test.go; no grammar phase calls it). It does not consult the
// dictionary: callers check Invariant() first.
func Pluralize(singular string) string {
	if singular == "" {
		return singular
	}
	runes := []rune(singular)
	last := runes[len(runes)-1]
	switch {
	case last == 'z':
		return string(runes[:len(runes)-1]) + "ces"
	case isVowel(last):
		return singular + "s"
	default:
		return singular + "es"
	}
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'á', 'é', 'í', 'ó', 'ú':
		return true
	default:
		return false
	}
}

var (
	numericPattern = regexp.MustCompile(`^[+-]?\d{1,3}([.,]\d{3})*([.,]\d+)?$`)
	ordinalPattern = regexp.MustCompile(`^\d+(º|ª|er|o|a|os|as)$`)
)

// IsNumeric reports whether word matches a number (with optional locale
// thousands/decimal separators) or ordinal pattern (§4.C: such words are
// "known" and never generate spelling suggestions).
func IsNumeric(word string) bool {
	return numericPattern.MatchString(word) || ordinalPattern.MatchString(word)
}
