// Package spell implements bounded-edit-distance spelling suggestions over
// a dict.Trie, and owns the full "is this word known" decision that
// combines dictionary, plural, verb-recognizer, custom-dictionary,
// proper-name and numeric checks (§4.C).
package spell

import (
	"math"
	"sort"

	"github.com/escriba/corrector/dict"
	"github.com/escriba/corrector/internal/ortho"
	"github.com/escriba/corrector/verb"
)

// VerbRecognizer is the subset of verb.Recognizer the spelling engine
// needs, kept as an interface so Catalan (which has no verb recognizer,
// §4.F) can pass nil.
type VerbRecognizer interface {
	Recognize(surface string) (verb.Recognition, bool)
}

// Engine generates and ranks spelling suggestions against a dictionary.
type Engine struct {
	dict     *dict.Dictionary
	verbs    VerbRecognizer // nil for languages with no verb recognizer
	customOK func(string) bool
}

// NewEngine builds a suggestion engine over d. verbs may be nil (Catalan).
// custom is consulted by Known for the custom-dictionary short-circuit
// (§6); pass nil if there is no custom dictionary loaded.
func NewEngine(d *dict.Dictionary, verbs VerbRecognizer, custom func(string) bool) *Engine {
	return &Engine{dict: d, verbs: verbs, customOK: custom}
}

// Known reports whether word requires no spelling suggestion at all: an
// exact or plural-derived dictionary hit, a verb-recognizer hit, a
// custom-dictionary hit, a proper name, or a numeric/ordinal pattern
// (§4.C).
func (e *Engine) Known(word string) bool {
	if len(e.dict.Lookup(word)) > 0 {
		return true
	}
	if e.dict.IsName(word) {
		return true
	}
	if dict.IsNumeric(word) {
		return true
	}
	if e.verbs != nil {
		if _, ok := e.verbs.Recognize(word); ok {
			return true
		}
	}
	if e.customOK != nil && e.customOK(word) {
		return true
	}
	return false
}

// candidate is one suggestion under evaluation, carrying its ranking keys.
type candidate struct {
	surface   string
	distance  float64
	frequency int
}

// Suggest returns up to maxSuggestions candidates for word within
// maxEditDistance, ranked per §4.C:
// (distance, -log(frequency), |len(surface)-len(word)|, lexicographic),
// with capitalization restored to match word's original pattern.
func (e *Engine) Suggest(word string, maxSuggestions, maxEditDistance int) []string {
	key := ortho.Lower(word)
	pattern := ortho.DetectCase(word)

	found := map[string]*candidate{}
	e.descend(e.dict.Trie().Root(), []rune{}, key, maxEditDistance, found)

	cands := make([]candidate, 0, len(found))
	for _, c := range found {
		cands = append(cands, *c)
	}
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		fa, fb := negLogFreq(a.frequency), negLogFreq(b.frequency)
		if fa != fb {
			return fa < fb
		}
		da := absInt(len([]rune(a.surface)) - len([]rune(key)))
		db := absInt(len([]rune(b.surface)) - len([]rune(key)))
		if da != db {
			return da < db
		}
		return a.surface < b.surface
	})

	if maxSuggestions > 0 && len(cands) > maxSuggestions {
		cands = cands[:maxSuggestions]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = ortho.ApplyCase(c.surface, pattern)
	}
	return out
}

func negLogFreq(freq int) float64 {
	if freq <= 0 {
		return math.Inf(1)
	}
	return -math.Log(float64(freq))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// descend walks the trie maintaining a Damerau-Levenshtein DP row per edge,
// grounded on the teacher's completer traversal (dawg.go) and on
// bastiangx-wordserve's prefix-trie descent with frequency ranking. The DP
// row is relative to key and compares raw runes; prune a branch once its
// row minimum exceeds maxDistance. Diacritic-only differences are weighted
// 0.5 (§4.C): once a full word is reached, accentAdjustedDistance replaces
// the DP distance with 0.5 when the word and key are equal after stripping
// diacritics.
func (e *Engine) descend(w dict.Walker, path []rune, key string, maxDistance int, found map[string]*candidate) {
	keyRunes := []rune(key)
	row := initialRow(len(keyRunes))
	sentinel := make([]int, len(keyRunes)+1)
	for i := range sentinel {
		sentinel[i] = len(keyRunes) + maxDistance + 1 // never wins a transposition at depth < 2
	}
	e.walk(w, path, keyRunes, row, sentinel, 0, maxDistance, found)
}

func initialRow(n int) []int {
	row := make([]int, n+1)
	for i := range row {
		row[i] = i
	}
	return row
}

func (e *Engine) walk(w dict.Walker, path []rune, keyRunes []rune, prevRow, prevPrevRow []int, prevRune rune, maxDistance int, found map[string]*candidate) {
	if entries := w.Entries(); entries != nil {
		dist := float64(prevRow[len(keyRunes)])
		if dist <= float64(maxDistance) {
			surface := string(path)
			dist = accentAdjustedDistance(surface, string(keyRunes), dist)
			if dist <= float64(maxDistance) {
				best := bestFrequency(entries)
				if existing, ok := found[surface]; !ok || dist < existing.distance {
					found[surface] = &candidate{surface: surface, distance: dist, frequency: best}
				}
			}
		}
	}
	for _, r := range w.Runes() {
		next, ok := w.Next(r)
		if !ok {
			continue
		}
		row := nextRow(prevRow, prevPrevRow, keyRunes, prevRune, r)
		if rowMin(row) > maxDistance {
			continue
		}
		e.walk(next, append(path, r), keyRunes, row, prevRow, r, maxDistance, found)
	}
}

// nextRow computes the DP row for appending edge rune r to the trie path:
// the standard Levenshtein recurrence, plus a transposition term for
// Damerau's adjacent-swap rule — if r and the edge two levels up spell out
// keyRunes[j-2] and keyRunes[j-1] in swapped order, the cell can also be
// reached by transposing those two key runes at cost 1 from prevPrevRow.
func nextRow(prevRow, prevPrevRow []int, keyRunes []rune, prevRune, r rune) []int {
	n := len(keyRunes)
	row := make([]int, n+1)
	row[0] = prevRow[0] + 1
	for j := 1; j <= n; j++ {
		cost := 1
		if keyRunes[j-1] == r {
			cost = 0
		}
		del := prevRow[j] + 1
		ins := row[j-1] + 1
		sub := prevRow[j-1] + cost
		best := min3(del, ins, sub)
		if j >= 2 && prevRune != 0 && r == keyRunes[j-2] && prevRune == keyRunes[j-1] {
			best = min3(best, best, prevPrevRow[j-2]+1)
		}
		row[j] = best
	}
	return row
}

func bestFrequency(entries []dict.Entry) int {
	best := 0
	for _, e := range entries {
		if e.Frequency > best {
			best = e.Frequency
		}
	}
	return best
}

// accentAdjustedDistance halves the contribution of a pure-diacritic
// mismatch: if surface and key differ only in accents (same once
// diacritics are stripped), the true edit cost is 0.5 regardless of what
// the rune-substitution DP counted.
func accentAdjustedDistance(surface, key string, dpDistance float64) float64 {
	if surface == key {
		return 0
	}
	if ortho.StripDiacritics(surface) == ortho.StripDiacritics(key) {
		return 0.5
	}
	return dpDistance
}

func rowMin(row []int) int {
	m := row[0]
	for _, v := range row[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// DefaultMaxEditDistance returns the default budget for word (§4.C: 2 for
// length >= 4, 1 for shorter words).
func DefaultMaxEditDistance(word string) int {
	if len([]rune(word)) >= 4 {
		return 2
	}
	return 1
}
