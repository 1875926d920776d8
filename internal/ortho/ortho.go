// Package ortho holds the small set of Unicode-aware text primitives shared
// by dict, verb, spell, grammar and render: case folding, diacritic
// stripping, and capitalization-pattern detection/restoration (§3 of
// SPEC_FULL.md: "a correction's replacement text preserves the original
// token's capitalization pattern").
//
// Grounded on cv-go-inflect/internal/inflect/rails.go's
// norm.NFD → runes.Remove(unicode.Mn) → norm.NFC pipeline.
package ortho

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	lowerCaser = cases.Lower(language.Und)
	upperCaser = cases.Upper(language.Und)

	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Lower Unicode-aware lower-cases s (used for trie keys; diacritics kept).
func Lower(s string) string { return lowerCaser.String(s) }

// StripDiacritics removes combining marks, e.g. "más" -> "mas", "á" -> "a".
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// FoldAccents lower-cases and strips diacritics, giving a key suitable for
// accent-insensitive comparisons (e.g. homophone tables that must match
// "esta" against "está" before deciding which one is correct).
func FoldAccents(s string) string { return StripDiacritics(Lower(s)) }

// CasePattern is the capitalization shape of a surface token.
type CasePattern uint8

const (
	CaseLower CasePattern = iota
	CaseTitle             // leading letter capitalized, rest lower
	CaseUpper             // all letters capitalized
	CaseMixed             // anything else (preserved verbatim, no restoration)
)

// DetectCase classifies the capitalization pattern of word.
func DetectCase(word string) CasePattern {
	letters := strings.TrimFunc(word, func(r rune) bool { return !unicode.IsLetter(r) })
	if letters == "" {
		return CaseLower
	}
	runesIn := []rune(letters)
	hasLower, hasUpper := false, false
	for _, r := range runesIn {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
	}
	switch {
	case hasUpper && !hasLower:
		return CaseUpper
	case !hasUpper:
		return CaseLower
	}
	if unicode.IsUpper(runesIn[0]) {
		rest := runesIn[1:]
		allLowerRest := true
		for _, r := range rest {
			if unicode.IsUpper(r) {
				allLowerRest = false
				break
			}
		}
		if allLowerRest {
			return CaseTitle
		}
	}
	return CaseMixed
}

// ApplyCase re-applies pattern to word (a lower-case replacement/suggestion).
func ApplyCase(word string, pattern CasePattern) string {
	switch pattern {
	case CaseUpper:
		return upperCaser.String(word)
	case CaseTitle:
		r := []rune(word)
		if len(r) == 0 {
			return word
		}
		r[0] = unicode.ToUpper(r[0])
		return string(r)
	default:
		return word
	}
}
