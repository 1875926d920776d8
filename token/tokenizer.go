package token

import (
	"unicode"
	"unicode/utf8"

	"github.com/escriba/corrector/internal/ortho"
)

// Tokenize scans text rune by rune, tracking byte offsets explicitly (no
// regexp, no external scanner), in the same manual-byte-walk style as the
// teacher's dictionary.followBytes. internalChars supplies the
// language-specific runes that continue a word run without breaking it
// (§4.D: Catalan's middle dot `·` and elision apostrophe).
func Tokenize(text string, internalChars map[rune]bool) []*Token {
	runes := []rune(text)
	n := len(runes)
	var tokens []*Token
	byteOffset := make([]int, n+1)
	off := 0
	for i, r := range runes {
		byteOffset[i] = off
		off += utf8.RuneLen(r)
	}
	byteOffset[n] = off

	isWordRune := func(r rune) bool {
		return unicode.IsLetter(r) || internalChars[r]
	}
	isDigit := unicode.IsDigit

	i := 0
	for i < n {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			j := i + 1
			for j < n && unicode.IsSpace(runes[j]) {
				j++
			}
			tokens = append(tokens, makeToken(text, byteOffset, i, j, CategorySpace))
			i = j

		case isDigit(r):
			j := i + 1
			mixed := false
			for j < n {
				if isDigit(runes[j]) {
					j++
					continue
				}
				if (runes[j] == '.' || runes[j] == ',') && j+1 < n && isDigit(runes[j+1]) {
					j++
					continue
				}
				if isWordRune(runes[j]) {
					mixed = true
					j++
					continue
				}
				break
			}
			cat := CategoryNumber
			if mixed {
				cat = CategoryMixed
			}
			tokens = append(tokens, makeToken(text, byteOffset, i, j, cat))
			i = j

		case isWordRune(r):
			j := i + 1
			mixed := false
			for j < n && (isWordRune(runes[j]) || isDigit(runes[j])) {
				if isDigit(runes[j]) {
					mixed = true
				}
				j++
			}
			cat := CategoryWord
			if mixed {
				cat = CategoryMixed
			}
			tokens = append(tokens, makeToken(text, byteOffset, i, j, cat))
			i = j

		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			tok := makeToken(text, byteOffset, i, i+1, CategoryPunct)
			tok.Mark = r
			tokens = append(tokens, tok)
			i++

		default:
			tokens = append(tokens, makeToken(text, byteOffset, i, i+1, CategoryUnknown))
			i++
		}
	}
	return tokens
}

func makeToken(text string, byteOffset []int, startRune, endRune int, cat Category) *Token {
	start, end := byteOffset[startRune], byteOffset[endRune]
	surface := text[start:end]
	return &Token{
		Start:      start,
		End:        end,
		Surface:    surface,
		Normalized: ortho.Lower(surface),
		Category:   cat,
	}
}
