package grammar

import (
	"unicode"

	"github.com/escriba/corrector/token"
)

var sentenceTerminators = map[rune]bool{'.': true, '!': true, '?': true, '…': true}

// SentenceStartCapitalization is phase 6: the first word of the text and
// the first word after a sentence-terminating punctuation mark must start
// with a capital letter.
func SentenceStartCapitalization(tokens []*token.Token, ctx *Context) {
	expectCapital := true
	for _, t := range tokens {
		switch t.Category {
		case token.CategoryWord, token.CategoryMixed:
			if expectCapital {
				fixLeadingCapital(t)
			}
			expectCapital = false
		case token.CategoryPunct:
			if sentenceTerminators[t.Mark] {
				expectCapital = true
			}
		case token.CategorySpace:
			// does not reset expectCapital
		default:
			expectCapital = false
		}
	}
}

func fixLeadingCapital(t *token.Token) {
	runes := []rune(t.Surface)
	if len(runes) == 0 || !unicode.IsLetter(runes[0]) || unicode.IsUpper(runes[0]) {
		return
	}
	fixed := make([]rune, len(runes))
	copy(fixed, runes)
	fixed[0] = unicode.ToUpper(fixed[0])
	t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 6, Replacement: string(fixed)})
}
