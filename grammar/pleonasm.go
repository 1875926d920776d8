package grammar

import (
	"strings"

	"github.com/escriba/corrector/token"
)

// Pleonasms is phase 22: a small closed set of motion verbs redundantly
// paired with an adverb that restates the verb's own directionality
// ("subir arriba", "bajar abajo", "entrar dentro", "salir fuera").
func Pleonasms(tokens []*token.Token, ctx *Context) {
	if ctx.Verbs == nil {
		return
	}
	for i, t := range tokens {
		if !isWord(t) {
			continue
		}
		rec, ok := ctx.Verbs.Recognize(t.Normalized)
		if !ok {
			continue
		}
		pair, known := pleonasms[rec.Lemma]
		if !known {
			continue
		}
		forbidden := pair[1]
		j := skipSpace(tokens, i+1)
		if j >= len(tokens) || !isWord(tokens[j]) || tokens[j].Normalized != forbidden {
			continue
		}
		tokens[j].Annotate(token.Annotation{Kind: token.KindDeletion, RuleID: 22})
	}
}

// matchPhrase reports whether the word tokens starting at i (skipping
// interleaved spaces) spell out words in order, returning the index of the
// last matched word token.
func matchPhrase(tokens []*token.Token, i int, words []string) (int, bool) {
	idx := i
	for n, w := range words {
		if n > 0 {
			idx = skipSpace(tokens, idx+1)
		}
		if idx >= len(tokens) || !isWord(tokens[idx]) || tokens[idx].Normalized != w {
			return 0, false
		}
	}
	return idx, true
}

// FossilizedPrepositions is phase 23: malformed fixed prepositional
// phrases ("en base a", "a nivel de", "de acuerdo a") corrected to the
// standard form. The first word of the phrase is replaced with the full
// correction; the remaining original words are deleted.
func FossilizedPrepositions(tokens []*token.Token, ctx *Context) {
	for phrase, correction := range fossilizedPrepositions {
		words := strings.Fields(phrase)
		for i, t := range tokens {
			if !isWord(t) || t.Normalized != words[0] {
				continue
			}
			last, ok := matchPhrase(tokens, i, words)
			if !ok {
				continue
			}
			t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 23, Replacement: matchCase(t.Surface, correction)})
			for k := i + 1; k <= last; k++ {
				if isWord(tokens[k]) {
					tokens[k].Annotate(token.Annotation{Kind: token.KindDeletion, RuleID: 23})
				}
			}
		}
	}
}
