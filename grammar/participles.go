package grammar

import (
	"github.com/escriba/corrector/token"
	"github.com/escriba/corrector/verb"
)

var haberForms = map[string]bool{
	"he": true, "has": true, "ha": true, "hemos": true, "habéis": true, "han": true,
	"había": true, "habías": true, "habíamos": true, "habíais": true, "habían": true,
	"habré": true, "habrás": true, "habrá": true, "habremos": true, "habréis": true, "habrán": true,
	"haya": true, "hayas": true, "hayamos": true, "hayáis": true, "hayan": true,
}

// CompoundTenseParticiples is phase 14: "haber" conjugated, followed by a
// participle, requires the correct (possibly irregular) participle form —
// a regularized misspelling like "escribido" is downgraded from a plain
// spelling suggestion into this rule.
func CompoundTenseParticiples(tokens []*token.Token, ctx *Context) {
	for i, t := range tokens {
		if !isWord(t) || !haberForms[t.Normalized] {
			continue
		}
		j := skipSpace(tokens, i+1)
		if j >= len(tokens) || !isWord(tokens[j]) {
			continue
		}
		participleTok := tokens[j]
		for _, lemma := range participleLemmaCandidates(participleTok.Normalized) {
			correct, ok := verb.ParticipleOf(lemma)
			if !ok || correct == participleTok.Normalized {
				continue
			}
			participleTok.Downgrade(token.Annotation{Kind: token.KindGrammatical, RuleID: 14, Replacement: matchCase(participleTok.Surface, correct)})
			break
		}
	}
}

// participleLemmaCandidates guesses the lemma(s) behind a word shaped like
// a (possibly malformed) -ado/-ido participle. "-ido" is regularly formed
// by both -er and -ir verbs (comido, vivido), so it yields two candidates;
// the caller picks whichever resolves to a known irregular participle.
func participleLemmaCandidates(word string) []string {
	switch {
	case hasSuffixStr(word, "ado") && len(word) > 3:
		return []string{word[:len(word)-3] + "ar"}
	case hasSuffixStr(word, "ido") && len(word) > 3:
		stem := word[:len(word)-3]
		return []string{stem + "ir", stem + "er"}
	default:
		return nil
	}
}

func hasSuffixStr(s, suf string) bool {
	return len(s) >= len(suf) && s[len(s)-len(suf):] == suf
}
