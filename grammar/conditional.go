package grammar

import (
	"github.com/escriba/corrector/token"
	"github.com/escriba/corrector/verb"
)

// CounterfactualConditional is phase 18: a "si" protasis takes the past
// subjunctive, never the conditional ("si tendría dinero" -> "si tuviera
// dinero"). Only the verb immediately governed by "si" is corrected; a
// conditional in the apodosis ("... viajaría por el mundo") is correct as
// is and is left untouched.
func CounterfactualConditional(tokens []*token.Token, ctx *Context) {
	for i, t := range tokens {
		if !isWord(t) || t.Normalized != "si" {
			continue
		}
		j := skipSpace(tokens, i+1)
		if j >= len(tokens) || !isWord(tokens[j]) {
			continue
		}
		verbTok := tokens[j]
		if ctx.Verbs == nil {
			continue
		}
		rec, ok := ctx.Verbs.Recognize(verbTok.Normalized)
		if !ok || rec.Tense != verb.Conditional || rec.Mood != verb.Indicative {
			continue
		}
		paradigm, ok := verb.PastSubjunctive(rec.Lemma)
		if !ok {
			continue
		}
		replacement := paradigm.Cell(rec.Person, rec.Number)
		if replacement == "" || replacement == verbTok.Normalized {
			continue
		}
		verbTok.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 18, Replacement: matchCase(verbTok.Surface, replacement)})
	}
}
