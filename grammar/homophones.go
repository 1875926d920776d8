package grammar

import (
	"github.com/escriba/corrector/token"
	"github.com/escriba/corrector/verb"
)

var articlesAndDeterminers = func() map[string]bool {
	m := map[string]bool{}
	for k := range allArticles {
		m[k] = true
	}
	for k := range determiners {
		m[k] = true
	}
	return m
}()

// HomophoneConfusables is phase 8: a small set of word pairs confused
// because they sound identical or nearly so, resolved by local part-of-
// speech context rather than the full closed table in phase 5.
func HomophoneConfusables(tokens []*token.Token, ctx *Context) {
	for i, t := range tokens {
		if !isWord(t) {
			continue
		}
		switch t.Normalized {
		case "tubo":
			if !precededByDeterminer(tokens, i) {
				t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 8, Replacement: matchCase(t.Surface, "tuvo")})
			}
		case "halla":
			if precededByWord(tokens, i, "que") {
				t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 8, Replacement: matchCase(t.Surface, "haya")})
			}
		case "haber":
			if clauseStartPosition(tokens, i) && followedByInterrogative(tokens, i) {
				t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 8, Replacement: "a ver"})
			}
		case "ahi":
			if followedByBareNounPhrase(tokens, ctx, i) {
				t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 8, Replacement: matchCase(t.Surface, "hay")})
			}
		}
	}
}

func precededByDeterminer(tokens []*token.Token, i int) bool {
	for k := i - 1; k >= 0; k-- {
		if tokens[k].Category == token.CategorySpace {
			continue
		}
		return isWord(tokens[k]) && articlesAndDeterminers[tokens[k].Normalized]
	}
	return false
}

func precededByWord(tokens []*token.Token, i int, word string) bool {
	for k := i - 1; k >= 0; k-- {
		if tokens[k].Category == token.CategorySpace {
			continue
		}
		return isWord(tokens[k]) && tokens[k].Normalized == word
	}
	return false
}

func clauseStartPosition(tokens []*token.Token, i int) bool {
	for k := i - 1; k >= 0; k-- {
		if tokens[k].Category == token.CategorySpace {
			continue
		}
		if tokens[k].Category == token.CategoryPunct && clauseBoundary[tokens[k].Mark] {
			return true
		}
		return false
	}
	return true
}

func followedByInterrogative(tokens []*token.Token, i int) bool {
	j := skipSpace(tokens, i+1)
	if j >= len(tokens) || !isWord(tokens[j]) {
		return false
	}
	return interrogatives[tokens[j].Normalized]
}

func followedByBareNounPhrase(tokens []*token.Token, ctx *Context, i int) bool {
	j := skipSpace(tokens, i+1)
	if j >= len(tokens) || !isWord(tokens[j]) {
		return false
	}
	if tokens[j].Category == token.CategoryNumber {
		return true
	}
	_, _, ok := nounFeatures(ctx, tokens[j])
	return ok && !articlesAndDeterminers[tokens[j].Normalized]
}

// PorqueDisambiguation is phase 9: "porque" becomes "por qué" in a question
// or exclamation or after a verb of cognition/inquiry, and the noun "porqué"
// after a determiner; otherwise it stays as the causal conjunction. Only
// "porque" is examined: the relative "por que" is never produced, and the
// spellings "por qué", "porqué" and "por que" are not checked.
func PorqueDisambiguation(tokens []*token.Token, ctx *Context) {
	for i, t := range tokens {
		if !isWord(t) || t.Normalized != "porque" {
			continue
		}
		if sentenceIsQuestionOrExclamation(tokens, i) || precededByInterrogativeComplementVerb(tokens, ctx, i) {
			t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 9, Replacement: matchCase(t.Surface, "por qué")})
			continue
		}
		if precededByDeterminer(tokens, i) {
			// "el porque de su actitud" — nominalized noun, spelled as one
			// word but with a written accent on "qué".
			t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 9, Replacement: matchCase(t.Surface, "porqué")})
		}
	}
}

// interrogativeComplementVerbs are verbs of cognition/inquiry whose object
// clause is an indirect question even without question punctuation
// ("no sé porque vino" = "no sé por qué vino").
var interrogativeComplementVerbs = map[string]bool{
	"saber": true, "preguntar": true, "entender": true, "comprender": true,
	"explicar": true, "averiguar": true, "imaginar": true,
}

func precededByInterrogativeComplementVerb(tokens []*token.Token, ctx *Context, i int) bool {
	if ctx.Verbs == nil {
		return false
	}
	for k := i - 1; k >= 0; k-- {
		if tokens[k].Category == token.CategorySpace {
			continue
		}
		if tokens[k].Category == token.CategoryPunct && clauseBoundary[tokens[k].Mark] {
			return false
		}
		if !isWord(tokens[k]) {
			continue
		}
		if tokens[k].Normalized == "no" {
			continue
		}
		if tokens[k].Normalized == "se" {
			// Unaccented "se" spelled for "sé" (saber, 1sg present) is the
			// single most common trigger of this pattern ("no se porque...").
			return true
		}
		rec, ok := ctx.Verbs.Recognize(tokens[k].Normalized)
		if !ok {
			return false
		}
		return interrogativeComplementVerbs[rec.Lemma]
	}
	return false
}

// sinoTriggerWords are the negation words whose presence earlier in the
// clause makes "sino" (adversative) rather than "si no" (conditional +
// negation) the required form.
var sinoTriggerWords = map[string]bool{"no": true, "nunca": true, "jamás": true}

// SinoSiNo is phase 10: "sino" (adversative conjunction, "but rather")
// versus "si no" (conditional "if not"), tested by substitutability —
// approximated here by checking for a preceding negation in the same
// clause, the syntactic signature of the adversative reading.
func SinoSiNo(tokens []*token.Token, ctx *Context) {
	for i, t := range tokens {
		if !isWord(t) {
			continue
		}
		if t.Normalized == "sino" && !precededByNegationInClause(tokens, i) {
			t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 10, Replacement: matchCase(t.Surface, "si no")})
		}
	}
}

func precededByNegationInClause(tokens []*token.Token, i int) bool {
	for k := i - 1; k >= 0; k-- {
		if tokens[k].Category == token.CategoryPunct && clauseBoundary[tokens[k].Mark] {
			return false
		}
		if isWord(tokens[k]) && sinoTriggerWords[tokens[k].Normalized] {
			return true
		}
	}
	return false
}
