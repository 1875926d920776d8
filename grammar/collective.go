package grammar

import (
	"github.com/escriba/corrector/dict"
	"github.com/escriba/corrector/token"
	"github.com/escriba/corrector/verb"
)

// collectiveSubjectNoun looks back over any articles/determiners to find a
// singular collective noun (dictionary flag "collective": gente, mayoría,
// equipo, familia...) immediately governing the verb at i.
func collectiveSubjectNoun(tokens []*token.Token, ctx *Context, i int) bool {
	for k := i - 1; k >= 0; k-- {
		if tokens[k].Category == token.CategorySpace {
			continue
		}
		if !isWord(tokens[k]) {
			return false
		}
		for _, e := range entriesOf(ctx, tokens[k].Surface) {
			if e.Category == dict.CategoryNoun && e.HasFlag("collective") {
				return true
			}
		}
		if allArticles[tokens[k].Normalized] || determiners[tokens[k].Normalized] {
			continue
		}
		return false
	}
	return false
}

// CollectiveNounAgreement is phase 19: a singular collective noun subject
// ("la gente", "el equipo", "la mayoría") takes a singular verb in standard
// Spanish, even though it denotes a plurality.
func CollectiveNounAgreement(tokens []*token.Token, ctx *Context) {
	if ctx.Verbs == nil {
		return
	}
	for i, t := range tokens {
		if !isWord(t) {
			continue
		}
		rec, ok := ctx.Verbs.Recognize(t.Normalized)
		if !ok || rec.Mood != verb.Indicative || rec.Number != verb.Plural || rec.Person != verb.Third {
			continue
		}
		if !collectiveSubjectNoun(tokens, ctx, i) {
			continue
		}
		paradigm, ok := verb.Conjugate(rec.Lemma, rec.Tense)
		if !ok {
			continue
		}
		want := paradigm.Cell(verb.Third, verb.Singular)
		if want == "" || want == t.Normalized {
			continue
		}
		t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 19, Replacement: matchCase(t.Surface, want)})
	}
}

// RelativeClauseAgreement is phase 20: a participle/adjective predicated
// across a "que" relative clause onto an antecedent noun must agree with
// that antecedent, not with whatever word happens to sit closer.
// ("la casa que fue pintado" -> antecedent "casa" is feminine, so the
// predicate agrees as "pintada").
func RelativeClauseAgreement(tokens []*token.Token, ctx *Context) {
	for i, t := range tokens {
		if !isWord(t) || t.Normalized != "que" {
			continue
		}
		antecedent := precedingNounToken(tokens, ctx, i)
		if antecedent == nil {
			continue
		}
		gender, number, ok := nounFeatures(ctx, antecedent)
		if !ok {
			continue
		}
		j := skipSpace(tokens, i+1)
		// Skip one copular/auxiliary verb (ser/estar/haber sido/...) between
		// "que" and the predicate adjective.
		if j < len(tokens) && isWord(tokens[j]) && ctx.Verbs != nil {
			if rec, ok := ctx.Verbs.Recognize(tokens[j].Normalized); ok && rec.Mood == verb.Indicative {
				j = skipSpace(tokens, j+1)
			}
		}
		if j >= len(tokens) || !isWord(tokens[j]) {
			continue
		}
		entries := adjectiveEntries(ctx, tokens[j])
		if len(entries) == 0 || adjectiveInvariant(entries) {
			continue
		}
		want := agreeingAdjective(tokens[j].Normalized, gender, number)
		if want == "" || want == tokens[j].Normalized {
			continue
		}
		tokens[j].Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 20, Replacement: matchCase(tokens[j].Surface, want)})
	}
}

func precedingNounToken(tokens []*token.Token, ctx *Context, i int) *token.Token {
	for k := i - 1; k >= 0; k-- {
		if tokens[k].Category == token.CategorySpace {
			continue
		}
		if !isWord(tokens[k]) {
			return nil
		}
		if _, _, ok := nounFeatures(ctx, tokens[k]); ok {
			return tokens[k]
		}
		return nil
	}
	return nil
}

// unoDeLosQueAt reports whether tokens[i:] begins "uno/una de los/las que" or
// "uno/una de los/las <noun> que", returning the index of "que" if found.
func unoDeLosQueAt(tokens []*token.Token, i int) (int, bool) {
	if !isWord(tokens[i]) || (tokens[i].Normalized != "uno" && tokens[i].Normalized != "una") {
		return 0, false
	}
	j := skipSpace(tokens, i+1)
	if j >= len(tokens) || !isWord(tokens[j]) || tokens[j].Normalized != "de" {
		return 0, false
	}
	j = skipSpace(tokens, j+1)
	if j >= len(tokens) || !isWord(tokens[j]) {
		return 0, false
	}
	switch tokens[j].Normalized {
	case "los", "las", "sus", "mis", "nuestros", "nuestras":
	default:
		return 0, false
	}
	j = skipSpace(tokens, j+1)
	if j >= len(tokens) || !isWord(tokens[j]) {
		return 0, false
	}
	if tokens[j].Normalized == "que" {
		return j, true
	}
	// Skip the plural noun.
	j = skipSpace(tokens, j+1)
	if j >= len(tokens) || !isWord(tokens[j]) || tokens[j].Normalized != "que" {
		return 0, false
	}
	return j, true
}

// UnoDeLosQue is phase 21: in "uno de los que ..." the relative clause
// refers to the plural antecedent ("los que"), not to "uno", so its verb
// must be plural ("uno de los que saben", not "sabe"). Only the word
// directly after "que" is checked.
func UnoDeLosQue(tokens []*token.Token, ctx *Context) {
	if ctx.Verbs == nil {
		return
	}
	for i := range tokens {
		quei, ok := unoDeLosQueAt(tokens, i)
		if !ok {
			continue
		}
		j := skipSpace(tokens, quei+1)
		if j >= len(tokens) || !isWord(tokens[j]) {
			continue
		}
		rec, ok := ctx.Verbs.Recognize(tokens[j].Normalized)
		if !ok || rec.Mood != verb.Indicative || !(rec.Number == verb.Singular && rec.Person == verb.Third) {
			continue
		}
		paradigm, ok := verb.Conjugate(rec.Lemma, rec.Tense)
		if !ok {
			continue
		}
		want := paradigm.Cell(verb.Third, verb.Plural)
		if want == "" || want == tokens[j].Normalized {
			continue
		}
		tokens[j].Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 21, Replacement: matchCase(tokens[j].Surface, want)})
	}
}
