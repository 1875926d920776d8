package grammar

import (
	"github.com/escriba/corrector/dict"
	"github.com/escriba/corrector/token"
	"github.com/escriba/corrector/verb"
)

// HaAInfinitive is phase 24: the auxiliary "ha" (haber) only precedes a
// participle (compound perfect); immediately before an infinitive the
// correct word is the preposition "a" ("voy ha comer" -> "voy a comer").
func HaAInfinitive(tokens []*token.Token, ctx *Context) {
	if ctx.Verbs == nil {
		return
	}
	for i, t := range tokens {
		if !isWord(t) || t.Normalized != "ha" {
			continue
		}
		j := skipSpace(tokens, i+1)
		if j >= len(tokens) || !isWord(tokens[j]) {
			continue
		}
		rec, ok := ctx.Verbs.Recognize(tokens[j].Normalized)
		if !ok || rec.Tense != verb.Infinitive {
			continue
		}
		t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 24, Replacement: matchCase(t.Surface, "a")})
	}
}

// posteriorityGerunds are gerunds of verbs that, used right after a comma
// to report an outcome, are prescriptively wrong when the outcome follows
// the main clause in time rather than accompanying it; the standard fix
// coordinates a finite clause instead ("perdiendo el tren" -> "y perdió
// el tren").
var posteriorityGerunds = map[string]bool{
	"perder": true, "morir": true, "fallecer": true, "resultar": true,
	"terminar": true, "acabar": true, "provocar": true, "ocasionar": true, "causar": true,
}

// PosteriorGerund is phase 25.
func PosteriorGerund(tokens []*token.Token, ctx *Context) {
	if ctx.Verbs == nil {
		return
	}
	for i, t := range tokens {
		if !isWord(t) || !posteriorityGerunds[verbLemma(ctx, t)] {
			continue
		}
		rec, ok := ctx.Verbs.Recognize(t.Normalized)
		if !ok || rec.Tense != verb.Gerund {
			continue
		}
		commaIdx := i - 1
		for commaIdx >= 0 && tokens[commaIdx].Category == token.CategorySpace {
			commaIdx--
		}
		if commaIdx < 0 || tokens[commaIdx].Category != token.CategoryPunct || tokens[commaIdx].Mark != ',' {
			continue
		}
		mainTense, mainPerson, mainNumber, ok := precedingFiniteNarrativeVerb(tokens, ctx, commaIdx)
		if !ok {
			continue
		}
		paradigm, ok := verb.Conjugate(rec.Lemma, mainTense)
		if !ok {
			continue
		}
		conjugated := paradigm.Cell(mainPerson, mainNumber)
		if conjugated == "" {
			continue
		}
		tokens[commaIdx].Annotate(token.Annotation{Kind: token.KindDeletion, RuleID: 25})
		t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 25, Replacement: matchCase(t.Surface, "y "+conjugated)})
	}
}

// precedingFiniteNarrativeVerb scans backward from i for the nearest
// preterite/imperfect indicative verb within the same clause.
func precedingFiniteNarrativeVerb(tokens []*token.Token, ctx *Context, i int) (verb.Tense, verb.Person, verb.Number, bool) {
	for k := i - 1; k >= 0; k-- {
		if tokens[k].Category == token.CategorySpace {
			continue
		}
		if tokens[k].Category == token.CategoryPunct && sentenceTerminators[tokens[k].Mark] {
			return 0, 0, 0, false
		}
		if !isWord(tokens[k]) {
			continue
		}
		rec, ok := ctx.Verbs.Recognize(tokens[k].Normalized)
		if !ok {
			continue
		}
		if rec.Mood == verb.Indicative && (rec.Tense == verb.Preterite || rec.Tense == verb.Imperfect) {
			return rec.Tense, rec.Person, rec.Number, true
		}
	}
	return 0, 0, 0, false
}

// InfinitiveAsImperative is phase 26: colloquial use of the bare
// infinitive as a command ("¡Venir aquí!") where the imperative is
// required ("¡Venid aquí!"). Scoped to the clause-initial position inside
// a question or exclamation, corrected to the second-person-plural
// (vosotros) imperative.
func InfinitiveAsImperative(tokens []*token.Token, ctx *Context) {
	if ctx.Verbs == nil {
		return
	}
	for i, t := range tokens {
		if !isWord(t) || !clauseStartPosition(tokens, i) {
			continue
		}
		rec, ok := ctx.Verbs.Recognize(t.Normalized)
		if !ok || rec.Tense != verb.Infinitive {
			continue
		}
		if !sentenceIsQuestionOrExclamation(tokens, i) {
			continue
		}
		paradigm, ok := verb.Conjugate(rec.Lemma, verb.ImperativeTense)
		if !ok {
			continue
		}
		want := paradigm.Cell(verb.Second, verb.Plural)
		if want == "" || want == t.Normalized {
			continue
		}
		t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 26, Replacement: matchCase(t.Surface, want)})
	}
}

// CommonGenderExplicitReferent is phase 27: a common-gender noun ("el/la
// testigo", "el/la estudiante") takes the article matching the gender of
// an explicit personal-name referent immediately following it, rather
// than defaulting to masculine. Referent gender is guessed from the
// name's own surface form (the closed -a/-o ending heuristic widely used
// for Spanish given names), a known imprecision for names that don't
// follow it.
func CommonGenderExplicitReferent(tokens []*token.Token, ctx *Context) {
	if ctx.Dictionary == nil {
		return
	}
	for i, t := range tokens {
		if !isWord(t) || !allArticles[t.Normalized] {
			continue
		}
		j := skipSpace(tokens, i+1)
		if j >= len(tokens) || !isWord(tokens[j]) {
			continue
		}
		if !commonGenderNoun(ctx, tokens[j]) {
			continue
		}
		k := skipSpace(tokens, j+1)
		if k >= len(tokens) || !isWord(tokens[k]) || !ctx.Dictionary.IsName(tokens[k].Surface) {
			continue
		}
		gender, guessed := guessNameGender(tokens[k].Normalized)
		if !guessed {
			continue
		}
		number := dict.NumberSingular
		correctArticle(t, gender, number)
	}
}

func commonGenderNoun(ctx *Context, t *token.Token) bool {
	for _, e := range entriesOf(ctx, t.Surface) {
		if e.Category == dict.CategoryNoun && e.Gender == dict.GenderCommon {
			return true
		}
	}
	return false
}

func guessNameGender(name string) (dict.Gender, bool) {
	runes := []rune(name)
	if len(runes) == 0 {
		return dict.GenderNone, false
	}
	switch runes[len(runes)-1] {
	case 'a':
		return dict.GenderFem, true
	case 'o':
		return dict.GenderMasc, true
	default:
		return dict.GenderNone, false
	}
}

// CoordinatedSubjects is phase 28: the correlative coordinators "ni A ni B"
// and "tanto A como B" join two conjuncts into a single plural subject, so
// the verb that governs them must be plural even though each conjunct is
// singular ("ni el perro ni el gato sabe" -> "saben"; "tanto el perro como
// el gato duerme" -> "duermen").
func CoordinatedSubjects(tokens []*token.Token, ctx *Context) {
	if ctx.Verbs == nil {
		return
	}
	for i, t := range tokens {
		if !isWord(t) {
			continue
		}
		switch t.Normalized {
		case "ni":
			correctCorrelativeSubjectVerb(tokens, ctx, i, "ni")
		case "tanto":
			correctCorrelativeSubjectVerb(tokens, ctx, i, "como")
		}
	}
}

// correctCorrelativeSubjectVerb matches "<first> <NP> <second> <NP> <verb>"
// starting at the first correlative's position i, and pluralizes a
// singular third-person verb found governing the two conjuncts.
func correctCorrelativeSubjectVerb(tokens []*token.Token, ctx *Context, i int, second string) {
	j := skipSpace(tokens, i+1)
	end1, ok := scanSubjectNounPhrase(tokens, ctx, j)
	if !ok {
		return
	}
	k := skipSpace(tokens, end1+1)
	if k >= len(tokens) || !isWord(tokens[k]) || tokens[k].Normalized != second {
		return
	}
	m := skipSpace(tokens, k+1)
	end2, ok := scanSubjectNounPhrase(tokens, ctx, m)
	if !ok {
		return
	}
	v := skipSpace(tokens, end2+1)
	if v >= len(tokens) || !isWord(tokens[v]) {
		return
	}
	rec, ok := ctx.Verbs.Recognize(tokens[v].Normalized)
	if !ok || rec.Mood != verb.Indicative || rec.Number != verb.Singular || rec.Person != verb.Third {
		return
	}
	paradigm, ok := verb.Conjugate(rec.Lemma, rec.Tense)
	if !ok {
		return
	}
	want := paradigm.Cell(verb.Third, verb.Plural)
	if want == "" || want == tokens[v].Normalized {
		return
	}
	tokens[v].Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 28, Replacement: matchCase(tokens[v].Surface, want)})
}

// scanSubjectNounPhrase matches an optional article or determiner followed
// by a singular noun starting at i, returning the index of its last token.
func scanSubjectNounPhrase(tokens []*token.Token, ctx *Context, i int) (int, bool) {
	if i >= len(tokens) || !isWord(tokens[i]) {
		return 0, false
	}
	j := i
	if allArticles[tokens[i].Normalized] || determiners[tokens[i].Normalized] {
		j = skipSpace(tokens, i+1)
		if j >= len(tokens) || !isWord(tokens[j]) {
			return 0, false
		}
	}
	_, number, ok := nounFeatures(ctx, tokens[j])
	if !ok || number != dict.NumberSingular {
		return 0, false
	}
	return j, true
}
