package grammar

import (
	"github.com/escriba/corrector/dict"
	"github.com/escriba/corrector/internal/ortho"
	"github.com/escriba/corrector/token"
	"github.com/escriba/corrector/verb"
)

// definiteArticles and indefiniteArticles map (gender, number) to the
// correct article form; correctArticle picks the table by the article's own
// definiteness (inferred from its surface: "el/la/los/las" are definite,
// "un/una/unos/unas" indefinite).
var definiteArticles = map[dict.Gender]map[dict.Number]string{
	dict.GenderMasc: {dict.NumberSingular: "el", dict.NumberPlural: "los"},
	dict.GenderFem:  {dict.NumberSingular: "la", dict.NumberPlural: "las"},
}
var indefiniteArticles = map[dict.Gender]map[dict.Number]string{
	dict.GenderMasc: {dict.NumberSingular: "un", dict.NumberPlural: "unos"},
	dict.GenderFem:  {dict.NumberSingular: "una", dict.NumberPlural: "unas"},
}

var allArticles = map[string]bool{
	"el": true, "la": true, "los": true, "las": true,
	"un": true, "una": true, "unos": true, "unas": true,
}

// nounFeatures looks up the first noun entry for a word token, if any.
func nounFeatures(ctx *Context, t *token.Token) (dict.Gender, dict.Number, bool) {
	for _, e := range entriesOf(ctx, t.Surface) {
		if e.Category == dict.CategoryNoun && e.Gender != dict.GenderNone && e.Gender != dict.GenderCommon {
			num := e.Number
			if num == dict.NumberInvariant || num == dict.NumberNone {
				num = dict.NumberSingular
			}
			return e.Gender, num, true
		}
	}
	return dict.GenderNone, dict.NumberNone, false
}

func adjectiveEntries(ctx *Context, t *token.Token) []dict.Entry {
	var out []dict.Entry
	for _, e := range entriesOf(ctx, t.Surface) {
		if e.Category == dict.CategoryAdjective {
			out = append(out, e)
		}
	}
	return out
}

func adjectiveInvariant(entries []dict.Entry) bool {
	for _, e := range entries {
		if e.Invariant() {
			return true
		}
	}
	return false
}

// ArticleNounAgreement is phase 1: for each (article, noun) pair separated
// by at most one optional adjective, check gender+number and replace a
// mismatched article.
func ArticleNounAgreement(tokens []*token.Token, ctx *Context) {
	for i, t := range tokens {
		if !isWord(t) || !allArticles[t.Normalized] {
			continue
		}
		j := skipSpace(tokens, i+1)
		if j >= len(tokens) {
			continue
		}
		// Optional single adjective between article and noun.
		if isWord(tokens[j]) && len(adjectiveEntries(ctx, tokens[j])) > 0 {
			k := skipSpace(tokens, j+1)
			if k < len(tokens) && isWord(tokens[k]) {
				if _, _, ok := nounFeatures(ctx, tokens[k]); ok {
					j = k
				}
			}
		}
		if !isWord(tokens[j]) {
			continue
		}
		gender, number, ok := nounFeatures(ctx, tokens[j])
		if !ok {
			continue
		}
		correctArticle(t, gender, number)
	}
}

func correctArticle(t *token.Token, gender dict.Gender, number dict.Number) {
	definite := t.Normalized == "el" || t.Normalized == "la" || t.Normalized == "los" || t.Normalized == "las"
	table := indefiniteArticles
	if definite {
		table = definiteArticles
	}
	want, ok := table[gender][number]
	if !ok || want == t.Normalized {
		return
	}
	t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 1, Replacement: matchCase(t.Surface, want)})
}

var copulaVerbs = map[string]bool{"ser": true, "estar": true}

// NounAdjectiveAgreement is phase 2: an adjective immediately following a
// noun (or, in predicative position, following "ser"/"estar" and at most one
// adverb after the noun) must agree in gender and number, unless the
// adjective is flagged invariant.
func NounAdjectiveAgreement(tokens []*token.Token, ctx *Context) {
	for i, t := range tokens {
		if !isWord(t) {
			continue
		}
		gender, number, ok := nounFeatures(ctx, t)
		if !ok {
			continue
		}
		j := skipSpace(tokens, i+1)
		if j >= len(tokens) || !isWord(tokens[j]) {
			continue
		}
		// Predicative position: "la casa es (muy) bonita" — skip one copular
		// verb and then one adverb.
		if ctx.Verbs != nil {
			if rec, ok := ctx.Verbs.Recognize(tokens[j].Normalized); ok && copulaVerbs[rec.Lemma] {
				j = skipSpace(tokens, j+1)
				if j >= len(tokens) || !isWord(tokens[j]) {
					continue
				}
				adverb := false
				for _, e := range entriesOf(ctx, tokens[j].Surface) {
					adverb = adverb || e.Category == dict.CategoryAdverb
				}
				if adverb {
					j = skipSpace(tokens, j+1)
					if j >= len(tokens) || !isWord(tokens[j]) {
						continue
					}
				}
			}
		}
		adjT := tokens[j]
		entries := adjectiveEntries(ctx, adjT)
		if len(entries) == 0 || adjectiveInvariant(entries) {
			continue
		}
		want := agreeingAdjective(adjT.Normalized, gender, number)
		if want == "" || want == adjT.Normalized {
			continue
		}
		adjT.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 2, Replacement: matchCase(adjT.Surface, want)})
	}
}

// agreeingAdjective derives the regular gender/number-agreeing form of a
// -o/-a adjective. Adjectives not following the regular -o/-a pattern
// (e.g. "feliz", "verde") are invariant across gender and left alone.
func agreeingAdjective(adj string, gender dict.Gender, number dict.Number) string {
	runes := []rune(adj)
	n := len(runes)
	if n < 2 {
		return ""
	}
	stem := adj
	switch {
	case hasSuffixRunes(runes, "os"):
		stem = string(runes[:n-2])
	case hasSuffixRunes(runes, "as"):
		stem = string(runes[:n-2])
	case hasSuffixRunes(runes, "o"), hasSuffixRunes(runes, "a"):
		stem = string(runes[:n-1])
	default:
		return "" // not a regular -o/-a adjective; leave alone
	}
	switch {
	case gender == dict.GenderMasc && number == dict.NumberSingular:
		return stem + "o"
	case gender == dict.GenderMasc && number == dict.NumberPlural:
		return stem + "os"
	case gender == dict.GenderFem && number == dict.NumberSingular:
		return stem + "a"
	case gender == dict.GenderFem && number == dict.NumberPlural:
		return stem + "as"
	default:
		return ""
	}
}

func hasSuffixRunes(runes []rune, suf string) bool {
	sr := []rune(suf)
	if len(runes) < len(sr) {
		return false
	}
	for i, r := range sr {
		if runes[len(runes)-len(sr)+i] != r {
			return false
		}
	}
	return true
}

var determiners = map[string]bool{
	"este": true, "esta": true, "estos": true, "estas": true,
	"ese": true, "esa": true, "esos": true, "esas": true,
	"aquel": true, "aquella": true, "aquellos": true, "aquellas": true,
	"mi": true, "mis": true, "tu": true, "tus": true, "su": true, "sus": true,
	"nuestro": true, "nuestra": true, "nuestros": true, "nuestras": true,
}

// DeterminerNounAgreement is phase 3: the demonstratives este/ese (and
// their feminine and plural forms) must agree in gender with the noun that
// follows. A gender mismatch is corrected only when the number already
// agrees; aquel, possessives and quantifiers are not checked.
func DeterminerNounAgreement(tokens []*token.Token, ctx *Context) {
	demonstratives := map[string][2]string{
		"este": {"masc-sg", "esta"}, "esta": {"fem-sg", "este"},
		"estos": {"masc-pl", "estas"}, "estas": {"fem-pl", "estos"},
		"ese": {"masc-sg", "esa"}, "esa": {"fem-sg", "ese"},
		"esos": {"masc-pl", "esas"}, "esas": {"fem-pl", "esos"},
	}
	for i, t := range tokens {
		if !isWord(t) || !determiners[t.Normalized] {
			continue
		}
		pair, known := demonstratives[t.Normalized]
		if !known {
			continue
		}
		j := skipSpace(tokens, i+1)
		if j >= len(tokens) || !isWord(tokens[j]) {
			continue
		}
		gender, number, ok := nounFeatures(ctx, tokens[j])
		if !ok {
			continue
		}
		wantGender := gender == dict.GenderFem
		haveGender := pair[0][:4] == "fem-"
		wantPlural := number == dict.NumberPlural
		havePlural := pair[0][len(pair[0])-2:] == "pl"
		if wantGender != haveGender && wantPlural == havePlural {
			t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 3, Replacement: matchCase(t.Surface, pair[1])})
		}
	}
}

// subjectPronouns map to (person, number) for subject/verb agreement.
var subjectPronouns = map[string][2]int{
	"yo": {1, 1}, "tu": {2, 1}, "tú": {2, 1}, "el": {3, 1}, "él": {3, 1}, "ella": {3, 1},
	"nosotros": {1, 2}, "nosotras": {1, 2}, "vosotros": {2, 2}, "vosotras": {2, 2},
	"ellos": {3, 2}, "ellas": {3, 2}, "ustedes": {3, 2},
}

// SubjectVerbAgreement is phase 4: a pronoun subject immediately before a
// recognized verb must match its person/number.
func SubjectVerbAgreement(tokens []*token.Token, ctx *Context) {
	if ctx.Verbs == nil {
		return
	}
	for i, t := range tokens {
		if !isWord(t) {
			continue
		}
		pn, ok := subjectPronouns[t.Normalized]
		if !ok {
			continue
		}
		j := skipSpace(tokens, i+1)
		if j >= len(tokens) || !isWord(tokens[j]) {
			continue
		}
		rec, ok := ctx.Verbs.Recognize(tokens[j].Normalized)
		if !ok || rec.Mood != verb.Indicative {
			continue
		}
		if int(rec.Person) == pn[0] && int(rec.Number) == pn[1] {
			continue
		}
		paradigm, ok := verb.Conjugate(rec.Lemma, rec.Tense)
		if !ok {
			continue
		}
		want := paradigm.Cell(verb.Person(pn[0]), verb.Number(pn[1]))
		if want == "" || want == tokens[j].Normalized {
			continue
		}
		tokens[j].Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 4, Replacement: matchCase(tokens[j].Surface, want)})
	}
}

// matchCase re-applies original's capitalization pattern to replacement
// (§3: a correction's replacement text preserves the original token's
// capitalization pattern).
func matchCase(original, replacement string) string {
	return ortho.ApplyCase(replacement, ortho.DetectCase(original))
}
