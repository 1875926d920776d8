package grammar

import "github.com/escriba/corrector/token"

var impersonalHaberPlurals = map[string]string{
	"habían": "había", "hubieron": "hubo", "habrán": "habrá", "habrían": "habría", "hayan": "haya",
}

// ImpersonalHaber is phase 15: existential "haber" ("hay muchas personas")
// is invariant third-person singular; a plural conjugation in that use is
// wrong. Detected by the absence of an immediately preceding subject
// pronoun (impersonal "haber" has no subject — what follows it is the
// object) and a noun right after it, or after one determiner or adjective.
func ImpersonalHaber(tokens []*token.Token, ctx *Context) {
	for i, t := range tokens {
		if !isWord(t) {
			continue
		}
		singular, isPluralHaber := impersonalHaberPlurals[t.Normalized]
		if !isPluralHaber {
			continue
		}
		if precededBySubject(tokens, i) {
			continue
		}
		j := skipSpace(tokens, i+1)
		if j >= len(tokens) || !isWord(tokens[j]) {
			continue
		}
		if _, _, ok := nounFeatures(ctx, tokens[j]); !ok {
			// One determiner or adjective may precede the noun
			// ("habían muchas personas").
			if !articlesAndDeterminers[tokens[j].Normalized] && len(adjectiveEntries(ctx, tokens[j])) == 0 {
				continue
			}
			j = skipSpace(tokens, j+1)
			if j >= len(tokens) || !isWord(tokens[j]) {
				continue
			}
			if _, _, ok := nounFeatures(ctx, tokens[j]); !ok {
				continue
			}
		}
		t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 15, Replacement: matchCase(t.Surface, singular)})
	}
}

func precededBySubject(tokens []*token.Token, i int) bool {
	for k := i - 1; k >= 0; k-- {
		if tokens[k].Category == token.CategorySpace {
			continue
		}
		if tokens[k].Category == token.CategoryPunct && clauseBoundary[tokens[k].Mark] {
			return false
		}
		_, isPronoun := subjectPronouns[tokens[k].Normalized]
		return isPronoun
	}
	return false
}

var impersonalHacerPlurals = map[string]string{"hacen": "hace", "hacían": "hacía", "harán": "hará"}

var timeUnits = map[string]bool{
	"año": true, "años": true, "mes": true, "meses": true, "semana": true, "semanas": true,
	"día": true, "días": true, "hora": true, "horas": true, "minuto": true, "minutos": true,
	"rato": true, "tiempo": true,
}

// ImpersonalHacerTemporal is phase 16: "hace tres años" (temporal elapsed
// time) never pluralizes hacer, even though "años" is plural.
func ImpersonalHacerTemporal(tokens []*token.Token, ctx *Context) {
	for i, t := range tokens {
		if !isWord(t) {
			continue
		}
		singular, isPluralHacer := impersonalHacerPlurals[t.Normalized]
		if !isPluralHacer {
			continue
		}
		j := skipSpace(tokens, i+1)
		if j < len(tokens) && tokens[j].Category == token.CategoryNumber {
			j = skipSpace(tokens, j+1)
		}
		if j >= len(tokens) || !isWord(tokens[j]) || !timeUnits[tokens[j].Normalized] {
			continue
		}
		t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 16, Replacement: matchCase(t.Surface, singular)})
	}
}

// ExistentialHaberDefiniteArticle is phase 17: "hay el/la ..." is
// ungrammatical; the existential construction takes an indefinite article
// or none.
func ExistentialHaberDefiniteArticle(tokens []*token.Token, ctx *Context) {
	for i, t := range tokens {
		if !isWord(t) || t.Normalized != "hay" {
			continue
		}
		j := skipSpace(tokens, i+1)
		if j >= len(tokens) || !isWord(tokens[j]) {
			continue
		}
		var replacement string
		switch tokens[j].Normalized {
		case "el":
			replacement = "un"
		case "la":
			replacement = "una"
		case "los":
			replacement = "unos"
		case "las":
			replacement = "unas"
		default:
			continue
		}
		tokens[j].Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 17, Replacement: matchCase(tokens[j].Surface, replacement)})
	}
}
