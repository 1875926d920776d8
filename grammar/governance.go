package grammar

import "github.com/escriba/corrector/token"

// DequeismoQueismo is phase 11: verbs in dequeismoVerbs that take a plain
// "que" complement must not be followed by "de que" (dequeísmo), and verbs
// that require "de que" must not drop the "de" (queísmo).
func DequeismoQueismo(tokens []*token.Token, ctx *Context) {
	for i, t := range tokens {
		if !isWord(t) {
			continue
		}
		lemma := verbLemma(ctx, t)
		requiresDeQue, known := dequeismoVerbs[lemma]
		if !known && lemma != "" && i >= 2 && tokens[i-1].Category == token.CategorySpace && isWord(tokens[i-2]) {
			// Pronominal governors are keyed with "-se" ("alegrarse") and
			// match when a reflexive clitic precedes the verb ("me alegro").
			switch tokens[i-2].Normalized {
			case "me", "te", "se", "nos", "os":
				requiresDeQue, known = dequeismoVerbs[lemma+"se"]
			}
		}
		if !known {
			continue
		}
		j := skipSpace(tokens, i+1)
		if j >= len(tokens) || !isWord(tokens[j]) {
			continue
		}
		if tokens[j].Normalized == "de" {
			k := skipSpace(tokens, j+1)
			if k < len(tokens) && isWord(tokens[k]) && tokens[k].Normalized == "que" {
				if !requiresDeQue {
					tokens[j].Annotate(token.Annotation{Kind: token.KindDeletion, RuleID: 11})
				}
				continue
			}
		}
		if tokens[j].Normalized == "que" && requiresDeQue {
			tokens[j].Annotate(token.Annotation{Kind: token.KindInsertion, RuleID: 11, InsertText: "de ", InsertAfter: false})
		}
	}
}

func verbLemma(ctx *Context, t *token.Token) string {
	if ctx.Verbs == nil {
		return ""
	}
	rec, ok := ctx.Verbs.Recognize(t.Normalized)
	if !ok {
		return ""
	}
	return rec.Lemma
}

// dativeOnlyVerbs never take a direct object pronoun (lo/la/los/las); their
// object clitic must always be le/les. Using lo/la here is laísmo/loísmo.
var dativeOnlyVerbs = map[string]bool{
	"gustar": true, "parecer": true, "doler": true, "importar": true, "molestar": true,
}

var directObjectClitics = map[string]string{"lo": "le", "la": "le", "los": "les", "las": "les"}

// LaismoLeismoLoismo is phase 12: detects a direct-object clitic (lo/la/
// los/las) used where the verb's transitivity requires the dative le/les
// (laísmo/loísmo), restricted to the small set of verbs that are reliably
// dative-only regardless of the referent — a context-free subset of the
// full phenomenon, which in general needs referent gender/animacy the
// token stream does not carry.
func LaismoLeismoLoismo(tokens []*token.Token, ctx *Context) {
	for i, t := range tokens {
		if !isWord(t) {
			continue
		}
		replacement, isObjectClitic := directObjectClitics[t.Normalized]
		if !isObjectClitic {
			continue
		}
		j := skipSpace(tokens, i+1)
		if j >= len(tokens) || !isWord(tokens[j]) {
			continue
		}
		lemma := verbLemma(ctx, tokens[j])
		if dativeOnlyVerbs[lemma] {
			t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 12, Replacement: matchCase(t.Surface, replacement)})
		}
	}
}
