package grammar

import "github.com/escriba/corrector/token"

// DiacriticHomophones is phase 5: the closed table of unstressed/stressed
// pairs (tu/tú, el/él, si/sí, ...), selected by syntactic context —
// interrogative/exclamative punctuation in the sentence signals the
// stressed reading for the wh-word set; a following verb or end-of-clause
// position signals a tonic pronoun for the personal-pronoun set.
func DiacriticHomophones(tokens []*token.Token, ctx *Context) {
	for i, t := range tokens {
		if !isWord(t) {
			continue
		}
		for _, pair := range diacriticPairs {
			switch t.Normalized {
			case pair.unstressed:
				if shouldStress(tokens, ctx, i, pair) {
					t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 5, Replacement: matchCase(t.Surface, pair.stressed)})
				}
			case pair.stressed:
				if !shouldStress(tokens, ctx, i, pair) && pronounSlotStressed[pair.stressed] {
					// Only the pronoun set is corrected back to unstressed;
					// the wh-word set (qué/cómo/...) outside a question is a
					// separate, harder judgment this phase leaves alone.
					if _, isInterrogativeWord := interrogatives[pair.stressed]; !isInterrogativeWord {
						t.Annotate(token.Annotation{Kind: token.KindGrammatical, RuleID: 5, Replacement: matchCase(t.Surface, pair.unstressed)})
					}
				}
			}
		}
	}
}

// subjectPronounCandidates are unstressed forms that double as a subject
// pronoun (tú, él) when what follows is a verb rather than a noun; "tu"
// before a noun is the possessive determiner and stays unstressed.
var subjectPronounCandidates = map[string]bool{"tu": true, "el": true}

// clauseAdverbs are adverbs that can sit between a subject pronoun and its
// verb without breaking the subject-verb relationship ("el no vino").
var clauseAdverbs = map[string]bool{
	"no": true, "ya": true, "siempre": true, "nunca": true, "jamás": true,
	"también": true, "tampoco": true,
}

func shouldStress(tokens []*token.Token, ctx *Context, i int, pair diacriticPair) bool {
	if interrogatives[pair.stressed] {
		return sentenceIsQuestionOrExclamation(tokens, i)
	}
	j := skipSpace(tokens, i+1)
	// Subject-pronoun reading: tú/él followed (possibly across a clause
	// adverb) by a finite verb is the tonic pronoun, not the determiner.
	if subjectPronounCandidates[pair.unstressed] && ctx.Verbs != nil {
		k := j
		if k < len(tokens) && isWord(tokens[k]) && clauseAdverbs[tokens[k].Normalized] {
			k = skipSpace(tokens, k+1)
		}
		if k < len(tokens) && isWord(tokens[k]) {
			if _, ok := ctx.Verbs.Recognize(tokens[k].Normalized); ok {
				return true
			}
		}
	}
	// "se" is the mirror case: the reflexive/impersonal pronoun is almost
	// always immediately followed by a verb ("se vende"), while the verb
	// "sé" (saber) governs a complement clause or stands alone ("no sé
	// porque...", "ya lo sé").
	if pair.unstressed == "se" && ctx.Verbs != nil && j < len(tokens) && isWord(tokens[j]) {
		if _, ok := ctx.Verbs.Recognize(tokens[j].Normalized); ok {
			return false
		}
		return true
	}
	// Otherwise a tonic reading is signalled by the word standing alone at
	// clause end (sí as affirmation, mí/ti after a preposition).
	if j < len(tokens) && isWord(tokens[j]) {
		return false // followed by another word: likely the weak/determiner use
	}
	return true
}

// sentenceIsQuestionOrExclamation scans outward from i to the enclosing
// ¿...? or ¡...! span, if any.
func sentenceIsQuestionOrExclamation(tokens []*token.Token, i int) bool {
	opened := false
	for k := i; k >= 0; k-- {
		if tokens[k].Category != token.CategoryPunct {
			continue
		}
		switch tokens[k].Mark {
		case '¿', '¡':
			opened = true
		case '.', '!', '?':
			if k < i {
				return opened
			}
		}
		if opened {
			break
		}
	}
	if !opened {
		return false
	}
	for k := i; k < len(tokens); k++ {
		if tokens[k].Category == token.CategoryPunct && (tokens[k].Mark == '?' || tokens[k].Mark == '!') {
			return true
		}
	}
	return false
}
