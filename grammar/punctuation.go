package grammar

import "github.com/escriba/corrector/token"

var clauseBoundary = map[rune]bool{
	',': true, '.': true, '!': true, '?': true, ';': true, ':': true, '¿': true, '¡': true,
}

// PairedPunctuation is phase 7: every '?' must be preceded somewhere in its
// clause by a matching '¿', and every '!' by a matching '¡'. A missing
// opener is inserted at the clause start (the token after the previous
// comma or sentence start).
func PairedPunctuation(tokens []*token.Token, ctx *Context) {
	checkPair(tokens, '?', '¿')
	checkPair(tokens, '!', '¡')
}

func checkPair(tokens []*token.Token, closer, opener rune) {
	for i, t := range tokens {
		if t.Category != token.CategoryPunct || t.Mark != closer {
			continue
		}
		if hasOpenerInClause(tokens, i, opener) {
			continue
		}
		clauseStart := findClauseStart(tokens, i)
		if clauseStart < 0 || clauseStart >= len(tokens) {
			continue
		}
		tokens[clauseStart].Annotate(token.Annotation{
			Kind: token.KindInsertion, RuleID: 7, InsertText: string(opener), InsertAfter: false,
		})
	}
}

func hasOpenerInClause(tokens []*token.Token, closerIdx int, opener rune) bool {
	for k := closerIdx - 1; k >= 0; k-- {
		if tokens[k].Category == token.CategoryPunct {
			if tokens[k].Mark == opener {
				return true
			}
			if clauseBoundary[tokens[k].Mark] {
				return false
			}
		}
	}
	return false
}

func findClauseStart(tokens []*token.Token, closerIdx int) int {
	for k := closerIdx - 1; k >= 0; k-- {
		if tokens[k].Category == token.CategoryPunct && clauseBoundary[tokens[k].Mark] {
			return skipSpace(tokens, k+1)
		}
	}
	return skipSpace(tokens, 0)
}
