package grammar

import "github.com/escriba/corrector/token"

var greetings = map[string]bool{
	"hola": true, "buenos": true, "buenas": true, "adiós": true, "adios": true,
	"gracias": true, "saludos": true,
}

// VocativeCommas is phase 13: a greeting/address pattern ("Hola X",
// "Buenos días X") followed directly by a capitalized name with no comma
// requires one before the name (vocative comma).
func VocativeCommas(tokens []*token.Token, ctx *Context) {
	for i, t := range tokens {
		if !isWord(t) || !greetings[t.Normalized] {
			continue
		}
		j := skipSpace(tokens, i+1)
		// "Buenos días" / "Buenas tardes" span two words before the name.
		if t.Normalized == "buenos" || t.Normalized == "buenas" {
			if j < len(tokens) && isWord(tokens[j]) {
				j = skipSpace(tokens, j+1)
			}
		}
		if j >= len(tokens) || !isWord(tokens[j]) {
			continue
		}
		name := tokens[j]
		if ctx.Dictionary == nil || !ctx.Dictionary.IsName(name.Surface) {
			continue
		}
		if j > 0 && tokens[j-1].Category == token.CategoryPunct && tokens[j-1].Mark == ',' {
			continue
		}
		name.Annotate(token.Annotation{Kind: token.KindInsertion, RuleID: 13, InsertText: ",", InsertAfter: false})
	}
}
