package lang

import (
	"github.com/escriba/corrector/dict"
	"github.com/escriba/corrector/grammar"
	"github.com/escriba/corrector/token"
	"github.com/escriba/corrector/verb"
)

// Spanish is the primary language (§1): full morphological verb
// recognition plus all 28 grammar phases.
type Spanish struct{ base }

func (Spanish) Code() string { return "es" }

func (Spanish) BuildVerbRecognizer(d *dict.Dictionary) (VerbRecognizer, bool) {
	return verb.NewRecognizer(d), true
}

func (Spanish) ApplyGrammar(tokens []*token.Token, ctx *grammar.Context) {
	for _, phase := range grammar.SpanishPhases() {
		phase(tokens, ctx)
	}
}
