// Package grammar implements the 28 Spanish rule phases that run over a
// tokenized sentence, each a plain function value consuming and annotating
// the token vector in place (§4.E).
package grammar

import (
	"github.com/escriba/corrector/dict"
	"github.com/escriba/corrector/token"
	"github.com/escriba/corrector/verb"
)

// VerbRecognizer is the subset of verb.Recognizer the phases need.
type VerbRecognizer interface {
	Recognize(surface string) (verb.Recognition, bool)
}

// Context carries the read-only resources every phase may consult. It is
// built once per correction call and never mutated by a phase.
type Context struct {
	Dictionary *dict.Dictionary
	Verbs      VerbRecognizer
}

// Phase is one rule pass over the token vector. Per Design Note 9, phases
// are values in an ordered list, not a class hierarchy.
type Phase func(tokens []*token.Token, ctx *Context)

func entriesOf(ctx *Context, surface string) []dict.Entry {
	if ctx.Dictionary == nil {
		return nil
	}
	return ctx.Dictionary.Lookup(surface)
}

func isWord(t *token.Token) bool { return t.Category == token.CategoryWord }

// skipSpace returns the index of the next non-space token at or after i.
func skipSpace(tokens []*token.Token, i int) int {
	for i < len(tokens) && tokens[i].Category == token.CategorySpace {
		i++
	}
	return i
}
