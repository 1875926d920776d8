// Package lang is the language-abstraction layer (§4.F): it lets Catalan
// reuse the trie and spelling machinery while skipping every Spanish-only
// grammar phase, by having both languages implement the same five-hook
// interface instead of the pipeline branching on a language code.
package lang

import (
	"github.com/escriba/corrector/dict"
	"github.com/escriba/corrector/grammar"
	"github.com/escriba/corrector/token"
	"github.com/escriba/corrector/verb"
)

// VerbRecognizer is the shape package spell and package grammar both
// consume; *verb.Recognizer satisfies it structurally.
type VerbRecognizer interface {
	Recognize(surface string) (verb.Recognition, bool)
}

// Language is the one hook set the correction pipeline calls through
// instead of branching on a language code (§4.F).
type Language interface {
	// Code is the language's identifying code ("es", "ca").
	Code() string
	// ConfigureDictionary runs any language-specific post-load adjustment
	// of the loaded dictionary (e.g. extra name lists); most languages need
	// nothing beyond what the loader already did.
	ConfigureDictionary(d *dict.Dictionary)
	// BuildVerbRecognizer returns a verb recognizer over d, or ok=false if
	// the language has none (Catalan has no verb morphology engine; §4.F).
	BuildVerbRecognizer(d *dict.Dictionary) (VerbRecognizer, bool)
	// ApplyGrammar runs every grammar phase the language defines, in order.
	// Catalan's is a true no-op (§9 Open Question), not an error.
	ApplyGrammar(tokens []*token.Token, ctx *grammar.Context)
	// WordInternalChars are runes the tokenizer treats as part of a word
	// when internal to it (Catalan's middle dot "l·l" and apostrophe for
	// elision; Spanish needs none beyond the tokenizer's own letter test).
	WordInternalChars() map[rune]bool
}

// base gives every language a neutral, no-op default for every hook;
// Spanish and Catalan embed it and override only what differs.
type base struct{}

func (base) ConfigureDictionary(*dict.Dictionary) {}

func (base) BuildVerbRecognizer(*dict.Dictionary) (VerbRecognizer, bool) { return nil, false }

func (base) ApplyGrammar([]*token.Token, *grammar.Context) {}

func (base) WordInternalChars() map[rune]bool { return nil }
