package lang

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escriba/corrector/dict"
	"github.com/escriba/corrector/grammar"
	"github.com/escriba/corrector/token"
)

const fixtureDict = `
el|articulo|m|sg|_|500
la|articulo|f|sg|_|500
casa|sustantivo|f|sg|_|400
bonito|adjetivo|_|sg|_|200
`

func loadFixtureDict(t *testing.T) *dict.Dictionary {
	t.Helper()
	trie, err := dict.Load(strings.NewReader(fixtureDict), nil)
	require.NoError(t, err)
	return dict.NewDictionary(trie)
}

func TestSpanish_BuildVerbRecognizerAndGrammar(t *testing.T) {
	d := loadFixtureDict(t)
	sp := Spanish{}
	assert.Equal(t, "es", sp.Code())

	rec, ok := sp.BuildVerbRecognizer(d)
	require.True(t, ok)
	require.NotNil(t, rec)

	tokens := token.Tokenize("El casa es bonito", nil)
	sp.ApplyGrammar(tokens, &grammar.Context{Dictionary: d, Verbs: rec})

	found := false
	for _, tok := range tokens {
		if _, ok := tok.Annotation(token.KindGrammatical); ok {
			found = true
		}
	}
	assert.True(t, found, "expected at least one grammar phase to annotate a mismatched sentence")
}

func TestCatalan_NoVerbRecognizerNoGrammar(t *testing.T) {
	d := loadFixtureDict(t)
	ca := Catalan{}
	assert.Equal(t, "ca", ca.Code())

	_, ok := ca.BuildVerbRecognizer(d)
	assert.False(t, ok)

	tokens := token.Tokenize("El casa es bonito", nil)
	ca.ApplyGrammar(tokens, &grammar.Context{Dictionary: d})

	for _, tok := range tokens {
		assert.Empty(t, tok.Annotations, "Catalan must never annotate a token via grammar")
	}
}

func TestCatalan_WordInternalChars(t *testing.T) {
	ca := Catalan{}
	chars := ca.WordInternalChars()
	assert.True(t, chars['·'])
	assert.True(t, chars['\''])
}
