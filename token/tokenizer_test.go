package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeOffsetsCoverInput(t *testing.T) {
	text := "El casa, ¿qué tal?"
	toks := Tokenize(text, nil)
	require.NotEmpty(t, toks)
	require.Equal(t, 0, toks[0].Start)
	for i := 1; i < len(toks); i++ {
		require.Equal(t, toks[i-1].End, toks[i].Start, "token spans must be contiguous")
	}
	require.Equal(t, len(text), toks[len(toks)-1].End)
}

func TestTokenizeCategories(t *testing.T) {
	toks := Tokenize("casa 123 cosa2 , ¡hola!", nil)
	want := []Category{
		CategoryWord, CategorySpace, CategoryNumber, CategorySpace,
		CategoryMixed, CategorySpace, CategoryPunct, CategorySpace,
		CategoryPunct, CategoryWord, CategoryPunct,
	}
	require.Len(t, toks, len(want))
	for i, c := range want {
		require.Equal(t, c, toks[i].Category, "token %d (%q)", i, toks[i].Surface)
	}
}

func TestTokenizeCatalanMiddleDot(t *testing.T) {
	toks := Tokenize("paral·lel", map[rune]bool{'·': true})
	require.Len(t, toks, 1)
	require.Equal(t, CategoryWord, toks[0].Category)
	require.Equal(t, "paral·lel", toks[0].Surface)
}

func TestTokenizePunctMark(t *testing.T) {
	toks := Tokenize("¿Qué?", nil)
	require.Equal(t, '¿', toks[0].Mark)
	require.Equal(t, CategoryPunct, toks[0].Category)
}

func TestAnnotateRefusesDuplicateKind(t *testing.T) {
	tok := &Token{Surface: "se"}
	require.True(t, tok.Annotate(Annotation{Kind: KindSpelling, Candidates: []string{"sé"}}))
	require.False(t, tok.Annotate(Annotation{Kind: KindSpelling, Candidates: []string{"se"}}))
	require.Len(t, tok.Annotations, 1)
}

func TestDowngradeReplacesSpelling(t *testing.T) {
	tok := &Token{Surface: "escribido"}
	tok.Annotate(Annotation{Kind: KindSpelling, Candidates: []string{"escrito"}})
	tok.Downgrade(Annotation{Kind: KindGrammatical, Replacement: "escrito", RuleID: 14})
	require.Len(t, tok.Annotations, 1)
	require.Equal(t, KindGrammatical, tok.Annotations[0].Kind)
}
