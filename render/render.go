// Package render turns an annotated token stream back into text, using the
// output notation fixed by §6: `word |s1,s2|` for a spelling suggestion,
// `word [fix]` for a grammatical replacement, `~~word~~` for a deletion,
// and `[insert] word` / `word [insert]` for an insertion before/after.
package render

import (
	"strings"

	"github.com/escriba/corrector/token"
)

// Render emits the decorated text for tokens, in order, preserving
// whitespace verbatim and emitting insertion text outside the token
// boundary it attaches to.
func Render(tokens []*token.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		writeInsertions(&sb, t, false)
		sb.WriteString(renderBody(t))
		writeInsertions(&sb, t, true)
	}
	return sb.String()
}

// PlainText discards every annotation, reproducing the original input
// exactly (§3's round-trip invariant: Render without annotations == input).
func PlainText(tokens []*token.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Surface)
	}
	return sb.String()
}

func writeInsertions(sb *strings.Builder, t *token.Token, after bool) {
	for _, a := range t.Annotations {
		if a.Kind != token.KindInsertion || a.InsertAfter != after {
			continue
		}
		if after {
			sb.WriteString(" [" + a.InsertText + "]")
		} else {
			sb.WriteString("[" + a.InsertText + "] ")
		}
	}
}

// renderBody picks the single annotation (besides insertion) that decides
// how the token's own surface is rendered, in deletion > grammatical >
// spelling priority — the same priority Downgrade enforces when it
// replaces a spelling annotation with a grammatical one.
func renderBody(t *token.Token) string {
	if _, ok := t.Annotation(token.KindDeletion); ok {
		return "~~" + t.Surface + "~~"
	}
	if a, ok := t.Annotation(token.KindGrammatical); ok {
		return t.Surface + " [" + a.Replacement + "]"
	}
	if a, ok := t.Annotation(token.KindSpelling); ok {
		return t.Surface + " |" + strings.Join(a.Candidates, ",") + "|"
	}
	return t.Surface
}
