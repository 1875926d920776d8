// Package token turns plain text into a byte-offset-exact sequence of typed
// tokens and carries the correction annotations the grammar phases attach
// to them.
package token

// Category classifies a token's content.
type Category uint8

const (
	CategoryWord Category = iota
	CategoryNumber
	CategoryPunct
	CategorySpace
	CategoryMixed
	CategoryUnknown
)

// Kind identifies which of the four annotation variants a Token carries.
// §3: "a token may carry at most one annotation of each kind".
type Kind uint8

const (
	KindSpelling Kind = iota
	KindGrammatical
	KindDeletion
	KindInsertion
)

// Annotation is one correction attached to a token. Only the fields
// relevant to Kind are meaningful; unused fields are zero.
type Annotation struct {
	Kind        Kind
	RuleID      int
	Candidates  []string // KindSpelling: ordered suggestions
	Replacement string   // KindGrammatical: the corrected form
	InsertText  string   // KindInsertion: text to splice in
	InsertAfter bool     // KindInsertion: false = before the token, true = after
}

// Token is one span of the input with its classification and any
// corrections attached to it.
type Token struct {
	Start, End int // byte offsets into the original text, [Start,End)
	Surface    string
	Normalized string // lower-cased, diacritics preserved
	Category   Category
	Mark       rune // the single rune for Category==CategoryPunct, 0 otherwise

	Annotations []Annotation
}

// HasAnnotation reports whether the token already carries an annotation of
// kind k (phases must not overwrite an earlier annotation of the same kind,
// §3).
func (t *Token) HasAnnotation(k Kind) bool {
	for _, a := range t.Annotations {
		if a.Kind == k {
			return true
		}
	}
	return false
}

// Annotation returns the token's annotation of kind k, if any.
func (t *Token) Annotation(k Kind) (Annotation, bool) {
	for _, a := range t.Annotations {
		if a.Kind == k {
			return a, true
		}
	}
	return Annotation{}, false
}

// Annotate attaches a, refusing if the token already carries a kind-a.Kind
// annotation. Returns false when refused so callers (phases) can silently
// skip per the "later phases must not overwrite earlier annotations" rule.
func (t *Token) Annotate(a Annotation) bool {
	if t.HasAnnotation(a.Kind) {
		return false
	}
	t.Annotations = append(t.Annotations, a)
	return true
}

// Downgrade replaces an existing KindSpelling annotation with a
// KindGrammatical one, the one case §3 explicitly allows a later phase to
// overwrite an earlier annotation ("escribido" recognized as a participle
// rule rather than a plain misspelling).
func (t *Token) Downgrade(a Annotation) {
	if a.Kind != KindGrammatical {
		return
	}
	out := t.Annotations[:0]
	for _, existing := range t.Annotations {
		if existing.Kind == KindSpelling {
			continue
		}
		out = append(out, existing)
	}
	t.Annotations = append(out, a)
}
