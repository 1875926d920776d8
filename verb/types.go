// Package verb implements the Spanish verb recognizer: given a surface
// form, decide whether it is a valid conjugation of some lemma, handling
// regular paradigms, stem-changers, a closed irregular table, enclitics,
// reflexive/pronominal forms and the 22 recognized prefixes (§4.B).
//
// Grounded on peterzalewski-odmiany/pkg/verb: the PresentTense-style
// per-cell paradigm struct and the "irregular table first, heuristic
// cascade second" shape of ConjugatePresent are both carried over,
// generalized from Polish's six-cell present paradigm to Spanish's full
// mood/tense grid.
package verb

// Mood of a conjugated form.
type Mood uint8

const (
	Indicative Mood = iota
	Subjunctive
	Imperative
)

// Tense of a conjugated form. Imperative and the non-finite forms
// (infinitive, gerund, participle) are modeled as Tense values with Mood
// Imperative / a dedicated non-finite marker, matching how the grammar
// phases need to ask "is this a participle" without a second type switch.
type Tense uint8

const (
	Present Tense = iota
	Preterite
	Imperfect
	Future
	Conditional
	ImperativeTense
	Infinitive
	Gerund
	Participle
)

// Person of a conjugated form (1st/2nd/3rd); Number distinguishes singular/plural.
type Person uint8

const (
	First Person = iota + 1
	Second
	Third
)

type Number uint8

const (
	Singular Number = iota + 1
	Plural
)

// Paradigm holds one tense's six finite cells, or (for non-finite tenses)
// only Sg3 is populated (infinitive/gerund/participle have no person/number).
type Paradigm struct {
	Sg1, Sg2, Sg3 string
	Pl1, Pl2, Pl3 string
}

// Cell returns the form at (person, number).
func (p Paradigm) Cell(person Person, number Number) string {
	switch {
	case person == First && number == Singular:
		return p.Sg1
	case person == Second && number == Singular:
		return p.Sg2
	case person == Third && number == Singular:
		return p.Sg3
	case person == First && number == Plural:
		return p.Pl1
	case person == Second && number == Plural:
		return p.Pl2
	case person == Third && number == Plural:
		return p.Pl3
	default:
		return ""
	}
}

// each calls fn for every non-empty cell with its (person, number).
func (p Paradigm) each(fn func(Person, Number, string)) {
	fn(First, Singular, p.Sg1)
	fn(Second, Singular, p.Sg2)
	fn(Third, Singular, p.Sg3)
	fn(First, Plural, p.Pl1)
	fn(Second, Plural, p.Pl2)
	fn(Third, Plural, p.Pl3)
}

// Recognition is the feature tuple returned for a recognized surface form
// (§4.B contract).
type Recognition struct {
	Lemma      string
	Tense      Tense
	Mood       Mood
	Person     Person
	Number     Number
	Reflexive  bool // an attached pronoun agrees with the verb as a reflexive clitic (me/te/se/nos/os); Spanish gives these the same form as the dative, so this is an agreement heuristic, not true reflexivity
	Prefix     string   // stripped prefix, if any ("" if none)
	Enclitics  []string // stripped pronoun chain, left to right as attached
	AccentDrop bool     // an orthographic accent was removed to strip an enclitic
}
