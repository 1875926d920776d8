package verb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/escriba/corrector/dict"
)

func newTestDictionary(verbs ...string) *dict.Dictionary {
	trie := dict.NewTrie()
	for _, v := range verbs {
		trie.Insert(v, dict.Entry{Lemma: v, Category: dict.CategoryVerb})
	}
	return dict.NewDictionary(trie)
}

func TestRecognizeRegularVerbs(t *testing.T) {
	d := newTestDictionary("hablar", "comer", "vivir")
	r := NewRecognizer(d)

	cases := []struct {
		surface string
		lemma   string
		tense   Tense
		person  Person
		number  Number
	}{
		{"hablo", "hablar", Present, First, Singular},
		{"hablas", "hablar", Present, Second, Singular},
		{"hablamos", "hablar", Present, First, Plural},
		{"comí", "comer", Preterite, First, Singular},
		{"comió", "comer", Preterite, Third, Singular},
		{"vivía", "vivir", Imperfect, First, Singular},
		{"hablaré", "hablar", Future, First, Singular},
		{"comería", "comer", Conditional, First, Singular},
		{"vivamos", "vivir", ImperativeTense, First, Plural},
	}
	for _, c := range cases {
		rec, ok := r.Recognize(c.surface)
		require.True(t, ok, "expected %q to be recognized", c.surface)
		require.Equal(t, c.lemma, rec.Lemma, c.surface)
		require.Equal(t, c.tense, rec.Tense, c.surface)
		require.Equal(t, c.person, rec.Person, c.surface)
		require.Equal(t, c.number, rec.Number, c.surface)
	}
}

func TestRecognizeInfinitiveGerundParticiple(t *testing.T) {
	d := newTestDictionary("hablar", "comer", "vivir")
	r := NewRecognizer(d)

	rec, ok := r.Recognize("hablar")
	require.True(t, ok)
	require.Equal(t, Infinitive, rec.Tense)

	rec, ok = r.Recognize("comiendo")
	require.True(t, ok)
	require.Equal(t, Gerund, rec.Tense)
	require.Equal(t, "comer", rec.Lemma)

	rec, ok = r.Recognize("vivido")
	require.True(t, ok)
	require.Equal(t, Participle, rec.Tense)
	require.Equal(t, "vivir", rec.Lemma)
}

func TestRecognizePrefixedVerb(t *testing.T) {
	d := newTestDictionary("poner", "deshacer")
	r := NewRecognizer(d)

	// "reponer" = re- + "poner" (irregular table entry), should be found via
	// prefix stripping feeding into closedTableLookup.
	rec, ok := r.Recognize("repongo")
	require.True(t, ok)
	require.Equal(t, "poner", rec.Lemma)
	require.Equal(t, "re", rec.Prefix)
	require.Equal(t, Present, rec.Tense)
	require.Equal(t, First, rec.Person)
}

func TestRecognizeStemChangingVerbs(t *testing.T) {
	d := newTestDictionary("pensar", "poder", "pedir", "conocer")
	r := NewRecognizer(d)

	cases := []struct {
		surface string
		lemma   string
		tense   Tense
		mood    Mood
	}{
		{"pienso", "pensar", Present, Indicative},
		{"puedo", "poder", Present, Indicative},
		{"pido", "pedir", Present, Indicative},
		{"conozco", "conocer", Present, Indicative},
		{"pidiendo", "pedir", Gerund, Indicative},
	}
	for _, c := range cases {
		rec, ok := r.Recognize(c.surface)
		require.True(t, ok, "expected %q to be recognized", c.surface)
		require.Equal(t, c.lemma, rec.Lemma, c.surface)
		require.Equal(t, c.tense, rec.Tense, c.surface)
	}

	// c->zc only changes the yo form; conoces must NOT alternate.
	rec, ok := r.Recognize("conoces")
	require.True(t, ok)
	require.Equal(t, "conocer", rec.Lemma)
	require.Equal(t, Second, rec.Person)
}

func TestRecognizeIrregularVerbs(t *testing.T) {
	d := newTestDictionary()
	r := NewRecognizer(d)

	cases := []struct {
		surface string
		lemma   string
	}{
		{"soy", "ser"},
		{"fueron", "ser"}, // shared with "ir"; either lemma is an acceptable match
		{"voy", "ir"},
		{"he", "haber"},
		{"tengo", "tener"},
		{"hago", "hacer"},
		{"dije", "decir"},
	}
	for _, c := range cases {
		rec, ok := r.Recognize(c.surface)
		require.True(t, ok, "expected %q to be recognized", c.surface)
		require.NotEmpty(t, rec.Lemma)
	}
}

func TestRecognizeEncliticChain(t *testing.T) {
	d := newTestDictionary("dar", "comer")
	r := NewRecognizer(d)

	rec, ok := r.Recognize("dándomelo")
	require.True(t, ok)
	require.Equal(t, "dar", rec.Lemma)
	require.Equal(t, Gerund, rec.Tense)
	require.Equal(t, []string{"me", "lo"}, rec.Enclitics)
	require.True(t, rec.AccentDrop)
}

func TestRecognizeReflexiveAttachment(t *testing.T) {
	d := newTestDictionary("lavar")
	r := NewRecognizer(d)

	// infinitive: any reflexive-shaped clitic counts, since an infinitive
	// carries no person of its own to agree with.
	rec, ok := r.Recognize("lavarse")
	require.True(t, ok)
	require.True(t, rec.Reflexive)

	// "lo" is a direct object, never a reflexive clitic.
	rec, ok = r.Recognize("lavarlo")
	require.True(t, ok)
	require.False(t, rec.Reflexive)
}

func TestIsReflexiveAttachment(t *testing.T) {
	tu := Recognition{Tense: ImperativeTense, Person: Second, Number: Singular}
	// "te" agrees with a tú addressee.
	require.True(t, isReflexiveAttachment(tu, "te"))
	// "nos" (dative "sing to us") does not agree with a tú addressee.
	require.False(t, isReflexiveAttachment(tu, "nos"))
	// a direct object is never reflexive, regardless of agreement.
	require.False(t, isReflexiveAttachment(tu, "lo"))
}

func TestRecognizeRejectsUnknownWord(t *testing.T) {
	d := newTestDictionary("hablar")
	r := NewRecognizer(d)

	_, ok := r.Recognize("xyzqwerty")
	require.False(t, ok)
}

func TestStripPrefixRequiresPlausibleResidue(t *testing.T) {
	_, _, ok := StripPrefix("reir")
	require.False(t, ok, "residue too short to be a plausible infinitive")

	residue, prefix, ok := StripPrefix("rehacer")
	require.True(t, ok)
	require.Equal(t, "hacer", residue)
	require.Equal(t, "re", prefix)
}

func TestStripEncliticsRejectsImplausibleHost(t *testing.T) {
	host, chain, _ := StripEnclitics("lo")
	require.Equal(t, "lo", host)
	require.Empty(t, chain)
}

func TestAttachEnclitics(t *testing.T) {
	require.Equal(t, "hablarlo", AttachEnclitics("hablar", HostInfinitive, []string{"lo"}))
	require.Equal(t, "amaos", AttachEnclitics("amad", HostImperativeVosotros, []string{"os"}))
}
