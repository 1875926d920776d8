package verb

import (
	"strings"

	"github.com/escriba/corrector/dict"
	"github.com/escriba/corrector/internal/ortho"
)

// Recognizer implements the deterministic 5-step cascade of §4.B. It is
// read-only after construction and safe for concurrent queries (the
// dictionary it wraps is itself immutable post-load, per §5).
type Recognizer struct {
	dict *dict.Dictionary
}

// NewRecognizer builds a recognizer backed by d, which must already contain
// the verb lemmas (loaded at startup, §5).
func NewRecognizer(d *dict.Dictionary) *Recognizer {
	return &Recognizer{dict: d}
}

// Recognize implements the cascade: strip enclitics, strip a recognized
// prefix, attempt regular-conjugation unmake, then the closed
// irregular/stem-changing tables.
func (r *Recognizer) Recognize(surface string) (Recognition, bool) {
	word := ortho.Lower(surface)

	if rec, ok := r.recognizeWithPrefix(word); ok {
		return rec, true
	}

	host, chain, accentDropped := StripEnclitics(word)
	if len(chain) > 0 {
		if rec, ok := r.recognizeWithPrefix(host); ok {
			switch rec.Tense {
			case Infinitive, Gerund, ImperativeTense:
				rec.Enclitics = chain
				rec.AccentDrop = accentDropped
				rec.Reflexive = isReflexiveAttachment(rec, chain[0])
				return rec, true
			}
		}
	}

	return Recognition{}, false
}

func (r *Recognizer) recognizeWithPrefix(word string) (Recognition, bool) {
	if rec, ok := r.recognizeCore(word); ok {
		return rec, true
	}
	if residue, prefix, ok := StripPrefix(word); ok {
		if rec, ok := r.recognizeCore(residue); ok {
			rec.Prefix = prefix
			return rec, true
		}
	}
	return Recognition{}, false
}

// recognizeCore runs steps 3 and 4 of the cascade on word, with no prefix
// or enclitic stripped.
func (r *Recognizer) recognizeCore(word string) (Recognition, bool) {
	if rec, ok := r.regularUnmake(word); ok {
		return rec, true
	}
	if rec, ok := r.closedTableLookup(word); ok {
		return rec, true
	}
	return Recognition{}, false
}

type cell struct {
	person Person
	number Number
	suffix string
}

func cellsOf(e endingSet) []cell {
	return []cell{
		{First, Singular, e.sg1}, {Second, Singular, e.sg2}, {Third, Singular, e.sg3},
		{First, Plural, e.pl1}, {Second, Plural, e.pl2}, {Third, Plural, e.pl3},
	}
}

func moodOf(tense Tense) Mood {
	if tense == ImperativeTense {
		return Imperative
	}
	return Indicative
}

// regularUnmake is §4.B step 3: for each of -ar/-er/-ir, for each tense
// slot, check whether appending the paradigm's ending to some stem yields
// word, then check whether stem+infinitive-ending is a dictionary verb.
func (r *Recognizer) regularUnmake(word string) (Recognition, bool) {
	classEndings := map[Class]string{ClassAR: "ar", ClassER: "er", ClassIR: "ir"}

	for class, classEnding := range classEndings {
		stemTenses := []struct {
			tense   Tense
			endings map[Class]endingSet
		}{
			{Present, presentEndings},
			{Preterite, preteriteEndings},
			{Imperfect, imperfectEndings},
			{ImperativeTense, imperativeEndings},
		}
		for _, st := range stemTenses {
			for _, c := range cellsOf(st.endings[class]) {
				if c.suffix == "" || !strings.HasSuffix(word, c.suffix) {
					continue
				}
				root := word[:len(word)-len(c.suffix)]
				lemma := root + classEnding
				if r.isRegularVerbLemma(lemma) {
					return Recognition{Lemma: lemma, Tense: st.tense, Mood: moodOf(st.tense), Person: c.person, Number: c.number}, true
				}
			}
		}

		for _, fc := range []struct {
			tense Tense
			es    endingSet
		}{{Future, futureEndings}, {Conditional, conditionalEndings}} {
			for _, c := range cellsOf(fc.es) {
				if c.suffix == "" || !strings.HasSuffix(word, c.suffix) {
					continue
				}
				lemma := word[:len(word)-len(c.suffix)]
				if strings.HasSuffix(lemma, classEnding) && r.isRegularVerbLemma(lemma) {
					return Recognition{Lemma: lemma, Tense: fc.tense, Mood: Indicative, Person: c.person, Number: c.number}, true
				}
			}
		}

		for _, c := range cellsOf(presentSubjunctiveEndings[class]) {
			if c.suffix == "" || !strings.HasSuffix(word, c.suffix) {
				continue
			}
			root := word[:len(word)-len(c.suffix)]
			lemma := root + classEnding
			if r.isRegularVerbLemma(lemma) {
				return Recognition{Lemma: lemma, Tense: Present, Mood: Subjunctive, Person: c.person, Number: c.number}, true
			}
		}

		if strings.HasSuffix(word, classEnding) && r.isRegularVerbLemma(word) {
			return Recognition{Lemma: word, Tense: Infinitive, Mood: Indicative}, true
		}
		if g := gerundEnding[class]; strings.HasSuffix(word, g) {
			lemma := word[:len(word)-len(g)] + classEnding
			if r.isRegularVerbLemma(lemma) {
				return Recognition{Lemma: lemma, Tense: Gerund}, true
			}
		}
		if p := participleEnding[class]; strings.HasSuffix(word, p) {
			lemma := word[:len(word)-len(p)] + classEnding
			if r.isRegularVerbLemma(lemma) {
				return Recognition{Lemma: lemma, Tense: Participle}, true
			}
		}
	}
	return Recognition{}, false
}

func (r *Recognizer) isRegularVerbLemma(lemma string) bool {
	for _, e := range r.dict.Lookup(lemma) {
		if e.Category == dict.CategoryVerb {
			return true
		}
	}
	return false
}

// closedTableLookup is §4.B step 4: the fully-irregular verbs
// (irregularVerbs) plus the stem-changers (stemChangers), checked by
// generating their forms and comparing.
// Both tables are small and closed, so brute-force membership is
// deterministic and cheap relative to a per-token recognition call.
func (r *Recognizer) closedTableLookup(word string) (Recognition, bool) {
	for lemma, iv := range irregularVerbs {
		if lemma == word {
			return Recognition{Lemma: lemma, Tense: Infinitive, Mood: Indicative}, true
		}
		if iv.gerund == word {
			return Recognition{Lemma: lemma, Tense: Gerund}, true
		}
		if iv.participle == word {
			return Recognition{Lemma: lemma, Tense: Participle}, true
		}
		for _, pt := range []struct {
			tense Tense
			mood  Mood
			p     Paradigm
		}{
			{Present, Indicative, iv.present},
			{Preterite, Indicative, iv.preterite},
			{Imperfect, Indicative, iv.imperfect},
			{Future, Indicative, iv.future},
			{Conditional, Indicative, iv.conditional},
			{ImperativeTense, Imperative, iv.imperative},
		} {
			if per, num, ok := matchCell(pt.p, word); ok {
				return Recognition{Lemma: lemma, Tense: pt.tense, Mood: pt.mood, Person: per, Number: num}, true
			}
		}
	}

	for lemma, alt := range stemChangers {
		for _, tense := range []Tense{Present, Preterite, ImperativeTense} {
			if p, ok := ConjugateStemChanged(lemma, alt, tense); ok {
				if per, num, ok := matchCell(p, word); ok {
					return Recognition{Lemma: lemma, Tense: tense, Mood: moodOf(tense), Person: per, Number: num}, true
				}
			}
		}
		if p, ok := PresentSubjunctiveStemChanged(lemma, alt); ok {
			if per, num, ok := matchCell(p, word); ok {
				return Recognition{Lemma: lemma, Tense: Present, Mood: Subjunctive, Person: per, Number: num}, true
			}
		}
		if g, ok := StemChangedGerund(lemma, alt); ok && g == word {
			return Recognition{Lemma: lemma, Tense: Gerund}, true
		}
	}
	return Recognition{}, false
}

func matchCell(p Paradigm, word string) (Person, Number, bool) {
	var found bool
	var fp Person
	var fn Number
	p.each(func(person Person, number Number, form string) {
		if found || form == "" {
			return
		}
		if form == word {
			found, fp, fn = true, person, number
		}
	})
	return fp, fn, found
}
