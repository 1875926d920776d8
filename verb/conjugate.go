package verb

// Conjugate is the forward-direction counterpart to the recognition
// cascade in recognizer.go: irregular table first, then the stem-change
// tables, falling back to the regular paradigm generator. It is the
// generator grammar phases use to produce a replacement form for a lemma
// whose person/number/tense is already known (e.g. subject/verb
// agreement), rather than recognizing an existing surface form.
func Conjugate(lemma string, tense Tense) (Paradigm, bool) {
	if iv, ok := irregularVerbs[lemma]; ok {
		if p, ok := irregularCell(iv, tense); ok {
			return p, true
		}
	}
	if alt, ok := stemChangers[lemma]; ok {
		return ConjugateStemChanged(lemma, alt, tense)
	}
	return ConjugateRegular(lemma, tense)
}

func irregularCell(iv irregularVerb, tense Tense) (Paradigm, bool) {
	var p Paradigm
	switch tense {
	case Present:
		p = iv.present
	case Preterite:
		p = iv.preterite
	case Imperfect:
		p = iv.imperfect
	case Future:
		p = iv.future
	case Conditional:
		p = iv.conditional
	case ImperativeTense:
		p = iv.imperative
	default:
		return Paradigm{}, false
	}
	if p == (Paradigm{}) {
		return Paradigm{}, false
	}
	return p, true
}

// PastSubjunctive derives the -ra imperfect/past subjunctive form for
// person/number, built from the preterite third-person-plural stem per
// standard Spanish morphology (tuvieron -> tuvie- + ra/ras/ra/ramos/rais/ran).
// This mechanical derivation works uniformly across regular, stem-changing
// and irregular verbs because it only depends on the preterite, which
// Conjugate already resolves through the same three-tier cascade.
func PastSubjunctive(lemma string) (Paradigm, bool) {
	pret, ok := Conjugate(lemma, Preterite)
	if !ok || len(pret.Pl3) < 3 {
		return Paradigm{}, false
	}
	stem := pret.Pl3[:len(pret.Pl3)-3] // drop "ron"
	return Paradigm{
		Sg1: stem + "ra", Sg2: stem + "ras", Sg3: stem + "ra",
		Pl1: stem + "ramos", Pl2: stem + "rais", Pl3: stem + "ran",
	}, true
}
