package verb

import "strings"

// Class is the infinitive paradigm class (-ar/-er/-ir).
type Class uint8

const (
	ClassAR Class = iota
	ClassER
	ClassIR
)

// classOf returns the paradigm class of a regular infinitive, or ok=false
// if lemma does not end in one of the three recognized infinitive endings.
func classOf(lemma string) (Class, bool) {
	switch {
	case strings.HasSuffix(lemma, "ar"):
		return ClassAR, true
	case strings.HasSuffix(lemma, "er"):
		return ClassER, true
	case strings.HasSuffix(lemma, "ir"):
		return ClassIR, true
	default:
		return 0, false
	}
}

// stem returns lemma without its infinitive ending.
func stem(lemma string) string { return lemma[:len(lemma)-2] }

// endingSet holds the six finite-cell suffixes for one (tense, mood,
// class) combination, appended to the bare stem (or, for Future/Conditional,
// to the full infinitive — see ConjugateRegular).
type endingSet struct {
	sg1, sg2, sg3, pl1, pl2, pl3 string
}

func (e endingSet) toParadigm(base string) Paradigm {
	return Paradigm{
		Sg1: base + e.sg1, Sg2: base + e.sg2, Sg3: base + e.sg3,
		Pl1: base + e.pl1, Pl2: base + e.pl2, Pl3: base + e.pl3,
	}
}

var presentEndings = map[Class]endingSet{
	ClassAR: {"o", "as", "a", "amos", "áis", "an"},
	ClassER: {"o", "es", "e", "emos", "éis", "en"},
	ClassIR: {"o", "es", "e", "imos", "ís", "en"},
}

var preteriteEndings = map[Class]endingSet{
	ClassAR: {"é", "aste", "ó", "amos", "asteis", "aron"},
	ClassER: {"í", "iste", "ió", "imos", "isteis", "ieron"},
	ClassIR: {"í", "iste", "ió", "imos", "isteis", "ieron"},
}

var imperfectEndings = map[Class]endingSet{
	ClassAR: {"aba", "abas", "aba", "ábamos", "abais", "aban"},
	ClassER: {"ía", "ías", "ía", "íamos", "íais", "ían"},
	ClassIR: {"ía", "ías", "ía", "íamos", "íais", "ían"},
}

// futureConditional endings attach to the full infinitive, same for all classes.
var futureEndings = endingSet{"é", "ás", "á", "emos", "éis", "án"}
var conditionalEndings = endingSet{"ía", "ías", "ía", "íamos", "íais", "ían"}

var presentSubjunctiveEndings = map[Class]endingSet{
	ClassAR: {"e", "es", "e", "emos", "éis", "en"},
	ClassER: {"a", "as", "a", "amos", "áis", "an"},
	ClassIR: {"a", "as", "a", "amos", "áis", "an"},
}

// imperativeEndings models the five addressable cells (no 1sg imperative);
// Sg1 is left empty by convention.
var imperativeEndings = map[Class]endingSet{
	ClassAR: {"", "a", "e", "emos", "ad", "en"},
	ClassER: {"", "e", "a", "amos", "ed", "an"},
	ClassIR: {"", "e", "a", "amos", "id", "an"},
}

var gerundEnding = map[Class]string{ClassAR: "ando", ClassER: "iendo", ClassIR: "iendo"}
var participleEnding = map[Class]string{ClassAR: "ado", ClassER: "ido", ClassIR: "ido"}

// ConjugateRegular returns the paradigm for lemma in the given tense/mood,
// under the regular -ar/-er/-ir rules, with no stem change or irregularity.
func ConjugateRegular(lemma string, tense Tense) (Paradigm, bool) {
	class, ok := classOf(lemma)
	if !ok {
		return Paradigm{}, false
	}
	root := stem(lemma)
	switch tense {
	case Present:
		return presentEndings[class].toParadigm(root), true
	case Preterite:
		return preteriteEndings[class].toParadigm(root), true
	case Imperfect:
		return imperfectEndings[class].toParadigm(root), true
	case Future:
		return futureEndings.toParadigm(lemma), true
	case Conditional:
		return conditionalEndings.toParadigm(lemma), true
	case ImperativeTense:
		return imperativeEndings[class].toParadigm(root), true
	default:
		return Paradigm{}, false
	}
}

// ConjugatePresentSubjunctive returns the present-subjunctive paradigm.
func ConjugatePresentSubjunctive(lemma string) (Paradigm, bool) {
	class, ok := classOf(lemma)
	if !ok {
		return Paradigm{}, false
	}
	return presentSubjunctiveEndings[class].toParadigm(stem(lemma)), true
}

// Gerund returns the regular gerund form of lemma.
func Gerund(lemma string) (string, bool) {
	class, ok := classOf(lemma)
	if !ok {
		return "", false
	}
	return stem(lemma) + gerundEnding[class], true
}

// RegularParticiple returns the regular participle form of lemma (the
// irregular exceptions in irregular.go take priority over this).
func RegularParticiple(lemma string) (string, bool) {
	class, ok := classOf(lemma)
	if !ok {
		return "", false
	}
	return stem(lemma) + participleEnding[class], true
}

var finiteTenses = []Tense{Present, Preterite, Imperfect, Future, Conditional, ImperativeTense}
