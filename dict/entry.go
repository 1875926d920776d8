// Package dict implements the trie-backed morphological dictionary: exact
// lookup, prefix enumeration, and on-the-fly derivation of regular plurals.
package dict

// Category is the part of speech of a dictionary entry.
type Category uint8

const (
	CategoryOther Category = iota
	CategoryNoun
	CategoryVerb
	CategoryAdjective
	CategoryAdverb
	CategoryArticle
	CategoryPreposition
	CategoryConjunction
	CategoryPronoun
	CategoryDeterminer
)

// categoryNames maps the dictionary file's Spanish category tokens (§6) to Category.
var categoryNames = map[string]Category{
	"sustantivo":   CategoryNoun,
	"verbo":        CategoryVerb,
	"adjetivo":     CategoryAdjective,
	"adverbio":     CategoryAdverb,
	"articulo":     CategoryArticle,
	"preposicion":  CategoryPreposition,
	"conjuncion":   CategoryConjunction,
	"pronombre":    CategoryPronoun,
	"determinante": CategoryDeterminer,
	"otro":         CategoryOther,
}

// Gender of a dictionary entry.
type Gender uint8

const (
	GenderNone Gender = iota
	GenderMasc
	GenderFem
	GenderCommon
)

// Number (grammatical) of a dictionary entry.
type Number uint8

const (
	NumberNone Number = iota
	NumberSingular
	NumberPlural
	NumberInvariant
)

// Entry is one morphological record: a lemma with its feature tuple.
// A lemma may appear multiple times under different feature tuples; the
// trie stores every tuple reachable by a given surface form.
type Entry struct {
	Lemma     string
	Category  Category
	Gender    Gender
	Number    Number
	Extra     string // free-form morphology flags, e.g. "dim_base", "irr_plural"
	Frequency int
}

// HasFlag reports whether the comma-separated Extra field contains flag.
func (e Entry) HasFlag(flag string) bool {
	return hasCSVField(e.Extra, flag)
}

func hasCSVField(csv, field string) bool {
	for csv != "" {
		i := 0
		for i < len(csv) && csv[i] != ',' {
			i++
		}
		if csv[:i] == field {
			return true
		}
		if i == len(csv) {
			break
		}
		csv = csv[i+1:]
	}
	return false
}

// Invariant reports whether the entry is flagged as never pluralizing
// (e.g. invariant nouns like "crisis", "lunes").
func (e Entry) Invariant() bool {
	return e.Number == NumberInvariant || e.HasFlag("invariant")
}
