package grammar

// diacriticPair is one entry of the unstressed/stressed homophone table
// (phase 5). unstressed is the word's weak-form spelling (determiner,
// conjunction, unstressed pronoun); stressed is its accented counterpart
// used as a tonic pronoun, adverb, or verb form.
type diacriticPair struct {
	unstressed, stressed string
}

// diacriticPairs is the ~40-pair table (§FULL supplement to phase 5):
// closed-class words that share a spelling except for a written accent
// marking stress, where the accent is semantically load-bearing.
var diacriticPairs = []diacriticPair{
	{"tu", "tú"}, {"el", "él"}, {"si", "sí"}, {"mi", "mí"}, {"te", "té"},
	{"de", "dé"}, {"se", "sé"}, {"mas", "más"}, {"aun", "aún"}, {"solo", "sólo"},
	{"este", "éste"}, {"esta", "ésta"}, {"estos", "éstos"}, {"estas", "éstas"},
	{"ese", "ése"}, {"esa", "ésa"}, {"esos", "ésos"}, {"esas", "ésas"},
	{"aquel", "aquél"}, {"aquella", "aquélla"}, {"aquellos", "aquéllos"}, {"aquellas", "aquéllas"},
	{"como", "cómo"}, {"cuando", "cuándo"}, {"donde", "dónde"}, {"quien", "quién"},
	{"quienes", "quiénes"}, {"cuanto", "cuánto"}, {"cuanta", "cuánta"}, {"cuantos", "cuántos"},
	{"cuantas", "cuántas"}, {"cual", "cuál"}, {"cuales", "cuáles"}, {"que", "qué"},
	{"porque", "porqué"}, {"adonde", "adónde"}, {"cuan", "cuán"},
}

// interrogatives are the stressed forms that, when followed by a clause
// opened with ¿ or closed with ?, must carry the accent (phase 5's
// syntactic-context rule for como/cuando/donde/quien/cuanto/cual).
var interrogatives = map[string]bool{
	"cómo": true, "cuándo": true, "dónde": true, "quién": true, "quiénes": true,
	"cuánto": true, "cuánta": true, "cuántos": true, "cuántas": true,
	"cuál": true, "cuáles": true, "qué": true, "adónde": true, "cuán": true,
}

// pronounSlotStressed are stressed forms that are correct when the word
// functions as a tonic pronoun/adverb rather than a determiner/conjunction
// (the other half of phase 5's disambiguation, independent of punctuation).
var pronounSlotStressed = map[string]bool{
	"tú": true, "él": true, "sí": true, "mí": true, "té": true,
	"dé": true, "sé": true, "más": true, "aún": true, "sólo": true,
}

// dequeismoVerbs is a representative 31-verb subset of the governing
// table for phase 11 (dequeísmo/queísmo): verbs that do NOT take "de que"
// (dequeísmo is inserting "de" before these) versus verbs that DO require
// "de que" (queísmo is omitting it). true = requires "de que".
//
// Keys are single lemmas only: DequeismoQueismo looks a verb up by the
// single recognized token's lemma, so a multi-word governor like "darse
// cuenta de que" (whose reflexive pronoun and conjugation both vary: "me
// doy cuenta", "se dio cuenta", ...) cannot be keyed here without phrase
// matching the phase doesn't do; it is left out rather than added as an
// entry that would never fire.
var dequeismoVerbs = map[string]bool{
	"pensar": false, "creer": false, "decir": false, "opinar": false,
	"considerar": false, "suponer": false, "imaginar": false, "sugerir": false,
	"recordar": false, "sostener": false, "afirmar": false, "comentar": false,
	"asegurar": false, "explicar": false, "negar": false, "insistir": true,
	"alegrarse": true, "enterarse": true, "convencerse": true,
	"acordarse": true, "olvidarse": true, "asombrarse": true, "percatarse": true,
	"preocuparse": true, "quejarse": true, "jactarse": true, "presumir": true,
	"fiarse": true, "dudar": true, "arrepentirse": true, "avergonzarse": true,
}

// pleonasms is the closed list of redundant adverbial pairs (phase 22).
var pleonasms = map[string][2]string{
	"subir":  {"subir", "arriba"},
	"bajar":  {"bajar", "abajo"},
	"entrar": {"entrar", "dentro"},
	"salir":  {"salir", "fuera"},
}

// fossilizedPrepositions maps a malformed fixed phrase to its corrected
// form (phase 23).
var fossilizedPrepositions = map[string]string{
	"en base a":     "con base en",
	"a nivel de":    "en el nivel de",
	"de acuerdo a":  "de acuerdo con",
}
