package grammar

import (
	"strings"
	"testing"

	"github.com/escriba/corrector/dict"
	"github.com/escriba/corrector/render"
	"github.com/escriba/corrector/token"
	"github.com/escriba/corrector/verb"
)

// testDictSource is a minimal inline dictionary covering the vocabulary
// used across this package's phase tests, in the §6 pipe-delimited format.
const testDictSource = `
el|articulo|m|sg|_|500
la|articulo|f|sg|_|500
los|articulo|m|pl|_|300
las|articulo|f|pl|_|300
un|articulo|m|sg|_|300
una|articulo|f|sg|_|300
casa|sustantivo|f|sg|_|400
libro|sustantivo|m|sg|_|300
mundo|sustantivo|m|sg|_|300
carta|sustantivo|f|sg|_|200
persona|sustantivo|f|sg|_|400
amigo|sustantivo|m|sg|_|300
amiga|sustantivo|f|sg|_|200
testigo|sustantivo|c|sg|_|50
gente|sustantivo|f|sg|collective|300
equipo|sustantivo|m|sg|collective|200
mayoría|sustantivo|f|sg|collective|150
lunes|sustantivo|m|inv|invariant|100
bonito|adjetivo|_|sg|_|200
bonita|adjetivo|f|sg|_|200
mucha|adjetivo|f|sg|_|300
pintado|adjetivo|_|sg|_|100
feliz|adjetivo|_|sg|invariant|100
muy|adverbio|_|inv|_|500
arriba|adverbio|_|inv|_|100
abajo|adverbio|_|inv|_|100
dentro|adverbio|_|inv|_|100
fuera|adverbio|_|inv|_|100
luego|adverbio|_|inv|_|200
no|adverbio|_|inv|_|900
ya|adverbio|_|inv|_|300
siempre|adverbio|_|inv|_|200
y|conjuncion|_|inv|_|900
si|conjuncion|_|inv|_|400
que|conjuncion|_|inv|_|900
porque|conjuncion|_|inv|_|300
pero|conjuncion|_|inv|_|300
a|preposicion|_|inv|_|900
con|preposicion|_|inv|_|400
de|preposicion|_|inv|_|900
por|preposicion|_|inv|_|500
en|preposicion|_|inv|_|500
para|preposicion|_|inv|_|300
yo|pronombre|_|inv|_|400
tu|pronombre|_|inv|_|300
el|pronombre|_|inv|_|400
se|pronombre|_|inv|_|500
lo|pronombre|_|inv|_|300
la|pronombre|_|inv|_|300
le|pronombre|_|inv|_|200
les|pronombre|_|inv|_|100
viajar|verbo|_|_|_|100
subir|verbo|_|_|_|150
bajar|verbo|_|_|_|150
entrar|verbo|_|_|_|100
salir|verbo|_|_|_|150
escribir|verbo|_|_|_|100
pintar|verbo|_|_|_|100
cantar|verbo|_|_|_|100
deber|verbo|_|_|_|150
pensar|verbo|_|_|_|200
gustar|verbo|_|_|_|150
`

// newTestContext tokenizes text and returns its tokens alongside a Context
// wired to the inline fixture dictionary and a real verb recognizer over
// it, so phase tests exercise the same recognition cascade the pipeline
// does rather than a hand-rolled stub.
func newTestContext(t *testing.T, text string) ([]*token.Token, *Context) {
	t.Helper()
	trie, err := dict.Load(strings.NewReader(testDictSource), nil)
	if err != nil {
		t.Fatalf("loading fixture dictionary: %v", err)
	}
	d := dict.NewDictionary(trie)
	rec := verb.NewRecognizer(d)
	tokens := token.Tokenize(text, nil)
	return tokens, &Context{Dictionary: d, Verbs: rec}
}

// run tokenizes text, runs phase over it, and renders the result.
func run(t *testing.T, phase Phase, text string) string {
	t.Helper()
	tokens, ctx := newTestContext(t, text)
	phase(tokens, ctx)
	return render.Render(tokens)
}
