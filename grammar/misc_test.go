package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/escriba/corrector/dict"
	"github.com/escriba/corrector/render"
	"github.com/escriba/corrector/token"
	"github.com/escriba/corrector/verb"
)

func TestHaAInfinitive(t *testing.T) {
	assert.Equal(t, "voy ha [a] viajar", run(t, HaAInfinitive, "voy ha viajar"))
	// "ha" before a participle (compound perfect) is left alone.
	assert.Equal(t, "ha pintado", run(t, HaAInfinitive, "ha pintado"))
}

func TestPosteriorGerund(t *testing.T) {
	got := run(t, PosteriorGerund, "Salió corriendo, perdiendo el tren")
	assert.Equal(t, "Salió corriendo~~,~~ perdiendo [y perdió] el tren", got)
}

func TestInfinitiveAsImperative(t *testing.T) {
	assert.Equal(t, "¡cantar [cantad] ahora!", run(t, InfinitiveAsImperative, "¡cantar ahora!"))
	// the bare infinitive outside an exclamation is not a command.
	assert.Equal(t, "me gusta cantar", run(t, InfinitiveAsImperative, "me gusta cantar"))
}

func TestCommonGenderExplicitReferent(t *testing.T) {
	tokens := token.Tokenize("el testigo María", nil)
	trie, err := dict.Load(strings.NewReader(testDictSource), nil)
	if err != nil {
		t.Fatalf("loading fixture dictionary: %v", err)
	}
	d := dict.NewDictionary(trie)
	d.LoadNames([]string{"María", "Juan"})
	ctx := &Context{Dictionary: d, Verbs: verb.NewRecognizer(d)}
	CommonGenderExplicitReferent(tokens, ctx)
	assert.Equal(t, "el [la] testigo María", render.Render(tokens))
}

func TestCoordinatedSubjects(t *testing.T) {
	// "ni A ni B" correlative: "sabe" is in the closed irregular verb
	// table, so it resolves without needing a dictionary entry.
	assert.Equal(t, "ni la casa ni el libro sabe [saben] la verdad", run(t, CoordinatedSubjects, "ni la casa ni el libro sabe la verdad"))
	// "tanto A como B" correlative.
	assert.Equal(t, "tanto la casa como el libro pinta [pintan] bien", run(t, CoordinatedSubjects, "tanto la casa como el libro pinta bien"))
	// plain "y" conjunction is not one of the two named correlatives and
	// must not be touched by this phase.
	assert.Equal(t, "la casa y el libro pinta bien", run(t, CoordinatedSubjects, "la casa y el libro pinta bien"))
}
