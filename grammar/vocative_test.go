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

func runVocative(t *testing.T, text string) string {
	t.Helper()
	trie, err := dict.Load(strings.NewReader(testDictSource), nil)
	if err != nil {
		t.Fatalf("loading fixture dictionary: %v", err)
	}
	d := dict.NewDictionary(trie)
	d.LoadNames([]string{"Juan", "María"})
	ctx := &Context{Dictionary: d, Verbs: verb.NewRecognizer(d)}
	tokens := token.Tokenize(text, nil)
	VocativeCommas(tokens, ctx)
	return render.Render(tokens)
}

func TestVocativeCommas(t *testing.T) {
	assert.Equal(t, "Hola [,] Juan", runVocative(t, "Hola Juan"))
	assert.Equal(t, "Hola, Juan", runVocative(t, "Hola, Juan"))
	assert.Equal(t, "Buenos días [,] María", runVocative(t, "Buenos días María"))
}
