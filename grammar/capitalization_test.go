package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentenceStartCapitalization(t *testing.T) {
	assert.Equal(t, "hola [Hola]. adiós [Adiós]", run(t, SentenceStartCapitalization, "hola. adiós"))
	assert.Equal(t, "Hola. Adiós", run(t, SentenceStartCapitalization, "Hola. Adiós"))
}
