package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairedPunctuation_MissingQuestionOpener(t *testing.T) {
	assert.Equal(t, "[¿] Como estás?", run(t, PairedPunctuation, "Como estás?"))
	assert.Equal(t, "¿Como estás?", run(t, PairedPunctuation, "¿Como estás?"))
}

func TestPairedPunctuation_MissingExclamationOpener(t *testing.T) {
	assert.Equal(t, "[¡] Qué bien!", run(t, PairedPunctuation, "Qué bien!"))
}
