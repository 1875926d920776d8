package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompoundTenseParticiples(t *testing.T) {
	// "escribido" is a regularized misspelling of the irregular "escrito".
	assert.Equal(t, "He escribido [escrito] la carta", run(t, CompoundTenseParticiples, "He escribido la carta"))
	// a regular participle is left untouched.
	assert.Equal(t, "He pintado la casa", run(t, CompoundTenseParticiples, "He pintado la casa"))
}
