package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiacriticHomophones_SubjectPronounBeforeVerb(t *testing.T) {
	assert.Equal(t, "tu [tú] cantas", run(t, DiacriticHomophones, "tu cantas"))
	assert.Equal(t, "el [él] no vino", run(t, DiacriticHomophones, "el no vino"))
}

func TestDiacriticHomophones_PossessiveBeforeNounStaysWeak(t *testing.T) {
	// "tu" before a noun is the possessive determiner, not the pronoun.
	assert.Equal(t, "tu casa", run(t, DiacriticHomophones, "tu casa"))
}

func TestDiacriticHomophones_SeVerbMirrorCase(t *testing.T) {
	// "se" immediately followed by a recognized verb stays the weak
	// reflexive/impersonal pronoun.
	assert.Equal(t, "se cantan", run(t, DiacriticHomophones, "se cantan"))
}

func TestDiacriticHomophones_InterrogativeRequiresQuestionMarks(t *testing.T) {
	assert.Equal(t, "¿como [cómo] estás?", run(t, DiacriticHomophones, "¿como estás?"))
	assert.Equal(t, "como siempre", run(t, DiacriticHomophones, "como siempre"))
}
