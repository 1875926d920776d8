package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPleonasms(t *testing.T) {
	assert.Equal(t, "subir ~~arriba~~", run(t, Pleonasms, "subir arriba"))
	assert.Equal(t, "subir al tejado", run(t, Pleonasms, "subir al tejado"))
}

func TestFossilizedPrepositions(t *testing.T) {
	assert.Equal(t, "en [con base en] ~~base~~ ~~a~~ esto", run(t, FossilizedPrepositions, "en base a esto"))
}
