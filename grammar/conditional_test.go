package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterfactualConditional(t *testing.T) {
	assert.Equal(t, "Si tendría [tuviera] dinero", run(t, CounterfactualConditional, "Si tendría dinero"))
	// the apodosis conditional, not governed by "si", is untouched.
	assert.Equal(t, "viajaría por el mundo", run(t, CounterfactualConditional, "viajaría por el mundo"))
}
