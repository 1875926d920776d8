package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDequeismoQueismo_Dequeismo(t *testing.T) {
	assert.Equal(t, "Pienso ~~de~~ que vienes", run(t, DequeismoQueismo, "Pienso de que vienes"))
	assert.Equal(t, "Pienso que vienes", run(t, DequeismoQueismo, "Pienso que vienes"))
}

func TestLaismoLeismoLoismo(t *testing.T) {
	assert.Equal(t, "lo [le] gusta el libro", run(t, LaismoLeismoLoismo, "lo gusta el libro"))
	assert.Equal(t, "lo veo", run(t, LaismoLeismoLoismo, "lo veo"))
}
