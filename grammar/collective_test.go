package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectiveNounAgreement(t *testing.T) {
	assert.Equal(t, "la gente piensan [piensa] diferente", run(t, CollectiveNounAgreement, "la gente piensan diferente"))
	assert.Equal(t, "los amigos piensan diferente", run(t, CollectiveNounAgreement, "los amigos piensan diferente"))
}

func TestRelativeClauseAgreement(t *testing.T) {
	assert.Equal(t, "la casa que fue pintado [pintada]", run(t, RelativeClauseAgreement, "la casa que fue pintado"))
}

func TestUnoDeLosQue(t *testing.T) {
	assert.Equal(t, "uno de los amigos que sabe [saben] más", run(t, UnoDeLosQue, "uno de los amigos que sabe más"))
}
