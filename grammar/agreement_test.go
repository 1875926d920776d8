package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticleNounAgreement(t *testing.T) {
	assert.Equal(t, "El [La] casa es bonita", run(t, ArticleNounAgreement, "El casa es bonita"))
	// correct already: no annotation
	assert.Equal(t, "La casa es bonita", run(t, ArticleNounAgreement, "La casa es bonita"))
	// an intervening agreeing adjective is skipped to reach the noun
	assert.Equal(t, "El [La] bonita casa", run(t, ArticleNounAgreement, "El bonita casa"))
}

func TestNounAdjectiveAgreement(t *testing.T) {
	assert.Equal(t, "La casa es muy bonito [bonita]", run(t, NounAdjectiveAgreement, "La casa es muy bonito"))
	// invariant adjectives never get a replacement annotation.
	assert.Equal(t, "La persona es feliz", run(t, NounAdjectiveAgreement, "La persona es feliz"))
}

func TestDeterminerNounAgreement(t *testing.T) {
	assert.Equal(t, "este [esta] casa", run(t, DeterminerNounAgreement, "este casa"))
	assert.Equal(t, "esta casa", run(t, DeterminerNounAgreement, "esta casa"))
}

func TestSubjectVerbAgreement(t *testing.T) {
	// "yo" (1sg) before a 3rg-agreeing "pinta" should be corrected to "pinto".
	assert.Equal(t, "yo pinta [pinto]", run(t, SubjectVerbAgreement, "yo pinta"))
	assert.Equal(t, "yo pinto", run(t, SubjectVerbAgreement, "yo pinto"))
}
