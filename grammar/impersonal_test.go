package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImpersonalHaber(t *testing.T) {
	assert.Equal(t, "Habían [Había] muchas personas", run(t, ImpersonalHaber, "Habían muchas personas"))
	// a real subject ("ellos habían") takes the plural correctly.
	assert.Equal(t, "ellos habían comido", run(t, ImpersonalHaber, "ellos habían comido"))
}

func TestImpersonalHacerTemporal(t *testing.T) {
	assert.Equal(t, "hacen [hace] 3 años", run(t, ImpersonalHacerTemporal, "hacen 3 años"))
	assert.Equal(t, "hacen pasteles", run(t, ImpersonalHacerTemporal, "hacen pasteles"))
}

func TestExistentialHaberDefiniteArticle(t *testing.T) {
	assert.Equal(t, "hay el [un] problema", run(t, ExistentialHaberDefiniteArticle, "hay el problema"))
	assert.Equal(t, "hay un problema", run(t, ExistentialHaberDefiniteArticle, "hay un problema"))
}
