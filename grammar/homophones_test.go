package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHomophoneConfusables_TuboTuvo(t *testing.T) {
	assert.Equal(t, "Juan tubo [tuvo] un problema", run(t, HomophoneConfusables, "Juan tubo un problema"))
	// "el tubo" (the pipe) is the real noun and must not be touched.
	assert.Equal(t, "el tubo", run(t, HomophoneConfusables, "el tubo"))
}

func TestHomophoneConfusables_HallaHaya(t *testing.T) {
	assert.Equal(t, "que halla [haya]", run(t, HomophoneConfusables, "que halla"))
	assert.Equal(t, "Juan halla", run(t, HomophoneConfusables, "Juan halla"))
}

func TestHomophoneConfusables_AhiHay(t *testing.T) {
	assert.Equal(t, "ahi [hay] casa", run(t, HomophoneConfusables, "ahi casa"))
	assert.Equal(t, "ahi la casa", run(t, HomophoneConfusables, "ahi la casa"))
}

func TestPorqueDisambiguation_IndirectQuestion(t *testing.T) {
	assert.Equal(t, "no se porque [por qué] vino", run(t, PorqueDisambiguation, "no se porque vino"))
}

func TestPorqueDisambiguation_CausalStaysUnchanged(t *testing.T) {
	assert.Equal(t, "no vino porque llovía", run(t, PorqueDisambiguation, "no vino porque llovía"))
}

func TestPorqueDisambiguation_NominalizedNoun(t *testing.T) {
	assert.Equal(t, "el porque [porqué] de su actitud", run(t, PorqueDisambiguation, "el porque de su actitud"))
}

func TestSinoSiNo(t *testing.T) {
	// no preceding negation in the clause: "si no" (conditional) was meant.
	assert.Equal(t, "sino [si no] llueve mañana, iremos", run(t, SinoSiNo, "sino llueve mañana, iremos"))
	// preceding negation: the adversative "sino" is correct as written.
	assert.Equal(t, "no quiero café sino té", run(t, SinoSiNo, "no quiero café sino té"))
}
