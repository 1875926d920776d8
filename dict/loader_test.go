package dict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDict = `# comment line
casa|sustantivo|f|sg|_|500
casa|sustantivo|f|pl|_|10
bonito|adjetivo|m|sg|_|300
bonita|adjetivo|f|sg|_|300
mes|sustantivo|m|sg|_|200
luz|sustantivo|f|sg|_|150
lunes|sustantivo|m|inv|_|90
this line has no pipes at all
casa|sustantivo||sg|_|20
`

func TestLoadParsesValidLinesAndSkipsMalformed(t *testing.T) {
	trie, err := Load(strings.NewReader(sampleDict), nil)
	require.NoError(t, err)

	entries := trie.Lookup("casa")
	require.Len(t, entries, 2, "both valid 'casa' lines merge under one key; the blank-gender line is malformed and skipped")

	require.Nil(t, trie.Lookup("nosuchword"))
}

func TestDictionaryPluralDerivation(t *testing.T) {
	trie, err := Load(strings.NewReader(sampleDict), nil)
	require.NoError(t, err)
	d := NewDictionary(trie)

	t.Run("drop final s", func(t *testing.T) {
		es := d.Lookup("casas")
		require.NotEmpty(t, es)
		for _, e := range es {
			require.Equal(t, NumberPlural, e.Number)
		}
	})

	t.Run("drop es", func(t *testing.T) {
		es := d.Lookup("meses")
		require.NotEmpty(t, es)
	})

	t.Run("z/c alternation", func(t *testing.T) {
		es := d.Lookup("luces")
		require.NotEmpty(t, es)
	})

	t.Run("invariant noun never pluralizes", func(t *testing.T) {
		require.Nil(t, d.Lookup("luneses"))
	})
}

func TestPluralizeRoundTrip(t *testing.T) {
	cases := []string{"casa", "mes", "luz"}
	trie, err := Load(strings.NewReader(sampleDict), nil)
	require.NoError(t, err)
	d := NewDictionary(trie)

	for _, singular := range cases {
		plural := Pluralize(singular)
		cands := singularCandidates(plural)
		require.Contains(t, cands, singular)
		_ = d
	}
}

func TestIsNumeric(t *testing.T) {
	require.True(t, IsNumeric("123"))
	require.True(t, IsNumeric("1.234,56"))
	require.True(t, IsNumeric("2º"))
	require.False(t, IsNumeric("hola"))
}
