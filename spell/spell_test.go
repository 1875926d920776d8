package spell

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/escriba/corrector/dict"
)

func buildDict(words map[string]int) *dict.Dictionary {
	trie := dict.NewTrie()
	for w, freq := range words {
		trie.Insert(w, dict.Entry{Lemma: w, Category: dict.CategoryNoun, Frequency: freq})
	}
	return dict.NewDictionary(trie)
}

func TestSuggestFindsNearbyWords(t *testing.T) {
	d := buildDict(map[string]int{"casa": 100, "caso": 50, "cosa": 80})
	e := NewEngine(d, nil, nil)

	suggestions := e.Suggest("casx", 3, 2)
	require.Contains(t, suggestions, "casa")
}

func TestSuggestExactMatchOutranksFrequency(t *testing.T) {
	d := buildDict(map[string]int{"casa": 10, "caza": 100})
	e := NewEngine(d, nil, nil)

	suggestions := e.Suggest("casa", 2, 1)
	require.NotEmpty(t, suggestions)
	require.Equal(t, "casa", suggestions[0], "exact match must always rank first")
}

func TestSuggestRestoresCapitalization(t *testing.T) {
	d := buildDict(map[string]int{"casa": 10})
	e := NewEngine(d, nil, nil)

	suggestions := e.Suggest("Casx", 1, 2)
	require.NotEmpty(t, suggestions)
	require.Equal(t, "Casa", suggestions[0])
}

func TestSuggestDiacriticOnlyDifferenceRanksFirst(t *testing.T) {
	d := buildDict(map[string]int{"está": 5, "estar": 100})
	e := NewEngine(d, nil, nil)

	suggestions := e.Suggest("esta", 2, 2)
	require.NotEmpty(t, suggestions)
	require.Equal(t, "está", suggestions[0], "accent-only edit must outrank a higher-frequency non-accent candidate")
}

func TestKnownWordNeedsNoSuggestion(t *testing.T) {
	d := buildDict(map[string]int{"casa": 10})
	d.LoadNames([]string{"María"})
	e := NewEngine(d, nil, func(w string) bool { return w == "custom" })

	require.True(t, e.Known("casa"))
	require.True(t, e.Known("casas")) // plural derivation
	require.True(t, e.Known("María"))
	require.True(t, e.Known("123"))
	require.True(t, e.Known("custom"))
	require.False(t, e.Known("xyzzy"))
}

func TestDefaultMaxEditDistance(t *testing.T) {
	require.Equal(t, 1, DefaultMaxEditDistance("sí"))
	require.Equal(t, 2, DefaultMaxEditDistance("hablar"))
}
