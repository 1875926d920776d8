package dict

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTriePrefixWalk(t *testing.T) {
	tr := NewTrie()
	tr.Insert("casa", Entry{Lemma: "casa"})
	tr.Insert("casas", Entry{Lemma: "casa", Number: NumberPlural})
	tr.Insert("caso", Entry{Lemma: "caso"})
	tr.Insert("perro", Entry{Lemma: "perro"})

	var got []string
	tr.PrefixWalk("cas", 0, func(surface string, entries []Entry) bool {
		got = append(got, surface)
		return true
	})
	sort.Strings(got)
	require.Equal(t, []string{"casa", "casas", "caso"}, got)
}

func TestTriePrefixWalkBudget(t *testing.T) {
	tr := NewTrie()
	for _, w := range []string{"aa", "ab", "ac", "ad"} {
		tr.Insert(w, Entry{Lemma: w})
	}
	var got []string
	tr.PrefixWalk("a", 2, func(surface string, entries []Entry) bool {
		got = append(got, surface)
		return true
	})
	require.Len(t, got, 2)
}

func TestWalkerNavigation(t *testing.T) {
	tr := NewTrie()
	tr.Insert("al", Entry{Lemma: "al"})

	w := tr.Root()
	w1, ok := w.Next('a')
	require.True(t, ok)
	w2, ok := w1.Next('l')
	require.True(t, ok)
	require.NotNil(t, w2.Entries())

	_, ok = w.Next('z')
	require.False(t, ok)
}
