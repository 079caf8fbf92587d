package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	t.Run("Stores words", func(t *testing.T) {
		tr := New()
		tr.Insert("cat", "cats", "dog")
		assert.Equal(t, 3, tr.Len())
		assert.True(t, tr.Contains("cat"))
		assert.True(t, tr.Contains("cats"))
		assert.True(t, tr.Contains("dog"))
		assert.False(t, tr.Contains("ca"))
		assert.False(t, tr.Contains("do"))
		assert.False(t, tr.Contains(""))
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := New()
		once.Insert("cat", "at")
		many := New()
		for i := 0; i < 5; i++ {
			many.Insert("cat", "at")
		}
		assert.Equal(t, once.Len(), many.Len())
		assert.Equal(t, shape(once.Root()), shape(many.Root()))
		assert.Equal(t, once.AnagramSet("tac"), many.AnagramSet("tac"))
	})

	t.Run("Empty entries are ignored", func(t *testing.T) {
		tr := New()
		tr.Insert("", "\u0301")
		assert.Equal(t, 0, tr.Len())
		assert.Empty(t, tr.Root().Edges())
	})

	t.Run("Prefix words mark intermediate nodes", func(t *testing.T) {
		tr := New()
		tr.Insert("cats")
		assert.False(t, tr.Contains("cat"))
		tr.Insert("cat")
		assert.True(t, tr.Contains("cat"))
		assert.Equal(t, 2, tr.Len())
	})

	t.Run("Raw mode stores characters as given", func(t *testing.T) {
		tr := New().CaseSensitive().WithoutNormalisation()
		tr.Insert("Niño")
		assert.True(t, tr.Contains("Niño"))
		assert.False(t, tr.Contains("nino"))
		assert.Equal(t, []rune{'N'}, tr.Root().Edges())
	})

	t.Run("Characters outside the alphabet make branches", func(t *testing.T) {
		tr := New()
		tr.Insert("a-b", "ab")
		assert.Equal(t, 2, tr.Len())
		assert.ElementsMatch(t, []string{"a-b", "ab"}, tr.Anagrams("b-a"))
	})
}

func TestNormalisationSettings(t *testing.T) {
	cases := []struct {
		name  string
		trie  *Trie
		input string
		want  string
	}{
		{"default", New(), "Niño", "nino"},
		{"case sensitive", New().CaseSensitive(), "Niño", "Nino"},
		{"without normalisation", New().WithoutNormalisation(), "Niño", "niño"},
		{"raw", New().CaseSensitive().WithoutNormalisation(), "Niño", "Niño"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.trie.Normalise(c.input))
		})
	}
}

func TestNormalise(t *testing.T) {
	assert.Equal(t, "nino", Normalise("niño"))
	assert.Equal(t, "arbol", Normalise("ÁRBOL"))
	assert.Equal(t, "pinguino", Normalise("pingüino"))
	assert.Equal(t, "cancion", Normalise("canción"))
	// Already normalised input is left alone.
	assert.Equal(t, "murcielago", Normalise("murcielago"))
	assert.Equal(t, "", Normalise(""))
}

func TestRoot(t *testing.T) {
	tr := New()
	tr.Insert("tea", "ten", "to", "a")

	root := tr.Root()
	assert.False(t, root.IsWord())
	assert.Equal(t, []rune{'a', 't'}, root.Edges())

	a, ok := root.Child('a')
	require.True(t, ok)
	assert.True(t, a.IsWord())
	assert.Empty(t, a.Edges())

	tn, ok := root.Child('t')
	require.True(t, ok)
	assert.False(t, tn.IsWord())
	assert.Equal(t, []rune{'e', 'o'}, tn.Edges())

	_, ok = root.Child('z')
	assert.False(t, ok)
}

// shape renders the subtree below n as a canonical string.
func shape(n Node) string {
	s := "("
	if n.IsWord() {
		s += "*"
	}
	for _, r := range n.Edges() {
		child, _ := n.Child(r)
		s += string(r) + shape(child)
	}
	return s + ")"
}
