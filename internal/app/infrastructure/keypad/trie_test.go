package keypad

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func mustInsert(t *testing.T, tr *Trie, words ...string) {
	t.Helper()
	for _, w := range words {
		require.NoError(t, tr.Insert(w))
	}
}

func TestTrie_RoundTrip(t *testing.T) {
	words := []string{"a", "be", "sea", "reb", "hello", "world", "keypad", "zzz", "cat", "bay"}

	tr := New()
	mustInsert(t, tr, words...)

	for _, w := range words {
		keys, err := Encode(w)
		require.NoError(t, err)

		n := tr.Search(keys + "#")
		require.NotNil(t, n, "word %q", w)
		assert.Contains(t, n.Words(), w)
	}
	assert.Equal(t, len(words), tr.Len())
}

func TestTrie_CollisionChainKeepsInsertionOrder(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "cat", "bay", "act")

	n := tr.Search("225#")
	require.NotNil(t, n)
	assert.Equal(t, []string{"cat", "bay", "act"}, n.Words())

	word, ok := n.Word()
	assert.True(t, ok)
	assert.Equal(t, "cat", word)
	assert.Equal(t, "act", n.Next().Next().word)
	assert.Nil(t, n.Next().Next().Next())
}

func TestTrie_ConcreteScenario(t *testing.T) {
	tr, err := Build(strings.NewReader("sea\nreb\n"))
	require.NoError(t, err)

	n := tr.Search("422#")
	require.NotNil(t, n)
	assert.Equal(t, []string{"sea", "reb"}, n.Words())

	assert.Nil(t, tr.Search("999#"))
}

func TestTrie_PrefixSharing(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "ab")
	before := tr.Nodes()

	mustInsert(t, tr, "abc")
	assert.Equal(t, 1, tr.Nodes()-before)
	assert.Equal(t, 4, tr.Nodes())

	ab := tr.Search("22#")
	require.NotNil(t, ab)
	assert.Equal(t, []string{"ab"}, ab.Words())
}

func TestTrie_ChainNodeCounted(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "sea")
	before := tr.Nodes()

	mustInsert(t, tr, "reb")
	assert.Equal(t, 1, tr.Nodes()-before)
}

func TestTrie_DuplicateWordAppends(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "sea", "sea")

	words, ok := tr.Lookup("422")
	assert.True(t, ok)
	assert.Equal(t, []string{"sea", "sea"}, words)
	assert.Equal(t, 2, tr.Len())
}

func TestTrie_Search(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "sea", "hello")

	tests := []struct {
		name      string
		keys      string
		wantNil   bool
		wantWords []string
	}{
		{name: "exact", keys: "422#", wantWords: []string{"sea"}},
		{name: "last_byte_ignored", keys: "422x", wantWords: []string{"sea"}},
		{name: "last_byte_digit_ignored", keys: "4222", wantWords: []string{"sea"}},
		{name: "sentinel_early_stop", keys: "42#29", wantWords: nil},
		{name: "prefix_node_without_word", keys: "42#"},
		{name: "missing_path", keys: "999#", wantNil: true},
		{name: "non_digit", keys: "4a2#", wantNil: true},
		{name: "digit_below_two", keys: "412#", wantNil: true},
		{name: "zero", keys: "0#", wantNil: true},
		{name: "too_long", keys: "42222#", wantNil: true},
		{name: "sentinel_only", keys: "#"},
		{name: "empty", keys: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tr.Search(tt.keys)
			if tt.wantNil {
				assert.Nil(t, n)
				return
			}
			require.NotNil(t, n)
			assert.Equal(t, tt.wantWords, n.Words())
		})
	}
}

func TestTrie_SearchRootHoldsNoWord(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "a")

	root := tr.Search("#")
	require.NotNil(t, root)
	assert.Same(t, tr.Root(), root)
	_, ok := root.Word()
	assert.False(t, ok)
}

func TestTrie_InsertRejectsInvalidWords(t *testing.T) {
	tr := New()

	assert.ErrorIs(t, tr.Insert(""), ErrEmptyWord)
	assert.ErrorIs(t, tr.Insert("Sea"), ErrInvalidWordCharacter)
	assert.ErrorIs(t, tr.Insert("se a"), ErrInvalidWordCharacter)
	assert.ErrorIs(t, tr.Insert("café"), ErrInvalidWordCharacter)

	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 1, tr.Nodes())
	for g := Group(0); g < NumGroups; g++ {
		assert.Nil(t, tr.Root().Child(g))
	}
}

func TestTrie_Clear(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "sea", "reb", "hello", "help")
	root := tr.Root()
	seaNode := tr.Search("422#")

	tr.Clear()

	assert.Nil(t, tr.Root())
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.Nodes())
	assert.Nil(t, tr.Search("422#"))
	for g := Group(0); g < NumGroups; g++ {
		assert.Nil(t, root.Child(g))
	}
	assert.Nil(t, seaNode.Next())
	assert.Nil(t, seaNode.Words())
}

func TestTrie_ClearIsIdempotent(t *testing.T) {
	var nilTrie *Trie
	assert.NotPanics(t, nilTrie.Clear)

	tr := New()
	assert.NotPanics(t, tr.Clear)
	assert.NotPanics(t, tr.Clear)
}

func TestTrie_InsertAfterClear(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "sea")
	tr.Clear()

	mustInsert(t, tr, "reb")
	words, ok := tr.Lookup("422")
	assert.True(t, ok)
	assert.Equal(t, []string{"reb"}, words)
}

func TestTrie_Dump(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "ab", "sea", "reb")
	nodes, words := tr.Nodes(), tr.Len()

	var buf bytes.Buffer
	require.NoError(t, tr.Dump(&buf))

	want := "key=2, index=0, level=0 : \n" +
		"\tkey=2, index=0, level=1 : \n" +
		"\t\tword = ab -> NULL\n" +
		"key=4, index=2, level=0 : \n" +
		"\tkey=2, index=0, level=1 : \n" +
		"\t\tkey=2, index=0, level=2 : \n" +
		"\t\t\tword = sea -> reb -> NULL\n"
	assert.Equal(t, want, buf.String())

	assert.Equal(t, nodes, tr.Nodes())
	assert.Equal(t, words, tr.Len())
}

func BenchmarkTrie_Insert(b *testing.B) {
	words := []string{"keypad", "trie", "lookup", "sequence", "collision"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := New()
		for _, w := range words {
			_ = tr.Insert(w)
		}
	}
}

func BenchmarkTrie_Search(b *testing.B) {
	tr := New()
	for _, w := range []string{"keypad", "trie", "lookup", "sequence", "collision"} {
		_ = tr.Insert(w)
	}
	keys, _ := Encode("sequence")
	keys += "#"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Search(keys)
	}
}
