package trie

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var carWords = []string{"car", "card", "care", "cared", "cars", "carbs", "carapace", "cargo"}

func newRuneTrie(words []string, opts ...Option[rune]) *Trie[rune] {
	tr := New(opts...)
	for _, word := range words {
		tr.Insert([]rune(word))
	}
	return tr
}

func toStrings(seqs [][]rune) []string {
	words := []string{}
	for _, seq := range seqs {
		words = append(words, string(seq))
	}
	return words
}

func TestEnumerationCompleteness(t *testing.T) {
	words := newRuneTrie(append([]string{"cat", "dog"}, carWords...))

	assert.ElementsMatch(t, carWords, toStrings(words.StartingWith([]rune("car"))))
	assert.ElementsMatch(t, []string{"care", "cared"}, toStrings(words.StartingWith([]rune("care"))))
	assert.ElementsMatch(t, append([]string{"cat"}, carWords...), toStrings(words.StartingWith([]rune("ca"))))
	assert.Len(t, words.All(), len(carWords)+2)
}

// TestEnumerationOrder verifies the pre-order, first-insertion sibling order.
func TestEnumerationOrder(t *testing.T) {
	words := newRuneTrie(carWords)
	assert.Equal(t, carWords, toStrings(words.StartingWith([]rune("car"))))

	words = newRuneTrie([]string{"b", "a", "ab", "c"})
	assert.Equal(t, []string{"b", "a", "ab", "c"}, toStrings(words.All()))

	// a pruned and re-inserted key moves behind its siblings
	words.Remove([]rune("a"))
	words.Remove([]rune("ab"))
	words.Insert([]rune("a"))
	assert.Equal(t, []string{"b", "c", "a"}, toStrings(words.All()))
}

func TestEnumerationWithOrder(t *testing.T) {
	words := newRuneTrie(carWords, WithOrder(cmp.Compare[rune]))

	expected := []string{"car", "carapace", "carbs", "card", "care", "cared", "cargo", "cars"}
	assert.Equal(t, expected, toStrings(words.StartingWith([]rune("car"))))

	reversed := newRuneTrie(carWords, WithOrder(func(a, b rune) int {
		return cmp.Compare(b, a)
	}))
	expected = []string{"car", "cars", "cargo", "care", "cared", "card", "carbs", "carapace"}
	assert.Equal(t, expected, toStrings(reversed.StartingWith([]rune("car"))), "a member still comes before its extensions")
}

func TestNoSpuriousMatches(t *testing.T) {
	words := newRuneTrie(carWords)

	for _, prefix := range []string{"cat", "carz", "x", "cardigan", "cargoes"} {
		assert.Empty(t, words.StartingWith([]rune(prefix)), "prefix %q should not match", prefix)
	}
}

func TestEmptyTrieEnumeration(t *testing.T) {
	words := New[rune]()

	assert.Empty(t, words.StartingWith(nil))
	assert.Empty(t, words.StartingWith([]rune("")))
	assert.Empty(t, words.StartingWith([]rune("car")))
	assert.Empty(t, words.All())
	assert.False(t, words.Contains([]rune("")))
	assert.False(t, words.Contains([]rune("car")))
}

type word []rune

// TestCollectionsStartingWithKeepsSequenceType verifies the result uses the caller's sequence type.
func TestCollectionsStartingWithKeepsSequenceType(t *testing.T) {
	words := newRuneTrie(carWords)

	matches := CollectionsStartingWith(words, word("care"))
	require.Len(t, matches, 2)
	assert.IsType(t, word{}, matches[0])
	assert.Equal(t, word("care"), matches[0])
	assert.Equal(t, word("cared"), matches[1])

	assert.Nil(t, CollectionsStartingWith(words, word("boat")))
}

// TestResultsDoNotShareBuffers verifies that each branch result is its own copy.
func TestResultsDoNotShareBuffers(t *testing.T) {
	words := newRuneTrie(carWords)
	prefix := []rune("car")

	first := words.StartingWith(prefix)
	for _, match := range first {
		match[0] = 'X'
	}

	assert.Equal(t, "car", string(prefix), "the prefix argument must not be modified")
	assert.Equal(t, carWords, toStrings(words.StartingWith(prefix)))
	for _, match := range first {
		assert.Equal(t, 'X', match[0])
	}

	matches := words.StartingWith([]rune("care"))
	require.Len(t, matches, 2)
	_ = append(matches[0], 's')
	assert.Equal(t, "cared", string(matches[1]), "appending to one result must not touch another")
}

func TestWalk(t *testing.T) {
	words := newRuneTrie(carWords)

	visited := []string{}
	words.Walk(func(seq []rune) bool {
		visited = append(visited, string(seq))
		return len(visited) < 3
	})
	assert.Equal(t, carWords[:3], visited, "walk should stop when fn returns false")

	var zero Trie[rune]
	zero.Walk(func(seq []rune) bool {
		t.Fatal("empty trie should not call fn")
		return true
	})
}
