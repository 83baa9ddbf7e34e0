package trie

import (
	"bytes"
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringTrie(t *testing.T) {
	words := NewStringTrie()
	for _, word := range carWords {
		words.Insert(word)
	}

	assert.Equal(t, len(carWords), words.Len())
	assert.True(t, words.Contains("cargo"))
	assert.False(t, words.Contains("carg"))
	assert.True(t, words.HasPrefix("carg"))
	assert.Equal(t, carWords, words.StartingWith("car"))
	assert.Equal(t, []string{"care", "cared"}, words.StartingWith("care"))
	assert.Empty(t, words.StartingWith("cat"))

	longest, found := words.LongestPrefixOf("cardboard")
	assert.True(t, found)
	assert.Equal(t, "card", longest)

	assert.True(t, words.Remove("car"))
	assert.False(t, words.Contains("car"))
	assert.Equal(t, carWords[1:], words.All())
}

func TestStringTrieMultiByteRunes(t *testing.T) {
	words := NewStringTrie(WithOrder(cmp.Compare[byte]))
	words.Insert("héllo")
	words.Insert("hélium")
	words.Insert("hello")

	assert.Equal(t, []string{"hélium", "héllo"}, words.StartingWith("hé"))
	assert.Equal(t, []string{"hello", "hélium", "héllo"}, words.All(), "byte order sorts UTF-8 by code point")
	assert.False(t, words.Contains("h\xc3"), "a partial rune is not a member")
	assert.True(t, words.HasPrefix("h\xc3"))
}

// TestStringTrieInvalidUTF8 verifies that strings which are not valid UTF-8 are stored byte for byte
// and never confused with each other.
func TestStringTrieInvalidUTF8(t *testing.T) {
	words := NewStringTrie()
	assert.True(t, words.Insert("ab\xff"))

	assert.True(t, words.Contains("ab\xff"))
	assert.False(t, words.Contains("ab\xfe"))
	assert.False(t, words.Contains("ab\uFFFD"))
	assert.True(t, words.Insert("ab\xfe"), "a different invalid byte is a different string")

	assert.Equal(t, []string{"ab\xff", "ab\xfe"}, words.All())
	assert.Equal(t, []string{"ab\xff"}, words.StartingWith("ab\xff"))
	assert.Len(t, words.All()[0], 3)

	assert.True(t, words.Remove("ab\xff"))
	assert.False(t, words.Remove("ab\uFFFD"))
	assert.Equal(t, []string{"ab\xfe"}, words.All())

	var buf bytes.Buffer
	assert.NoError(t, words.Dump(&buf))
	assert.Equal(t, ".\n  a\n    b\n      \\xfe *\n", buf.String())
}

func TestStringTrieZeroValue(t *testing.T) {
	var words StringTrie
	assert.False(t, words.Contains("a"))
	assert.Empty(t, words.All())

	words.Insert("a")
	assert.True(t, words.Contains("a"))

	words.Clear()
	assert.Equal(t, 0, words.Len())
	assert.Equal(t, 1, words.NodeCount())
}

func TestStringTrieDump(t *testing.T) {
	words := NewStringTrie()
	words.Insert("car")
	words.Insert("cart")

	var buf bytes.Buffer
	assert.NoError(t, words.Dump(&buf))
	assert.Equal(t, ".\n  c\n    a\n      r *\n        t *\n", buf.String())
}
