package trie

import (
	"fmt"
	"io"
)

// StringTrie is a set of strings stored byte by byte, so any string, valid UTF-8 or not,
// round-trips unchanged. Prefixes of valid UTF-8 strings match the same way they would rune
// by rune, and byte order sorts valid UTF-8 the same as code point order.
// The zero value is an empty StringTrie ready for use.
type StringTrie struct {
	bytes Trie[byte]
}

// NewStringTrie returns an empty StringTrie configured with opts.
func NewStringTrie(opts ...Option[byte]) *StringTrie {
	st := &StringTrie{}
	for _, opt := range opts {
		opt(&st.bytes)
	}
	st.bytes.ensureRoot()
	return st
}

// Insert adds s and reports whether it was not already stored.
func (st *StringTrie) Insert(s string) bool {
	return st.bytes.Insert([]byte(s))
}

// Contains reports whether s itself was inserted.
func (st *StringTrie) Contains(s string) bool {
	return st.bytes.Contains([]byte(s))
}

// Remove deletes s and reports whether it was stored.
func (st *StringTrie) Remove(s string) bool {
	return st.bytes.Remove([]byte(s))
}

// HasPrefix reports whether some stored string starts with prefix.
func (st *StringTrie) HasPrefix(prefix string) bool {
	return st.bytes.HasPrefix([]byte(prefix))
}

// LongestPrefixOf returns the longest stored string that s starts with.
func (st *StringTrie) LongestPrefixOf(s string) (string, bool) {
	longest, found := st.bytes.LongestPrefixOf([]byte(s))
	return string(longest), found
}

// StartingWith returns every stored string that starts with prefix, in enumeration order.
func (st *StringTrie) StartingWith(prefix string) []string {
	start, found := st.bytes.walk([]byte(prefix))
	if !found {
		return nil
	}

	var results []string
	st.bytes.walkFrom(start, []byte(prefix), func(seq []byte) bool {
		results = append(results, string(seq))
		return true
	})
	return results
}

// All returns every stored string.
func (st *StringTrie) All() []string {
	return st.StartingWith("")
}

// Len returns the number of stored strings.
func (st *StringTrie) Len() int {
	return st.bytes.Len()
}

// NodeCount returns the number of live nodes, the root included.
func (st *StringTrie) NodeCount() int {
	return st.bytes.NodeCount()
}

// Clear removes every string.
func (st *StringTrie) Clear() {
	st.bytes.Clear()
}

// Dump writes the node tree with one byte per line. Bytes outside printable ASCII are
// written as \x escapes.
func (st *StringTrie) Dump(w io.Writer) error {
	return st.bytes.Dump(w, formatByte)
}

func formatByte(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return string(rune(b))
	}
	return fmt.Sprintf(`\x%02x`, b)
}
