package trie

import (
	"log/slog"
	"slices"
)

// Trie is a set of sequences of E stored as a prefix tree.
// The zero value is an empty Trie ready for use. A Trie must not be copied after first use.
type Trie[E comparable] struct {
	nodes  []node[E] // arena, the root lives at rootIndex
	free   []int     // released arena slots
	size   int       // number of stored sequences
	order  func(a, b E) int
	logger *slog.Logger
}

// New creates an empty Trie configured with opts.
func New[E comparable](opts ...Option[E]) *Trie[E] {
	t := &Trie[E]{}
	for _, opt := range opts {
		opt(t)
	}
	t.ensureRoot()
	return t
}

// Insert stores seq in the trie, creating the missing nodes along its path.
// The empty sequence is a valid member and marks the root.
// It reports whether seq was not already stored.
func (t *Trie[E]) Insert(seq []E) bool {
	current := t.ensureRoot()
	for _, key := range seq {
		current = t.addChildIfNotExist(current, key)
	}
	if t.nodes[current].terminating {
		return false
	}
	t.nodes[current].terminating = true
	t.size++
	return true
}

// Contains reports whether seq itself was inserted. A sequence that is only a prefix
// of stored sequences is not contained.
func (t *Trie[E]) Contains(seq []E) bool {
	index, found := t.walk(seq)
	return found && t.nodes[index].terminating
}

// Remove deletes seq from the trie and releases every node that no longer leads to a
// stored sequence. Removing a sequence that is not stored is a no-op.
// It reports whether seq was stored.
func (t *Trie[E]) Remove(seq []E) bool {
	index, found := t.walk(seq)
	if !found || !t.nodes[index].terminating {
		return false
	}
	t.nodes[index].terminating = false
	t.size--
	t.prune(index)
	return true
}

// HasPrefix reports whether at least one stored sequence starts with prefix.
func (t *Trie[E]) HasPrefix(prefix []E) bool {
	index, found := t.walk(prefix)
	if !found {
		return false
	}
	n := &t.nodes[index]
	return n.terminating || !n.isLeaf()
}

// LongestPrefixOf returns the longest stored sequence that is a prefix of seq,
// the way a routing table picks the most specific route.
func (t *Trie[E]) LongestPrefixOf(seq []E) ([]E, bool) {
	if len(t.nodes) == 0 {
		return nil, false
	}

	longest := -1
	current := rootIndex
	if t.nodes[current].terminating {
		longest = 0
	}
	for i, key := range seq {
		child, found := t.nodes[current].children[key]
		if !found {
			break
		}
		current = child
		if t.nodes[current].terminating {
			longest = i + 1
		}
	}

	if longest < 0 {
		return nil, false
	}
	return slices.Clone(seq[:longest]), true
}

// Len returns the number of stored sequences.
func (t *Trie[E]) Len() int {
	return t.size
}

// NodeCount returns the number of live nodes, the root included.
func (t *Trie[E]) NodeCount() int {
	if len(t.nodes) == 0 {
		return 1
	}
	return len(t.nodes) - len(t.free)
}

// Clear removes every stored sequence and releases the arena.
func (t *Trie[E]) Clear() {
	t.nodes = nil
	t.free = nil
	t.size = 0
	t.ensureRoot()
}
