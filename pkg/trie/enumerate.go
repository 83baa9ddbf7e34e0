package trie

import "slices"

// CollectionsStartingWith returns every sequence stored in t that starts with prefix,
// the prefix itself included when it is stored. Results come in enumeration order and
// keep the caller's sequence type:
//
//	type Word []rune
//	matches := trie.CollectionsStartingWith(words, Word("car")) // []Word
//
// Each returned sequence is an independent copy.
func CollectionsStartingWith[S ~[]E, E comparable](t *Trie[E], prefix S) []S {
	start, found := t.walk(prefix)
	if !found {
		return nil
	}

	var results []S
	t.walkFrom(start, prefix, func(seq []E) bool {
		results = append(results, S(slices.Clone(seq)))
		return true
	})
	return results
}

// StartingWith is CollectionsStartingWith for plain []E sequences.
func (t *Trie[E]) StartingWith(prefix []E) [][]E {
	return CollectionsStartingWith(t, prefix)
}

// All returns every stored sequence in enumeration order.
func (t *Trie[E]) All() [][]E {
	return t.StartingWith(nil)
}

// Walk calls fn for each stored sequence in enumeration order until fn returns false.
// The slice passed to fn is reused between calls; clone it to keep it.
func (t *Trie[E]) Walk(fn func(seq []E) bool) {
	if len(t.nodes) == 0 {
		return
	}
	t.walkFrom(rootIndex, nil, fn)
}

// walkFrom does a pre-order traversal of the subtree at start with an explicit stack and a
// single buffer holding the current sequence. prefix is the path from the root to start.
func (t *Trie[E]) walkFrom(start int, prefix []E, fn func(seq []E) bool) {
	type frame struct {
		index int
		depth int // buffer length before this node's key is appended
	}

	buffer := make([]E, 0, len(prefix)+8)
	buffer = append(buffer, prefix...)
	stack := []frame{{index: start, depth: len(prefix)}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		buffer = buffer[:top.depth]
		if top.index != start {
			buffer = append(buffer, t.nodes[top.index].key)
		}

		if t.nodes[top.index].terminating && !fn(buffer[:len(buffer):len(buffer)]) {
			return
		}

		// push in reverse so the first child is visited first
		keys := t.childKeys(top.index)
		for i := len(keys) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				index: t.nodes[top.index].children[keys[i]],
				depth: len(buffer),
			})
		}
	}
}
