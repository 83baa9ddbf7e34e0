package trie

import (
	"fmt"
	"slices"
)

const (
	rootIndex = 0
	noParent  = -1
)

// node is a record in the trie arena.
type node[E comparable] struct {
	key         E         // element on the edge from the parent, unset for the root
	parent      int       // index of the parent node, noParent for the root and for released slots
	children    map[E]int // element -> child index, the only owning link
	order       []E       // child keys in first-insertion order
	terminating bool      // the path from the root to this node is a stored sequence
}

func (n *node[E]) isLeaf() bool {
	return len(n.children) == 0
}

// ensureRoot allocates the root of a zero value Trie.
func (t *Trie[E]) ensureRoot() int {
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node[E]{parent: noParent})
	}
	return rootIndex
}

// allocate stores a new node record, reusing a released slot when there is one.
func (t *Trie[E]) allocate(key E, parent int) int {
	record := node[E]{key: key, parent: parent}
	if n := len(t.free); n > 0 {
		at := t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[at] = record
		return at
	}
	t.nodes = append(t.nodes, record)
	return len(t.nodes) - 1
}

// addChildIfNotExist returns the child of parent keyed by key, creating it if needed.
// It may grow the arena, so callers must not hold node pointers across the call.
func (t *Trie[E]) addChildIfNotExist(parent int, key E) int {
	if child, found := t.nodes[parent].children[key]; found {
		return child
	}

	child := t.allocate(key, parent)
	p := &t.nodes[parent]
	if p.children == nil {
		p.children = make(map[E]int)
	}
	p.children[key] = child
	p.order = append(p.order, key)

	if t.logger != nil {
		t.logger.Debug("trie node added", "index", child, "path", fmt.Sprint(t.path(child)))
	}
	return child
}

// walk follows seq from the root and returns the node it ends on.
func (t *Trie[E]) walk(seq []E) (int, bool) {
	if len(t.nodes) == 0 {
		return noParent, false
	}
	current := rootIndex
	for _, key := range seq {
		child, found := t.nodes[current].children[key]
		if !found {
			return noParent, false
		}
		current = child
	}
	return current, true
}

// detach disconnects the node at index from its parent and releases its slot.
// The node must be a leaf.
func (t *Trie[E]) detach(index int) {
	n := t.nodes[index]
	if n.parent == noParent {
		panic("[BUG] detach: you can not detach the root")
	}
	if !n.isLeaf() {
		panic("[BUG] detach: node still owns children")
	}

	if t.logger != nil {
		t.logger.Debug("trie node pruned", "index", index, "path", fmt.Sprint(t.path(index)))
	}

	p := &t.nodes[n.parent]
	delete(p.children, n.key)
	if at := slices.Index(p.order, n.key); at >= 0 {
		p.order = slices.Delete(p.order, at, at+1)
	}

	t.nodes[index] = node[E]{parent: noParent}
	t.free = append(t.free, index)
}

// forEachStepUp applies f to the node at index and each of its ancestors below the root,
// moving towards the root for as long as while holds. A nil while never stops the walk.
func (t *Trie[E]) forEachStepUp(index int, f func(int), while func(int) bool) {
	current := index
	for t.nodes[current].parent != noParent && (while == nil || while(current)) {
		parent := t.nodes[current].parent
		f(current)
		current = parent
	}
}

// prune removes the now useless chain of nodes ending at index.
func (t *Trie[E]) prune(index int) {
	t.forEachStepUp(index, t.detach, func(current int) bool {
		n := &t.nodes[current]
		return n.isLeaf() && !n.terminating
	})
}

// path returns the elements from the root to the node at index.
func (t *Trie[E]) path(index int) []E {
	var path []E
	t.forEachStepUp(index, func(current int) {
		path = append(path, t.nodes[current].key)
	}, nil)
	slices.Reverse(path)
	return path
}

// childKeys returns the child keys of a node in enumeration order.
// The result must not be modified when the trie has no custom order.
func (t *Trie[E]) childKeys(index int) []E {
	keys := t.nodes[index].order
	if t.order != nil && len(keys) > 1 {
		keys = slices.Clone(keys)
		slices.SortFunc(keys, t.order)
	}
	return keys
}
