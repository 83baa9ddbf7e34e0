package trie

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented rendering of the node tree to w, one node per line.
// Stored sequences are marked with a trailing " *". format renders an element;
// when nil, fmt.Sprint is used.
//
//	.
//	  c
//	    a
//	      r *
//	        t *
func (t *Trie[E]) Dump(w io.Writer, format func(E) string) error {
	if format == nil {
		format = func(e E) string { return fmt.Sprint(e) }
	}
	if len(t.nodes) == 0 {
		_, err := fmt.Fprintln(w, ".")
		return err
	}
	return t.dump(w, rootIndex, 0, format)
}

func (t *Trie[E]) dump(w io.Writer, index int, depth int, format func(E) string) error {
	n := &t.nodes[index]

	label := "."
	if index != rootIndex {
		label = format(n.key)
	}
	if n.terminating {
		label += " *"
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), label); err != nil {
		return err
	}

	for _, key := range t.childKeys(index) {
		if err := t.dump(w, n.children[key], depth+1, format); err != nil {
			return err
		}
	}
	return nil
}
