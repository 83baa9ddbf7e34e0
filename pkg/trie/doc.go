// ## Overview
// Package trie implements a generic trie (prefix tree) over sequences of comparable elements.
// A Trie stores a set of sequences ([]E) and supports insertion, membership tests, removal
// with pruning of abandoned nodes, and enumeration of every stored sequence that starts with
// a given prefix.
//
// Nodes are kept in an arena (a slice of node records addressed by index). Each node keeps the
// index of its parent, which is only used to walk back up while pruning after a removal, and a
// map from element to child index, which is what keeps a node reachable.
//
// ## Example usage:
//
//	words := trie.New[rune]()
//	words.Insert([]rune("car"))
//	words.Insert([]rune("cart"))
//
//	fmt.Println(words.Contains([]rune("car")))  // Output: true
//	fmt.Println(words.Contains([]rune("ca")))   // Output: false
//
//	for _, match := range words.StartingWith([]rune("ca")) {
//	    fmt.Println(string(match)) // Output: car, cart
//	}
//
//	words.Remove([]rune("car"))
//	fmt.Println(words.Contains([]rune("cart"))) // Output: true
//
// StringTrie wraps a Trie[byte] for callers that work with Go strings.
//
// ## Ordering
//
// Enumeration is pre-order: a stored sequence comes before its longer extensions. Siblings are
// visited in the order their element was first inserted under that parent, unless the trie was
// created WithOrder, in which case siblings follow the supplied comparison.
//
// A Trie is not safe for concurrent use. Callers sharing one across goroutines must guard it
// with their own lock.
package trie
