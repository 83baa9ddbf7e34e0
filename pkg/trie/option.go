package trie

import "log/slog"

// Option configures a Trie at construction.
type Option[E comparable] func(*Trie[E]) *Trie[E]

// WithOrder makes enumeration visit siblings in the order defined by cmp
// instead of insertion order. cmp follows the cmp.Compare convention.
func WithOrder[E comparable](cmp func(a, b E) int) Option[E] {
	return func(t *Trie[E]) *Trie[E] {
		t.order = cmp
		return t
	}
}

// WithLogger enables debug logging of node allocation and pruning.
func WithLogger[E comparable](logger *slog.Logger) Option[E] {
	return func(t *Trie[E]) *Trie[E] {
		t.logger = logger
		return t
	}
}
