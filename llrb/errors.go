package llrb

import "errors"

var (
	// ErrEmptyTree indicates an operation that requires at least one node
	// (Min, Max, RemoveMin, RemoveMax, ExtractMin, ExtractMax) was called on
	// an empty subtree.
	ErrEmptyTree = errors.New("llrb: empty tree")

	// ErrKeyNotFound indicates Split was asked to cut at a key that does not
	// occur in the subtree.
	ErrKeyNotFound = errors.New("llrb: key not found")

	// ErrInvalidUniverse indicates a reference-tree universe size of zero or
	// less was requested.
	ErrInvalidUniverse = errors.New("llrb: universe size must be positive")
)
