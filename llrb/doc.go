// Package llrb implements a left-leaning red-black tree (Sedgewick's 2-3
// tree encoding) over int keys, augmented with the per-node bookkeeping a
// tango tree needs: a fixed reference-tree depth, a REGULAR/EXTERNAL/DUMMY
// marking, and size/height/min-depth/max-depth aggregates maintained on every
// mutation.
//
// What:
//
//   - Node: key, children, color, marking, and aggregates (node.go).
//   - Core mutators: Insert, Remove, RemoveMin, RemoveMax, rotations and
//     color flips (tree.go, rotate.go), in the usual LLRB style.
//   - Split/Join: an augmented tree can be cut at a key into two trees, or
//     two trees (plus a bridging key) can be rejoined, in time proportional
//     to the difference in their heights (splitjoin.go).
//   - Predecessor/Successor: depth-threshold queries used to find the
//     boundary keys of a region during a splice (depth.go).
//
// Why:
//
//   - A tango tree's auxiliary trees are exactly these augmented LLRBs, one
//     per preferred path, and the re-splice step is built entirely out of
//     Split, Join, ExtractMin and ExtractMax.
//
// Errors:
//
//   - ErrEmptyTree: an operation that requires a node was given an empty
//     subtree.
//   - ErrKeyNotFound: Split was asked to cut at a key the subtree does not
//     contain.
//   - ErrInvalidUniverse: the reference-tree builder was asked for a
//     non-positive universe size.
//
// Misuse that breaks a structural precondition (inserting a duplicate key,
// recomputing or detaching the sentinel) is a programmer error and panics
// rather than returning an error. Join does not verify its key-ordering
// precondition, and Check reports a corrupt aggregate as an error value.
package llrb
