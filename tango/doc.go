// Package tango builds and searches a tango tree: a forest of llrb
// auxiliary trees, one per preferred path of a conceptual perfectly
// balanced reference tree over {1..n}, stitched together through nodes
// marked EXTERNAL at the boundary between one preferred path and the
// next.
//
// What:
//
//   - Build constructs the reference tree and seeds every node's fixed
//     depth (builder.go).
//   - SearchTango walks the current preferred path and, each time it runs
//     off the end into an EXTERNAL node, splices that node's own preferred
//     path into the one being searched, repeating until the target key is
//     reachable without crossing an EXTERNAL boundary (tango.go).
//   - ShowTango renders the reference order of the tree with REGULAR keys
//     highlighted, independent of the physical key-balanced shape of any
//     one auxiliary (show.go).
//
// Why:
//
//   - Restricting every search to reorganize at most one preferred path
//     per off-path node crossed keeps each search O(log n) amortized, and
//     bounds the total work across a sequence of searches to
//     O(log log n)-competitive against the offline-optimal search tree.
//
// This package has no direct analogue in the teacher's own source; it is
// spec-original, built on the llrb package's split/join/extract/predecessor
// primitives.
package tango
