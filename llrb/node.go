package llrb

import "math"

// Color is the color of the link from a node's parent to the node itself.
// Red links lean left, per the LLRB discipline: a node never has a red
// right link without also having a red left link below it.
type Color bool

const (
	Red   Color = false
	Black Color = true
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Type marks a node's role in the tango forest. A node is REGULAR while it
// sits on some auxiliary tree's preferred path, EXTERNAL while it is the
// (detached, as far as that auxiliary is concerned) root of a different
// preferred path hanging off it, and DUMMY only for the single shared
// sentinel.
type Type uint8

const (
	Regular Type = iota
	External
	Dummy
)

func (ty Type) String() string {
	switch ty {
	case Regular:
		return "REGULAR"
	case External:
		return "EXTERNAL"
	default:
		return "DUMMY"
	}
}

// depthNegInf and depthPosInf stand in for -infinity/+infinity in the
// min-depth/max-depth aggregates of an empty or type-excluded subtree.
const (
	depthNegInf = math.MinInt
	depthPosInf = math.MaxInt
)

// NoKey is returned by Predecessor and Successor when no qualifying key
// exists on the requested side.
const NoKey = -1

// Node is one vertex of the shared node graph underlying every auxiliary
// tree in a tango forest. Key and Depth are fixed for the node's lifetime
// once the reference tree is built; Left, Right, Color and Type change as
// nodes move between auxiliary trees.
type Node struct {
	Key   int
	Left  *Node
	Right *Node
	Color Color
	Type  Type

	// Depth is this key's fixed depth in the (conceptual, never
	// materialized) perfectly-balanced reference tree.
	Depth int

	size     int
	height   int
	minDepth int
	maxDepth int
}

// nilNode is the single process-wide sentinel shared by every tree in this
// package. It is allocated once and never mutated after init: both of its
// children point back to itself, so any traversal that reaches it can keep
// dereferencing Left/Right without a special case.
var nilNode = &Node{
	Type:     Dummy,
	Color:    Black,
	Depth:    depthNegInf,
	size:     0,
	height:   -1,
	minDepth: depthPosInf,
	maxDepth: depthNegInf,
}

func init() {
	nilNode.Left = nilNode
	nilNode.Right = nilNode
}

// Nil returns the shared sentinel. A freshly built reference tree's leaves
// use it for both children, and it is the canonical "no such node" value
// returned by lookups that fail.
func Nil() *Node { return nilNode }

// IsDummy reports whether n is the shared sentinel.
func IsDummy(n *Node) bool { return n == nilNode }

// IsExternal reports whether n is an EXTERNAL node: the root of a preferred
// path other than the one currently being examined.
func IsExternal(n *Node) bool { return n != nilNode && n.Type == External }

// IsEmpty reports whether n is a boundary for the auxiliary tree it sits in:
// either the true sentinel, or an EXTERNAL root belonging to some other
// preferred path. Structural descent within one auxiliary tree (Min, Max,
// ExtractMin, ExtractMax, Predecessor, Successor) stops at either; Insert,
// Search and the Remove family stop only at the sentinel.
func IsEmpty(n *Node) bool { return IsDummy(n) || IsExternal(n) }

// IsRed reports whether the link above n is red. The sentinel is black.
func IsRed(n *Node) bool {
	if IsDummy(n) {
		return false
	}
	return n.Color == Red
}

// Size returns the number of REGULAR and EXTERNAL descendants of n,
// including n itself; zero for the sentinel.
func Size(n *Node) int {
	if IsDummy(n) {
		return 0
	}
	return n.size
}

// Height returns n's black-height; -1 for the sentinel.
func Height(n *Node) int {
	if IsDummy(n) {
		return -1
	}
	return n.height
}

// DepthOf returns n's fixed reference-tree depth; -infinity for the
// sentinel. Named DepthOf (not Depth) to avoid colliding with the Node
// field of the same name.
func DepthOf(n *Node) int {
	if IsDummy(n) {
		return depthNegInf
	}
	return n.Depth
}

// MinDepth returns the smallest Depth reachable from n without crossing an
// EXTERNAL boundary, including n's own Depth regardless of n's own Type:
// n always belongs to its own auxiliary tree, whatever that auxiliary's
// boundary with its parent happens to be. +infinity for the sentinel.
func MinDepth(n *Node) int {
	if IsDummy(n) {
		return depthPosInf
	}
	return n.minDepth
}

// MaxDepth is the mirror of MinDepth. -infinity for the sentinel.
func MaxDepth(n *Node) int {
	if IsDummy(n) {
		return depthNegInf
	}
	return n.maxDepth
}

// childMinDepth/childMaxDepth are what recompute folds a child's aggregate
// through: an EXTERNAL child is the root of a different auxiliary tree, so
// its own minDepth/maxDepth must not leak into its parent's.
func childMinDepth(n *Node) int {
	if IsEmpty(n) {
		return depthPosInf
	}
	return n.minDepth
}

func childMaxDepth(n *Node) int {
	if IsEmpty(n) {
		return depthNegInf
	}
	return n.maxDepth
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// recompute refreshes n's size, height and depth aggregates from its
// immediate children. Every mutator that changes a child pointer or a
// child's color must call this on every node it touched, working from the
// leaves back up to the root.
func recompute(n *Node) {
	if IsDummy(n) {
		panic("llrb: recompute called on the sentinel")
	}
	n.size = 1 + Size(n.Left) + Size(n.Right)

	lh := Height(n.Left)
	if !IsRed(n.Left) {
		lh++
	}
	n.height = lh

	n.minDepth = min2(n.Depth, min2(childMinDepth(n.Left), childMinDepth(n.Right)))
	n.maxDepth = max2(n.Depth, max2(childMaxDepth(n.Left), childMaxDepth(n.Right)))
}

// Recompute refreshes n's cached size/height/minDepth/maxDepth from its
// current Left/Right/Depth. Exported for package tango's builder, which
// assembles reference-tree nodes with composite literals and exported
// fields rather than through Insert.
func Recompute(n *Node) { recompute(n) }

// detach severs n from both of its children, recolors it BLACK, recomputes
// its aggregates, and hands back the two children it used to own. n is left
// ready to be reused as the bridging node of a Join.
func detach(n *Node) (left, right *Node) {
	if IsDummy(n) {
		panic("llrb: detach called on the sentinel")
	}
	left, right = n.Left, n.Right
	n.Left, n.Right = nilNode, nilNode
	n.Color = Black
	recompute(n)
	return left, right
}
