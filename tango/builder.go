package tango

import "github.com/mikenye/tangotree/llrb"

// Build constructs the reference tree over the universe {1..n}: a
// perfectly balanced BST where every key's Depth is fixed by its position
// and every node starts out marked EXTERNAL, as the root of its own
// one-node auxiliary tree, except the overall root, which is REGULAR and
// seeds the top-level preferred path. n must be positive.
func Build(n int) (*llrb.Node, error) {
	if n <= 0 {
		return nil, llrb.ErrInvalidUniverse
	}
	root := build(1, n, 0)
	root.Type = llrb.Regular
	llrb.Recompute(root)
	return root, nil
}

// build recursively constructs the subtree over the closed key range
// [lo, hi], with d the depth of its root in the reference tree. Every node
// it creates is EXTERNAL; Build promotes the overall root afterward.
func build(lo, hi, d int) *llrb.Node {
	if lo > hi {
		return llrb.Nil()
	}
	mid := lo + (hi-lo+1)/2 // ceil((lo+hi)/2)
	left := build(lo, mid-1, d+1)
	right := build(mid+1, hi, d+1)
	node := &llrb.Node{
		Key:   mid,
		Left:  left,
		Right: right,
		Color: llrb.Black,
		Type:  llrb.External,
		Depth: d,
	}
	llrb.Recompute(node)
	return node
}
