package llrb

import "fmt"

// Check walks the subtree rooted at h and returns the first violated
// invariant it finds: out-of-order keys, a red right link, two consecutive
// red left links, an inconsistent black-height, or a cached aggregate
// (size, height, minDepth, maxDepth) that disagrees with what its children
// actually hold. A nil error means h is a well-formed LLRB subtree with
// up-to-date aggregates.
func Check(h *Node) error {
	if IsDummy(h) {
		return nil
	}
	if nilNode.Left != nilNode || nilNode.Right != nilNode || nilNode.Type != Dummy {
		return fmt.Errorf("llrb: sentinel has been mutated")
	}
	_, err := check(h, -depthPosInf, depthPosInf)
	return err
}

// check returns the black-height of h's subtree (for the caller to compare
// against its sibling) and the first error found beneath h. lo/hi bound the
// open key interval h's subtree must stay within.
func check(h *Node, lo, hi int) (blackHeight int, err error) {
	if IsDummy(h) {
		return -1, nil
	}
	if h.Key <= lo || h.Key >= hi {
		return 0, fmt.Errorf("llrb: key %d out of bounds (%d, %d)", h.Key, lo, hi)
	}
	if IsRed(h.Right) {
		return 0, fmt.Errorf("llrb: right-leaning red link at key %d", h.Key)
	}
	if IsRed(h) && IsRed(h.Left) {
		return 0, fmt.Errorf("llrb: two consecutive red left links at key %d", h.Key)
	}

	lbh, err := check(h.Left, lo, h.Key)
	if err != nil {
		return 0, err
	}
	rbh, err := check(h.Right, h.Key, hi)
	if err != nil {
		return 0, err
	}
	leftBH := lbh
	if !IsRed(h.Left) {
		leftBH++
	}
	rightBH := rbh
	if !IsRed(h.Right) {
		rightBH++
	}
	if leftBH != rightBH {
		return 0, fmt.Errorf("llrb: unequal black-height at key %d (%d vs %d)", h.Key, leftBH, rightBH)
	}

	wantSize := 1 + Size(h.Left) + Size(h.Right)
	if h.size != wantSize {
		return 0, fmt.Errorf("llrb: stale size at key %d: have %d, want %d", h.Key, h.size, wantSize)
	}
	wantMinDepth := min2(h.Depth, min2(childMinDepth(h.Left), childMinDepth(h.Right)))
	if h.minDepth != wantMinDepth {
		return 0, fmt.Errorf("llrb: stale minDepth at key %d: have %d, want %d", h.Key, h.minDepth, wantMinDepth)
	}
	wantMaxDepth := max2(h.Depth, max2(childMaxDepth(h.Left), childMaxDepth(h.Right)))
	if h.maxDepth != wantMaxDepth {
		return 0, fmt.Errorf("llrb: stale maxDepth at key %d: have %d, want %d", h.Key, h.maxDepth, wantMaxDepth)
	}
	if h.height != leftBH {
		return 0, fmt.Errorf("llrb: stale height at key %d: have %d, want %d", h.Key, h.height, leftBH)
	}
	return leftBH, nil
}
