package llrb

// Predecessor finds, descending h left-first, the smallest key whose Depth
// is at least d — call it kTm — and the largest key in h that is strictly
// smaller than kTm, or NoKey if none qualifies. Descent is gated the same
// way the rest of this package gates structural descent: an EXTERNAL child
// is the root of a different auxiliary and stops the recursion exactly
// like the sentinel would (see childMaxDepth), so kPred/kTm are always
// drawn from h's own auxiliary tree. The caller must ensure
// childMaxDepth(h) >= d; Predecessor does not check this, and without it
// the descent leaves h's auxiliary tree and does not terminate once it
// reaches the sentinel.
func Predecessor(h *Node, d int) (kPred, kTm int) {
	if childMaxDepth(h.Left) >= d {
		return Predecessor(h.Left, d)
	}
	if DepthOf(h) >= d {
		kTm = h.Key
		kPred = NoKey
		if !IsEmpty(h.Left) {
			if m, err := Max(h.Left); err == nil {
				kPred = m.Key
			}
		}
		return kPred, kTm
	}
	kPred, kTm = Predecessor(h.Right, d)
	if kPred == NoKey {
		kPred = h.Key
	}
	return kPred, kTm
}

// Successor is the mirror of Predecessor, descending right-first: kTm is
// the largest key whose Depth is at least d.
func Successor(h *Node, d int) (kSucc, kTm int) {
	if childMaxDepth(h.Right) >= d {
		return Successor(h.Right, d)
	}
	if DepthOf(h) >= d {
		kTm = h.Key
		kSucc = NoKey
		if !IsEmpty(h.Right) {
			if m, err := Min(h.Right); err == nil {
				kSucc = m.Key
			}
		}
		return kSucc, kTm
	}
	kSucc, kTm = Successor(h.Left, d)
	if kSucc == NoKey {
		kSucc = h.Key
	}
	return kSucc, kTm
}
