package llrb

// ExtractMin removes and returns the smallest key reachable from h without
// crossing an EXTERNAL boundary, alongside the new root of what remains.
// The returned node has both children set to the sentinel and is ready to
// be reused as the bridging node of a Join. boundary is whatever sat at
// the extracted node's own left child at the moment it was detached — the
// sentinel in the common case, but a real EXTERNAL subtree if the
// extracted node was itself the boundary of a deeper auxiliary; the caller
// owns reattaching it, since it belongs to a different auxiliary than the
// one being extracted from.
func ExtractMin(h *Node) (min, rest, boundary *Node, err error) {
	if IsDummy(h) {
		return nil, nil, nil, ErrEmptyTree
	}
	min, rest, boundary = extractMin(h)
	if !IsDummy(rest) {
		rest.Color = Black
	}
	return min, rest, boundary, nil
}

func extractMin(h *Node) (min, rest, boundary *Node) {
	if IsEmpty(h.Left) {
		boundary, r := detach(h)
		return h, r, boundary
	}
	if !IsRed(h.Left) && !IsRed(h.Left.Left) {
		h = moveRedLeft(h)
	}
	min, h.Left, boundary = extractMin(h.Left)
	return min, balance(h), boundary
}

// ExtractMax is the mirror of ExtractMin; boundary is the extracted node's
// original right child.
func ExtractMax(h *Node) (rest, max, boundary *Node, err error) {
	if IsDummy(h) {
		return nil, nil, nil, ErrEmptyTree
	}
	rest, max, boundary = extractMax(h)
	if !IsDummy(rest) {
		rest.Color = Black
	}
	return rest, max, boundary, nil
}

func extractMax(h *Node) (rest, max, boundary *Node) {
	if IsEmpty(h.Right) {
		l, boundary := detach(h)
		return l, h, boundary
	}
	if !IsRed(h.Right) && !IsRed(h.Right.Left) {
		h = moveRedRight(h)
	}
	h.Right, max, boundary = extractMax(h.Right)
	return balance(h), max, boundary
}

// Join merges t1, a bridging node x, and t2 into one balanced subtree, in
// time proportional to the difference between t1 and t2's heights. The
// caller must ensure every key in t1 is less than x.Key, every key in t2 is
// greater than x.Key, and that x is otherwise detached (both of its
// children are the sentinel, as ExtractMin/ExtractMax/Split hand it back).
func Join(t1, x, t2 *Node) *Node {
	h1, h2 := Height(t1), Height(t2)

	var root *Node
	switch {
	case h1 == h2:
		x.Left, x.Right = t1, t2
		x.Color = Red
		recompute(x)
		root = x
	case h1 > h2:
		root = joinRight(t1, x, t2)
	default:
		root = joinLeft(t1, x, t2)
	}
	root.Color = Black
	recompute(root)
	return root
}

// joinRight is used when t1 is taller than t2: it descends t1's right
// spine until it finds a subtree whose height matches t2's, grafts x there
// with t2 as its right child, and rebalances on the way back up.
func joinRight(t1, x, t2 *Node) *Node {
	if Height(t1) == Height(t2) {
		x.Left, x.Right = t1, t2
		x.Color = Red
		recompute(x)
		return x
	}
	t1.Right = joinRight(t1.Right, x, t2)
	return balance(t1)
}

// joinLeft is the mirror of joinRight, used when t2 is taller than t1.
func joinLeft(t1, x, t2 *Node) *Node {
	if Height(t1) == Height(t2) {
		x.Left, x.Right = t1, t2
		x.Color = Red
		recompute(x)
		return x
	}
	t2.Left = joinLeft(t1, x, t2.Left)
	return balance(t2)
}

// Split cuts the subtree rooted at h at key k, returning the keys smaller
// than k as l, the node holding k itself as x, and the keys larger than k
// as r. ErrKeyNotFound if k does not occur in h.
func Split(h *Node, k int) (l, x, r *Node, err error) {
	if IsDummy(h) {
		return nil, nil, nil, ErrKeyNotFound
	}
	switch {
	case k == h.Key:
		lc, rc := detach(h)
		return lc, h, rc, nil
	case k < h.Key:
		lc, rc := detach(h)
		ll, x, lr, err := Split(lc, k)
		if err != nil {
			return nil, nil, nil, err
		}
		return ll, x, Join(lr, h, rc), nil
	default:
		lc, rc := detach(h)
		rl, x, rr, err := Split(rc, k)
		if err != nil {
			return nil, nil, nil, err
		}
		return Join(lc, h, rl), x, rr, nil
	}
}
