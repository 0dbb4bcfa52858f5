package llrb

// rotateLeft takes a right-leaning red link at h and makes it lean left.
// h.Right must be red.
func rotateLeft(h *Node) *Node {
	x := h.Right
	h.Right = x.Left
	x.Left = h
	x.Color = h.Color
	h.Color = Red
	recompute(h)
	recompute(x)
	return x
}

// rotateRight takes a left-leaning red link at h.Left and makes it lean
// right. h.Left must be red.
func rotateRight(h *Node) *Node {
	x := h.Left
	h.Left = x.Right
	x.Right = h
	x.Color = h.Color
	h.Color = Red
	recompute(h)
	recompute(x)
	return x
}

// flipColors toggles the color of h and both of its children. Used both to
// split a temporary 4-node on the way down an insert, and to merge one back
// together on the way up a delete.
func flipColors(h *Node) {
	h.Color = !h.Color
	h.Left.Color = !h.Left.Color
	h.Right.Color = !h.Right.Color
	recompute(h)
}

// balance restores the LLRB invariants at h after a mutation to one of its
// children: a right-leaning red link is rotated left, a run of two
// left-leaning red links is rotated right, and a node with two red children
// has its colors flipped.
func balance(h *Node) *Node {
	if IsRed(h.Right) && !IsRed(h.Left) {
		h = rotateLeft(h)
	}
	if IsRed(h.Left) && IsRed(h.Left.Left) {
		h = rotateRight(h)
	}
	if IsRed(h.Left) && IsRed(h.Right) {
		flipColors(h)
	}
	recompute(h)
	return h
}

// moveRedLeft borrows a node from h.Right so that a delete can safely
// recurse into h.Left, which must currently have no red link of its own.
func moveRedLeft(h *Node) *Node {
	flipColors(h)
	if IsRed(h.Right.Left) {
		h.Right = rotateRight(h.Right)
		h = rotateLeft(h)
		flipColors(h)
	}
	return h
}

// moveRedRight is the mirror image of moveRedLeft, borrowing from h.Left so
// a delete can recurse into h.Right.
func moveRedRight(h *Node) *Node {
	flipColors(h)
	if IsRed(h.Left.Left) {
		h = rotateRight(h)
		flipColors(h)
	}
	return h
}
