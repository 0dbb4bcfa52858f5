package llrb

// Insert adds key to the subtree rooted at h, creating a fresh REGULAR node
// at depth 0, and returns the new root. If key is already present, Insert
// panics: the tango universe is fixed once built, so a duplicate insert is
// treated as a caller error. Tree.Insert, and with it the rbtreeshell's
// insert command, passes keys through unchecked and panics the same way.
func Insert(h *Node, key int) *Node {
	h = insert(h, key)
	h.Color = Black
	return h
}

func insert(h *Node, key int) *Node {
	if IsDummy(h) {
		return &Node{
			Key:      key,
			Left:     nilNode,
			Right:    nilNode,
			Color:    Red,
			Type:     Regular,
			Depth:    0,
			size:     1,
			height:   0,
			minDepth: 0,
			maxDepth: 0,
		}
	}

	switch {
	case key < h.Key:
		h.Left = insert(h.Left, key)
	case key > h.Key:
		h.Right = insert(h.Right, key)
	default:
		panic("llrb: Insert called with a key already present")
	}

	return balance(h)
}

// Contains reports whether key occurs in the subtree rooted at h.
func Contains(h *Node, key int) bool {
	node, _ := Search(h, key)
	return !IsDummy(node)
}

// Search walks h for key and returns the matching node and its parent
// (the sentinel for both if h is the root and matches, or if key is
// absent). Descent never stops early at an EXTERNAL boundary: Search
// answers "is key anywhere in this physical subtree", not "is key on this
// auxiliary's own preferred path" — that question belongs to package
// tango.
func Search(h *Node, key int) (node, parent *Node) {
	parent = nilNode
	for !IsDummy(h) {
		switch {
		case key == h.Key:
			return h, parent
		case key < h.Key:
			parent, h = h, h.Left
		default:
			parent, h = h, h.Right
		}
	}
	return nilNode, parent
}

// Min returns the node with the smallest key reachable from h without
// crossing an EXTERNAL boundary. ErrEmptyTree if h is the sentinel.
func Min(h *Node) (*Node, error) {
	if IsDummy(h) {
		return nil, ErrEmptyTree
	}
	for !IsEmpty(h.Left) {
		h = h.Left
	}
	return h, nil
}

// Max is the mirror of Min.
func Max(h *Node) (*Node, error) {
	if IsDummy(h) {
		return nil, ErrEmptyTree
	}
	for !IsEmpty(h.Right) {
		h = h.Right
	}
	return h, nil
}

// RemoveMin deletes the smallest key from the subtree rooted at h and
// returns the new root. ErrEmptyTree if h is the sentinel.
func RemoveMin(h *Node) (*Node, error) {
	if IsDummy(h) {
		return nil, ErrEmptyTree
	}
	h = removeMin(h)
	if !IsDummy(h) {
		h.Color = Black
	}
	return h, nil
}

func removeMin(h *Node) *Node {
	if IsDummy(h.Left) {
		return h.Right
	}
	if !IsRed(h.Left) && !IsRed(h.Left.Left) {
		h = moveRedLeft(h)
	}
	h.Left = removeMin(h.Left)
	return balance(h)
}

// RemoveMax is the mirror of RemoveMin.
func RemoveMax(h *Node) (*Node, error) {
	if IsDummy(h) {
		return nil, ErrEmptyTree
	}
	h = removeMax(h)
	if !IsDummy(h) {
		h.Color = Black
	}
	return h, nil
}

func removeMax(h *Node) *Node {
	if IsRed(h.Left) {
		h = rotateRight(h)
	}
	if IsDummy(h.Right) {
		return h.Left
	}
	if !IsRed(h.Right) && !IsRed(h.Right.Left) {
		h = moveRedRight(h)
	}
	h.Right = removeMax(h.Right)
	return balance(h)
}

// Remove deletes key from the subtree rooted at h and returns the new root.
// Removing a key not present is a no-op.
func Remove(h *Node, key int) *Node {
	h = remove(h, key)
	if !IsDummy(h) {
		h.Color = Black
	}
	return h
}

func remove(h *Node, key int) *Node {
	if IsDummy(h) {
		return nilNode
	}
	if key < h.Key {
		if IsDummy(h.Left) {
			return h
		}
		if !IsRed(h.Left) && !IsRed(h.Left.Left) {
			h = moveRedLeft(h)
		}
		h.Left = remove(h.Left, key)
	} else {
		if IsRed(h.Left) {
			h = rotateRight(h)
		}
		if key == h.Key && IsDummy(h.Right) {
			return nilNode
		}
		if IsDummy(h.Right) {
			return h
		}
		if !IsRed(h.Right) && !IsRed(h.Right.Left) {
			h = moveRedRight(h)
		}
		if key == h.Key {
			succ, _ := Min(h.Right)
			h.Key = succ.Key
			h.Depth = succ.Depth
			h.Right = removeMin(h.Right)
		} else {
			h.Right = remove(h.Right, key)
		}
	}
	return balance(h)
}
