package llrb

// Tree is a thin, count-tracking handle around a root *Node. The free
// functions above (Insert, Split, Join, ...) are what package tango calls
// directly on bare roots inside a tango forest; Tree exists for callers
// such as the rbtreeshell command that want an ordinary, independently
// owned keyed collection.
type Tree struct {
	root *Node
	n    int
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{root: nilNode}
}

// Len reports the number of keys currently in t.
func (t *Tree) Len() int { return t.n }

// Root exposes the current root, for callers that need to operate on bare
// nodes.
func (t *Tree) Root() *Node { return t.root }

// Insert adds key to t.
func (t *Tree) Insert(key int) {
	t.root = Insert(t.root, key)
	t.n++
}

// Contains reports whether key is in t.
func (t *Tree) Contains(key int) bool {
	return Contains(t.root, key)
}

// Remove deletes key from t, if present.
func (t *Tree) Remove(key int) {
	if !t.Contains(key) {
		return
	}
	t.root = Remove(t.root, key)
	t.n--
}

// Check validates t's invariants.
func (t *Tree) Check() error {
	return Check(t.root)
}

// String renders t as an ASCII tree.
func (t *Tree) String() string {
	return String(t.root)
}

// Split cuts t at key into two fresh trees holding the keys smaller and
// larger than key respectively, and leaves t empty. ErrKeyNotFound if key
// is absent. The node holding key itself is discarded: the caller already
// knows its value.
func (t *Tree) Split(key int) (lo, hi *Tree, err error) {
	l, _, r, err := Split(t.root, key)
	if err != nil {
		return nil, nil, err
	}
	lo = &Tree{root: l, n: Size(l)}
	hi = &Tree{root: r, n: Size(r)}
	t.root, t.n = nilNode, 0
	return lo, hi, nil
}

// JoinTrees merges lo, a fresh bridging key mid, and hi into a single tree.
// Every key in lo must be less than mid and every key in hi must be greater;
// mid must not already occur in either. lo and hi are left empty.
func JoinTrees(lo *Tree, mid int, hi *Tree) *Tree {
	x := &Node{Key: mid, Left: nilNode, Right: nilNode, Color: Black, Type: Regular}
	root := Join(lo.root, x, hi.root)
	n := lo.n + hi.n + 1
	lo.root, lo.n = nilNode, 0
	hi.root, hi.n = nilNode, 0
	return &Tree{root: root, n: n}
}
