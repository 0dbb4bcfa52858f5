package tango

import (
	"fmt"

	"github.com/mikenye/tangotree/llrb"
)

// SpliceTrace is reported to an optional observer after every tango
// splice, so a caller such as cmd/tango can log it without this package
// importing a logging library of its own.
type SpliceTrace struct {
	Key      int
	Case     int // 1 (empty residue) or 2 (non-empty residue)
	BoundKey int // the node crossed into, before splicing
}

// SearchTango repeatedly searches h for k along the current preferred
// path, splicing in the auxiliary rooted at the first off-path node
// crossed, until k is reachable without crossing an EXTERNAL boundary from
// the returned root. trace, if non-nil, is called once per splice.
func SearchTango(h *llrb.Node, k int, trace func(SpliceTrace)) *llrb.Node {
	for {
		q, p := searchStep(h, k)
		if llrb.IsDummy(q) {
			panic(fmt.Sprintf("tango: key %d is not in this tree's universe", k))
		}
		if !llrb.IsExternal(q) {
			return h
		}
		if llrb.IsDummy(p) {
			panic("tango: the off-path node returned by search has no parent")
		}

		c := 1
		if llrb.MaxDepth(h) >= llrb.MinDepth(q) {
			c = 2
		}
		if trace != nil {
			trace(SpliceTrace{Key: k, Case: c, BoundKey: q.Key})
		}
		h = tangoSplice(h, q, p)
	}
}

// searchStep performs the restricted BST search of §4.F: a plain
// descent that halts as soon as it reaches an EXTERNAL node (a detour
// into a different preferred path) or finds k among REGULAR nodes. Unlike
// llrb.Search, it never crosses into another auxiliary tree.
func searchStep(h *llrb.Node, k int) (q, p *llrb.Node) {
	p = llrb.Nil()
	cur := h
	for {
		if llrb.IsDummy(cur) || llrb.IsExternal(cur) {
			return cur, p
		}
		switch {
		case k == cur.Key:
			return cur, p
		case k < cur.Key:
			p, cur = cur, cur.Left
		default:
			p, cur = cur, cur.Right
		}
	}
}

// side identifies which of p's two children q occupies.
type side int

const (
	sideLeft side = iota
	sideRight
)

func sideOf(p, q *llrb.Node) side {
	switch q {
	case p.Left:
		return sideLeft
	case p.Right:
		return sideRight
	default:
		panic("tango: q is not a child of p")
	}
}

// tangoSplice re-splices q's auxiliary into h's preferred path at q's
// parent p, returning the new root. This is the tango(h, q, p) primitive
// of §4.F.1.
func tangoSplice(h, q, p *llrb.Node) *llrb.Node {
	if llrb.MaxDepth(h) < llrb.MinDepth(q) {
		return spliceEmptyResidue(h, q, p)
	}
	return spliceNonEmptyResidue(h, q, p)
}

// spliceEmptyResidue handles the case where nothing of the old preferred
// path lies deeper than p: h.maxDepth < q.minDepth, so q's whole auxiliary
// is absorbed, and the extracted node's own EXTERNAL child (if any) is
// reattached beneath p.
func spliceEmptyResidue(h, q, p *llrb.Node) *llrb.Node {
	s := sideOf(p, q)

	var anchor, qRest *llrb.Node
	switch s {
	case sideLeft:
		m, rest, boundary, err := llrb.ExtractMin(q)
		if err != nil {
			panic("tango: extract-min on the incoming preferred path: " + err.Error())
		}
		anchor, qRest = m, rest
		p.Left = boundary
	default:
		rest, m, boundary, err := llrb.ExtractMax(q)
		if err != nil {
			panic("tango: extract-max on the incoming preferred path: " + err.Error())
		}
		anchor, qRest = m, rest
		p.Right = boundary
	}
	promote(q, anchor)

	tl, y, tg, err := llrb.Split(h, p.Key)
	if err != nil {
		panic("tango: split at the splice point: " + err.Error())
	}

	var result *llrb.Node
	if s == sideLeft {
		taux := llrb.Join(qRest, y, tg)
		result = llrb.Join(tl, anchor, taux)
	} else {
		taux := llrb.Join(tl, y, qRest)
		result = llrb.Join(taux, anchor, tg)
	}
	return result
}

// spliceNonEmptyResidue handles the case where the old preferred path
// continues deeper than p: the reference-tree segment strictly between
// the predecessor and successor of q's depth threshold is carved out of h
// and marked EXTERNAL, and q's own preferred path is grafted in its place.
func spliceNonEmptyResidue(h, q, p *llrb.Node) *llrb.Node {
	s := sideOf(p, q)
	d := llrb.MinDepth(q)

	l, tmLeft := llrb.Predecessor(h, d)
	r, _ := llrb.Successor(h, d)

	var anchor, qRest, boundary *llrb.Node
	if tmLeft < q.Key {
		rest, m, b, err := llrb.ExtractMax(q)
		if err != nil {
			panic("tango: extract-max on the incoming preferred path: " + err.Error())
		}
		qRest, anchor, boundary = rest, m, b
	} else {
		m, rest, b, err := llrb.ExtractMin(q)
		if err != nil {
			panic("tango: extract-min on the incoming preferred path: " + err.Error())
		}
		anchor, qRest, boundary = m, rest, b
	}
	promote(q, anchor)

	if s == sideLeft {
		p.Left = boundary
	} else {
		p.Right = boundary
	}

	tl, xl, ta := llrb.Nil(), llrb.Nil(), h
	if l != llrb.NoKey {
		var err error
		tl, xl, ta, err = llrb.Split(h, l)
		if err != nil {
			panic("tango: split at the predecessor boundary: " + err.Error())
		}
	}

	tr, xr, tm := llrb.Nil(), llrb.Nil(), ta
	if r != llrb.NoKey {
		var err error
		tm, xr, tr, err = llrb.Split(ta, r)
		if err != nil {
			panic("tango: split at the successor boundary: " + err.Error())
		}
	}

	if !llrb.IsDummy(tm) {
		tm.Type = llrb.External
	}

	var result *llrb.Node
	if tm.Key < q.Key {
		tp := bridge(tl, xl, tm)
		tpp := bridge(tp, xr, qRest)
		result = llrb.Join(tpp, anchor, tr)
	} else {
		tp := bridge(tm, xr, tr)
		tpp := bridge(qRest, xl, tp)
		result = llrb.Join(tl, anchor, tpp)
	}
	return result
}

// bridge joins t1 and t2 through x, unless x is the empty boundary marker
// (the predecessor or successor did not exist), in which case there is
// nothing to bridge and whichever of t1/t2 is non-empty is returned as is.
func bridge(t1, x, t2 *llrb.Node) *llrb.Node {
	if llrb.IsDummy(x) {
		if !llrb.IsDummy(t1) {
			return t1
		}
		return t2
	}
	return llrb.Join(t1, x, t2)
}

// promote marks anchor REGULAR: it has just been absorbed into the new
// preferred path. If q survives the extraction as something other than
// the anchor itself, it too is being absorbed (its whole remaining
// auxiliary is folded into the splice), so it is promoted as well.
func promote(q, anchor *llrb.Node) {
	anchor.Type = llrb.Regular
	if q != anchor {
		q.Type = llrb.Regular
	}
}
