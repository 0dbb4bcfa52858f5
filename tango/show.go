package tango

import (
	"fmt"
	"strings"

	"github.com/mikenye/tangotree/llrb"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// ShowTango renders root in reference-tree (ascending key) order, which is
// always the in-order traversal of the physical structure regardless of
// how any one auxiliary's LLRB is currently key-balanced: one node per
// line, indented 3 spaces per reference depth, with REGULAR keys colored
// red and everything else left default.
func ShowTango(root *llrb.Node) string {
	var b strings.Builder
	showInOrder(&b, root)
	return b.String()
}

func showInOrder(b *strings.Builder, n *llrb.Node) {
	if llrb.IsDummy(n) {
		return
	}
	showInOrder(b, n.Left)
	writeLine(b, n)
	showInOrder(b, n.Right)
}

func writeLine(b *strings.Builder, n *llrb.Node) {
	b.WriteString(strings.Repeat(" ", 3*llrb.DepthOf(n)))
	regular := n.Type == llrb.Regular
	if regular {
		b.WriteString(ansiRed)
	}
	fmt.Fprintf(b, "(%d, d=%d)", n.Key, llrb.DepthOf(n))
	if regular {
		b.WriteString(ansiReset)
	}
	b.WriteString("\n")
}
