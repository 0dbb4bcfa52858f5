package llrb

import (
	"fmt"
	"strings"
)

// These connectors follow the usual directory-tree drawing convention.
const (
	connectorLeft     = " ╭── "
	connectorRight    = " ╰── "
	connectorVertical = " │   "
	connectorSpace    = "     "
)

// String renders the subtree rooted at h as an indented ASCII tree: the
// right child (greater keys) drawn above, the left child (lesser keys)
// below, so the drawing reads top-to-bottom as largest-to-smallest. Each
// node is annotated with its
// color, and with its Type when that Type is not REGULAR.
func String(h *Node) string {
	if IsDummy(h) {
		return "(empty)"
	}
	var b strings.Builder
	b.WriteString(nodeLabel(h))
	b.WriteString("\n")
	writeChildren(&b, h, "")
	return b.String()
}

// writeChildren writes n's right child (if any) above its left child (if
// any), each indented by prefix.
func writeChildren(b *strings.Builder, n *Node, prefix string) {
	hasRight := !IsDummy(n.Right)
	hasLeft := !IsDummy(n.Left)

	if hasRight {
		connector := connectorLeft
		if !hasLeft {
			connector = connectorRight
		}
		writeSubtree(b, n.Right, prefix, connector, hasLeft)
	}
	if hasLeft {
		writeSubtree(b, n.Left, prefix, connectorRight, false)
	}
}

// writeSubtree writes n at prefix+connector, then recurses into n's own
// children. continues reports whether a vertical bar should carry through
// at this depth because another child is still to be drawn below n.
func writeSubtree(b *strings.Builder, n *Node, prefix, connector string, continues bool) {
	b.WriteString(prefix)
	b.WriteString(connector)
	b.WriteString(nodeLabel(n))
	b.WriteString("\n")

	childPrefix := prefix + connectorSpace
	if continues {
		childPrefix = prefix + connectorVertical
	}
	writeChildren(b, n, childPrefix)
}

func nodeLabel(n *Node) string {
	if n.Type == Regular {
		return fmt.Sprintf("%d(%s)", n.Key, n.Color)
	}
	return fmt.Sprintf("%d(%s,%s)", n.Key, n.Color, n.Type)
}
