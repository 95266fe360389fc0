package wbtree

import (
	"fmt"
	"strings"
)

// String renders the contents as Set<...>, each branch as its left subtree,
// element, then right subtree inside parens, with empty subtrees omitted.
// The layout exposes tree shape, not just membership, which makes it handy
// in tests and debugging. Elements format with fmt's %v.
func (me Set[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Set<")
	me.root.render(&sb)
	sb.WriteByte('>')
	return sb.String()
}

func (me *node[T]) render(sb *strings.Builder) {
	if me == nil {
		return
	}
	sb.WriteByte('(')
	me.left.render(sb)
	fmt.Fprintf(sb, "%v", me.elem)
	me.right.render(sb)
	sb.WriteByte(')')
}
