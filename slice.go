package wbtree

import (
	"github.com/anacrolix/missinggo/v2/panicif"
)

// Slice returns up to n elements of the ascending order beginning at offset
// start. The cached subtree weights let the walk step over the skipped
// prefix without visiting it, so the cost is O(log len + n). Offsets at or
// past the end return an empty slice. Negative arguments panic.
func (me Set[T]) Slice(start, n int) []T {
	panicif.True(start < 0 || n < 0)
	out := make([]T, 0, min(n, max(me.len-start, 0)))
	me.root.appendRange(&out, &start, n)
	return out
}

// appendRange spends *skip against whole subtrees where possible, then
// collects elements in order until out reaches n.
func (me *node[T]) appendRange(out *[]T, skip *int, n int) {
	if me == nil || len(*out) == n {
		return
	}
	if lw := me.left.wt(); lw <= *skip {
		*skip -= lw
	} else {
		me.left.appendRange(out, skip, n)
	}
	if len(*out) == n {
		return
	}
	if *skip > 0 {
		*skip--
	} else {
		*out = append(*out, me.elem)
	}
	me.right.appendRange(out, skip, n)
}
