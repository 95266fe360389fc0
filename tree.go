package wbtree

// node is a subtree. nil is the empty tree. Nodes are never modified after
// creation: structural operations return new nodes and share the subtrees
// they didn't touch.
type node[T any] struct {
	left   *node[T]
	elem   T
	weight int
	right  *node[T]
}

// Cached element count of the subtree. nil-safe.
func (me *node[T]) wt() int {
	if me == nil {
		return 0
	}
	return me.weight
}

// mk assembles a branch, deriving the weight from the children rather than
// adjusting counts at mutation sites.
func mk[T any](left *node[T], elem T, right *node[T]) *node[T] {
	return &node[T]{
		left:   left,
		elem:   elem,
		weight: 1 + left.wt() + right.wt(),
		right:  right,
	}
}

// Lifts the right child over the receiver. The right child must not be nil.
func (me *node[T]) rotLeft() *node[T] {
	r := me.right
	return mk(mk(me.left, me.elem, r.left), r.elem, r.right)
}

func (me *node[T]) rotRight() *node[T] {
	l := me.left
	return mk(l.left, l.elem, mk(l.right, me.elem, me.right))
}

// Rotates left only when that shortens the total path length: the right
// grandchild that rises must outweigh the left subtree that sinks.
func (me *node[T]) maybeRotLeft() *node[T] {
	if me.right != nil && me.right.right.wt() > me.left.wt() {
		return me.rotLeft()
	}
	return me
}

func (me *node[T]) maybeRotRight() *node[T] {
	if me.left != nil && me.left.left.wt() > me.right.wt() {
		return me.rotRight()
	}
	return me
}

func (me *node[T]) get(x T, less LessFunc[T]) *node[T] {
	for me != nil {
		switch {
		case less(x, me.elem):
			me = me.left
		case less(me.elem, x):
			me = me.right
		default:
			return me
		}
	}
	return nil
}

func (me *node[T]) insert(x T, less LessFunc[T]) *node[T] {
	if me == nil {
		return &node[T]{elem: x, weight: 1}
	}
	switch {
	case less(x, me.elem):
		l := me.left.insert(x, less)
		if l == me.left {
			// x was already present below.
			return me
		}
		return mk(l, me.elem, me.right).maybeRotRight()
	case less(me.elem, x):
		r := me.right.insert(x, less)
		if r == me.right {
			return me
		}
		return mk(me.left, me.elem, r).maybeRotLeft()
	default:
		return me
	}
}

func (me *node[T]) delete(x T, less LessFunc[T]) *node[T] {
	if me == nil {
		return nil
	}
	switch {
	case less(x, me.elem):
		l := me.left.delete(x, less)
		if l == me.left {
			return me
		}
		return mk(l, me.elem, me.right).maybeRotLeft()
	case less(me.elem, x):
		r := me.right.delete(x, less)
		if r == me.right {
			return me
		}
		return mk(me.left, me.elem, r).maybeRotRight()
	}
	if me.left == nil {
		return me.right
	}
	if me.right == nil {
		return me.left
	}
	// Promote the replacement from the heavier side.
	if me.left.wt() > me.right.wt() {
		pivot := me.left.max()
		return mk(me.left.delete(pivot, less), pivot, me.right)
	}
	pivot := me.right.min()
	return mk(me.left, pivot, me.right.delete(pivot, less))
}

// Leftmost element. The receiver must not be nil.
func (me *node[T]) min() T {
	for me.left != nil {
		me = me.left
	}
	return me.elem
}

func (me *node[T]) max() T {
	for me.right != nil {
		me = me.right
	}
	return me.elem
}

// fromSortedSlice builds a minimal-height tree from elements that are
// strictly ascending under the set's ordering. O(len(sorted)), no rotations.
// Element values are copied out of the slice.
func fromSortedSlice[T any](sorted []T) *node[T] {
	if len(sorted) == 0 {
		return nil
	}
	mid := (len(sorted) - 1) / 2
	return mk(fromSortedSlice(sorted[:mid]), sorted[mid], fromSortedSlice(sorted[mid+1:]))
}
