package wbtree

import (
	"iter"
	"slices"
)

// Iterator is a pull traversal over a Set. Implementations are plain state
// machines over the tree: no goroutines, and all traversal work happens
// inside Next. An Iterator is single-use: it belongs to whoever is calling
// Next, and once it reports ok false it stays exhausted.
type Iterator[T any] interface {
	Next() (value T, ok bool)
}

// Ascending returns an Iterator over the elements in ascending order.
// Memory is O(tree height).
func (me Set[T]) Ascending() Iterator[T] {
	return &ascendIter[T]{cur: me.root}
}

// Descending returns an Iterator over the elements in descending order.
func (me Set[T]) Descending() Iterator[T] {
	return &descendIter[T]{cur: me.root}
}

// LevelOrder returns an Iterator that visits elements a tree level at a
// time, top down and left to right within a level. Memory is O(widest
// level).
func (me Set[T]) LevelOrder() Iterator[T] {
	var ret levelIter[T]
	if me.root != nil {
		ret.front = append(ret.front, me.root)
	}
	return &ret
}

// All returns the ascending order as a range-over-func sequence.
func (me Set[T]) All() iter.Seq[T] {
	return seqFromIterator(me.Ascending())
}

// Backward returns the descending order as a range-over-func sequence.
func (me Set[T]) Backward() iter.Seq[T] {
	return seqFromIterator(me.Descending())
}

// ascendIter descends left from cur pushing deferred work, then emits on
// the way back up. Each frame holds an element due for emission and the
// subtree to walk after it.
type ascendIter[T any] struct {
	cur   *node[T]
	stack []ascendFrame[T]
}

type ascendFrame[T any] struct {
	elem  T
	right *node[T]
}

func (me *ascendIter[T]) Next() (_ T, _ bool) {
	for me.cur != nil {
		me.stack = append(me.stack, ascendFrame[T]{me.cur.elem, me.cur.right})
		me.cur = me.cur.left
	}
	if len(me.stack) == 0 {
		return
	}
	f := me.stack[len(me.stack)-1]
	me.stack = me.stack[:len(me.stack)-1]
	me.cur = f.right
	return f.elem, true
}

// descendIter mirrors ascendIter.
type descendIter[T any] struct {
	cur   *node[T]
	stack []descendFrame[T]
}

type descendFrame[T any] struct {
	left *node[T]
	elem T
}

func (me *descendIter[T]) Next() (_ T, _ bool) {
	for me.cur != nil {
		me.stack = append(me.stack, descendFrame[T]{me.cur.left, me.cur.elem})
		me.cur = me.cur.right
	}
	if len(me.stack) == 0 {
		return
	}
	f := me.stack[len(me.stack)-1]
	me.stack = me.stack[:len(me.stack)-1]
	me.cur = f.left
	return f.elem, true
}

// levelIter holds a pair of work queues of subtrees. front is drained from
// its end, back accumulates discovered children in visit order; when front
// empties, back is reversed and becomes the new front, preserving first-in
// first-out order overall.
type levelIter[T any] struct {
	front []*node[T]
	back  []*node[T]
}

func (me *levelIter[T]) Next() (_ T, _ bool) {
	if len(me.front) == 0 {
		if len(me.back) == 0 {
			return
		}
		slices.Reverse(me.back)
		me.front, me.back = me.back, me.front[:0]
	}
	n := me.front[len(me.front)-1]
	me.front = me.front[:len(me.front)-1]
	if n.left != nil {
		me.back = append(me.back, n.left)
	}
	if n.right != nil {
		me.back = append(me.back, n.right)
	}
	return n.elem, true
}

func seqFromIterator[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x, ok := it.Next(); ok; x, ok = it.Next() {
			if !yield(x) {
				return
			}
		}
	}
}
