package wbtree

import (
	"cmp"

	g "github.com/anacrolix/generics"
)

// LessFunc is a strict ordering over elements: whether l sorts before r.
// Values for which neither argument order returns true are the same element
// as far as a Set is concerned.
type LessFunc[T any] func(l, r T) bool

// Set is an ordered set of T on a weight-balanced binary search tree. Sets
// are persistent values: methods that change contents return a new Set and
// leave the receiver intact, sharing unchanged subtrees between versions.
// Obtain one from New, NewFunc or the From and Collect builders. The zero
// Set has no ordering and is not usable.
type Set[T any] struct {
	less LessFunc[T]
	root *node[T]
	len  int
}

// New returns an empty Set ordered by <.
func New[T cmp.Ordered]() Set[T] {
	return NewFunc(lessOrdered[T])
}

// NewFunc returns an empty Set ordered by less, which must be a strict
// total order over the element values in use.
func NewFunc[T any](less LessFunc[T]) Set[T] {
	return Set[T]{less: less}
}

func lessOrdered[T cmp.Ordered](l, r T) bool { return l < r }

// Len returns the number of elements. O(1).
func (me Set[T]) Len() int { return me.len }

func (me Set[T]) IsEmpty() bool { return me.len == 0 }

// Contains reports whether x is an element. O(log n).
func (me Set[T]) Contains(x T) bool {
	return me.root.get(x, me.less) != nil
}

// Insert returns a set that also contains x. Inserting an element already
// present returns the receiver unchanged.
func (me Set[T]) Insert(x T) Set[T] {
	me.root = me.root.insert(x, me.less)
	me.len = me.root.wt()
	return me
}

// Delete returns a set without x. Deleting an absent element leaves the
// contents as they were.
func (me Set[T]) Delete(x T) Set[T] {
	me.root = me.root.delete(x, me.less)
	me.len = me.root.wt()
	return me
}

// Min returns the least element, or none if the set is empty.
func (me Set[T]) Min() (ret g.Option[T]) {
	if me.root != nil {
		ret.Set(me.root.min())
	}
	return
}

// Max returns the greatest element, or none if the set is empty.
func (me Set[T]) Max() (ret g.Option[T]) {
	if me.root != nil {
		ret.Set(me.root.max())
	}
	return
}

// AppendTo appends the elements to dst in ascending order and returns the
// extended slice.
func (me Set[T]) AppendTo(dst []T) []T {
	it := ascendIter[T]{cur: me.root}
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		dst = append(dst, x)
	}
	return dst
}
