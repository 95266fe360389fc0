package wbtree

import (
	"cmp"
	"iter"
	"slices"
)

// FromSlice returns a set of elems ordered by <. The input is not modified
// and duplicates collapse.
func FromSlice[T cmp.Ordered](elems []T) Set[T] {
	return FromSliceFunc(lessOrdered[T], elems)
}

// FromSliceFunc sorts and deduplicates a copy of elems, then builds the
// tree in one pass. O(n log n).
func FromSliceFunc[T any](less LessFunc[T], elems []T) Set[T] {
	return fromOwnedUnsorted(less, slices.Clone(elems))
}

// FromSortedSlice builds in O(n) from elements already strictly ascending
// under <. Sortedness is not checked: out of order or duplicate input
// silently corrupts the set. Use FromSlice when in doubt.
func FromSortedSlice[T cmp.Ordered](sorted []T) Set[T] {
	return FromSortedSliceFunc(lessOrdered[T], sorted)
}

// FromSortedSliceFunc is FromSortedSlice under a caller ordering. sorted
// must be strictly ascending per less.
func FromSortedSliceFunc[T any](less LessFunc[T], sorted []T) Set[T] {
	return fromSorted(less, sorted)
}

// Collect drains seq into a set ordered by <.
func Collect[T cmp.Ordered](seq iter.Seq[T]) Set[T] {
	return CollectFunc(lessOrdered[T], seq)
}

func CollectFunc[T any](less LessFunc[T], seq iter.Seq[T]) Set[T] {
	return fromOwnedUnsorted(less, slices.Collect(seq))
}

// TryCollect builds a set from a fallible sequence. The first non-nil error
// abandons the build: whatever was gathered is discarded and the zero Set
// comes back with that error.
func TryCollect[T cmp.Ordered](seq iter.Seq2[T, error]) (Set[T], error) {
	return TryCollectFunc(lessOrdered[T], seq)
}

func TryCollectFunc[T any](less LessFunc[T], seq iter.Seq2[T, error]) (Set[T], error) {
	var elems []T
	for x, err := range seq {
		if err != nil {
			return Set[T]{}, err
		}
		elems = append(elems, x)
	}
	return fromOwnedUnsorted(less, elems), nil
}

// InsertSeq returns a set with every element of seq added, one insert at a
// time. Building a whole set from scratch is cheaper through Collect.
func (me Set[T]) InsertSeq(seq iter.Seq[T]) Set[T] {
	for x := range seq {
		me = me.Insert(x)
	}
	return me
}

// DeleteSeq returns a set with every element of seq removed.
func (me Set[T]) DeleteSeq(seq iter.Seq[T]) Set[T] {
	for x := range seq {
		me = me.Delete(x)
	}
	return me
}

// fromOwnedUnsorted may reorder elems in place.
func fromOwnedUnsorted[T any](less LessFunc[T], elems []T) Set[T] {
	slices.SortFunc(elems, cmpFromLess(less))
	elems = slices.CompactFunc(elems, func(a, b T) bool {
		return !less(a, b) && !less(b, a)
	})
	return fromSorted(less, elems)
}

func fromSorted[T any](less LessFunc[T], sorted []T) (ret Set[T]) {
	ret.less = less
	ret.root = fromSortedSlice(sorted)
	ret.len = ret.root.wt()
	return
}

func cmpFromLess[T any](less LessFunc[T]) func(l, r T) int {
	return func(l, r T) int {
		switch {
		case less(l, r):
			return -1
		case less(r, l):
			return 1
		default:
			return 0
		}
	}
}
