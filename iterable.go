package wbtree

import (
	"github.com/anacrolix/missinggo/v2/iter"
)

var _ iter.Iterable = Set[int]{}

// Iter feeds the elements to cb in ascending order, stopping early if cb
// returns false. It implements missinggo's iter.Iterable, so a Set (or its
// Iter method value) can be passed to that package's combinators.
func (me Set[T]) Iter(cb iter.Callback) {
	it := ascendIter[T]{cur: me.root}
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		if !cb(x) {
			return
		}
	}
}
