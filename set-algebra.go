package wbtree

import "slices"

// The binary operations walk both trees through descending iterators,
// appending each emitted element to a scratch slice. One reversal at the
// end restores ascending order for the O(n) bulk build, so every operation
// here is linear in the combined sizes. Both operands must share an
// ordering; the result takes the receiver's less.

// Union returns a set holding the elements of both sets.
func (me Set[T]) Union(other Set[T]) Set[T] {
	a := descendIter[T]{cur: me.root}
	b := descendIter[T]{cur: other.root}
	out := make([]T, 0, me.len+other.len)
	av, aok := a.Next()
	bv, bok := b.Next()
	for aok && bok {
		switch {
		case me.less(bv, av):
			out = append(out, av)
			av, aok = a.Next()
		case me.less(av, bv):
			out = append(out, bv)
			bv, bok = b.Next()
		default:
			out = append(out, av)
			av, aok = a.Next()
			bv, bok = b.Next()
		}
	}
	for ; aok; av, aok = a.Next() {
		out = append(out, av)
	}
	for ; bok; bv, bok = b.Next() {
		out = append(out, bv)
	}
	slices.Reverse(out)
	return fromSorted(me.less, out)
}

// Intersect returns a set holding the elements present in both sets.
func (me Set[T]) Intersect(other Set[T]) Set[T] {
	a := descendIter[T]{cur: me.root}
	b := descendIter[T]{cur: other.root}
	out := make([]T, 0, min(me.len, other.len))
	av, aok := a.Next()
	bv, bok := b.Next()
	for aok && bok {
		switch {
		case me.less(bv, av):
			av, aok = a.Next()
		case me.less(av, bv):
			bv, bok = b.Next()
		default:
			out = append(out, av)
			av, aok = a.Next()
			bv, bok = b.Next()
		}
	}
	slices.Reverse(out)
	return fromSorted(me.less, out)
}

// Difference returns a set holding the receiver's elements that are not in
// other.
func (me Set[T]) Difference(other Set[T]) Set[T] {
	a := descendIter[T]{cur: me.root}
	b := descendIter[T]{cur: other.root}
	out := make([]T, 0, me.len)
	av, aok := a.Next()
	bv, bok := b.Next()
	for aok && bok {
		switch {
		case me.less(bv, av):
			out = append(out, av)
			av, aok = a.Next()
		case me.less(av, bv):
			bv, bok = b.Next()
		default:
			av, aok = a.Next()
			bv, bok = b.Next()
		}
	}
	for ; aok; av, aok = a.Next() {
		out = append(out, av)
	}
	slices.Reverse(out)
	return fromSorted(me.less, out)
}

// The predicates walk ascending and stop at the first element that settles
// the answer.

// Equal reports whether both sets hold exactly the same elements.
func (me Set[T]) Equal(other Set[T]) bool {
	if me.len != other.len {
		return false
	}
	a := ascendIter[T]{cur: me.root}
	b := ascendIter[T]{cur: other.root}
	av, aok := a.Next()
	bv, bok := b.Next()
	for aok && bok {
		if me.less(av, bv) || me.less(bv, av) {
			return false
		}
		av, aok = a.Next()
		bv, bok = b.Next()
	}
	return true
}

// SubsetOf reports whether every element of the set is in other.
func (me Set[T]) SubsetOf(other Set[T]) bool {
	if me.len > other.len {
		return false
	}
	a := ascendIter[T]{cur: me.root}
	b := ascendIter[T]{cur: other.root}
	av, aok := a.Next()
	bv, bok := b.Next()
	for aok {
		if !bok {
			return false
		}
		switch {
		case me.less(bv, av):
			bv, bok = b.Next()
		case me.less(av, bv):
			// other has moved past av without producing it.
			return false
		default:
			av, aok = a.Next()
			bv, bok = b.Next()
		}
	}
	return true
}

// Disjoint reports whether the sets share no elements.
func (me Set[T]) Disjoint(other Set[T]) bool {
	a := ascendIter[T]{cur: me.root}
	b := ascendIter[T]{cur: other.root}
	av, aok := a.Next()
	bv, bok := b.Next()
	for aok && bok {
		switch {
		case me.less(av, bv):
			av, aok = a.Next()
		case me.less(bv, av):
			bv, bok = b.Next()
		default:
			return false
		}
	}
	return true
}
