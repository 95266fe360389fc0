package wbtree

import (
	"errors"
	"iter"
	"testing"

	qt "github.com/go-quicktest/qt"
)

func TestFromSliceDedupes(t *testing.T) {
	s := FromSlice([]int{3, 1, 3, 2, 1, 1})
	qt.Assert(t, qt.Equals(s.Len(), 3))
	qt.Assert(t, qt.DeepEquals(s.AppendTo(nil), []int{1, 2, 3}))
}

func TestFromSliceLeavesInputAlone(t *testing.T) {
	in := []int{3, 1, 2}
	FromSlice(in)
	qt.Assert(t, qt.DeepEquals(in, []int{3, 1, 2}))
}

func TestFromSliceFuncCollapsesEquivalent(t *testing.T) {
	// Under a coarse ordering, distinct values can be the same element, and
	// only one representative survives.
	byLen := func(l, r string) bool { return len(l) < len(r) }
	s := FromSliceFunc(byLen, []string{"aa", "b", "cc", "ddd"})
	qt.Assert(t, qt.Equals(s.Len(), 3))
	qt.Assert(t, qt.IsTrue(s.Contains("xx")))
}

func TestFromSortedAgreesWithFromSlice(t *testing.T) {
	sorted := []int{1, 2, 3, 4, 5, 6, 7}
	qt.Assert(t, qt.IsTrue(FromSortedSlice(sorted).Equal(FromSlice(sorted))))
}

func TestCollect(t *testing.T) {
	s := Collect(FromSlice([]int{2, 4, 6}).Backward())
	qt.Assert(t, qt.DeepEquals(s.AppendTo(nil), []int{2, 4, 6}))
	qt.Assert(t, qt.IsTrue(Collect(New[int]().All()).IsEmpty()))
}

func failAfter(elems []int, err error) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for _, x := range elems {
			if !yield(x, nil) {
				return
			}
		}
		yield(0, err)
	}
}

func TestTryCollect(t *testing.T) {
	boom := errors.New("boom")

	s, err := TryCollect(failAfter([]int{5, 3, 1}, boom))
	qt.Assert(t, qt.ErrorIs(err, boom))
	// Nothing of the partial build survives.
	qt.Assert(t, qt.Equals(s.Len(), 0))
	qt.Assert(t, qt.IsNil(s.root))

	var seq iter.Seq2[int, error] = func(yield func(int, error) bool) {
		for _, x := range []int{5, 3, 1} {
			if !yield(x, nil) {
				return
			}
		}
	}
	s, err = TryCollect(seq)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(s.AppendTo(nil), []int{1, 3, 5}))
}

func TestTryCollectStopsAtFirstError(t *testing.T) {
	yielded := 0
	var seq iter.Seq2[int, error] = func(yield func(int, error) bool) {
		for i := 0; ; i++ {
			var err error
			if i == 3 {
				err = errors.New("broken pipe")
			}
			if !yield(i, err) {
				return
			}
			yielded++
		}
	}
	_, err := TryCollect(seq)
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(yielded, 3))
}

func TestInsertDeleteSeq(t *testing.T) {
	s := New[int]().InsertSeq(FromSlice([]int{1, 2, 3, 4}).All())
	s = s.DeleteSeq(FromSlice([]int{2, 4, 8}).All())
	qt.Assert(t, qt.DeepEquals(s.AppendTo(nil), []int{1, 3}))
}
