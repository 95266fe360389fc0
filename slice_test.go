package wbtree

import (
	"testing"

	qt "github.com/go-quicktest/qt"
	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	s := FromSortedSlice([]int{10, 20, 30, 40, 50, 60, 70})
	qt.Assert(t, qt.DeepEquals(s.Slice(0, 7), []int{10, 20, 30, 40, 50, 60, 70}))
	qt.Assert(t, qt.DeepEquals(s.Slice(2, 3), []int{30, 40, 50}))
	qt.Assert(t, qt.DeepEquals(s.Slice(5, 5), []int{60, 70}))
	qt.Assert(t, qt.DeepEquals(s.Slice(6, 1), []int{70}))
	qt.Assert(t, qt.HasLen(s.Slice(7, 3), 0))
	qt.Assert(t, qt.HasLen(s.Slice(100, 3), 0))
	qt.Assert(t, qt.HasLen(s.Slice(3, 0), 0))
	qt.Assert(t, qt.HasLen(New[int]().Slice(0, 5), 0))
}

func TestSliceMatchesIteration(t *testing.T) {
	s := randomSetForSlice(t)
	all := s.AppendTo(nil)
	for start := 0; start <= s.Len(); start += 7 {
		for _, n := range []int{0, 1, 3, 50, s.Len()} {
			want := all[min(start, len(all)):]
			want = want[:min(n, len(want))]
			got := s.Slice(start, n)
			if len(want) == 0 {
				qt.Assert(t, qt.HasLen(got, 0))
			} else {
				qt.Assert(t, qt.DeepEquals(got, want), qt.Commentf("start %v n %v", start, n))
			}
		}
	}
}

func randomSetForSlice(t *testing.T) Set[int] {
	t.Helper()
	elems := make([]int, 200)
	for i := range elems {
		elems[i] = i * 3
	}
	return FromSortedSlice(elems)
}

func TestSliceNegativeArgsPanic(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	assert.Panics(t, func() { s.Slice(-1, 2) })
	assert.Panics(t, func() { s.Slice(0, -2) })
}
