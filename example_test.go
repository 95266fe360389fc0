package wbtree_test

import (
	"fmt"

	"github.com/anacrolix/wbtree"
)

func Example() {
	s := wbtree.FromSlice([]int{4, 2, 6, 1, 3, 5, 7})
	fmt.Println(s.Len(), s.Contains(5), s.Contains(8))
	fmt.Println(s)
	// Output:
	// 7 true false
	// Set<(((1)2(3))4((5)6(7)))>
}

func Example_persistence() {
	before := wbtree.FromSlice([]string{"b", "d"})
	after := before.Insert("c").Delete("b")
	fmt.Println(before.AppendTo(nil))
	fmt.Println(after.AppendTo(nil))
	// Output:
	// [b d]
	// [c d]
}

func ExampleSet_Union() {
	evens := wbtree.FromSlice([]int{2, 4, 6})
	primes := wbtree.FromSlice([]int{2, 3, 5})
	fmt.Println(evens.Union(primes).AppendTo(nil))
	fmt.Println(evens.Intersect(primes).AppendTo(nil))
	fmt.Println(evens.Difference(primes).AppendTo(nil))
	// Output:
	// [2 3 4 5 6]
	// [2]
	// [4 6]
}

func ExampleSet_LevelOrder() {
	s := wbtree.FromSortedSlice([]int{1, 2, 3, 4, 5, 6, 7})
	it := s.LevelOrder()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		fmt.Print(x, " ")
	}
	// Output:
	// 4 2 6 1 3 5 7
}
