/*
Package wbtree implements persistent ordered sets on weight-balanced binary
search trees.

Simple example:

	s := wbtree.FromSlice([]int{4, 2, 6})
	bigger := s.Insert(5)
	s.Contains(5) // false: s is unchanged
	for x := range bigger.All() {
		fmt.Println(x)
	}

Sets are immutable values. Insert, Delete and the algebra methods return new
sets that share structure with their inputs, so keeping old versions around
is cheap. Within one set every element relates to every other through a
single less function; operations combining two sets expect them to use the
same ordering.
*/
package wbtree
