package search

// visitedSet is the persistent set of cities already on the current path.
// With never modifies the receiver, so sibling branches can extend the same
// parent set concurrently.
type visitedSet struct {
	head *visitedNode
}

type visitedNode struct {
	city string
	next *visitedNode
}

// With returns a set holding every city of s plus city.
func (s visitedSet) With(city string) visitedSet {
	if s.Contains(city) {
		return s
	}
	return visitedSet{head: &visitedNode{city: city, next: s.head}}
}

// Contains reports whether city is in s.
func (s visitedSet) Contains(city string) bool {
	for n := s.head; n != nil; n = n.next {
		if n.city == city {
			return true
		}
	}
	return false
}

// Len returns the number of cities in s.
func (s visitedSet) Len() int {
	n := 0
	for node := s.head; node != nil; node = node.next {
		n++
	}
	return n
}
