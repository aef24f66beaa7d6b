package province

// DisjointSet is a union-find structure over node indices [0, n). It uses
// union by rank and path compression, and keeps the number of distinct roots.
type DisjointSet struct {
	parent []int
	// rank is only meaningful for roots.
	rank  []int
	count int
}

// NewDisjointSet creates a DisjointSet of n elements, each in its own set.
func NewDisjointSet(n int) *DisjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &DisjointSet{
		parent: parent,
		rank:   make([]int, n),
		count:  n,
	}
}

// Find returns the root of the set containing x.
func (d *DisjointSet) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// path compression when finding the root
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}
	return root
}

// Union merges the sets containing x and y. It returns false when they are
// already in the same set. When both roots have the same rank, y's root is
// attached under x's root.
func (d *DisjointSet) Union(x, y int) bool {
	rootX := d.Find(x)
	rootY := d.Find(y)
	if rootX == rootY {
		return false
	}

	switch {
	case d.rank[rootX] > d.rank[rootY]:
		d.parent[rootY] = rootX
	case d.rank[rootY] > d.rank[rootX]:
		d.parent[rootX] = rootY
	default:
		d.parent[rootY] = rootX
		d.rank[rootX]++
	}
	d.count--
	return true
}

// Connected reports whether x and y are in the same set.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Count returns the number of distinct sets.
func (d *DisjointSet) Count() int {
	return d.count
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}
