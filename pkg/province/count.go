package province

import "github.com/lance6716/provinces/pkg/matrix"

// The counters below trust their input: m must be square and symmetric with a
// true diagonal. Use Count to validate first.

// CountUnionFind counts connected components by unioning every connected pair
// into a DisjointSet.
func CountUnionFind(m matrix.Matrix) int {
	return unionAll(m).Count()
}

func unionAll(m matrix.Matrix) *DisjointSet {
	n := len(m)
	d := NewDisjointSet(n)
	for i := 0; i < n; i++ {
		// the matrix is symmetric, only the upper triangle is needed
		for j := i + 1; j < n; j++ {
			if m[i][j] {
				d.Union(i, j)
			}
		}
	}
	return d
}

// CountDFS counts connected components with a depth-first traversal from
// every unvisited node.
func CountDFS(m matrix.Matrix) int {
	w := &walker{
		m:       m,
		visited: make([]bool, len(m)),
		stack:   make([]int, 0, len(m)),
	}
	count := 0
	for i := range m {
		if !w.visited[i] {
			count++
			w.walk(i)
		}
	}
	return count
}

// walker holds the state of a depth-first traversal. It uses an explicit
// stack so the traversal depth is not limited by the goroutine stack. A node
// is marked when pushed, so the stack never holds more than len(m) nodes.
type walker struct {
	m       matrix.Matrix
	visited []bool
	stack   []int
}

func (w *walker) walk(seed int) {
	w.visited[seed] = true
	w.stack = append(w.stack[:0], seed)
	for len(w.stack) > 0 {
		curr := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		for other, connected := range w.m[curr] {
			if connected && !w.visited[other] {
				w.visited[other] = true
				w.stack = append(w.stack, other)
			}
		}
	}
}

// CountBFS counts connected components with a level-by-level breadth-first
// traversal from every unvisited node.
func CountBFS(m matrix.Matrix) int {
	count, _ := countBFS(m)
	return count
}

// countBFS also returns how many frontier entries are processed. Nodes are
// marked when they are processed, not when they are queued, so a node shared
// by two members of one frontier is queued twice. Processing it again is a
// no-op for the count, and processed can exceed len(m).
func countBFS(m matrix.Matrix) (count, processed int) {
	visited := make([]bool, len(m))
	for i := range m {
		if visited[i] {
			continue
		}
		count++
		frontier := []int{i}
		for len(frontier) > 0 {
			var next []int
			for _, curr := range frontier {
				processed++
				visited[curr] = true
				for k, connected := range m[curr] {
					if connected && !visited[k] {
						next = append(next, k)
					}
				}
			}
			frontier = next
		}
	}
	return count, processed
}
