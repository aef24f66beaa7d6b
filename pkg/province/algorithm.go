package province

import (
	"strings"

	"github.com/lance6716/provinces/pkg/matrix"
	"github.com/pingcap/errors"
)

// Algorithm selects one of the interchangeable counters.
type Algorithm int

const (
	UnionFind Algorithm = iota
	DFS
	BFS
)

var algorithmNames = [...]string{
	UnionFind: "union-find",
	DFS:       "dfs",
	BFS:       "bfs",
}

var counters = [...]func(matrix.Matrix) int{
	UnionFind: CountUnionFind,
	DFS:       CountDFS,
	BFS:       CountBFS,
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return "unknown"
	}
	return algorithmNames[a]
}

// Algorithms returns all algorithms in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{UnionFind, DFS, BFS}
}

// ParseAlgorithm parses the algorithm name, case-insensitively. "uf" is
// accepted as a short form of "union-find".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "union-find", "unionfind", "uf":
		return UnionFind, nil
	case "dfs":
		return DFS, nil
	case "bfs":
		return BFS, nil
	}
	return 0, errors.Errorf("unknown algorithm %q, want one of union-find, dfs, bfs", s)
}

// Count validates m and counts its connected components with the given
// algorithm.
func Count(a Algorithm, m matrix.Matrix) (int, error) {
	if a < 0 || int(a) >= len(counters) {
		return 0, errors.Errorf("unknown algorithm %d", int(a))
	}
	if err := matrix.Validate(m); err != nil {
		return 0, errors.Trace(err)
	}
	return counters[a](m), nil
}

// CountAll validates m, runs every algorithm and checks that they agree.
func CountAll(m matrix.Matrix) (map[Algorithm]int, error) {
	if err := matrix.Validate(m); err != nil {
		return nil, errors.Trace(err)
	}
	ret := make(map[Algorithm]int, len(counters))
	for _, a := range Algorithms() {
		ret[a] = counters[a](m)
	}
	for _, a := range Algorithms() {
		if ret[a] != ret[UnionFind] {
			return ret, errors.Errorf("algorithms disagree: %v", ret)
		}
	}
	return ret, nil
}
