package province

import (
	"testing"

	"github.com/lance6716/provinces/pkg/matrix"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		input    string
		expected Algorithm
	}{
		{"union-find", UnionFind},
		{"UF", UnionFind},
		{"unionfind", UnionFind},
		{"dfs", DFS},
		{" BFS ", BFS},
	}
	for _, c := range cases {
		got, err := ParseAlgorithm(c.input)
		require.NoError(t, err, c.input)
		require.Equal(t, c.expected, got, c.input)
	}

	_, err := ParseAlgorithm("dijkstra")
	require.ErrorContains(t, err, `unknown algorithm "dijkstra"`)

	for _, a := range Algorithms() {
		got, err := ParseAlgorithm(a.String())
		require.NoError(t, err)
		require.Equal(t, a, got)
	}
	require.Equal(t, "unknown", Algorithm(42).String())
}

func TestCountValidates(t *testing.T) {
	for _, a := range Algorithms() {
		got, err := Count(a, matrix.Example())
		require.NoError(t, err)
		require.Equal(t, 1, got)

		_, err = Count(a, matrix.FromInts([][]int{{1, 1}, {0, 1}}))
		require.True(t, matrix.ErrAsymmetric.Equal(err), "err: %v", err)

		_, err = Count(a, matrix.FromInts([][]int{{1, 0}}))
		require.True(t, matrix.ErrNotSquare.Equal(err), "err: %v", err)
	}

	_, err := Count(Algorithm(-1), matrix.New(1))
	require.Error(t, err)
}

func TestCountAll(t *testing.T) {
	got, err := CountAll(matrix.FromInts([][]int{{1, 1, 0}, {1, 1, 0}, {0, 0, 1}}))
	require.NoError(t, err)
	require.Equal(t, map[Algorithm]int{UnionFind: 2, DFS: 2, BFS: 2}, got)

	_, err = CountAll(matrix.FromInts([][]int{{0}}))
	require.True(t, matrix.ErrNoSelfLoop.Equal(err), "err: %v", err)
}
