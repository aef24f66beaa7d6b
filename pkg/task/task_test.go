package task

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lance6716/provinces/pkg/matrix"
	"github.com/stretchr/testify/require"
)

func TestRunExample(t *testing.T) {
	var out bytes.Buffer
	ret, err := Run(context.Background(), &Config{}, &out)
	require.NoError(t, err)
	require.Equal(t, "1\n", out.String())
	require.Equal(t, &Result{
		Input:     "example",
		Algorithm: "bfs",
		Nodes:     4,
		Edges:     3,
		Provinces: 1,
	}, ret)
}

func TestRunInlineMatrix(t *testing.T) {
	for _, algo := range []string{"union-find", "dfs", "bfs"} {
		var out bytes.Buffer
		cfg := &Config{
			Algorithm:  algo,
			Matrix:     `[[1,1,0],[1,1,0],[0,0,1]]`,
			Components: true,
			Verify:     true,
		}
		ret, err := Run(context.Background(), cfg, &out)
		require.NoError(t, err, algo)
		require.Equal(t, "2\n"+
			"province 1 (2 nodes)\n"+
			"├─0\n"+
			"└─1\n"+
			"province 2 (1 node)\n"+
			"└─2\n", out.String())
		require.Equal(t, algo, ret.Algorithm)
		require.Equal(t, [][]int{{0, 1}, {2}}, ret.Components)
		require.Equal(t, map[string]int{"union-find": 2, "dfs": 2, "bfs": 2}, ret.Agreement)
	}
}

func TestRunMatrixFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "case.json")
	content := `{"isConnected": [[1,0,0],[0,1,0],[0,0,1]], "expected": 3}`
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))

	var out bytes.Buffer
	ret, err := Run(context.Background(), &Config{
		Algorithm:  "uf",
		MatrixFile: filename,
		MatrixPath: "isConnected",
	}, &out)
	require.NoError(t, err)
	require.Equal(t, "3\n", out.String())
	require.Equal(t, filename, ret.Input)
	require.Equal(t, "union-find", ret.Algorithm)

	_, err = Run(context.Background(), &Config{MatrixFile: filepath.Join(dir, "missing.json")}, &out)
	require.ErrorContains(t, err, "read matrix file")
}

func TestRunWorkDir(t *testing.T) {
	workDir := t.TempDir()
	var out bytes.Buffer
	_, err := Run(context.Background(), &Config{
		Matrix:  `[[1,0,0,1],[0,1,1,0],[0,1,1,1],[1,0,1,1]]`,
		Verify:  true,
		WorkDir: workDir,
	}, &out)
	require.NoError(t, err)
	require.Equal(t, "1\n", out.String())

	content, err := os.ReadFile(filepath.Join(workDir, "result.json"))
	require.NoError(t, err)
	var got Result
	require.NoError(t, json.Unmarshal(content, &got))
	require.Equal(t, 1, got.Provinces)
	require.Equal(t, [][]int{{0, 1, 2, 3}}, got.Components)
	require.Equal(t, 1, got.Agreement["dfs"])

	content, err = os.ReadFile(filepath.Join(workDir, "report.html"))
	require.NoError(t, err)
	require.Contains(t, string(content), "<pre>0, 1, 2, 3</pre>")
	require.Contains(t, string(content), "<td>union-find</td>")

	content, err = os.ReadFile(filepath.Join(workDir, "graph.dot"))
	require.NoError(t, err)
	require.Contains(t, string(content), "cluster_0")
	require.Contains(t, string(content), "2--3")
}

func TestRunInvalid(t *testing.T) {
	var out bytes.Buffer
	ctx := context.Background()

	_, err := Run(ctx, &Config{Matrix: `[[1,1],[0,1]]`}, &out)
	require.True(t, matrix.ErrAsymmetric.Equal(err), "err: %v", err)
	require.ErrorContains(t, err, "count provinces of inline matrix")

	_, err = Run(ctx, &Config{Matrix: `[[1,2],[2,1]]`}, &out)
	require.True(t, matrix.ErrInvalidCell.Equal(err), "err: %v", err)

	_, err = Run(ctx, &Config{Algorithm: "astar"}, &out)
	require.ErrorContains(t, err, "unknown algorithm")

	_, err = Run(ctx, &Config{Matrix: `[[1]]`, MatrixFile: "a.json"}, &out)
	require.ErrorContains(t, err, "only one of")

	_, err = Run(ctx, &Config{MatrixPath: "isConnected"}, &out)
	require.ErrorContains(t, err, "matrix path requires")

	_, err = Run(ctx, &Config{Source: Source{Table: "edges"}}, &out)
	require.ErrorContains(t, err, "database of table edges is not specified")

	require.Empty(t, out.String())
}

func TestRunSourceUnreachable(t *testing.T) {
	var out bytes.Buffer
	cfg := &Config{Source: Source{Table: "graph.edges", Host: "127.0.0.1", Port: 1}}
	_, err := Run(context.Background(), cfg, &out)
	// the table name is parsed, then the query fails to connect
	require.ErrorContains(t, err, "failed to execute query: SELECT src, dst FROM `graph`.`edges`")
	require.Empty(t, out.String())
}

func TestEnsureDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ensureDefaults()
	require.Equal(t, "bfs", cfg.Algorithm)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, 4000, cfg.Source.Port)
	require.Equal(t, "root", cfg.Source.User)

	cfg = &Config{Algorithm: "dfs", Source: Source{Port: 3306, User: "u"}}
	cfg.ensureDefaults()
	require.Equal(t, "dfs", cfg.Algorithm)
	require.Equal(t, 3306, cfg.Source.Port)
	require.Equal(t, "u", cfg.Source.User)
}
