package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/lance6716/provinces/pkg/matrix"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExecuteExample(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	require.Equal(t, "1\n", out)
}

func TestExecuteFlags(t *testing.T) {
	out, err := execute(t, "-a", "dfs", "-m", "[[1,1,0],[1,1,0],[0,0,1]]")
	require.NoError(t, err)
	require.Equal(t, "2\n", out)

	out, err = execute(t, "--algorithm", "union-find", "--matrix", "[[1,0],[0,1]]", "--verify", "--components")
	require.NoError(t, err)
	require.Equal(t, "2\nprovince 1 (1 node)\n└─0\nprovince 2 (1 node)\n└─1\n", out)

	_, err = execute(t, "-m", "[[1,0],[1,1]]")
	require.True(t, matrix.ErrAsymmetric.Equal(err), "err: %v", err)

	_, err = execute(t, "--log-level", "loud")
	require.ErrorContains(t, err, "invalid log level")

	_, err = execute(t, "extra")
	require.Error(t, err)
}

func TestExecuteSourceTable(t *testing.T) {
	out, err := execute(t, "--source-table", "graph.edges", "--source-host", "127.0.0.1", "--source-port", "1")
	require.ErrorContains(t, err, "SELECT src, dst FROM `graph`.`edges`")
	require.Empty(t, out)

	_, err = execute(t, "--source-table", "edges")
	require.ErrorContains(t, err, "database of table edges is not specified")
}
