package source

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/lance6716/provinces/pkg/matrix"
	"github.com/lance6716/provinces/pkg/util"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

const maxReadAttempts = 3

var retryInterval = 200 * time.Millisecond

// ReadMatrix reads undirected edges from the `src` and `dst` columns of
// dbName.table and builds an adjacency matrix of n nodes with a true diagonal.
// If n is 0, it is inferred as the largest node ID plus one. Node IDs out of
// [0, n) are rejected.
func ReadMatrix(
	ctx context.Context,
	db *sql.DB,
	dbName, table string,
	n int,
) (matrix.Matrix, error) {
	edges, err := readEdgesWithRetry(ctx, db, dbName, table)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if n == 0 {
		for _, e := range edges {
			n = max(n, e[0]+1, e[1]+1)
		}
	}
	m := matrix.New(n)
	for _, e := range edges {
		for _, id := range e {
			if id < 0 || id >= n {
				return nil, errors.Errorf(
					"node ID %d of edge (%d, %d) in %s.%s is out of range [0, %d)",
					id, e[0], e[1], dbName, table, n,
				)
			}
		}
		m.Connect(e[0], e[1])
	}
	util.Logger.Info("read matrix from database",
		zap.String("database", dbName),
		zap.String("table", table),
		zap.Int("nodes", n),
		zap.Int("edges", len(edges)))
	return m, nil
}

func readEdgesWithRetry(
	ctx context.Context,
	db *sql.DB,
	dbName, table string,
) ([][2]int, error) {
	var err error
	for i := 1; i <= maxReadAttempts; i++ {
		var edges [][2]int
		edges, err = ReadEdges(ctx, db, dbName, table)
		if err == nil {
			return edges, nil
		}
		if util.IsUnretryableError(err) || i == maxReadAttempts {
			break
		}
		util.Logger.Warn("read edges failed, will retry",
			zap.String("database", dbName),
			zap.String("table", table),
			zap.Int("attempt", i),
			zap.Error(err))
		select {
		case <-ctx.Done():
			return nil, errors.Trace(ctx.Err())
		case <-time.After(retryInterval):
		}
	}
	return nil, errors.Trace(err)
}

// ReadEdges reads all (src, dst) pairs of dbName.table. Errors that can't be
// fixed by retrying are wrapped by util.WrapUnretryableError.
func ReadEdges(
	ctx context.Context,
	db *sql.DB,
	dbName, table string,
) ([][2]int, error) {
	query := "SELECT src, dst FROM " + util.EscapeIdentifier(dbName) + "." + util.EscapeIdentifier(table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		if merr, ok := err.(*mysql.MySQLError); ok && util.IsSQLErrorUnretryable(merr) {
			err = util.WrapUnretryableError(err)
		}
		return nil, errors.Annotatef(err, "failed to execute query: %s", query)
	}
	defer rows.Close()

	fields, allFound, err := util.ReadStrRowsByColumnName(rows, []string{"src", "dst"})
	if err != nil {
		return nil, errors.Trace(err)
	}
	if !allFound {
		return nil, util.WrapUnretryableError(
			errors.Errorf("table %s.%s should have src and dst columns", dbName, table),
		)
	}

	edges := make([][2]int, 0, len(fields))
	for _, f := range fields {
		var e [2]int
		for i := range e {
			e[i], err = strconv.Atoi(f[i])
			if err != nil {
				return nil, util.WrapUnretryableError(
					errors.Annotatef(err, "invalid node ID %q in %s.%s", f[i], dbName, table),
				)
			}
		}
		edges = append(edges, e)
	}
	return edges, nil
}
