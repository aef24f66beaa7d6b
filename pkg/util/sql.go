package util

import (
	"database/sql"
	"net"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/go-sql-driver/mysql"
	"github.com/pingcap/errors"
	"github.com/pingcap/tidb/pkg/parser"
	_ "github.com/pingcap/tidb/pkg/types/parser_driver"
)

// EscapeIdentifier escapes an MySQL identifier.
func EscapeIdentifier(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

// ConnectDB connects to a MySQL database.
func ConnectDB(
	host string,
	port int,
	user string,
	password string,
) (*sql.DB, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = password
	cfg.Addr = addr
	cfg.AllowNativePasswords = true
	cfg.ParseTime = true
	cfg.MaxAllowedPacket = -1

	c, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, errors.Annotatef(err, "connect to %s as %s", addr, user)
	}
	return sql.OpenDB(c), nil
}

var ParserPool = sync.Pool{
	New: func() any {
		return parser.New()
	},
}

// ReadStrRowsByColumnName reads given columns from sql.Rows. If not all columns
// are found, allFound will be false, given sql.Rows will not be read. Caller
// need to close rows after it returns.
func ReadStrRowsByColumnName(
	rows *sql.Rows,
	columnNames []string,
) (fields [][]string, allFound bool, err error) {
	columnNameToIndex := make(map[string]int, len(columnNames))
	for i, name := range columnNames {
		columnNameToIndex[name] = i
	}

	columns, err := rows.Columns()
	if err != nil {
		return nil, false, errors.Annotatef(err, "failed to get columns (%v)", columnNames)
	}
	found := 0
	dest := make([]any, len(columns))
	oneRow := make([]string, len(columnNames))
	for i := range dest {
		if idx, ok := columnNameToIndex[columns[i]]; ok {
			dest[i] = &oneRow[idx]
			found++
		} else {
			dest[i] = new(any)
		}
	}

	if found != len(columnNames) {
		return nil, false, nil
	}

	fields = make([][]string, 0, 8)
	for rows.Next() {
		err = rows.Scan(dest...)
		if err != nil {
			return nil, false, errors.Annotatef(err, "failed to scan row to get columns (%v)", columnNames)
		}
		fields = append(fields, slices.Clone(oneRow))
	}
	if err = rows.Err(); err != nil {
		return nil, false, errors.Annotatef(err, "failed to get rows (%v)", columnNames)
	}
	return fields, true, nil
}

// ParseTableName parses a possibly quoted "db.table" name by the SQL parser.
// When the database part is missing, defaultDB is used. It returns an error if
// the name can't be parsed or no database is known.
func ParseTableName(name, defaultDB string) (dbName, table string, err error) {
	p := ParserPool.Get().(*parser.Parser)
	stmt, err := p.ParseOneStmt("SELECT * FROM "+name, "", "")
	ParserPool.Put(p)
	if err != nil {
		return "", "", errors.Annotatef(err, "parse table name %s", name)
	}
	tableNames := ExtractTableNames(stmt, defaultDB)
	if len(tableNames) != 1 {
		return "", "", errors.Errorf("expect exactly one table name, got %d from %s", len(tableNames), name)
	}
	if tableNames[0][0] == "" {
		return "", "", errors.Errorf("database of table %s is not specified", name)
	}
	return tableNames[0][0], tableNames[0][1], nil
}
