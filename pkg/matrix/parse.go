package matrix

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseJSON parses a matrix from a JSON array of rows. Cells can be 0/1
// numbers or booleans. If path is not empty, it's a gjson path selecting the
// matrix inside a larger document, like "isConnected" or "cases.0.input".
//
// ParseJSON does not call Validate, a non-square result is returned as is.
func ParseJSON(data []byte, path string) (Matrix, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON.GenWithStackByArgs("malformed document")
	}

	root := gjson.ParseBytes(data)
	if path != "" {
		root = root.Get(path)
		if !root.Exists() {
			return nil, ErrInvalidJSON.GenWithStackByArgs(fmt.Sprintf("path %q not found", path))
		}
	}
	if !root.IsArray() {
		return nil, ErrInvalidJSON.GenWithStackByArgs("matrix should be an array of rows")
	}

	rows := root.Array()
	m := make(Matrix, len(rows))
	for i, row := range rows {
		if !row.IsArray() {
			return nil, ErrInvalidJSON.GenWithStackByArgs(fmt.Sprintf("row %d is not an array", i))
		}
		cells := row.Array()
		m[i] = make([]bool, len(cells))
		for j, cell := range cells {
			v, ok := parseCell(cell)
			if !ok {
				return nil, ErrInvalidCell.GenWithStackByArgs(i, j, cell.Raw)
			}
			m[i][j] = v
		}
	}
	return m, nil
}

func parseCell(cell gjson.Result) (value bool, ok bool) {
	switch cell.Type {
	case gjson.True:
		return true, true
	case gjson.False:
		return false, true
	case gjson.Number:
		switch cell.Num {
		case 0:
			return false, true
		case 1:
			return true, true
		}
	}
	return false, false
}
