package matrix

import "github.com/pingcap/errors"

var (
	ErrInvalidJSON = errors.Normalize(
		"invalid matrix JSON: %s",
		errors.RFCCodeText("Provinces:InvalidJSON"),
	)
	ErrInvalidCell = errors.Normalize(
		"invalid cell at row %d column %d: %s, want 0, 1, true or false",
		errors.RFCCodeText("Provinces:InvalidCell"),
	)
	ErrNotSquare = errors.Normalize(
		"row %d has %d cells, want %d",
		errors.RFCCodeText("Provinces:NotSquare"),
	)
	ErrAsymmetric = errors.Normalize(
		"m[%d][%d] is %v but m[%d][%d] is %v",
		errors.RFCCodeText("Provinces:Asymmetric"),
	)
	ErrNoSelfLoop = errors.Normalize(
		"m[%d][%d] must be true",
		errors.RFCCodeText("Provinces:NoSelfLoop"),
	)
)
