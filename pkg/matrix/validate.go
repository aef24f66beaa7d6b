package matrix

// Validate checks that m is square, symmetric and that every node is connected
// to itself. The counters assume all three, so malformed input must be
// rejected here before it reaches them.
func Validate(m Matrix) error {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return ErrNotSquare.GenWithStackByArgs(i, len(row), n)
		}
	}
	for i := 0; i < n; i++ {
		if !m[i][i] {
			return ErrNoSelfLoop.GenWithStackByArgs(i, i)
		}
		for j := i + 1; j < n; j++ {
			if m[i][j] != m[j][i] {
				return ErrAsymmetric.GenWithStackByArgs(i, j, m[i][j], j, i, m[j][i])
			}
		}
	}
	return nil
}
