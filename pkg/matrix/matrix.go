package matrix

// Matrix is an n×n adjacency matrix. m[i][j] is true when node i and node j
// are directly connected. A well-formed Matrix is square, symmetric and has a
// true diagonal, see Validate.
type Matrix [][]bool

// New returns a diagonal-only matrix of n nodes, that is, n isolated nodes.
func New(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]bool, n)
		m[i][i] = true
	}
	return m
}

// Full returns a matrix of n nodes where every pair is connected.
func Full(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]bool, n)
		for j := range m[i] {
			m[i][j] = true
		}
	}
	return m
}

// FromInts converts a 0/1 integer matrix. Any non-zero cell is treated as a
// connection.
func FromInts(rows [][]int) Matrix {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		m[i] = make([]bool, len(row))
		for j, v := range row {
			m[i][j] = v != 0
		}
	}
	return m
}

// Example is the matrix used when no input is given.
func Example() Matrix {
	return FromInts([][]int{
		{1, 0, 0, 1},
		{0, 1, 1, 0},
		{0, 1, 1, 1},
		{1, 0, 1, 1},
	})
}

// Len returns the number of nodes.
func (m Matrix) Len() int {
	return len(m)
}

// Connect sets an undirected edge between i and j.
func (m Matrix) Connect(i, j int) {
	m[i][j] = true
	m[j][i] = true
}

// Edges counts the undirected edges between distinct nodes.
func (m Matrix) Edges() int {
	edges := 0
	for i := range m {
		for j := i + 1; j < len(m[i]); j++ {
			if m[i][j] {
				edges++
			}
		}
	}
	return edges
}

// Ints converts the matrix back to its 0/1 integer form.
func (m Matrix) Ints() [][]int {
	ret := make([][]int, len(m))
	for i, row := range m {
		ret[i] = make([]int, len(row))
		for j, v := range row {
			if v {
				ret[i][j] = 1
			}
		}
	}
	return ret
}

func (m Matrix) Clone() Matrix {
	ret := make(Matrix, len(m))
	for i, row := range m {
		ret[i] = append([]bool(nil), row...)
	}
	return ret
}
