package province

import "github.com/lance6716/provinces/pkg/matrix"

// Components groups the nodes of m by connected component. Nodes in a
// component are ascending and components are ordered by their smallest node.
// m is not validated.
func Components(m matrix.Matrix) [][]int {
	d := unionAll(m)
	ret := make([][]int, 0, d.Count())
	rootToIdx := make(map[int]int, d.Count())
	for i := range m {
		root := d.Find(i)
		idx, ok := rootToIdx[root]
		if !ok {
			idx = len(ret)
			rootToIdx[root] = idx
			ret = append(ret, nil)
		}
		ret[idx] = append(ret[idx], i)
	}
	return ret
}
