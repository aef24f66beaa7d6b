package report

import (
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/lance6716/provinces/pkg/matrix"
	"github.com/pingcap/errors"
)

const graphName = "provinces"

// DOT renders m as an undirected Graphviz graph. Each component becomes a
// cluster subgraph named cluster_<i>, i starting from 0.
func DOT(m matrix.Matrix, components [][]int) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", errors.Trace(err)
	}
	if err := g.SetDir(false); err != nil {
		return "", errors.Trace(err)
	}

	for i, c := range components {
		sub := "cluster_" + strconv.Itoa(i)
		attrs := map[string]string{
			"label": strconv.Quote(componentHeader(i, len(c))),
		}
		if err := g.AddSubGraph(graphName, sub, attrs); err != nil {
			return "", errors.Annotatef(err, "add subgraph %s", sub)
		}
		for _, node := range c {
			if err := g.AddNode(sub, strconv.Itoa(node), nil); err != nil {
				return "", errors.Annotatef(err, "add node %d", node)
			}
		}
	}

	for i := range m {
		for j := i + 1; j < len(m[i]); j++ {
			if !m[i][j] {
				continue
			}
			if err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(j), false, nil); err != nil {
				return "", errors.Annotatef(err, "add edge %d--%d", i, j)
			}
		}
	}
	return g.String(), nil
}
