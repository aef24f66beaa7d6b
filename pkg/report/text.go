package report

import (
	"strconv"
	"strings"

	"github.com/pingcap/tidb/pkg/util/texttree"
)

var (
	middleBranch = string([]rune{texttree.TreeMiddleNode, texttree.TreeNodeIdentifier})
	lastBranch   = string([]rune{texttree.TreeLastNode, texttree.TreeNodeIdentifier})
)

// FormatComponents renders components as a text tree, for example
//
//	province 1 (3 nodes)
//	├─0
//	├─1
//	└─3
//	province 2 (1 node)
//	└─2
func FormatComponents(components [][]int) string {
	var b strings.Builder
	for i, c := range components {
		b.WriteString(componentHeader(i, len(c)))
		b.WriteByte('\n')
		for j, node := range c {
			if j == len(c)-1 {
				b.WriteString(lastBranch)
			} else {
				b.WriteString(middleBranch)
			}
			b.WriteString(strconv.Itoa(node))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func componentHeader(i, size int) string {
	unit := "nodes"
	if size == 1 {
		unit = "node"
	}
	return "province " + strconv.Itoa(i+1) + " (" + strconv.Itoa(size) + " " + unit + ")"
}

func joinNodes(nodes []int, sep string) string {
	s := make([]string, len(nodes))
	for i, n := range nodes {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, sep)
}
