package report

import (
	"html/template"
	"io"
)

var t = template.Must(template.New("report").Parse(tpl))

type Report struct {
	TaskInfoItems [][2]string // [key, value]
	Summary       Summary
	Agreement     Table
	Components    []Component
}

type Summary struct {
	Algorithm string
	Nodes     int
	Edges     int
	Provinces int
}

type Table struct {
	Header []string
	Data   [][]string
}

type Component struct {
	Header string
	Nodes  string
}

// NewComponents converts component membership lists to report sections.
func NewComponents(components [][]int) []Component {
	ret := make([]Component, 0, len(components))
	for i, c := range components {
		ret = append(ret, Component{
			Header: componentHeader(i, len(c)),
			Nodes:  joinNodes(c, ", "),
		})
	}
	return ret
}

// Render writes the HTML report to w.
func Render(w io.Writer, r *Report) error {
	return t.Execute(w, r)
}
