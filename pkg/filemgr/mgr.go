package filemgr

import (
	"encoding/json"
	"os"
	"path"

	"github.com/lance6716/provinces/pkg/util"
	"github.com/pingcap/errors"
	"github.com/tidwall/pretty"
)

const (
	resultFilename = "result.json"
	reportFilename = "report.html"
	dotFilename    = "graph.dot"
)

// Manager owns a folder and organizes the output files of one run.
//
//	{workDir}/result.json   counting result
//	{workDir}/report.html   HTML report
//	{workDir}/graph.dot     Graphviz graph of the provinces
type Manager struct {
	workDir string
}

// NewManager creates a new Manager instance on the given work directory.
func NewManager(workDir string) *Manager {
	return &Manager{workDir: workDir}
}

// WriteResult writes v as indented JSON.
func (m *Manager) WriteResult(v any) error {
	content, err := json.Marshal(v)
	if err != nil {
		return errors.Trace(err)
	}
	return m.write(resultFilename, pretty.Pretty(content))
}

// WriteReport writes the rendered HTML report.
func (m *Manager) WriteReport(content []byte) error {
	return m.write(reportFilename, content)
}

// WriteDOT writes the Graphviz graph.
func (m *Manager) WriteDOT(dot string) error {
	return m.write(dotFilename, []byte(dot))
}

func (m *Manager) write(filename string, content []byte) error {
	if err := os.MkdirAll(m.workDir, 0776); err != nil {
		return errors.Trace(err)
	}
	return util.AtomicWrite(path.Join(m.workDir, filename), content)
}

// ResultPath returns the path of the result file.
func (m *Manager) ResultPath() string {
	return path.Join(m.workDir, resultFilename)
}

// ReportPath returns the path of the report file.
func (m *Manager) ReportPath() string {
	return path.Join(m.workDir, reportFilename)
}

// DOTPath returns the path of the Graphviz file.
func (m *Manager) DOTPath() string {
	return path.Join(m.workDir, dotFilename)
}
