package task

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lance6716/provinces/pkg/filemgr"
	"github.com/lance6716/provinces/pkg/matrix"
	"github.com/lance6716/provinces/pkg/province"
	"github.com/lance6716/provinces/pkg/report"
	"github.com/lance6716/provinces/pkg/source"
	"github.com/lance6716/provinces/pkg/util"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// Result is the outcome of one run, it's also the content of result.json.
type Result struct {
	Input      string         `json:"input"`
	Algorithm  string         `json:"algorithm"`
	Nodes      int            `json:"nodes"`
	Edges      int            `json:"edges"`
	Provinces  int            `json:"provinces"`
	Components [][]int        `json:"components,omitempty"`
	Agreement  map[string]int `json:"agreement,omitempty"`
}

// Run is the main entry function. It loads the matrix, counts the provinces
// and prints the count to out. The component tree is also printed when
// cfg.Components is set.
func Run(ctx context.Context, cfg *Config, out io.Writer) (*Result, error) {
	cfg.ensureDefaults()
	if err := cfg.validate(); err != nil {
		return nil, errors.Trace(err)
	}
	algo, err := province.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, errors.Trace(err)
	}

	m, input, err := loadMatrix(ctx, cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}

	count, err := province.Count(algo, m)
	if err != nil {
		return nil, errors.Annotatef(err, "count provinces of %s", input)
	}
	ret := &Result{
		Input:     input,
		Algorithm: algo.String(),
		Nodes:     m.Len(),
		Edges:     m.Edges(),
		Provinces: count,
	}
	util.Logger.Info("provinces counted",
		zap.String("input", input),
		zap.Stringer("algorithm", algo),
		zap.Int("nodes", ret.Nodes),
		zap.Int("provinces", count))

	if cfg.Verify {
		counts, err2 := province.CountAll(m)
		if err2 != nil {
			return nil, errors.Trace(err2)
		}
		ret.Agreement = make(map[string]int, len(counts))
		for a, c := range counts {
			ret.Agreement[a.String()] = c
		}
	}
	if cfg.Components || cfg.WorkDir != "" {
		ret.Components = province.Components(m)
	}

	if _, err = fmt.Fprintln(out, count); err != nil {
		return nil, errors.Trace(err)
	}
	if cfg.Components {
		if _, err = io.WriteString(out, report.FormatComponents(ret.Components)); err != nil {
			return nil, errors.Trace(err)
		}
	}

	if cfg.WorkDir != "" {
		if err = writeOutputs(filemgr.NewManager(cfg.WorkDir), m, ret); err != nil {
			return nil, errors.Trace(err)
		}
	}
	return ret, nil
}

func loadMatrix(ctx context.Context, cfg *Config) (matrix.Matrix, string, error) {
	switch {
	case cfg.Matrix != "":
		m, err := matrix.ParseJSON([]byte(cfg.Matrix), cfg.MatrixPath)
		return m, "inline matrix", errors.Trace(err)
	case cfg.MatrixFile != "":
		content, err := os.ReadFile(cfg.MatrixFile)
		if err != nil {
			return nil, "", errors.Annotatef(err, "read matrix file %s", cfg.MatrixFile)
		}
		m, err := matrix.ParseJSON(content, cfg.MatrixPath)
		if err != nil {
			return nil, "", errors.Annotatef(err, "parse matrix file %s", cfg.MatrixFile)
		}
		return m, cfg.MatrixFile, nil
	case cfg.Source.Table != "":
		return readFromSource(ctx, &cfg.Source)
	}
	return matrix.Example(), "example", nil
}

func readFromSource(ctx context.Context, cfg *Source) (matrix.Matrix, string, error) {
	dbName, table, err := util.ParseTableName(cfg.Table, "")
	if err != nil {
		return nil, "", errors.Trace(err)
	}
	db, err := util.ConnectDB(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	if err != nil {
		return nil, "", errors.Trace(err)
	}
	defer db.Close()

	m, err := source.ReadMatrix(ctx, db, dbName, table, cfg.Nodes)
	if err != nil {
		return nil, "", errors.Trace(err)
	}
	return m, dbName + "." + table, nil
}

func writeOutputs(mgr *filemgr.Manager, m matrix.Matrix, ret *Result) error {
	if err := mgr.WriteResult(ret); err != nil {
		return errors.Trace(err)
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, newReport(ret)); err != nil {
		return errors.Trace(err)
	}
	if err := mgr.WriteReport(buf.Bytes()); err != nil {
		return errors.Trace(err)
	}

	dot, err := report.DOT(m, ret.Components)
	if err != nil {
		return errors.Trace(err)
	}
	if err = mgr.WriteDOT(dot); err != nil {
		return errors.Trace(err)
	}
	util.Logger.Info("outputs written",
		zap.String("result", mgr.ResultPath()),
		zap.String("report", mgr.ReportPath()),
		zap.String("dot", mgr.DOTPath()))
	return nil
}

func newReport(ret *Result) *report.Report {
	r := &report.Report{
		TaskInfoItems: [][2]string{
			{"Input", ret.Input},
		},
		Summary: report.Summary{
			Algorithm: ret.Algorithm,
			Nodes:     ret.Nodes,
			Edges:     ret.Edges,
			Provinces: ret.Provinces,
		},
		Components: report.NewComponents(ret.Components),
	}
	if len(ret.Agreement) > 0 {
		r.Agreement.Header = []string{"Algorithm", "Provinces"}
		for _, a := range province.Algorithms() {
			r.Agreement.Data = append(r.Agreement.Data, []string{
				a.String(), strconv.Itoa(ret.Agreement[a.String()]),
			})
		}
	}
	return r
}
