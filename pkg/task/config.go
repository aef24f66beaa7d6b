package task

import "github.com/pingcap/errors"

// Config is a static struct for one counting run.
type Config struct {
	Algorithm string

	// At most one of Matrix, MatrixFile and Source.Table is set. When none is
	// set, the example matrix is used.
	Matrix     string
	MatrixFile string
	// MatrixPath is a gjson path selecting the matrix in the JSON document.
	MatrixPath string
	Source     Source

	Verify     bool
	Components bool
	WorkDir    string
	Log        Log
}

// Source describes the MySQL table holding the edges.
type Source struct {
	Host     string
	Port     int
	User     string
	Password string
	Table    string
	Nodes    int
}

type Log struct {
	Level    string
	Filename string
}

const (
	defaultAlgorithm  = "bfs"
	defaultLogLevel   = "warn"
	defaultSourcePort = 4000
	defaultSourceUser = "root"
)

func (c *Config) ensureDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = defaultAlgorithm
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Source.Port == 0 {
		c.Source.Port = defaultSourcePort
	}
	if c.Source.User == "" {
		c.Source.User = defaultSourceUser
	}
}

func (c *Config) validate() error {
	inputs := 0
	for _, s := range []string{c.Matrix, c.MatrixFile, c.Source.Table} {
		if s != "" {
			inputs++
		}
	}
	if inputs > 1 {
		return errors.New("only one of matrix, matrix file and source table can be specified")
	}
	if c.MatrixPath != "" && c.Matrix == "" && c.MatrixFile == "" {
		return errors.New("matrix path requires a JSON matrix input")
	}
	if c.Source.Nodes < 0 {
		return errors.Errorf("source nodes should not be negative, got %d", c.Source.Nodes)
	}
	return nil
}
