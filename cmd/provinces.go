package cmd

import (
	"context"

	"github.com/lance6716/provinces/pkg/task"
	"github.com/lance6716/provinces/pkg/util"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := &task.Config{}
	rootCmd := &cobra.Command{
		Use:   "provinces",
		Short: "Count the provinces (connected components) of an adjacency matrix",
		Long: "Count the provinces (connected components) of an adjacency matrix.\n\n" +
			"Without input flags it counts the example matrix\n" +
			"[[1,0,0,1],[0,1,1,0],[0,1,1,1],[1,0,1,1]] by breadth-first search.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := util.InitLogger(cfg.Log.Level, cfg.Log.Filename); err != nil {
				return err
			}
			_, err := task.Run(cmd.Context(), cfg, cmd.OutOrStdout())
			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfg.Algorithm, "algorithm", "a", "bfs", "counting algorithm: union-find, dfs or bfs")
	flags.StringVarP(&cfg.Matrix, "matrix", "m", "", "inline JSON matrix, like [[1,0],[0,1]]")
	flags.StringVarP(&cfg.MatrixFile, "matrix-file", "f", "", "JSON file holding the matrix")
	flags.StringVar(&cfg.MatrixPath, "matrix-path", "", "gjson path of the matrix inside the JSON document")
	flags.BoolVar(&cfg.Verify, "verify", false, "run all algorithms and fail if they disagree")
	flags.BoolVar(&cfg.Components, "components", false, "print the nodes of each province")
	flags.StringVarP(&cfg.WorkDir, "work-dir", "w", "", "write result.json, report.html and graph.dot to this directory")
	flags.StringVar(&cfg.Log.Level, "log-level", "warn", "log level")
	flags.StringVar(&cfg.Log.Filename, "log-file", "", "log file, logs go to stderr if empty")
	flags.StringVar(&cfg.Source.Host, "source-host", "", "source MySQL host")
	flags.IntVar(&cfg.Source.Port, "source-port", 4000, "source MySQL port")
	flags.StringVar(&cfg.Source.User, "source-user", "root", "source MySQL user")
	flags.StringVar(&cfg.Source.Password, "source-password", "", "source MySQL password")
	flags.StringVar(&cfg.Source.Table, "source-table", "", "db.table holding edges in src and dst columns")
	flags.IntVar(&cfg.Source.Nodes, "source-nodes", 0, "node count of the source table, 0 means the largest node ID + 1")
	return rootCmd
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
