// Package cmd provides the root command and CLI setup for gorep.
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/mouse-blink/gorep/internal/adapter"
	"github.com/mouse-blink/gorep/internal/config"
	"github.com/mouse-blink/gorep/internal/controller"
	"github.com/mouse-blink/gorep/internal/domain"
	"github.com/mouse-blink/gorep/internal/logging"
	m "github.com/mouse-blink/gorep/internal/model"
	"github.com/spf13/cobra"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

var configFileFlag string

// newWorkflow wires the production adapters for one run. Tests replace it.
var newWorkflow = func(cmd *cobra.Command, cfg config.Config, logger *log.Logger) domain.Workflow {
	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalResultStore(cfg.Lock),
		controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout())),
		logger,
	)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gorep [flags] <regex> <rootPath> <outputFile>",
		Short: "Search a directory tree for lines matching a regular expression",
		Long: `gorep recursively scans rootPath, tests every line of every regular file
against regex and writes the matching lines to outputFile, one per line.

Lines are written in file order (lexical, depth-first) and, within a file,
in the order they appear. outputFile is overwritten on every run.

Use -- before a regex that starts with a dash:
  gorep -- '-v[0-9]+' ./logs matches.txt`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), configFileFlag)
			if err != nil {
				return err
			}

			logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}

			_, err = newWorkflow(cmd, cfg, logger).Process(domain.ProcessArgs{
				Pattern:     args[0],
				Root:        m.Path(args[1]),
				Output:      m.Path(args[2]),
				Syntax:      cfg.Syntax,
				OnFileError: cfg.OnFileError,
				Quiet:       cfg.Quiet,
			})

			return err
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVar(&configFileFlag, "config", "", "config file (yaml, toml or json) with the same keys as the flags")

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
	); err != nil {
		os.Exit(1)
	}
}
