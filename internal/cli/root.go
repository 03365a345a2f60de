package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/baliza/genesis/internal/infra/fsworkspace"
	"github.com/baliza/genesis/internal/infra/logger"
	"github.com/baliza/genesis/internal/infra/workspacefinder"
	"github.com/baliza/genesis/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "genesis",
		Short:        "Model family trees rooted at Adam and Eve",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			// Outside a workspace the logger keeps discarding.
			root, ferr := workspacefinder.NewFinder().FindRoot(wd)
			if ferr != nil || root == "" {
				return
			}

			cleanup, _ = logger.Setup(logger.Config{
				Root:  root,
				Debug: debug,
			})
			if debug && logger.IsReady() == nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "debug log: %s\n", logger.Path())
			}
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				WorkspaceLocator: workspacefinder.NewFinder(),
				Logger:           logger.L(),
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .genesis/logs/genesis.log")

	cmd.AddCommand(
		initCmd(fsworkspace.NewInitializer()),
		familiesCmd(),
		validateCmd(),
		treeCmd(),
		recordCmd(),
		queryCmd(),
		versionCmd(),
	)
	return cmd
}
