package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/baliza/genesis/internal/infra/logger"
	"github.com/baliza/genesis/internal/ports"
	"github.com/baliza/genesis/internal/usecase"
)

func initCmd(initializer ports.WorkspaceInitializer) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a workspace with a sample family",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			root, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid workspace path: %w", err)
			}

			if err := usecase.NewInitWorkspace(initializer).Execute(root, force); err != nil {
				return err
			}

			logger.L().Info("workspace.initialized", "root", root, "force", force)
			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", root)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite template files that already exist")
	return c
}
