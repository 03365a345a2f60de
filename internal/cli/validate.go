package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baliza/genesis/internal/infra/logger"
	"github.com/baliza/genesis/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var family string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check that every member of a family can be born",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path, err := resolveFamilyPath(ws, family)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateFamily(ws.families)
			if err := uc.Execute(cmd.Context(), path); err != nil {
				logger.L().Warn("family.invalid", "path", path, "err", err)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&family, "family", "f", "", "Family name or path (optional; defaults to workspace default family)")
	return c
}
