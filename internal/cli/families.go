package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func familiesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "families",
		Short: "Manage families in a workspace",
	}

	c.AddCommand(familiesListCmd())
	return c
}

func familiesListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List families",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.catalog.ListFamilies(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no families found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n", ws.root)
			fmt.Fprintf(out, "Default:   %s\n\n", ws.cfg.Defaults.Family)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
