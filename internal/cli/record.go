package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baliza/genesis/internal/infra/logger"
	"github.com/baliza/genesis/internal/usecase"
)

func recordCmd() *cobra.Command {
	var workspace string
	var family string

	c := &cobra.Command{
		Use:   "record",
		Short: "Build a family and save it as a JSON snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path, err := resolveFamilyPath(ws, family)
			if err != nil {
				return err
			}

			uc := usecase.NewRecordFamily(ws.families, ws.store)
			id, snap, err := uc.Execute(cmd.Context(), path)
			if err != nil {
				return err
			}

			logger.L().Info("snapshot.saved",
				"id", id,
				"snapshot_id", snap.ID,
				"family", snap.Family,
				"members", len(snap.Members),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Family:   %s\n", snap.Family)
			fmt.Fprintf(out, "Members:  %d\n", len(snap.Members))
			fmt.Fprintf(out, "Snapshot: %s\n", id)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&family, "family", "f", "", "Family name or path (optional; defaults to workspace default family)")
	return c
}
