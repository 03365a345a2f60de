package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/baliza/genesis/internal/infra/snapshotstore"
	"github.com/baliza/genesis/internal/usecase/query"
)

func queryCmd() *cobra.Command {
	var workspace string
	var snapshot string

	c := &cobra.Command{
		Use:   "query [name=]EXPR...",
		Short: "Evaluate JSONPath expressions against a recorded snapshot",
		Example: `  genesis query '$.family'
  genesis query 'father=$.members[?(@.name == "Enos")].father'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			doc, err := ws.store.LoadSnapshot(snapshot)
			if err != nil {
				return err
			}

			_, results := query.Apply(doc, parseQueryArgs(args))
			if fails := printQueryResults(cmd.OutOrStdout(), results); fails > 0 {
				return fmt.Errorf("query failed (%d expression(s) without a value)", fails)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&snapshot, "snapshot", "s", snapshotstore.Latest, "Snapshot id (defaults to the most recent one)")
	return c
}

// parseQueryArgs maps "name=expr" arguments to rules. A bare expression is
// named after itself. Only a '=' before the leading '$' separates a name.
func parseQueryArgs(args []string) map[string]string {
	rules := make(map[string]string, len(args))
	for _, a := range args {
		a = strings.TrimSpace(a)
		if i := strings.Index(a, "="); i > 0 && !strings.HasPrefix(a, "$") {
			rules[strings.TrimSpace(a[:i])] = strings.TrimSpace(a[i+1:])
			continue
		}
		rules[a] = a
	}
	return rules
}

func printQueryResults(w io.Writer, results []query.Result) int {
	fails := 0
	for _, r := range results {
		if !r.Success {
			fails++
			fmt.Fprintf(w, "✗ %s\n", r.Message)
			continue
		}
		if r.Name == r.Expr {
			fmt.Fprintln(w, r.Value)
		} else {
			fmt.Fprintf(w, "%s = %s\n", r.Name, r.Value)
		}
	}
	return fails
}
