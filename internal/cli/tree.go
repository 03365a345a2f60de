package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/baliza/genesis/internal/domain"
	"github.com/baliza/genesis/internal/infra/logger"
	"github.com/baliza/genesis/internal/usecase"
)

func treeCmd() *cobra.Command {
	var workspace string
	var family string
	var format string

	c := &cobra.Command{
		Use:   "tree",
		Short: "Build a family and print it as a tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path, err := resolveFamilyPath(ws, family)
			if err != nil {
				return err
			}

			tree, err := usecase.NewBuildFamily(ws.families).Execute(cmd.Context(), path)
			if err != nil {
				return err
			}
			logger.L().Info("family.built", "family", tree.Name(), "members", tree.Len())

			return printTree(cmd.OutOrStdout(), tree, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&family, "family", "f", "", "Family name or path (optional; defaults to workspace default family)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printTree(w io.Writer, tree *domain.Tree, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"family":  tree.Name(),
			"members": domain.SnapshotMembers(tree),
		}
		return enc.Encode(payload)
	case "pretty", "":
		_, err := io.WriteString(w, renderTree(tree, defaultTreeStyles()))
		return err
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

type treeStyles struct {
	Title lipgloss.Style
	Name  lipgloss.Style
	Meta  lipgloss.Style
}

func defaultTreeStyles() treeStyles {
	return treeStyles{
		Title: lipgloss.NewStyle().Bold(true).Underline(true),
		Name:  lipgloss.NewStyle().Bold(true),
		Meta:  lipgloss.NewStyle().Faint(true),
	}
}

// renderTree draws the family along paternal lines, starting at Adam. Every
// member has a father except Adam, so every member is reached exactly once;
// mothers are shown as annotations.
func renderTree(tree *domain.Tree, st treeStyles) string {
	members := tree.Members()
	if len(members) == 0 {
		return ""
	}

	byFather := map[domain.Human][]domain.Human{}
	var roots []domain.Human
	for _, h := range members {
		f := h.Father()
		if f == nil {
			roots = append(roots, h)
			continue
		}
		byFather[f] = append(byFather[f], h)
	}

	var b strings.Builder
	b.WriteString(st.Title.Render(tree.Name()))
	b.WriteByte('\n')

	for _, r := range roots {
		b.WriteString(memberLine(r, st))
		b.WriteByte('\n')
		writeChildren(&b, r, byFather, "", st)
	}
	return b.String()
}

func writeChildren(b *strings.Builder, h domain.Human, byFather map[domain.Human][]domain.Human, prefix string, st treeStyles) {
	kids := byFather[h]
	for i, k := range kids {
		last := i == len(kids)-1

		branch, next := "├── ", "│   "
		if last {
			branch, next = "└── ", "    "
		}

		b.WriteString(prefix)
		b.WriteString(branch)
		b.WriteString(memberLine(k, st))
		b.WriteByte('\n')

		writeChildren(b, k, byFather, prefix+next, st)
	}
}

func memberLine(h domain.Human, st treeStyles) string {
	meta := []string{sexMark(h.Sex()), fmt.Sprintf("gen %d", domain.Generation(h))}
	if m := h.Mother(); m != nil {
		meta = append(meta, "mother "+m.Name())
	}
	if domain.IsSeed(h) {
		meta = append(meta, "seed")
	}
	return st.Name.Render(h.Name()) + " " + st.Meta.Render("["+strings.Join(meta, ", ")+"]")
}

func sexMark(s domain.Sex) string {
	if s == domain.SexFemale {
		return "f"
	}
	return "m"
}
