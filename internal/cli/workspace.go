package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/baliza/genesis/internal/domain"
	"github.com/baliza/genesis/internal/infra/snapshotstore"
	"github.com/baliza/genesis/internal/infra/workspacefinder"
	"github.com/baliza/genesis/internal/infra/yamlfamily"
	"github.com/baliza/genesis/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	families ports.FamilyLoader
	catalog  ports.FamilyCatalog

	store *snapshotstore.JSONStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	loader := yamlfamily.NewLoader(
		yamlfamily.WithFamiliesDir(cfg.Paths.FamiliesDir),
	)

	store := snapshotstore.NewJSONStore(root, cfg, snapshotstore.WithIndex(true))

	return &workspaceCtx{
		root:     root,
		cfg:      cfg,
		families: loader,
		catalog:  loader,
		store:    store,
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `genesis init`): %w", wd, err)
	}
	return root, nil
}

// resolveFamilyPath accepts a path, a file name under the families dir, a
// bare name ("genesis" -> genesis.yaml) or the family's "name" field. An
// empty argument falls back to the workspace default family.
func resolveFamilyPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		in = strings.TrimSpace(ws.cfg.Defaults.Family)
	}
	if in == "" {
		return "", fmt.Errorf("family is required (use --family or -f)")
	}

	// If arg looks like a path (contains separators), resolve relative to workspace root.
	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	familiesDir := filepath.Join(ws.root, ws.cfg.Paths.FamiliesDir)

	if hasYAMLExt(in) {
		p := filepath.Join(familiesDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	p1 := filepath.Join(familiesDir, in+".yaml")
	if fileExists(p1) {
		return p1, nil
	}
	p2 := filepath.Join(familiesDir, in+".yml")
	if fileExists(p2) {
		return p2, nil
	}

	// As a last resort: match by family "name" field.
	refs, err := ws.catalog.ListFamilies(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", &domain.OpError{
		Op:   "cli.resolvefamily",
		Kind: domain.KindNotFound,
		Path: familiesDir,
		Err:  fmt.Errorf("family %q not found", in),
	}
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
