package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/baliza/genesis/internal/infra/workspacefinder"
	"github.com/baliza/genesis/internal/infra/yamlfamily"
	"github.com/baliza/genesis/internal/usecase"
)

const buildTimeout = 30 * time.Second

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root}
	}
}

func cmdLoadFamilies(root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return familiesLoadedMsg{root: root, err: err}
		}

		loader := yamlfamily.NewLoader(
			yamlfamily.WithFamiliesDir(cfg.Paths.FamiliesDir),
		)

		refs, err := loader.ListFamilies(root)
		return familiesLoadedMsg{root: root, refs: refs, err: err}
	}
}

func cmdBuildFamily(path string, log *slog.Logger) tea.Cmd {
	if log == nil {
		log = slog.Default()
	}

	return func() tea.Msg {
		p := filepath.Clean(path)

		ctx, cancel := context.WithTimeout(context.Background(), buildTimeout)
		defer cancel()

		uc := usecase.NewBuildFamily(yamlfamily.NewLoader())
		tree, err := uc.Execute(ctx, p)
		if err != nil {
			log.Warn("family.build.failed", "path", p, "err", err)
			return familyBuiltMsg{path: p, err: err}
		}

		log.Info("family.built", "path", p, "family", tree.Name(), "members", tree.Len())
		return familyBuiltMsg{path: p, tree: tree}
	}
}
