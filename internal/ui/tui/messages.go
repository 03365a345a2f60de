package tui

import "github.com/baliza/genesis/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type familiesLoadedMsg struct {
	root string
	refs []domain.FamilyRef
	err  error
}

type familyBuiltMsg struct {
	path string
	tree *domain.Tree
	err  error
}
