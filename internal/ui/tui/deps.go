package tui

import (
	"log/slog"

	"github.com/baliza/genesis/internal/ports"
)

// Deps are the collaborators the browser needs from the outside.
type Deps struct {
	WorkspaceLocator ports.WorkspaceLocator

	Logger *slog.Logger
}
