package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/baliza/genesis/internal/domain"
	"github.com/baliza/genesis/internal/ports"
)

// ConfigFileName marks the root of a genesis workspace.
const ConfigFileName = "genesis.yaml"

// Finder walks up from a directory until it meets a genesis.yaml file.
type Finder struct {
	ConfigFile string
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFileName}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

// FindRoot returns the nearest directory at or above startDir holding the
// workspace config. startDir may also be a file, such as a family YAML.
// A directory named genesis.yaml does not mark a workspace.
func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.findroot"

	if startDir == "" {
		return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errors.New("start directory is empty")}
	}

	dir, err := startingDir(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: startDir, Err: err}
	}

	marker := f.ConfigFile
	if marker == "" {
		marker = ConfigFileName
	}

	for cur := dir; ; {
		if isConfigFile(filepath.Join(cur, marker)) {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   op,
				Kind: domain.KindNotFound,
				Path: dir,
				Err:  fmt.Errorf("no %s in %s or any parent: %w", marker, dir, domain.ErrNotFound),
			}
		}
		cur = parent
	}
}

func startingDir(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return filepath.Clean(abs), nil
}

func isConfigFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
