package workspacefinder

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/baliza/genesis/internal/domain"
)

// LoadConfig loads genesis.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Genesis.Defaults.Family != "" {
		cfg.Defaults.Family = y.Genesis.Defaults.Family
	}
	if y.Genesis.Paths.FamiliesDir != "" {
		cfg.Paths.FamiliesDir = y.Genesis.Paths.FamiliesDir
	}
	if y.Genesis.Paths.SnapshotsDir != "" {
		cfg.Paths.SnapshotsDir = y.Genesis.Paths.SnapshotsDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Genesis struct {
		Defaults struct {
			Family string `yaml:"family"`
		} `yaml:"defaults"`

		Paths struct {
			FamiliesDir  string `yaml:"families_dir"`
			SnapshotsDir string `yaml:"snapshots_dir"`
		} `yaml:"paths"`
	} `yaml:"genesis"`
}
