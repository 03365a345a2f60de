package domain

// Config represents the genesis configuration loaded from genesis.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type DefaultsConfig struct {
	Family string
}

type PathsConfig struct {
	FamiliesDir  string
	SnapshotsDir string
}

// DefaultConfig provides sane defaults if genesis.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Family: "genesis",
		},
		Paths: PathsConfig{
			FamiliesDir:  "families",
			SnapshotsDir: "snapshots",
		},
	}
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
