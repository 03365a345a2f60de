package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baliza/genesis/internal/domain"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "genesis.yaml"))
	assertFileExists(t, filepath.Join(tmp, "families", "genesis.yaml"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))

	for _, d := range []string{"snapshots", filepath.Join(".genesis", "logs")} {
		info, err := os.Stat(filepath.Join(tmp, d))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s, err=%v", d, err)
		}
	}
}

func TestInitializer_Init_SampleFamilyNamesTheSeeds(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, "families", "genesis.yaml"))
	if err != nil {
		t.Fatalf("read sample family: %v", err)
	}
	for _, want := range []string{"mother: Eve", "father: Adam", "name: Enos"} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("expected sample family to contain %q, got:\n%s", want, b)
		}
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgYAML := filepath.Join(tmp, "genesis.yaml")
	if err := os.WriteFile(cfgYAML, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing genesis.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgYAML)
	if err != nil {
		t.Fatalf("read genesis.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected genesis.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgYAML)
	if err != nil {
		t.Fatalf("read genesis.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "genesis:") {
		t.Fatalf("expected genesis.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
