package snapshotstore

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/baliza/genesis/internal/domain"
)

func sampleSnapshot(at time.Time) domain.Snapshot {
	return domain.Snapshot{
		ID:         "8d1c6a1e-2f1a-4c53-9d51-2c1f5c0c7a10",
		Family:     "House of Seth",
		FamilyPath: "families/seth.yaml",
		CreatedAt:  at,
		Members: []domain.SnapshotMember{
			{Name: "Adam", Sex: domain.SexMale, Seed: true},
			{Name: "Eve", Sex: domain.SexFemale, Father: "Adam", Seed: true},
			{Name: "Seth", Sex: domain.SexMale, Mother: "Eve", Father: "Adam", Generation: 1},
		},
	}
}

func TestSaveSnapshot_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	at := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	id, err := store.SaveSnapshot(sampleSnapshot(at))
	if err != nil {
		t.Fatalf("SaveSnapshot error: %v", err)
	}
	if id != "20260203T101112Z_house-of-seth" {
		t.Fatalf("unexpected id %q", id)
	}

	b, err := os.ReadFile(filepath.Join(tmp, "snapshots", id+".json"))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	var decoded domain.Snapshot
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Family != "House of Seth" {
		t.Fatalf("expected family name, got=%q", decoded.Family)
	}
	if len(decoded.Members) != 3 {
		t.Fatalf("expected 3 members, got=%d", len(decoded.Members))
	}
	if decoded.Members[2].Mother != "Eve" {
		t.Fatalf("expected Seth's mother to be Eve, got=%q", decoded.Members[2].Mother)
	}

	if _, err := os.Stat(filepath.Join(tmp, "snapshots", id+".json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file to be gone, err=%v", err)
	}
}

func TestSaveSnapshot_UsesClockWhenCreatedAtIsZero(t *testing.T) {
	tmp := t.TempDir()
	now := time.Date(2026, 5, 6, 7, 8, 9, 0, time.FixedZone("X", 2*3600))
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithNow(func() time.Time { return now }))

	snap := sampleSnapshot(time.Time{})
	snap.Family = ""
	id, err := store.SaveSnapshot(snap)
	if err != nil {
		t.Fatalf("SaveSnapshot error: %v", err)
	}
	if id != "20260506T050809Z_seth" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestSaveSnapshot_UsesUniqueFilenameOnCollision(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	snap := sampleSnapshot(time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC))

	id1, err := store.SaveSnapshot(snap)
	if err != nil {
		t.Fatalf("SaveSnapshot #1 error: %v", err)
	}
	id2, err := store.SaveSnapshot(snap)
	if err != nil {
		t.Fatalf("SaveSnapshot #2 error: %v", err)
	}
	if id2 != id1+"_2" {
		t.Fatalf("expected second id %q, got %q", id1+"_2", id2)
	}
}

func TestSaveSnapshot_WritesIndex(t *testing.T) {
	tmp := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Paths.SnapshotsDir = "records"
	store := NewJSONStore(tmp, cfg, WithIndex(true))

	at := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	if _, err := store.SaveSnapshot(sampleSnapshot(at)); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveSnapshot(sampleSnapshot(at.Add(time.Minute))); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(tmp, "records", "index.jsonl"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 index lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], `"members":3`) {
		t.Fatalf("unexpected index line: %s", lines[0])
	}
}

func TestLoadSnapshot_ByIDAndLatest(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	at := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	first, err := store.SaveSnapshot(sampleSnapshot(at))
	if err != nil {
		t.Fatal(err)
	}
	later := sampleSnapshot(at.Add(time.Hour))
	later.Family = "House of Cain"
	second, err := store.SaveSnapshot(later)
	if err != nil {
		t.Fatal(err)
	}

	b, err := store.LoadSnapshot(first)
	if err != nil {
		t.Fatalf("LoadSnapshot error: %v", err)
	}
	if !strings.Contains(string(b), "House of Seth") {
		t.Fatalf("expected first snapshot, got %s", b)
	}

	b, err = store.LoadSnapshot(Latest)
	if err != nil {
		t.Fatalf("LoadSnapshot(latest) error: %v", err)
	}
	if !strings.Contains(string(b), "House of Cain") {
		t.Fatalf("expected latest snapshot %s, got %s", second, b)
	}

	ids, err := store.ListSnapshots()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != first || ids[1] != second {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestLoadSnapshot_Errors(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	if _, err := store.LoadSnapshot(" "); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if _, err := store.LoadSnapshot("nope"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if _, err := store.LoadSnapshot(Latest); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound for latest without snapshots, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"House of Seth": "house-of-seth",
		"  Cain__line ": "cain-line",
		"Énos!":         "nos",
		"":              "",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
