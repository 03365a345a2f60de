package snapshotstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/baliza/genesis/internal/domain"
	"github.com/baliza/genesis/internal/ports"
)

const defaultSnapshotsDir = "snapshots"

// Latest can be passed to LoadSnapshot to read the most recent snapshot.
const Latest = "latest"

type JSONStore struct {
	rootDir          string
	snapshotsDirName string
	writeIndex       bool
	now              func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: snapshots/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.SnapshotsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultSnapshotsDir
	}

	s := &JSONStore{
		rootDir:          root,
		snapshotsDirName: dir,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.SnapshotStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string {
	return filepath.Join(s.rootDir, s.snapshotsDirName)
}

func (s *JSONStore) SaveSnapshot(snap domain.Snapshot) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "snapshotstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := snap.CreatedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := snap
	toSave.CreatedAt = ts

	familyPart := snap.Family
	if strings.TrimSpace(familyPart) == "" {
		familyPart = strings.TrimSuffix(filepath.Base(snap.FamilyPath), filepath.Ext(snap.FamilyPath))
	}
	slug := slugify(familyPart)
	if slug == "" {
		slug = "family"
	}

	id := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug)
	id = uniqueID(dir, id)
	filename := id + ".json"
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "snapshotstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "snapshotstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "snapshotstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, toSave)
	}

	return id, nil
}

// LoadSnapshot returns the raw JSON of a stored snapshot. id is the value
// returned by SaveSnapshot, or Latest.
func (s *JSONStore) LoadSnapshot(id string) ([]byte, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &domain.OpError{
			Op:   "snapshotstore.load",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("snapshot id is empty"),
		}
	}

	if id == Latest {
		latest, err := s.latestID()
		if err != nil {
			return nil, err
		}
		id = latest
	}

	path := filepath.Join(s.dir(), filepath.Base(id)+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "snapshotstore.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return b, nil
}

// ListSnapshots returns stored snapshot ids, oldest first.
func (s *JSONStore) ListSnapshots() ([]string, error) {
	dir := s.dir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "snapshotstore.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	// Ids start with a UTC timestamp, so lexical order is chronological.
	sort.Strings(ids)
	return ids, nil
}

func (s *JSONStore) latestID() (string, error) {
	ids, err := s.ListSnapshots()
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", &domain.OpError{
			Op:   "snapshotstore.latest",
			Kind: domain.KindNotFound,
			Path: s.dir(),
			Err:  domain.ErrNotFound,
		}
	}
	return ids[len(ids)-1], nil
}

func (s *JSONStore) appendIndex(dir, id, filename string, snap domain.Snapshot) error {
	type idx struct {
		ID         string    `json:"id"`
		File       string    `json:"file"`
		SnapshotID string    `json:"snapshot_id"`
		Family     string    `json:"family"`
		Members    int       `json:"members"`
		CreatedAt  time.Time `json:"created_at"`
	}
	line, err := json.Marshal(idx{
		ID:         id,
		File:       filename,
		SnapshotID: snap.ID,
		Family:     snap.Family,
		Members:    len(snap.Members),
		CreatedAt:  snap.CreatedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

func uniqueID(dir, id string) string {
	candidate := id
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, candidate+".json")); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d", id, n)
	}
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
