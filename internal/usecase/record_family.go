package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/baliza/genesis/internal/domain"
	"github.com/baliza/genesis/internal/ports"
)

type RecordFamily struct {
	build *BuildFamily
	store ports.SnapshotStore
	now   func() time.Time
	newID func() string
}

type RecordOption func(*RecordFamily)

// WithClock overrides the snapshot timestamp source.
func WithClock(now func() time.Time) RecordOption {
	return func(uc *RecordFamily) {
		if now != nil {
			uc.now = now
		}
	}
}

// WithIDGenerator overrides snapshot id generation.
func WithIDGenerator(gen func() string) RecordOption {
	return func(uc *RecordFamily) {
		if gen != nil {
			uc.newID = gen
		}
	}
}

func NewRecordFamily(fl ports.FamilyLoader, store ports.SnapshotStore, opts ...RecordOption) *RecordFamily {
	uc := &RecordFamily{
		build: NewBuildFamily(fl),
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute builds the family at path and persists it. It returns the store id
// together with the snapshot that was written.
func (uc *RecordFamily) Execute(ctx context.Context, path string) (string, domain.Snapshot, error) {
	tree, err := uc.build.Execute(ctx, path)
	if err != nil {
		return "", domain.Snapshot{}, err
	}

	snap := domain.Snapshot{
		ID:         uc.newID(),
		Family:     tree.Name(),
		FamilyPath: path,
		CreatedAt:  uc.now().UTC(),
		Members:    domain.SnapshotMembers(tree),
	}

	id, err := uc.store.SaveSnapshot(snap)
	if err != nil {
		return "", domain.Snapshot{}, err
	}
	return id, snap, nil
}
