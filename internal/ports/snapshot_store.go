package ports

import "github.com/baliza/genesis/internal/domain"

// SnapshotStore persists recorded family trees.
type SnapshotStore interface {
	SaveSnapshot(s domain.Snapshot) (id string, err error)
	LoadSnapshot(id string) ([]byte, error)
}
