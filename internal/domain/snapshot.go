package domain

import "time"

// SnapshotMember is the persisted view of one Human. Parents are stored by
// name since the in-memory graph is reference based.
type SnapshotMember struct {
	Name       string `json:"name"`
	Sex        Sex    `json:"sex"`
	Mother     string `json:"mother,omitempty"`
	Father     string `json:"father,omitempty"`
	Generation int    `json:"generation"`
	Seed       bool   `json:"seed"`
}

// Snapshot is a recorded family tree.
type Snapshot struct {
	ID         string           `json:"id"`
	Family     string           `json:"family"`
	FamilyPath string           `json:"family_path,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	Members    []SnapshotMember `json:"members"`
}

// SnapshotMembers flattens a tree into its persisted form.
func SnapshotMembers(t *Tree) []SnapshotMember {
	members := t.Members()
	out := make([]SnapshotMember, 0, len(members))

	for _, h := range members {
		sm := SnapshotMember{
			Name:       h.Name(),
			Sex:        h.Sex(),
			Generation: Generation(h),
			Seed:       IsSeed(h),
		}
		if m := h.Mother(); !absent(m) {
			sm.Mother = m.Name()
		}
		if f := h.Father(); !absent(f) {
			sm.Father = f.Name()
		}
		out = append(out, sm)
	}
	return out
}
