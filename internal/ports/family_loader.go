package ports

import "github.com/baliza/genesis/internal/domain"

// FamilyLoader loads family descriptions from a source (e.g., filesystem).
type FamilyLoader interface {
	LoadFamily(path string) (domain.FamilySpec, error)
}
