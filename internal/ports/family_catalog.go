package ports

import "github.com/baliza/genesis/internal/domain"

type FamilyCatalog interface {
	ListFamilies(root string) ([]domain.FamilyRef, error)
}
