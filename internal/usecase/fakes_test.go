package usecase

import (
	"github.com/baliza/genesis/internal/domain"
)

type fakeFamilyLoader struct {
	spec domain.FamilySpec
}

func (f fakeFamilyLoader) LoadFamily(_ string) (domain.FamilySpec, error) {
	return f.spec, nil
}

type errFamilyLoader struct {
	err error
}

func (e errFamilyLoader) LoadFamily(_ string) (domain.FamilySpec, error) {
	return domain.FamilySpec{}, e.err
}

type memStore struct {
	saved []domain.Snapshot
	err   error
}

func (m *memStore) SaveSnapshot(s domain.Snapshot) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.saved = append(m.saved, s)
	return "snap-" + s.ID, nil
}

func (m *memStore) LoadSnapshot(_ string) ([]byte, error) {
	return nil, domain.ErrNotFound
}

func sethAzuraEnos() domain.FamilySpec {
	return domain.FamilySpec{
		Name: "genesis",
		Members: []domain.MemberSpec{
			{Name: "Seth", Sex: domain.SexMale, Mother: "Eve", Father: "Adam"},
			{Name: "Azura", Sex: domain.SexFemale, Mother: "Eve", Father: "Adam"},
			{Name: "Enos", Sex: domain.SexMale, Mother: "Azura", Father: "Seth"},
		},
	}
}
