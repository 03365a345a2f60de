package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/baliza/genesis/internal/domain"
)

type RecordFamilySuite struct {
	suite.Suite
	store *memStore
	at    time.Time
	ctx   context.Context
}

func (s *RecordFamilySuite) SetupTest() {
	s.store = &memStore{}
	s.at = time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("CET", 3600))
	s.ctx = context.Background()
}

func TestRecordFamilySuite(t *testing.T) {
	suite.Run(t, new(RecordFamilySuite))
}

func (s *RecordFamilySuite) newUseCase(spec domain.FamilySpec) *RecordFamily {
	return NewRecordFamily(
		fakeFamilyLoader{spec: spec},
		s.store,
		WithClock(func() time.Time { return s.at }),
		WithIDGenerator(func() string { return "0001" }),
	)
}

func (s *RecordFamilySuite) TestSavesSnapshot() {
	id, snap, err := s.newUseCase(sethAzuraEnos()).Execute(s.ctx, "families/genesis.yaml")
	s.Require().NoError(err)

	s.Equal("snap-0001", id)
	s.Require().Len(s.store.saved, 1)
	s.Equal(snap, s.store.saved[0])

	s.Equal("0001", snap.ID)
	s.Equal("genesis", snap.Family)
	s.Equal("families/genesis.yaml", snap.FamilyPath)
	s.Equal(s.at.UTC(), snap.CreatedAt)
	s.Equal(time.UTC, snap.CreatedAt.Location())

	s.Require().Len(snap.Members, 5)
	s.Equal("Enos", snap.Members[4].Name)
	s.Equal("Seth", snap.Members[4].Father)
	s.Equal(2, snap.Members[4].Generation)
}

func (s *RecordFamilySuite) TestInvalidFamilyIsNotSaved() {
	spec := domain.FamilySpec{
		Name:    "broken",
		Members: []domain.MemberSpec{{Name: "Abel", Sex: domain.SexMale, Mother: "Eve"}},
	}

	_, _, err := s.newUseCase(spec).Execute(s.ctx, "x.yaml")
	s.Require().Error(err)
	s.True(domain.IsKind(err, domain.KindInvalidArgument))
	s.Empty(s.store.saved)
}

func (s *RecordFamilySuite) TestStoreErrorPropagates() {
	storeErr := errors.New("disk full")
	s.store.err = storeErr

	_, _, err := s.newUseCase(sethAzuraEnos()).Execute(s.ctx, "x.yaml")
	s.Require().ErrorIs(err, storeErr)
}

func (s *RecordFamilySuite) TestDefaultIDIsUUID() {
	uc := NewRecordFamily(fakeFamilyLoader{spec: sethAzuraEnos()}, s.store)

	_, snap, err := uc.Execute(s.ctx, "x.yaml")
	s.Require().NoError(err)
	s.Len(snap.ID, 36)
}
