package usecase

import (
	"context"

	"github.com/baliza/genesis/internal/ports"
)

type ValidateFamily struct {
	build *BuildFamily
}

func NewValidateFamily(fl ports.FamilyLoader) *ValidateFamily {
	return &ValidateFamily{build: NewBuildFamily(fl)}
}

// Execute checks that every member of the family can be born: parents
// declared earlier, of the right sex, and both present.
func (uc *ValidateFamily) Execute(ctx context.Context, path string) error {
	_, err := uc.build.Execute(ctx, path)
	return err
}
