package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/baliza/genesis/internal/domain"
	"github.com/baliza/genesis/internal/ports"
)

type BuildFamily struct {
	families ports.FamilyLoader
}

func NewBuildFamily(fl ports.FamilyLoader) *BuildFamily {
	return &BuildFamily{families: fl}
}

// Execute loads the family at path and creates every member through the
// domain constructors, in file order. Adam and Eve are never created here;
// their names always resolve to the process singletons.
func (uc *BuildFamily) Execute(ctx context.Context, path string) (*domain.Tree, error) {
	spec, err := uc.families.LoadFamily(path)
	if err != nil {
		return nil, err
	}
	return Materialize(ctx, spec)
}

// Materialize turns a FamilySpec into a Tree.
func Materialize(ctx context.Context, spec domain.FamilySpec) (*domain.Tree, error) {
	adam := domain.GetAdam()
	eve, err := domain.GetEve(adam)
	if err != nil {
		return nil, err
	}

	tree, err := domain.NewTree(spec.Name, adam, eve)
	if err != nil {
		return nil, err
	}

	for i, m := range spec.Members {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		h, err := birth(tree, m)
		if err != nil {
			return nil, fmt.Errorf("member %q (members[%d]): %w", m.Name, i, err)
		}
		if err := tree.Add(h); err != nil {
			return nil, fmt.Errorf("member %q (members[%d]): %w", m.Name, i, err)
		}
	}

	return tree, nil
}

func birth(tree *domain.Tree, m domain.MemberSpec) (domain.Human, error) {
	if isSeedName(m.Name) {
		return nil, invalidMember("%q is a seed and cannot be declared", m.Name)
	}

	mother, err := resolveMother(tree, m.Mother)
	if err != nil {
		return nil, err
	}
	father, err := resolveFather(tree, m.Father)
	if err != nil {
		return nil, err
	}

	switch m.Sex {
	case domain.SexMale:
		return domain.NewMale(m.Name, mother, father)
	case domain.SexFemale:
		return domain.NewFemale(m.Name, mother, father)
	default:
		return nil, invalidMember("unsupported sex %q", m.Sex)
	}
}

// An empty name stays absent so the domain reports the missing parent.
func resolveMother(tree *domain.Tree, name string) (domain.Woman, error) {
	h, err := resolveParent(tree, name)
	if err != nil || h == nil {
		return nil, err
	}
	w, ok := h.(domain.Woman)
	if !ok {
		return nil, invalidMember("mother %q is not a woman", name)
	}
	return w, nil
}

func resolveFather(tree *domain.Tree, name string) (domain.Man, error) {
	h, err := resolveParent(tree, name)
	if err != nil || h == nil {
		return nil, err
	}
	m, ok := h.(domain.Man)
	if !ok {
		return nil, invalidMember("father %q is not a man", name)
	}
	return m, nil
}

func resolveParent(tree *domain.Tree, name string) (domain.Human, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	h, ok := tree.Lookup(name)
	if !ok {
		return nil, invalidMember("parent %q is not declared before this member", name)
	}
	return h, nil
}

func isSeedName(name string) bool {
	n := strings.TrimSpace(name)
	return strings.EqualFold(n, domain.AdamName) || strings.EqualFold(n, domain.EveName)
}

func invalidMember(format string, args ...any) error {
	return &domain.OpError{
		Op:   "usecase.buildfamily",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf(format, args...),
	}
}
