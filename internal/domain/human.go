package domain

import (
	"fmt"
	"strings"
)

// Sex distinguishes the two concrete kinds of Human.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ParseSex accepts "male"/"female" (and the m/f shorthands), case-insensitive.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return SexMale, nil
	case "female", "f":
		return SexFemale, nil
	default:
		return "", fmt.Errorf("unsupported sex %q", s)
	}
}

// Human is anyone in a lineage. The interface is sealed: the only
// implementations are Male, Female and the two seeds, Adam and Eve.
//
// Mother and Father return nil for the seeds only.
type Human interface {
	Name() string
	Mother() Woman
	Father() Man
	Sex() Sex

	human()
}

// Man is a Human that can be a father.
type Man interface {
	Human
	man()
}

// Woman is a Human that can be a mother.
type Woman interface {
	Human
	woman()
}

// person holds the state shared by every Human. It is never mutated after
// construction. born is only set by the constructors in this package, so
// zero values built elsewhere do not count as real humans.
type person struct {
	name   string
	mother Woman
	father Man
	born   bool
}

func (p *person) Name() string { return p.name }
func (p *person) Mother() Woman { return p.mother }
func (p *person) Father() Man { return p.father }
func (p *person) String() string { return p.name }
func (p *person) human() {}

// Male is an ordinary man with both parents known.
type Male struct {
	person
}

func (*Male) Sex() Sex { return SexMale }
func (*Male) man() {}

// Female is an ordinary woman with both parents known.
type Female struct {
	person
}

func (*Female) Sex() Sex { return SexFemale }
func (*Female) woman() {}

// NewMale creates a man. Both a mother and a father are required.
func NewMale(name string, mother Woman, father Man) (*Male, error) {
	if err := requireParents("domain.newmale", mother, father); err != nil {
		return nil, err
	}
	return &Male{person: person{name: name, mother: mother, father: father, born: true}}, nil
}

// NewFemale creates a woman. Both a mother and a father are required.
func NewFemale(name string, mother Woman, father Man) (*Female, error) {
	if err := requireParents("domain.newfemale", mother, father); err != nil {
		return nil, err
	}
	return &Female{person: person{name: name, mother: mother, father: father, born: true}}, nil
}

func requireParents(op string, mother Woman, father Man) error {
	noMother := absent(mother)
	noFather := absent(father)

	switch {
	case noMother && noFather:
		return invalidArgument(op, "every human needs a mother and a father")
	case noMother:
		return invalidArgument(op, "every human needs a mother")
	case noFather:
		return invalidArgument(op, "every human needs a father")
	}
	return nil
}

// absent reports whether h is missing: a nil interface, a typed nil pointer,
// a value that was not produced by this package's constructors, or a seed
// that is not the process singleton.
func absent(h Human) bool {
	switch v := h.(type) {
	case nil:
		return true
	case *Male:
		return v == nil || !v.born
	case *Female:
		return v == nil || !v.born
	case *Adam:
		return !isAdam(v)
	case *Eve:
		return !isEve(v)
	default:
		return true
	}
}
