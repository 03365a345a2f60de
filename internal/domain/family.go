package domain

import (
	"fmt"
	"strings"
)

// MemberSpec describes one member of a family file. Parents are referenced
// by name and must be declared earlier in the file, or be one of the seeds.
type MemberSpec struct {
	Name   string
	Sex    Sex
	Mother string
	Father string
}

// FamilySpec is a family as written on disk, before any Human is created.
type FamilySpec struct {
	Name    string
	Members []MemberSpec
}

// FamilyRef is a lightweight reference to a family file on disk.
type FamilyRef struct {
	Name string
	Path string
}

// Tree holds the humans of one materialized family, in declaration order.
// The seeds are always its first two members.
type Tree struct {
	name   string
	order  []Human
	byName map[string]Human
}

// NewTree starts a tree rooted at the two seeds.
func NewTree(name string, a *Adam, e *Eve) (*Tree, error) {
	if absent(a) || absent(e) {
		return nil, invalidArgument("domain.newtree", "a tree needs both adam and eve")
	}

	t := &Tree{
		name:   name,
		byName: map[string]Human{},
	}
	t.order = append(t.order, a, e)
	t.byName[nameKey(a.Name())] = a
	t.byName[nameKey(e.Name())] = e
	return t, nil
}

func (t *Tree) Name() string { return t.name }

// Add appends h. Names are unique within a tree, compared case-insensitively.
func (t *Tree) Add(h Human) error {
	if absent(h) {
		return invalidArgument("domain.tree.add", "cannot add an absent human")
	}

	key := nameKey(h.Name())
	if _, dup := t.byName[key]; dup {
		return &OpError{
			Op:   "domain.tree.add",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("member %q already exists", h.Name()),
		}
	}

	t.order = append(t.order, h)
	t.byName[key] = h
	return nil
}

// Lookup finds a member by name, ignoring case and surrounding spaces.
func (t *Tree) Lookup(name string) (Human, bool) {
	h, ok := t.byName[nameKey(name)]
	return h, ok
}

// Members returns a copy of the members in declaration order.
func (t *Tree) Members() []Human {
	out := make([]Human, len(t.order))
	copy(out, t.order)
	return out
}

func (t *Tree) Len() int { return len(t.order) }

// Children returns the members whose mother or father is h.
func (t *Tree) Children(h Human) []Human {
	var out []Human
	for _, m := range t.order {
		if (!absent(m.Mother()) && Human(m.Mother()) == h) ||
			(!absent(m.Father()) && Human(m.Father()) == h) {
			out = append(out, m)
		}
	}
	return out
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
