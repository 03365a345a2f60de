package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeds(t *testing.T) (*Adam, *Eve) {
	t.Helper()
	adam := GetAdam()
	eve, err := GetEve(adam)
	require.NoError(t, err)
	return adam, eve
}

func TestHumansReproduceWithNameMotherAndFather(t *testing.T) {
	adam, eve := seeds(t)

	seth, err := NewMale("Seth", eve, adam)
	require.NoError(t, err)
	azura, err := NewFemale("Azura", eve, adam)
	require.NoError(t, err)
	enos, err := NewMale("Enos", azura, seth)
	require.NoError(t, err)

	assert.Equal(t, "Adam", adam.Name())
	assert.Equal(t, "Eve", eve.Name())
	assert.Equal(t, "Seth", seth.Name())
	assert.Equal(t, "Azura", azura.Name())
	assert.Equal(t, "Enos", enos.Name())
	assert.Same(t, seth, enos.Father())
	assert.Same(t, azura, enos.Mother())
	assert.Equal(t, SexMale, enos.Sex())
	assert.Equal(t, SexFemale, azura.Sex())
	assert.False(t, IsSeed(enos))
}

func TestFatherAndMotherAreEssential(t *testing.T) {
	adam, eve := seeds(t)

	cases := []struct {
		name   string
		build  func() (Human, error)
		reason string
	}{
		{"male without parents", func() (Human, error) { return NewMale("Seth", nil, nil) }, "mother and a father"},
		{"male without father", func() (Human, error) { return NewMale("Abel", eve, nil) }, "father"},
		{"male without mother", func() (Human, error) { return NewMale("Seth", nil, adam) }, "mother"},
		{"female without parents", func() (Human, error) { return NewFemale("Azura", nil, nil) }, "mother and a father"},
		{"female without father", func() (Human, error) { return NewFemale("Awan", eve, nil) }, "father"},
		{"female without mother", func() (Human, error) { return NewFemale("Dina", nil, adam) }, "mother"},
		{"second eve", func() (Human, error) { return NewFemale("Eve", nil, nil) }, "mother and a father"},
		{"second adam", func() (Human, error) { return NewMale("Adam", nil, nil) }, "mother and a father"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := tc.build()
			require.Error(t, err)
			assert.Nil(t, h)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.Contains(t, err.Error(), tc.reason)
		})
	}
}

func TestTypedNilParentsAreAbsent(t *testing.T) {
	adam, eve := seeds(t)

	var noMother *Female
	var noFather *Male

	_, err := NewMale("Cain", noMother, adam)
	assert.True(t, IsKind(err, KindInvalidArgument))

	_, err = NewFemale("Luluwa", eve, noFather)
	assert.True(t, IsKind(err, KindInvalidArgument))
}

func TestZeroValueHumansAreNotParents(t *testing.T) {
	adam, eve := seeds(t)

	_, err := NewMale("Cain", &Female{}, adam)
	assert.True(t, IsKind(err, KindInvalidArgument))

	_, err = NewMale("Cain", eve, &Male{})
	assert.True(t, IsKind(err, KindInvalidArgument))

	_, err = NewMale("Cain", &Eve{}, &Adam{})
	assert.True(t, IsKind(err, KindInvalidArgument))
}

func TestSeedsBypassParentValidation(t *testing.T) {
	adam, eve := seeds(t)

	assert.Nil(t, adam.Mother())
	assert.Nil(t, adam.Father())
	assert.Nil(t, eve.Mother())
}

func TestParseSex(t *testing.T) {
	cases := []struct {
		in      string
		want    Sex
		wantErr bool
	}{
		{"male", SexMale, false},
		{"Female", SexFemale, false},
		{" m ", SexMale, false},
		{"F", SexFemale, false},
		{"", "", true},
		{"other", "", true},
	}
	for _, c := range cases {
		got, err := ParseSex(c.in)
		if c.wantErr {
			assert.Error(t, err, "ParseSex(%q)", c.in)
			continue
		}
		assert.NoError(t, err, "ParseSex(%q)", c.in)
		assert.Equal(t, c.want, got)
	}
}
