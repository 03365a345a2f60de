package domain

import (
	"sync"
	"sync/atomic"
)

const (
	AdamName = "Adam"
	EveName  = "Eve"
)

// Adam is the first man. There is exactly one per process; obtain it with
// GetAdam. Any other *Adam value is not a seed and counts as absent.
type Adam struct {
	Male
}

// Eve is the first woman, made from a rib of Adam. There is exactly one per
// process; obtain it with GetEve. Any other *Eve value counts as absent.
type Eve struct {
	Female
	adam *Adam
}

// Adam returns the Adam that Eve was created from.
func (e *Eve) Adam() *Adam { return e.adam }

var (
	adamOnce sync.Once
	adam     atomic.Pointer[Adam]

	eveOnce sync.Once
	eve     atomic.Pointer[Eve]
)

// GetAdam returns the process-wide Adam, creating him on first use.
func GetAdam() *Adam {
	adamOnce.Do(func() {
		adam.Store(&Adam{Male: Male{person: person{name: AdamName, born: true}}})
	})
	return adam.Load()
}

// GetEve returns the process-wide Eve, creating her on first use from the
// given Adam. The argument is checked on every call, even once Eve exists:
// it must be the Adam returned by GetAdam.
func GetEve(a *Adam) (*Eve, error) {
	if a == nil || a != GetAdam() {
		return nil, invalidArgument("domain.geteve", "eve needs a rib of adam to be born")
	}

	eveOnce.Do(func() {
		eve.Store(&Eve{
			Female: Female{person: person{name: EveName, father: a, born: true}},
			adam:   a,
		})
	})
	return eve.Load(), nil
}

// isAdam and isEve compare by identity. Copying a seed's fields into a new
// value does not make another seed.
func isAdam(a *Adam) bool { return a != nil && a == adam.Load() }

func isEve(e *Eve) bool { return e != nil && e == eve.Load() }
