// Package preference holds the table deciding in which order the known
// implementations are tried.
package preference

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/elliotchance/orderedmap/v3"
)

// Rank orders implementations. Explicit ranks are non-negative and lower ranks
// are tried first.
type Rank int

const (
	// Default marks an implementation without explicit preference. It is
	// tried after every ranked one, in registration order.
	Default Rank = -1
	// Disabled marks an implementation that is never tried.
	Disabled Rank = -2
)

func (r Rank) String() string {
	switch r {
	case Default:
		return "default"
	case Disabled:
		return "disabled"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

var (
	// ErrFrozen is returned when changing a table after Freeze.
	ErrFrozen = errors.New("preference: table is read-only")
	// ErrUnknown is returned when naming an implementation the table wasn't
	// created with.
	ErrUnknown = errors.New("preference: unknown implementation")
)

// Implementation is one entry of the table.
type Implementation struct {
	Name  string
	Rank  Rank
	Index int // registration order
}

// Table maps every known implementation to its rank. It is filled once by the
// configuration loader and then frozen.
type Table struct {
	om     *orderedmap.OrderedMap[string, *Implementation]
	next   Rank
	frozen bool
}

// NewTable creates a table holding the given implementations, all at Default,
// in the given order. Duplicate names are ignored.
func NewTable(names ...string) *Table {
	t := &Table{
		om: orderedmap.NewOrderedMapWithCapacity[string, *Implementation](len(names)),
	}
	for _, name := range names {
		if t.om.Has(name) {
			continue
		}
		t.om.Set(name, &Implementation{Name: name, Rank: Default, Index: t.om.Len()})
	}
	return t
}

// Len returns the number of known implementations.
func (t *Table) Len() int {
	return t.om.Len()
}

// Has reports whether name is a known implementation.
func (t *Table) Has(name string) bool {
	return t.om.Has(name)
}

// Get returns a copy of the entry for name.
func (t *Table) Get(name string) (Implementation, bool) {
	impl, ok := t.om.Get(name)
	if !ok {
		return Implementation{}, false
	}
	return *impl, true
}

// Names returns the known implementations in registration order.
func (t *Table) Names() []string {
	return slices.Collect(t.om.Keys())
}

// Prefer gives name the next explicit rank. It returns false without error
// when name already left Default: the first source to rank an implementation
// wins.
func (t *Table) Prefer(name string) (bool, error) {
	ok, err := t.set(name, t.next)
	if ok {
		t.next++
	}
	return ok, err
}

// Disable marks name as never to be tried, unless it was already ranked.
func (t *Table) Disable(name string) (bool, error) {
	return t.set(name, Disabled)
}

// Ranked reports whether any implementation left Default.
func (t *Table) Ranked() bool {
	return t.next > 0
}

func (t *Table) set(name string, rank Rank) (bool, error) {
	if t.frozen {
		return false, ErrFrozen
	}
	impl, ok := t.om.Get(name)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	if impl.Rank != Default {
		return false, nil
	}
	impl.Rank = rank
	return true, nil
}

// Freeze makes the table read-only.
func (t *Table) Freeze() {
	t.frozen = true
}

// Frozen reports whether Freeze was called.
func (t *Table) Frozen() bool {
	return t.frozen
}

// Order returns the implementations in the order they must be tried:
// explicit ranks ascending, equal ranks in registration order, then every
// Default entry in registration order. Disabled entries are left out.
func (t *Table) Order() []Implementation {
	var ranked, unranked []Implementation
	for _, impl := range t.om.AllFromFront() {
		switch impl.Rank {
		case Disabled:
		case Default:
			unranked = append(unranked, *impl)
		default:
			ranked = append(ranked, *impl)
		}
	}
	slices.SortStableFunc(ranked, func(a, b Implementation) int {
		return cmp.Compare(a.Rank, b.Rank)
	})
	return append(ranked, unranked...)
}

// All returns a copy of every entry, disabled ones included, in registration
// order.
func (t *Table) All() []Implementation {
	all := make([]Implementation, 0, t.om.Len())
	for _, impl := range t.om.AllFromFront() {
		all = append(all, *impl)
	}
	return all
}
