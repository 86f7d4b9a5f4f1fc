package typestatex

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrConsumed is raised when a builder is used after a transition or
	// finalization already took ownership of it.
	ErrConsumed = errors.New("typestatex: builder already consumed")

	// ErrForged is raised for a builder that did not come from an entry
	// constructor, such as the zero value of a builder type.
	ErrForged = errors.New("typestatex: builder not created by a constructor")
)

// Handle is a single-use capability over a payload of type P.
//
// Go values are copied freely, so a builder cannot become inaccessible after a
// transition the way a moved value would. Handle models the move instead: all
// copies share one cell, and the first Take empties it. Any later Take through
// any copy fails with ErrConsumed.
type Handle[P any] struct {
	c *cell[P]
}

type cell[P any] struct {
	spent   atomic.Bool
	payload P
}

// Mint wraps p in a fresh handle.
func Mint[P any](p P) Handle[P] {
	return Handle[P]{c: &cell[P]{payload: p}}
}

// TryTake transfers the payload out of the handle and invalidates it.
func (h Handle[P]) TryTake() (P, error) {
	var zero P
	if h.c == nil {
		return zero, ErrForged
	}
	if !h.c.spent.CompareAndSwap(false, true) {
		return zero, ErrConsumed
	}
	p := h.c.payload
	h.c.payload = zero
	return p, nil
}

// Take is TryTake for transitions, where reuse of a consumed builder is a
// programming error. It panics with ErrConsumed or ErrForged.
func (h Handle[P]) Take() P {
	p, err := h.TryTake()
	if err != nil {
		panic(err)
	}
	return p
}

// Valid reports whether the handle was minted and not yet taken.
func (h Handle[P]) Valid() bool {
	return h.c != nil && !h.c.spent.Load()
}

// Spent reports whether the payload has already been taken.
func (h Handle[P]) Spent() bool {
	return h.c != nil && h.c.spent.Load()
}

// Step takes the payload, applies f and mints a new handle around the result.
// Every transition is one Step: the payload mutation and the witness change
// in the returned builder type happen in the same call.
func Step[P any](h Handle[P], f func(*P)) Handle[P] {
	p := h.Take()
	f(&p)
	return Mint(p)
}
