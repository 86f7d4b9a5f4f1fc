package typestatex_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/typestatex"
)

func TestWitnessNames(t *testing.T) {
	assert.Equal(t, "Unset", typestatex.Name[typestatex.Unset]())
	assert.Equal(t, "Set", typestatex.Name[typestatex.Set]())
	assert.Equal(t, "Empty", typestatex.Name[typestatex.Empty]())
	assert.Equal(t, "NonEmpty", typestatex.Name[typestatex.NonEmpty]())

	assert.False(t, typestatex.Ready[typestatex.Unset]())
	assert.True(t, typestatex.Ready[typestatex.Set]())
	assert.False(t, typestatex.Filled[typestatex.Empty]())
	assert.True(t, typestatex.Filled[typestatex.NonEmpty]())
}

func TestHandleSingleUse(t *testing.T) {
	h := typestatex.Mint(42)
	alias := h
	require.True(t, h.Valid())

	v, err := h.TryTake()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, alias.Spent(), "copies share the cell")
	assert.False(t, alias.Valid())

	_, err = alias.TryTake()
	assert.ErrorIs(t, err, typestatex.ErrConsumed)
	assert.PanicsWithValue(t, typestatex.ErrConsumed, func() { h.Take() })
}

func TestHandleZeroValueIsForged(t *testing.T) {
	var h typestatex.Handle[string]
	assert.False(t, h.Valid())
	assert.False(t, h.Spent())

	_, err := h.TryTake()
	assert.ErrorIs(t, err, typestatex.ErrForged)
	assert.PanicsWithValue(t, typestatex.ErrForged, func() { h.Take() })
}

func TestHandleConcurrentTakeHasOneWinner(t *testing.T) {
	h := typestatex.Mint("payload")
	const n = 32
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := h.TryTake(); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestStepMovesPayload(t *testing.T) {
	old := typestatex.Mint([]int{1})
	next := typestatex.Step(old, func(p *[]int) { *p = append(*p, 2) })

	assert.True(t, old.Spent())
	got, err := next.TryTake()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestValueAndList(t *testing.T) {
	var unset typestatex.Value[string]
	_, ok := unset.Get()
	assert.False(t, ok)
	assert.False(t, unset.IsSet())

	v, ok := typestatex.Of("x").Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	var l typestatex.List[int]
	assert.Equal(t, []int{}, l.Items())
	l.Append(3)
	l.Append(1)
	items := l.Items()
	items[0] = 99
	assert.Equal(t, []int{3, 1}, l.Items(), "Items returns a copy")
	assert.Equal(t, 2, l.Len())
}

func TestCheckerCollectsViolations(t *testing.T) {
	var c typestatex.Checker
	assert.True(t, c.Min("a", 1, 1))
	assert.False(t, c.Min("a", 0, 1))
	assert.False(t, c.Max("b", 5, 4))
	assert.False(t, c.Range("c", 30, 1, 24))
	assert.False(t, c.NotEmpty("d", "  "))
	assert.False(t, c.Allowed("e", "x", false))
	require.Equal(t, 5, c.Len())

	err := c.Err("thing")
	require.Error(t, err)
	assert.ErrorIs(t, err, typestatex.ErrBelowMinimum)
	assert.ErrorIs(t, err, typestatex.ErrAboveMaximum)
	assert.ErrorIs(t, err, typestatex.ErrEmptyValue)
	assert.ErrorIs(t, err, typestatex.ErrNotAllowed)

	var verr *typestatex.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "thing", verr.Subject)
	assert.Len(t, verr.Violations, 5)
	assert.Equal(t, typestatex.Violation{Slot: "a", Rule: typestatex.ErrBelowMinimum, Value: 0, Limit: 1}, verr.Violations[0])
	assert.Equal(t, "a: value 0 below minimum 1", verr.Violations[0].Error())
	assert.Contains(t, err.Error(), "thing: 5 invalid value(s)")
}

func TestCheckerEmpty(t *testing.T) {
	var c typestatex.Checker
	assert.NoError(t, c.Err("ok"))

	var other typestatex.Checker
	other.Min("x", 0, 1)
	c.Merge(other)
	assert.Equal(t, 1, c.Len())
}
