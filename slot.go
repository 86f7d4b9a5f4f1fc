package typestatex

// Value is the payload of a presence slot.
type Value[T any] struct {
	v  T
	ok bool
}

// Of returns a Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{v: v, ok: true}
}

// Get returns the held value and whether the slot was assigned.
func (v Value[T]) Get() (T, bool) {
	return v.v, v.ok
}

// IsSet reports whether the slot was assigned.
func (v Value[T]) IsSet() bool {
	return v.ok
}

// List is the payload of a cardinality slot. Values keep insertion order.
type List[T any] struct {
	items []T
}

// Append adds v at the end of the list.
func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
}

// Len returns the number of inserted values.
func (l List[T]) Len() int {
	return len(l.items)
}

// Items returns a copy of the inserted values. An empty list yields a
// non-nil, zero-length slice.
func (l List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
