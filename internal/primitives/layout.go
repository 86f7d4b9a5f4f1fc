// Layout represents the slot table of one builder: immediate fields, the
// tracked slots with their domains, and the transitions defined on them.
// It is a static description written next to the builder code; it never
// reads the state of a live builder.

package primitives

import (
	"errors"
	"fmt"
	"strings"
)

// Slot is one independently tracked field.
type Slot struct {
	ID       string `json:"id" yaml:"id"`
	Domain   string `json:"domain" yaml:"domain"`
	Required bool   `json:"required" yaml:"required"`
}

// Transition is one (slot, source state) implementation of an operation.
// An operation defined for several source states, such as a cardinality
// insert, appears once per source state under the same Op.
type Transition struct {
	Op   string `json:"op" yaml:"op"`
	Slot string `json:"slot" yaml:"slot"`
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Layout is the complete descriptor of a builder.
type Layout struct {
	Version     string             `json:"version,omitempty" yaml:"version,omitempty"`
	ID          string             `json:"id" yaml:"id"`
	Immediate   []string           `json:"immediate,omitempty" yaml:"immediate,omitempty"`
	Domains     map[string]*Domain `json:"domains" yaml:"domains"`
	Slots       []*Slot            `json:"slots" yaml:"slots"`
	Transitions []Transition       `json:"transitions" yaml:"transitions"`
	Finalize    string             `json:"finalize" yaml:"finalize"`
}

// Combination is one witness per slot, in Slots order. Every combination is
// a distinct builder type.
type Combination []string

// Key renders the combination as "Set/Unset/Empty".
func (c Combination) Key() string {
	return strings.Join(c, "/")
}

// Edge is a transition applied to a specific combination.
type Edge struct {
	Op   string
	From Combination
	To   Combination
}

// Validate validates the layout:
// - Non-empty ID and at least one slot
// - Every domain entry is non-nil, keyed by its own name and valid
// - Slot IDs are unique and reference known domains
// - Transitions reference known slots and states of the slot's domain
// - Every required slot can reach a ready state from its initial state
func (l *Layout) Validate() error {
	if l.ID == "" {
		return errors.New("layout ID is required")
	}
	if len(l.Slots) == 0 {
		return errors.New("layout has no slots")
	}
	for name, d := range l.Domains {
		if d == nil {
			return fmt.Errorf("domain %q is empty", name)
		}
		if d.Name != name {
			return fmt.Errorf("domain %q is registered under key %q", d.Name, name)
		}
		if err := d.Validate(); err != nil {
			return fmt.Errorf("domain %q validation failed: %w", name, err)
		}
	}

	slots := make(map[string]*Slot, len(l.Slots))
	for _, s := range l.Slots {
		if s.ID == "" {
			return errors.New("slot ID is required")
		}
		if _, dup := slots[s.ID]; dup {
			return fmt.Errorf("duplicate slot %q", s.ID)
		}
		if _, ok := l.Domains[s.Domain]; !ok {
			return fmt.Errorf("slot %q references unknown domain %q", s.ID, s.Domain)
		}
		slots[s.ID] = s
	}
	for _, name := range l.Immediate {
		if _, clash := slots[name]; clash {
			return fmt.Errorf("immediate field %q is also a tracked slot", name)
		}
	}

	for i, t := range l.Transitions {
		s, ok := slots[t.Slot]
		if !ok {
			return fmt.Errorf("transition %d (%s) references unknown slot %q", i, t.Op, t.Slot)
		}
		d := l.Domains[s.Domain]
		if !d.Has(t.From) || !d.Has(t.To) {
			return fmt.Errorf("transition %d (%s) uses a state outside domain %q: %s -> %s", i, t.Op, d.Name, t.From, t.To)
		}
	}

	for _, s := range l.Slots {
		if s.Required && !l.canReady(s) {
			return fmt.Errorf("required slot %q can never reach a ready state", s.ID)
		}
	}
	return nil
}

// canReady walks the transitions of s from its initial state.
func (l *Layout) canReady(s *Slot) bool {
	d := l.Domains[s.Domain]
	visited := map[string]bool{d.Initial: true}
	queue := []string{d.Initial}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if d.IsReady(cur) {
			return true
		}
		for _, t := range l.Transitions {
			if t.Slot == s.ID && t.From == cur && !visited[t.To] {
				visited[t.To] = true
				queue = append(queue, t.To)
			}
		}
	}
	return false
}

// Initial returns the combination produced by the entry constructor.
func (l *Layout) Initial() Combination {
	c := make(Combination, len(l.Slots))
	for i, s := range l.Slots {
		c[i] = l.Domains[s.Domain].Initial
	}
	return c
}

// Combinations enumerates every witness combination, varying the last slot
// fastest.
func (l *Layout) Combinations() []Combination {
	out := []Combination{{}}
	for _, s := range l.Slots {
		states := l.Domains[s.Domain].States
		next := make([]Combination, 0, len(out)*len(states))
		for _, prefix := range out {
			for _, st := range states {
				c := make(Combination, len(prefix), len(prefix)+1)
				copy(c, prefix)
				next = append(next, append(c, st))
			}
		}
		out = next
	}
	return out
}

// Edges returns every transition applicable to c.
func (l *Layout) Edges(c Combination) []Edge {
	var edges []Edge
	for _, t := range l.Transitions {
		i := l.slotIndex(t.Slot)
		if i < 0 || c[i] != t.From {
			continue
		}
		to := make(Combination, len(c))
		copy(to, c)
		to[i] = t.To
		edges = append(edges, Edge{Op: t.Op, From: c, To: to})
	}
	return edges
}

// Reachable returns the keys of every combination reachable from Initial.
func (l *Layout) Reachable() map[string]bool {
	start := l.Initial()
	seen := map[string]bool{start.Key(): true}
	queue := []Combination{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range l.Edges(cur) {
			if k := e.To.Key(); !seen[k] {
				seen[k] = true
				queue = append(queue, e.To)
			}
		}
	}
	return seen
}

// Finalizable reports whether every required slot of c is in a ready state.
// Optional slots may be in any state.
func (l *Layout) Finalizable(c Combination) bool {
	for i, s := range l.Slots {
		if s.Required && !l.Domains[s.Domain].IsReady(c[i]) {
			return false
		}
	}
	return true
}

// TypeCount is the number of distinct builder types: the product of the
// domain sizes of all slots.
func (l *Layout) TypeCount() int {
	n := 1
	for _, s := range l.Slots {
		n *= len(l.Domains[s.Domain].States)
	}
	return n
}

// ImplementationCount is the number of transitions that had to be written:
// the sum over slots of the transitions defined for that slot.
func (l *Layout) ImplementationCount() int {
	return len(l.Transitions)
}

// Operations returns the distinct operation names in declaration order.
func (l *Layout) Operations() []string {
	seen := make(map[string]bool)
	var ops []string
	for _, t := range l.Transitions {
		if !seen[t.Op] {
			seen[t.Op] = true
			ops = append(ops, t.Op)
		}
	}
	return ops
}

// FindSlot returns the slot with the given ID.
func (l *Layout) FindSlot(id string) (*Slot, error) {
	if i := l.slotIndex(id); i >= 0 {
		return l.Slots[i], nil
	}
	return nil, fmt.Errorf("slot %q not found in layout %q", id, l.ID)
}

func (l *Layout) slotIndex(id string) int {
	for i, s := range l.Slots {
		if s.ID == id {
			return i
		}
	}
	return -1
}
