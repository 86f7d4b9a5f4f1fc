// Package primitives includes builder helpers for Layout.
package primitives

// LayoutBuilder builds a Layout fluently.
type LayoutBuilder struct {
	layout *Layout
}

// NewLayoutBuilder creates a new LayoutBuilder. finalize names the
// finalization operation.
func NewLayoutBuilder(id, finalize string) *LayoutBuilder {
	return &LayoutBuilder{
		layout: &Layout{
			ID:       id,
			Finalize: finalize,
			Domains:  make(map[string]*Domain),
		},
	}
}

// Immediate adds untracked fields fixed by the entry constructor.
func (b *LayoutBuilder) Immediate(names ...string) *LayoutBuilder {
	b.layout.Immediate = append(b.layout.Immediate, names...)
	return b
}

// Domain registers d under its name.
func (b *LayoutBuilder) Domain(d *Domain) *LayoutBuilder {
	b.layout.Domains[d.Name] = d
	return b
}

// Slot adds a slot over a registered domain.
func (b *LayoutBuilder) Slot(id, domain string, required bool) *LayoutBuilder {
	b.layout.Slots = append(b.layout.Slots, &Slot{ID: id, Domain: domain, Required: required})
	return b
}

// Transition adds one (slot, source state) implementation.
func (b *LayoutBuilder) Transition(op, slot, from, to string) *LayoutBuilder {
	b.layout.Transitions = append(b.layout.Transitions, Transition{Op: op, Slot: slot, From: from, To: to})
	return b
}

// Presence adds a presence slot with its single Unset -> Set transition.
func (b *LayoutBuilder) Presence(id string, required bool, op string) *LayoutBuilder {
	d := PresenceDomain()
	b.Domain(d).Slot(id, d.Name, required)
	return b.Transition(op, id, d.States[0], d.States[1])
}

// Cardinality adds a cardinality slot with its insert operation, which is
// defined for both Empty and NonEmpty.
func (b *LayoutBuilder) Cardinality(id string, required bool, op string) *LayoutBuilder {
	d := CardinalityDomain()
	b.Domain(d).Slot(id, d.Name, required)
	b.Transition(op, id, d.States[0], d.States[1])
	return b.Transition(op, id, d.States[1], d.States[1])
}

// Build validates and returns the layout.
func (b *LayoutBuilder) Build() (Layout, error) {
	if err := b.layout.Validate(); err != nil {
		return Layout{}, err
	}
	return *b.layout, nil
}

// MustBuild is Build for layouts declared at package level.
func (b *LayoutBuilder) MustBuild() Layout {
	l, err := b.Build()
	if err != nil {
		panic(err)
	}
	return l
}
