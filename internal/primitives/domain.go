// Domain represents the closed set of witness states one slot can occupy,
// with the initial state and the states that count as ready for finalization.

package primitives

import (
	"errors"
	"fmt"
	"slices"

	"github.com/comalice/typestatex"
)

// DomainKind classifies a domain by the shape of its transitions.
type DomainKind string

const (
	PresenceKind    DomainKind = "presence"
	CardinalityKind DomainKind = "cardinality"
	CustomKind      DomainKind = "custom"
)

// Domain describes one state domain.
type Domain struct {
	Name    string     `json:"name" yaml:"name"`
	Kind    DomainKind `json:"kind" yaml:"kind"`
	States  []string   `json:"states" yaml:"states"`
	Initial string     `json:"initial" yaml:"initial"`
	Ready   []string   `json:"ready" yaml:"ready"`
}

// PresenceDomain returns the {Unset, Set} domain.
func PresenceDomain() *Domain {
	unset, set := typestatex.Name[typestatex.Unset](), typestatex.Name[typestatex.Set]()
	return &Domain{
		Name:    string(PresenceKind),
		Kind:    PresenceKind,
		States:  []string{unset, set},
		Initial: unset,
		Ready:   []string{set},
	}
}

// CardinalityDomain returns the {Empty, NonEmpty} domain.
func CardinalityDomain() *Domain {
	empty, nonEmpty := typestatex.Name[typestatex.Empty](), typestatex.Name[typestatex.NonEmpty]()
	return &Domain{
		Name:    string(CardinalityKind),
		Kind:    CardinalityKind,
		States:  []string{empty, nonEmpty},
		Initial: empty,
		Ready:   []string{nonEmpty},
	}
}

// NewDomain creates a custom domain. The first state is the initial one.
func NewDomain(name string, states []string, ready ...string) *Domain {
	d := &Domain{
		Name:   name,
		Kind:   CustomKind,
		States: slices.Clone(states),
		Ready:  slices.Clone(ready),
	}
	if len(states) > 0 {
		d.Initial = states[0]
	}
	return d
}

// Has reports whether state belongs to the domain.
func (d *Domain) Has(state string) bool {
	return slices.Contains(d.States, state)
}

// IsReady reports whether state satisfies a required slot at finalization.
func (d *Domain) IsReady(state string) bool {
	return slices.Contains(d.Ready, state)
}

// Validate checks names, state uniqueness and membership of Initial and Ready.
func (d *Domain) Validate() error {
	if d.Name == "" {
		return errors.New("domain name is required")
	}
	if len(d.States) == 0 {
		return fmt.Errorf("domain %q has no states", d.Name)
	}
	seen := make(map[string]bool, len(d.States))
	for _, s := range d.States {
		if s == "" {
			return fmt.Errorf("domain %q has an unnamed state", d.Name)
		}
		if seen[s] {
			return fmt.Errorf("domain %q lists state %q twice", d.Name, s)
		}
		seen[s] = true
	}
	if !seen[d.Initial] {
		return fmt.Errorf("domain %q initial state %q is not one of its states", d.Name, d.Initial)
	}
	if len(d.Ready) == 0 {
		return fmt.Errorf("domain %q has no ready state", d.Name)
	}
	for _, r := range d.Ready {
		if !seen[r] {
			return fmt.Errorf("domain %q ready state %q is not one of its states", d.Name, r)
		}
	}
	return nil
}
