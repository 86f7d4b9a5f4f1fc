// Package computer is a worked typestate builder with one immediate field
// (owner) and three tracked slots:
//
//	cpu  presence     required   SetCPU
//	gpu  presence     optional   SetGPU
//	ram  cardinality  required   AddRAM
//
// Calling Build before SetCPU and AddRAM, or calling SetCPU twice, does not
// compile. RAM sizes outside [MinRAM, MaxRAM] compile but make Build fail.
package computer

import (
	"github.com/comalice/typestatex"
)

// Bounds for a single RAM module, in gigabytes.
const (
	MinRAM = 1
	MaxRAM = 1024
)

type payload struct {
	owner string
	cpu   typestatex.Value[Vendor]
	gpu   typestatex.Value[Vendor]
	rams  typestatex.List[int]
	check typestatex.Checker
}

// Builder accumulates a Computer. C and G are the witnesses of the cpu and
// gpu slots, R the witness of the ram slot.
type Builder[C, G typestatex.Presence, R typestatex.Cardinality] struct {
	_ [0]C
	_ [0]G
	_ [0]R
	h typestatex.Handle[payload]
}

// New starts a builder for owner with every slot at its initial state.
func New(owner string) Builder[typestatex.Unset, typestatex.Unset, typestatex.Empty] {
	p := payload{owner: owner}
	p.check.NotEmpty("owner", owner)
	return Builder[typestatex.Unset, typestatex.Unset, typestatex.Empty]{h: typestatex.Mint(p)}
}

// SetCPU assigns the cpu slot.
func SetCPU[G typestatex.Presence, R typestatex.Cardinality](b Builder[typestatex.Unset, G, R], cpu Vendor) Builder[typestatex.Set, G, R] {
	return Builder[typestatex.Set, G, R]{h: typestatex.Step(b.h, func(p *payload) {
		p.cpu = typestatex.Of(cpu)
		p.check.Allowed("cpu", cpu, cpu.Valid())
	})}
}

// SetGPU assigns the optional gpu slot.
func SetGPU[C typestatex.Presence, R typestatex.Cardinality](b Builder[C, typestatex.Unset, R], gpu Vendor) Builder[C, typestatex.Set, R] {
	return Builder[C, typestatex.Set, R]{h: typestatex.Step(b.h, func(p *payload) {
		p.gpu = typestatex.Of(gpu)
		p.check.Allowed("gpu", gpu, gpu.Valid())
	})}
}

// AddRAM appends a module of gb gigabytes. It is available in every state
// and always leaves the ram slot NonEmpty. An out-of-range size is kept and
// reported by Build.
func (b Builder[C, G, R]) AddRAM(gb int) Builder[C, G, typestatex.NonEmpty] {
	return Builder[C, G, typestatex.NonEmpty]{h: typestatex.Step(b.h, func(p *payload) {
		p.rams.Append(gb)
		p.check.Range("ram", gb, MinRAM, MaxRAM)
	})}
}

// Build finalizes the builder. It needs cpu Set and ram NonEmpty; gpu may be
// in either state. Build consumes b even when it fails.
func Build[G typestatex.Presence](b Builder[typestatex.Set, G, typestatex.NonEmpty]) (Computer, error) {
	p, err := b.h.TryTake()
	if err != nil {
		return Computer{}, err
	}
	if err := p.check.Err("computer for " + p.owner); err != nil {
		return Computer{}, err
	}

	cpu, _ := p.cpu.Get()
	gpu, hasGPU := p.gpu.Get()
	return Computer{
		owner:  p.owner,
		cpu:    cpu,
		gpu:    gpu,
		hasGPU: hasGPU,
		rams:   p.rams.Items(),
	}, nil
}
