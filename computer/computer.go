package computer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/comalice/typestatex"
)

// ErrMissingSlot is returned by FromSpec when input data lacks a required
// slot. Code that calls the builder directly gets a compile error instead.
var ErrMissingSlot = errors.New("required slot missing")

// Computer is the immutable product of Build.
type Computer struct {
	owner  string
	cpu    Vendor
	gpu    Vendor
	hasGPU bool
	rams   []int
}

func (c Computer) Owner() string { return c.owner }
func (c Computer) CPU() Vendor   { return c.cpu }

// GPU returns the gpu vendor and false if no gpu was assigned.
func (c Computer) GPU() (Vendor, bool) { return c.gpu, c.hasGPU }

// RAMs returns the RAM module sizes in insertion order.
func (c Computer) RAMs() []int {
	out := make([]int, len(c.rams))
	copy(out, c.rams)
	return out
}

// TotalRAM returns the sum of all RAM modules.
func (c Computer) TotalRAM() int {
	total := 0
	for _, gb := range c.rams {
		total += gb
	}
	return total
}

func (c Computer) String() string {
	gpu := "none"
	if c.hasGPU {
		gpu = c.gpu.String()
	}
	rams := make([]string, len(c.rams))
	for i, gb := range c.rams {
		rams[i] = fmt.Sprintf("%dGB", gb)
	}
	return fmt.Sprintf("%s: cpu=%s gpu=%s ram=[%s]", c.owner, c.cpu, gpu, strings.Join(rams, " "))
}

// Spec is the plain, serializable form of a Computer. It is also the shape
// of an order read from a manifest.
type Spec struct {
	Owner string `json:"owner" yaml:"owner" hcl:"owner,label"`
	CPU   string `json:"cpu" yaml:"cpu" hcl:"cpu,optional"`
	GPU   string `json:"gpu,omitempty" yaml:"gpu,omitempty" hcl:"gpu,optional"`
	RAM   []int  `json:"ram" yaml:"ram" hcl:"ram,optional"`
}

// Spec returns the serializable form of c.
func (c Computer) Spec() Spec {
	s := Spec{Owner: c.owner, CPU: c.cpu.String(), RAM: c.RAMs()}
	if c.hasGPU {
		s.GPU = c.gpu.String()
	}
	return s
}

// FromSpec drives a builder with runtime data. Presence of cpu and ram can
// only be checked here at runtime; the values then go through the same
// transitions and checks as statically written code.
func FromSpec(s Spec) (Computer, error) {
	if strings.TrimSpace(s.CPU) == "" {
		return Computer{}, fmt.Errorf("computer for %s: cpu: %w", s.Owner, ErrMissingSlot)
	}
	if len(s.RAM) == 0 {
		return Computer{}, fmt.Errorf("computer for %s: ram: %w", s.Owner, ErrMissingSlot)
	}
	cpu, err := ParseVendor(s.CPU)
	if err != nil {
		return Computer{}, fmt.Errorf("computer for %s: cpu: %w", s.Owner, err)
	}

	b := SetCPU(New(s.Owner), cpu)
	if strings.TrimSpace(s.GPU) == "" {
		return finish(b, s.RAM)
	}
	gpu, err := ParseVendor(s.GPU)
	if err != nil {
		return Computer{}, fmt.Errorf("computer for %s: gpu: %w", s.Owner, err)
	}
	return finish(SetGPU(b, gpu), s.RAM)
}

// finish serves both gpu states. rams must not be empty.
func finish[G typestatex.Presence](b Builder[typestatex.Set, G, typestatex.Empty], rams []int) (Computer, error) {
	full := b.AddRAM(rams[0])
	for _, gb := range rams[1:] {
		full = full.AddRAM(gb)
	}
	return Build(full)
}
