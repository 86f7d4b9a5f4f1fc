// Package layouts declares the static descriptors of the builders shipped in
// this module. Each layout must match the transition functions of its
// package; layouts_test checks that against the package source.
package layouts

import (
	"fmt"
	"sort"

	"github.com/comalice/typestatex"
	"github.com/comalice/typestatex/internal/primitives"
	"github.com/comalice/typestatex/person"
)

// Computer describes computer.Builder.
func Computer() primitives.Layout {
	return primitives.NewLayoutBuilder("computer", "Build").
		Immediate("owner").
		Presence("cpu", true, "SetCPU").
		Presence("gpu", false, "SetGPU").
		Cardinality("ram", true, "AddRAM").
		MustBuild()
}

// Person describes person.Builder.
func Person() primitives.Layout {
	pending, met := typestatex.Name[person.Pending](), typestatex.Name[person.Met]()
	need := primitives.NewDomain("need", []string{pending, met}, met)
	return primitives.NewLayoutBuilder("person", "Build").
		Immediate("name").
		Domain(need).
		Slot("hunger", need.Name, true).
		Slot("thirst", need.Name, true).
		Slot("sleep", need.Name, false).
		Transition("Eat", "hunger", pending, met).
		Transition("Drink", "thirst", pending, met).
		Transition("Sleep", "sleep", pending, met).
		MustBuild()
}

var registry = map[string]func() primitives.Layout{
	"computer": Computer,
	"person":   Person,
}

// Lookup returns the layout registered under name.
func Lookup(name string) (primitives.Layout, error) {
	f, ok := registry[name]
	if !ok {
		return primitives.Layout{}, fmt.Errorf("unknown layout %q (known: %v)", name, Names())
	}
	return f(), nil
}

// Names returns the registered layout names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
