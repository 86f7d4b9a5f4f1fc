// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"github.com/comalice/typestatex"
	"github.com/comalice/typestatex/computer"
)

// Ready returns a finalizable builder with n RAM modules.
func Ready(n int) computer.Builder[typestatex.Set, typestatex.Set, typestatex.NonEmpty] {
	b := computer.SetGPU(computer.SetCPU(computer.New("bench"), computer.Intel), computer.Amd).AddRAM(8)
	for i := 1; i < n; i++ {
		b = b.AddRAM(8)
	}
	return b
}

// Specs returns n valid order specs.
func Specs(n int) []computer.Spec {
	specs := make([]computer.Spec, n)
	for i := range specs {
		specs[i] = computer.Spec{Owner: "bench", CPU: "Intel", GPU: "Amd", RAM: []int{8, 16}}
	}
	return specs
}
