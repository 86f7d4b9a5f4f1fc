package computer_test

import (
	"fmt"

	"github.com/comalice/typestatex/computer"
)

func Example() {
	c, err := computer.Build(computer.SetCPU(computer.New("Jane"), computer.Intel).AddRAM(16))
	fmt.Println(c, err)
	// Output: Jane: cpu=Intel gpu=none ram=[16GB] <nil>
}

func ExampleSetGPU() {
	b := computer.SetGPU(computer.New("Jane"), computer.Amd)
	c, _ := computer.Build(computer.SetCPU(b, computer.Amd).AddRAM(4))
	fmt.Println(c)
	// Output: Jane: cpu=Amd gpu=Amd ram=[4GB]
}

func ExampleBuild_violation() {
	_, err := computer.Build(computer.SetCPU(computer.New("Jane"), computer.Amd).AddRAM(0))
	fmt.Println(err)
	// Output: computer for Jane: 1 invalid value(s): ram: value 0 below minimum 1
}
