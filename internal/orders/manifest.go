package orders

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/comalice/typestatex/computer"
)

// ErrUnsupportedFormat is returned for manifest files that are neither YAML nor HCL.
var ErrUnsupportedFormat = errors.New("unsupported manifest format")

// Manifest is the YAML shape of an order file:
//
//	orders:
//	  - owner: Jane
//	    cpu: Intel
//	    ram: [16]
type Manifest struct {
	Orders []computer.Spec `yaml:"orders"`
}

// hclManifest is the HCL shape of an order file:
//
//	order "Jane" {
//	  cpu = "Intel"
//	  ram = [16]
//	}
type hclManifest struct {
	Orders []computer.Spec `hcl:"order,block"`
}

// Load reads the orders of a manifest, picking the format from the extension.
func Load(path string) ([]computer.Spec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".hcl":
		return loadHCL(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

func loadYAML(path string) ([]computer.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	return m.Orders, nil
}

func loadHCL(path string) ([]computer.Spec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}
	var m hclManifest
	if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}
	return m.Orders, nil
}
