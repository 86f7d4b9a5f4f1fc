package orders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/comalice/typestatex/computer"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

var wantOrders = []computer.Spec{
	{Owner: "Jane", CPU: "Intel", RAM: []int{16}},
	{Owner: "Joe", CPU: "Amd", GPU: "Amd", RAM: []int{4, 8}},
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "orders.yaml", `
orders:
  - owner: Jane
    cpu: Intel
    ram: [16]
  - owner: Joe
    cpu: Amd
    gpu: Amd
    ram: [4, 8]
`)
	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(wantOrders, got); diff != "" {
		t.Errorf("orders mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_HCL(t *testing.T) {
	path := writeFile(t, "orders.hcl", `
order "Jane" {
  cpu = "Intel"
  ram = [16]
}

order "Joe" {
  cpu = "Amd"
  gpu = "Amd"
  ram = [4, 8]
}
`)
	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(wantOrders, got); diff != "" {
		t.Errorf("orders mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_HCLSyntaxError(t *testing.T) {
	path := writeFile(t, "bad.hcl", `order "Jane" {`)
	_, err := Load(path)
	require.ErrorContains(t, err, "failed to parse")
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load("orders.toml")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ShippedManifests(t *testing.T) {
	for _, name := range []string{"orders.yaml", "orders.hcl"} {
		t.Run(name, func(t *testing.T) {
			got, err := Load(filepath.Join("..", "..", "examples", "manifests", name))
			require.NoError(t, err)
			require.NotEmpty(t, got)
			require.Equal(t, "Jane", got[0].Owner)
		})
	}
}
