// Package production provides production integrations: persistence, event publishing, visualization.
// Implements the adapters used by internal/orders and cmd/typestatex.
package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/typestatex/internal/primitives"
)

// DOTVisualizer renders the witness state space of a layout.
type DOTVisualizer struct{}

// ExportDOT generates Graphviz DOT source with one node per builder type and
// one edge per applicable transition. Finalizable types are drawn as double
// circles, types unreachable from the entry constructor are dashed.
func (v *DOTVisualizer) ExportDOT(layout primitives.Layout) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", layout.ID)
	buf.WriteString(`  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)
	fmt.Fprintf(&buf, "  label=%q;\n", legend(layout))

	reachable := layout.Reachable()
	initial := layout.Initial().Key()
	for _, c := range layout.Combinations() {
		key := c.Key()
		var attrs []string
		if layout.Finalizable(c) {
			attrs = append(attrs, "shape=doublecircle")
		}
		if key == initial {
			attrs = append(attrs, "style=filled", "fillcolor=lightgreen")
		}
		if !reachable[key] {
			attrs = append(attrs, "style=dashed")
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q;\n", key)
		} else {
			fmt.Fprintf(&buf, "  %q [%s];\n", key, strings.Join(attrs, " "))
		}
	}

	for _, c := range layout.Combinations() {
		for _, e := range layout.Edges(c) {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From.Key(), e.To.Key(), e.Op)
		}
		if layout.Finalize != "" && layout.Finalizable(c) {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q style=bold];\n", c.Key(), "product", layout.Finalize)
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the layout to JSON.
func (v *DOTVisualizer) ExportJSON(layout primitives.Layout) ([]byte, error) {
	return json.MarshalIndent(layout, "", "  ")
}

// ExportYAML serializes the layout to YAML.
func (v *DOTVisualizer) ExportYAML(layout primitives.Layout) ([]byte, error) {
	return yaml.Marshal(layout)
}

// legend names the slots in node-key order, e.g. "computer: cpu/gpu/ram".
func legend(layout primitives.Layout) string {
	ids := make([]string, len(layout.Slots))
	for i, s := range layout.Slots {
		ids[i] = s.ID
	}
	return fmt.Sprintf("%s: %s", layout.ID, strings.Join(ids, "/"))
}
