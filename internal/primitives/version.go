// Package primitives provides versioning utilities for Layout.
package primitives

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// ComputeVersion computes a deterministic version for a Layout.
// Priority: user-provided layout.Version, else SHA256(layout JSON)[:8].
func ComputeVersion(layout *Layout) string {
	if layout.Version != "" {
		return layout.Version
	}

	data, err := json.Marshal(layout)
	if err != nil {
		return "invalid"
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
