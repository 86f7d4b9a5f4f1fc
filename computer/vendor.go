package computer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVendor is returned when parsing a vendor name fails.
var ErrUnknownVendor = errors.New("unknown vendor")

// Vendor identifies a CPU or GPU manufacturer.
type Vendor int

const (
	Intel Vendor = iota + 1
	Amd
)

func (v Vendor) String() string {
	switch v {
	case Intel:
		return "Intel"
	case Amd:
		return "Amd"
	default:
		return fmt.Sprintf("Vendor(%d)", int(v))
	}
}

// Valid reports whether v is a known vendor.
func (v Vendor) Valid() bool {
	return v == Intel || v == Amd
}

// ParseVendor parses a vendor name, ignoring case.
func ParseVendor(s string) (Vendor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intel":
		return Intel, nil
	case "amd":
		return Amd, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownVendor, s)
}
