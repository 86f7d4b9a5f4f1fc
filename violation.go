package typestatex

import (
	"errors"
	"fmt"
	"strings"
)

// Rules a Violation can break. Match them with errors.Is.
var (
	ErrBelowMinimum = errors.New("below minimum")
	ErrAboveMaximum = errors.New("above maximum")
	ErrEmptyValue   = errors.New("empty value")
	ErrNotAllowed   = errors.New("value not allowed")
)

// Violation is one failed runtime check on a slot value. Value checks are
// never encoded in witnesses; they travel through this type instead.
type Violation struct {
	Slot  string
	Rule  error
	Value any
	Limit any
}

func (v Violation) Error() string {
	if v.Limit == nil {
		return fmt.Sprintf("%s: %v (got %v)", v.Slot, v.Rule, v.Value)
	}
	return fmt.Sprintf("%s: value %v %v %v", v.Slot, v.Value, v.Rule, v.Limit)
}

func (v Violation) Unwrap() error {
	return v.Rule
}

// ValidationError is returned by finalization when one or more runtime
// checks failed. It lists every violation, in detection order.
type ValidationError struct {
	Subject    string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Error()
	}
	return fmt.Sprintf("%s: %d invalid value(s): %s", e.Subject, len(e.Violations), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Violations))
	for i, v := range e.Violations {
		errs[i] = v
	}
	return errs
}

// Checker accumulates violations. The zero value is ready to use.
type Checker struct {
	violations []Violation
}

// Min records a violation if v < min and reports whether v passed.
func (c *Checker) Min(slot string, v, min int) bool {
	if v >= min {
		return true
	}
	c.Add(Violation{Slot: slot, Rule: ErrBelowMinimum, Value: v, Limit: min})
	return false
}

// Max records a violation if v > max and reports whether v passed.
func (c *Checker) Max(slot string, v, max int) bool {
	if v <= max {
		return true
	}
	c.Add(Violation{Slot: slot, Rule: ErrAboveMaximum, Value: v, Limit: max})
	return false
}

// Range is Min followed by Max. Both bounds are inclusive.
func (c *Checker) Range(slot string, v, min, max int) bool {
	return c.Min(slot, v, min) && c.Max(slot, v, max)
}

// NotEmpty records a violation if s is empty after trimming spaces.
func (c *Checker) NotEmpty(slot, s string) bool {
	if strings.TrimSpace(s) != "" {
		return true
	}
	c.Add(Violation{Slot: slot, Rule: ErrEmptyValue, Value: s})
	return false
}

// Allowed records a violation if ok is false and reports ok.
func (c *Checker) Allowed(slot string, v any, ok bool) bool {
	if !ok {
		c.Add(Violation{Slot: slot, Rule: ErrNotAllowed, Value: v})
	}
	return ok
}

// Add records v.
func (c *Checker) Add(v Violation) {
	c.violations = append(c.violations, v)
}

// Merge records every violation held by other.
func (c *Checker) Merge(other Checker) {
	c.violations = append(c.violations, other.violations...)
}

// Len returns the number of recorded violations.
func (c *Checker) Len() int {
	return len(c.violations)
}

// Err returns a *ValidationError for subject, or nil if nothing failed.
func (c *Checker) Err(subject string) error {
	if len(c.violations) == 0 {
		return nil
	}
	vs := make([]Violation, len(c.violations))
	copy(vs, c.violations)
	return &ValidationError{Subject: subject, Violations: vs}
}
