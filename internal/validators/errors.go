package validators

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrCheckingEmail   = errors.New("error checking email uniqueness")
)

// ValidationErrors maps a request field to the rule violations found for it.
// A nil or empty value means the input is valid.
type ValidationErrors map[string][]string

func (e ValidationErrors) Error() string {
	fields := slices.Sorted(maps.Keys(e))

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e[field], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends msg to the violations of field.
func (e ValidationErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Err returns e as an error, or nil when there are no violations.
func (e ValidationErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
