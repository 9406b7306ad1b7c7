package adapter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmptyAddress        = errors.New("empty address")
	ErrNoToken             = errors.New("no bearer token set")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")
)

// ValidationError carries the per-field messages of a 422 response.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString(e.Message)
	for _, field := range fields {
		fmt.Fprintf(&b, "\n  %s: %s", field, strings.Join(e.Fields[field], " "))
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
