// Package validate holds the input checks run before anything reaches the
// store: pure helpers for single values and tag-driven checks for request
// structs. Every failure names the offending field and maps to the
// invalid-argument taxonomy.
package validate

import (
	"strconv"
	"strings"

	"towerinv/pkg/domain"
)

// NotEmpty trims s and fails when nothing remains. Returns the trimmed
// value.
func NotEmpty(field, s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", domain.ErrInvalid{Field: field, Reason: "cannot be empty"}
	}
	return trimmed, nil
}

// PositiveNumber parses s as a number and rejects negatives. Zero passes:
// free repairs and zero-price stock moves are legitimate.
func PositiveNumber(field, s string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, domain.ErrInvalid{Field: field, Reason: "must be a valid number"}
	}
	if n < 0 {
		return 0, domain.ErrInvalid{Field: field, Reason: "must be positive"}
	}
	return n, nil
}

// PositiveInt parses s as an integer and rejects negatives.
func PositiveInt(field, s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, domain.ErrInvalid{Field: field, Reason: "must be a valid integer"}
	}
	if n < 0 {
		return 0, domain.ErrInvalid{Field: field, Reason: "must be positive"}
	}
	return n, nil
}

// Action checks s against the enumerated action types.
func Action(s string) (domain.ActionType, error) {
	a := domain.ActionType(strings.TrimSpace(s))
	if !a.Valid() {
		return "", domain.ErrInvalid{Field: "action type", Reason: "must be one of: Install, Remove, Repair"}
	}
	return a, nil
}

// OptionalID parses an optional identifier, typically a query parameter.
// Empty input means absent, not invalid.
func OptionalID(field, s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return nil, domain.ErrInvalid{Field: field, Reason: "must be a valid id"}
	}
	return &id, nil
}

// NonNegative rejects negative values already decoded into a number.
func NonNegative(field string, v float64) error {
	if v < 0 {
		return domain.ErrInvalid{Field: field, Reason: "must be positive"}
	}
	return nil
}

// NonNegativeInt rejects negative values already decoded into an integer.
func NonNegativeInt(field string, v int64) error {
	if v < 0 {
		return domain.ErrInvalid{Field: field, Reason: "must be positive"}
	}
	return nil
}

// ID requires a positive identifier.
func ID(field string, id int64) error {
	if id <= 0 {
		return domain.ErrInvalid{Field: field, Reason: "must be a valid id"}
	}
	return nil
}
