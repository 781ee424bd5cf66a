package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an absent entity. Key is the identifier the lookup
// used: a numeric id, a service number, or the snapshot path.
type ErrNotFound struct {
	Entity EntityType
	Key    string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}

// NotFoundID builds an ErrNotFound for a numeric identifier.
func NotFoundID(entity EntityType, id int64) ErrNotFound {
	return ErrNotFound{Entity: entity, Key: fmt.Sprintf("%d", id)}
}

// ErrAlreadyExists reports a uniqueness violation on create or update.
// Value is the conflicting name or number.
type ErrAlreadyExists struct {
	Entity EntityType
	Value  string
}

func (e ErrAlreadyExists) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Entity, e.Value)
}

// ErrIntegrity reports a referential-integrity violation: a delete blocked
// by dependent rows, or a write referencing a missing row.
type ErrIntegrity struct {
	Entity EntityType
	Key    string
	Reason string
}

func (e ErrIntegrity) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s %s", e.Entity, e.Reason)
	}
	return fmt.Sprintf("%s %s %s", e.Entity, e.Key, e.Reason)
}

// ErrInvalid reports a rejected input value before it reaches the store.
type ErrInvalid struct {
	Field  string
	Reason string
}

func (e ErrInvalid) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// IsNotFound reports whether err is (or wraps) an ErrNotFound.
func IsNotFound(err error) bool {
	var e ErrNotFound
	return errors.As(err, &e)
}

// IsAlreadyExists reports whether err is (or wraps) an ErrAlreadyExists.
func IsAlreadyExists(err error) bool {
	var e ErrAlreadyExists
	return errors.As(err, &e)
}

// IsIntegrity reports whether err is (or wraps) an ErrIntegrity.
func IsIntegrity(err error) bool {
	var e ErrIntegrity
	return errors.As(err, &e)
}

// IsInvalid reports whether err is (or wraps) an ErrInvalid.
func IsInvalid(err error) bool {
	var e ErrInvalid
	return errors.As(err, &e)
}
