package domain

import (
	"errors"
	"fmt"
)

// ViolationKind classifies a constraint violation.
type ViolationKind string

const (
	ViolationPrimaryKey    ViolationKind = "primary_key"
	ViolationForeignKey    ViolationKind = "foreign_key"
	ViolationRequiredField ViolationKind = "required_field"
)

// SchemaError reports a failed schema definition: redefining a table
// that already exists, or DDL the engine rejects.
type SchemaError struct {
	Table string
	Err   error
}

func (e *SchemaError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("schema error: table %q already exists", e.Table)
	}
	return fmt.Sprintf("schema error on table %q: %v", e.Table, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// ConstraintViolation reports a rejected insert: a primary-key
// collision, a missing required field, or a foreign key whose target
// row does not exist.
type ConstraintViolation struct {
	Table  string
	Kind   ViolationKind
	Detail string
	Err    error
}

func (e *ConstraintViolation) Error() string {
	msg := fmt.Sprintf("constraint violation on %s (%s)", e.Table, e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConstraintViolation) Unwrap() error { return e.Err }

// IsConstraintViolation reports whether err is (or wraps) a
// ConstraintViolation.
func IsConstraintViolation(err error) bool {
	var cv *ConstraintViolation
	return errors.As(err, &cv)
}

// IsSchemaError reports whether err is (or wraps) a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
