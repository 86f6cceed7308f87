package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaError(t *testing.T) {
	err := &SchemaError{Table: "regions"}
	assert.Contains(t, err.Error(), "regions")
	assert.True(t, IsSchemaError(err))
	assert.True(t, IsSchemaError(fmt.Errorf("setup: %w", err)))
	assert.False(t, IsConstraintViolation(err))
}

func TestConstraintViolation(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed: employees.employee_id")
	err := &ConstraintViolation{Table: "employees", Kind: ViolationPrimaryKey, Err: cause}

	assert.Contains(t, err.Error(), "employees")
	assert.Contains(t, err.Error(), string(ViolationPrimaryKey))
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsConstraintViolation(fmt.Errorf("load: %w", err)))
	assert.False(t, IsSchemaError(err))
}
