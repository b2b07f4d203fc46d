package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_Valid(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.AddError("title", "must be provided")
	assert.False(t, v.Valid())
}

func TestValidator_AddError_KeepsFirstMessage(t *testing.T) {
	v := New()
	v.AddError("title", "must be provided")
	v.AddError("title", "must be shorter")

	assert.Equal(t, "must be provided", v.Errors["title"])
}

func TestValidator_Check(t *testing.T) {
	v := New()
	v.Check(true, "title", "must be provided")
	v.Check(false, "author", "must be provided")

	assert.NotContains(t, v.Errors, "title")
	assert.Equal(t, "must be provided", v.Errors["author"])
}
