// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starchive/starchive/internal/platform/apperr"
	"github.com/starchive/starchive/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Starchive", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_OneOf checks the allowed-set rule used for role fields.
*/
func TestValidator_OneOf(t *testing.T) {
	v := &validate.Validator{}
	v.OneOf("role", "curator", "admin", "curator", "member")
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.OneOf("role", "wizard", "admin", "curator", "member")
	assert.True(t, v.HasErrors())
}

/*
TestValidator_FormatRules covers the slug, UUID, and numeric range rules.
*/
func TestValidator_FormatRules(t *testing.T) {
	tests := []struct {
		name     string
		check    func(v *validate.Validator)
		hasError bool
	}{
		{"valid_slug", func(v *validate.Validator) { v.Slug("slug", "a-new-hope") }, false},
		{"uppercase_slug", func(v *validate.Validator) { v.Slug("slug", "A-New-Hope") }, true},
		{"trailing_hyphen", func(v *validate.Validator) { v.Slug("slug", "a-new-hope-") }, true},
		{"valid_uuid", func(v *validate.Validator) { v.UUID("id", "0191e2c3-7a1b-7def-8123-456789abcdef") }, false},
		{"invalid_uuid", func(v *validate.Validator) { v.UUID("id", "not-a-uuid") }, true},
		{"in_range", func(v *validate.Validator) { v.Range("episode_id", 4, 1, 9) }, false},
		{"out_of_range", func(v *validate.Validator) { v.Range("episode_id", 42, 1, 9) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			tt.check(v)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestRequiredError checks the single-field shortcut constructor.
*/
func TestRequiredError(t *testing.T) {
	err := validate.RequiredError("token", "is required")

	require.NotNil(t, err)
	assert.Equal(t, "VALIDATION_ERROR", err.Code)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "token", err.Details[0].Field)
}

/*
TestValidator_Custom checks the free-form condition rule.
*/
func TestValidator_Custom(t *testing.T) {
	v := &validate.Validator{}
	v.Custom("episode_id", -1 < 0, "Must not be negative")

	err := v.Err()
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Must not be negative", ae.Details[0].Message)
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("username", "leia").
		MinLen("username", "leia", 3).
		MaxLen("username", "leia", 10).
		Email("email", "leia@starchive.app").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").       // Fails
		MinLen("username", "a", 5).     // Fails
		Email("email", "not-an-email"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
