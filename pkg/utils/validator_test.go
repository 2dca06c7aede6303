package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidatePassesValidStruct(t *testing.T) {
	errs := NewValidator().Validate(&signupForm{Email: "ali@example.com", Password: "parola123"})
	assert.False(t, errs.HasErrors())
}

func TestValidateReportsMissingRequiredFields(t *testing.T) {
	errs := NewValidator().Validate(&signupForm{})
	assert.True(t, errs.HasErrors())
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestValidateRejectsBadEmail(t *testing.T) {
	errs := NewValidator().Validate(&signupForm{Email: "not-an-email", Password: "parola123"})
	assert.Contains(t, errs, "email")
}

func TestValidateEnforcesMinLength(t *testing.T) {
	errs := NewValidator().Validate(&signupForm{Email: "ali@example.com", Password: "kisa"})
	assert.Contains(t, errs, "password")
}

func TestValidateReportsFirstFailurePerField(t *testing.T) {
	errs := NewValidator().Validate(&signupForm{Email: "x", Password: "parola123"})
	assert.Len(t, errs, 1)
}
