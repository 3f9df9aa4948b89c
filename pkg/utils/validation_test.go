package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	Name     string `validate:"required,min=20,max=60"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,user_password"`
	Address  string `validate:"omitempty,max=400"`
}

func TestValidateStruct(t *testing.T) {
	valid := signupForm{
		Name:     "Jonathan Maxwell Harrington",
		Email:    "jonathan@example.com",
		Password: "Secret@123",
	}

	t.Run("Valid input", func(t *testing.T) {
		errs := ValidateStruct(valid)
		assert.Empty(t, errs)
	})

	t.Run("Name too short", func(t *testing.T) {
		form := valid
		form.Name = "Jon"
		errs := ValidateStruct(form)
		assert.Contains(t, errs, "Name")
	})

	t.Run("Invalid email", func(t *testing.T) {
		form := valid
		form.Email = "not-an-email"
		errs := ValidateStruct(form)
		assert.Contains(t, errs, "Email")
	})

	t.Run("Missing required fields", func(t *testing.T) {
		errs := ValidateStruct(signupForm{})
		assert.Contains(t, errs, "Name")
		assert.Contains(t, errs, "Email")
		assert.Contains(t, errs, "Password")
	})
}

func TestPasswordRule(t *testing.T) {
	base := signupForm{
		Name:  "Jonathan Maxwell Harrington",
		Email: "jonathan@example.com",
	}

	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"Valid password", "Secret@123", true},
		{"Too short", "Se@1", false},
		{"Too long", "Secret@1234567890", false},
		{"No uppercase", "secret@123", false},
		{"No special char", "Secret1234", false},
		{"Exactly 8 chars", "Abcdef@1", true},
		{"Exactly 16 chars", "Abcdefghijklmn@1", true},
		{"Length counted in runes, not bytes", "Abcdefghijklm@1ö", true},
		{"Seventeen runes", "Abcdefghijklmn@1ö", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := base
			form.Password = tc.password
			errs := ValidateStruct(form)
			if tc.valid {
				assert.NotContains(t, errs, "Password")
			} else {
				assert.Contains(t, errs, "Password")
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	formatted := FormatValidationErrors(map[string]string{"Name": "This field is required"})
	assert.Contains(t, formatted, "Name")
	assert.Contains(t, formatted, "This field is required")
}
