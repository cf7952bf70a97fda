package models

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	phoneRegexp = regexp.MustCompile(`^\+?[1-9]\d{9,14}$`)
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	lowerRegexp = regexp.MustCompile(`[a-z]`)
	upperRegexp = regexp.MustCompile(`[A-Z]`)
	digitRegexp = regexp.MustCompile(`[0-9]`)
)

// IsPhone reports whether s looks like an E.164 phone number.
func IsPhone(s string) bool {
	return phoneRegexp.MatchString(s)
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// IsStrongPassword requires at least one lowercase letter, one uppercase
// letter and one digit. Length is checked separately via min=6.
func IsStrongPassword(s string) bool {
	return lowerRegexp.MatchString(s) && upperRegexp.MatchString(s) && digitRegexp.MatchString(s)
}

// RegisterValidators installs the custom binding validators used by the
// request models. Called once at startup.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("e164phone", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("emailorphone", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return IsEmail(value) || IsPhone(value)
	})
}
