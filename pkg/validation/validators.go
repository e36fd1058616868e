package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// local@domain.tld with no whitespace and a single @. The whitespace class
	// follows ECMAScript \s so Unicode spaces are rejected too.
	emailShapeRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
)

const TagEmailShape = "email_shape"

// New returns a validator with the custom tags already registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation(TagEmailShape, EmailShape)
}

// EmailShape accepts the loose local@domain.tld shape used by the contact form.
// validator's built-in "email" tag is RFC 5322 strict and rejects addresses
// the form has always accepted.
func EmailShape(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return IsEmailShape(val)
}

func IsEmailShape(s string) bool {
	return emailShapeRegex.MatchString(s)
}
