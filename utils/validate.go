package utils

import (
	validator "gopkg.in/go-playground/validator.v9"
)

var validate = validator.New()

// Validate validates the passed in struct using our shared validator instance
func Validate(s any) error {
	return validate.Struct(s)
}
