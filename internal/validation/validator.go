package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns the validator shared by all handlers. Request DTOs carry
// only thin tags; order payloads and contact fields stay unvalidated on
// purpose, matching the storefront's behavior.
func New() *validatorv10.Validate {
	return validatorv10.New()
}
