// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "studyhub/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request DTOs against their validate tags.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates the request validator.
func New() *RequestValidator {
	return &RequestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as the domain's
// validation error so the central error handler renders them as 400.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
