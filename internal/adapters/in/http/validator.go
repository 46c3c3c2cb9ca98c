package http

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs struct tag validation into echo.Context.Validate.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
