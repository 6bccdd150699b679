// Package validator adapts go-playground/validator to echo.
package validator

import (
	"storefront/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New returns the request validator with the storefront's custom tags registered.
func New() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("postalcode", func(fl validator.FieldLevel) bool {
		return entity.ValidPostalCode(fl.Field().String())
	})

	return &echoValidator{validate: v}
}

// Validate returns validator.ValidationErrors for invalid input.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
