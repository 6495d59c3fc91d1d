package handlers

import (
	"finance-tracker/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator runs the struct tags of bound request bodies. Failures come back as
// validator.ValidationErrors so sendValidationError can list them per field.
type requestValidator struct {
	validate *validator.Validate
}

func NewValidator() echo.Validator {
	return &requestValidator{validate: validation.GetValidator().GetValidate()}
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
