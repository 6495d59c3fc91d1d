package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"finance-tracker/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var categoryCodePattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimal amounts are validated through their canonical string form
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("category_code", validateCategoryCode)
	_ = v.RegisterValidation("record_kind", validateRecordKind)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// FieldErrors flattens a validation failure into field -> message pairs.
// It returns nil when err is not a validator error.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = describe(fe)
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "datetime":
		return fmt.Sprintf("must match the layout %s", fe.Param())
	case "category_code":
		return "must be a lowercase snake_case category code"
	case "record_kind":
		return "must be expense or earning"
	case "non_negative_amount":
		return "must be a non-negative amount with at most 2 decimal places"
	default:
		return fmt.Sprintf("failed the %s rule", fe.Tag())
	}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// Custom validation functions

// validateCategoryCode accepts any snake_case code. Unregistered codes are allowed and
// get a derived label on display.
func validateCategoryCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	return len(code) <= models.MaxCategoryLength && categoryCodePattern.MatchString(code)
}

func validateRecordKind(fl validator.FieldLevel) bool {
	_, err := models.ParseKind(fl.Field().String())
	return err == nil
}

// validateNonNegativeAmount validates that an amount is >= 0 with at most 2 decimal places
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	if amount.IsNegative() {
		return false
	}

	return amount.Round(2).Equal(amount)
}
