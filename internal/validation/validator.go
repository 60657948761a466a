package validation

import (
	"reflect"
	"strings"

	"moneytalk/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("recurring_interval", validateRecurringInterval)
	_ = v.RegisterValidation("money_string", validateMoneyString)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}

// validateRecurringInterval validates that interval is one of the allowed intervals
func validateRecurringInterval(fl validator.FieldLevel) bool {
	return models.IsValidInterval(strings.ToLower(fl.Field().String()))
}

// validateMoneyString validates a decimal string amount: positive, at most 2 decimal places
func validateMoneyString(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	parts := strings.SplitN(raw, ".", 2)
	if len(parts) == 2 && len(parts[1]) > 2 {
		return false
	}

	for _, part := range parts {
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}

	// Reject all-zero amounts like "0", "0.00"
	return strings.Trim(strings.ReplaceAll(raw, ".", ""), "0") != ""
}
