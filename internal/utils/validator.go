package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"fridgemate/pkg/expiry"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = NewValidator()
}

// NewValidator reports fields by their json names and knows the expirydate
// tag, which accepts any layout the expiry package can parse.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("expirydate", func(fl validator.FieldLevel) bool {
		return expiry.IsValidDate(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// ValidationMessage turns the first field error into a short sentence.
func ValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error()
	}

	fieldErr := validationErrors[0]
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", fieldErr.Field(), fieldErr.Param())
	case "expirydate":
		return fmt.Sprintf("%s is not a valid date", fieldErr.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid url", fieldErr.Field())
	default:
		return fmt.Sprintf("%s failed the %s check", fieldErr.Field(), fieldErr.Tag())
	}
}
