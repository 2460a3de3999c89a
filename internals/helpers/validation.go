package helper

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"shiftlink_backend/internals/helpers/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// pakai nama json supaya error per-field cocok dengan body request
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStruct menjalankan tag validator; hasilnya error InvalidInput berisi tag per-field.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return apperr.InvalidInput("invalid input", nil)
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return apperr.InvalidInput("validation failed", fields)
}

// ValidateFields membungkus error per-field yang dicek manual.
func ValidateFields(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return apperr.InvalidInput("validation failed", fields)
}
