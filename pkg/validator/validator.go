package validator

import (
	"fmt"
	"reflect"

	"go-retail-erp/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Decimals are validated as their string form so field tags apply to them.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	validate.RegisterValidation("decimal_gte0", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative()
	})
	validate.RegisterValidation("catalog_kind", func(fl validator.FieldLevel) bool {
		return model.CatalogKind(fl.Field().String()).Valid()
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		validationErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return []*ErrorResponse{{FailedField: "", Tag: err.Error()}}
		}
		for _, err := range validationErrs {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// Error is the first failed rule of a struct.
type Error struct {
	Field string
	Tag   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", e.Field, e.Tag)
}

// FirstError returns the first failure as an *Error, or nil.
func FirstError(data interface{}) error {
	errs := ValidateStruct(data)
	if len(errs) == 0 {
		return nil
	}
	return &Error{Field: errs[0].FailedField, Tag: errs[0].Tag}
}
