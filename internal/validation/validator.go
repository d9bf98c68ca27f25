package validation

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
)

var (
	Validator = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Let numeric tags (gte, gt) apply to money fields.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// ValidateStruct reports the first failing field as an invalid_request
// business error; anything else validator returns is passed through.
func ValidateStruct(s any) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return httperr.ErrBusiness("invalid_request")
	}
	return err
}
