package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: Base()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}

// Base builds the validator shared by the controllers. The notblank rule
// rejects strings that are empty after trimming, which `required` alone
// does not.
func Base() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}
