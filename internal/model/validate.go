package model

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the validator used at the store boundary. It knows the
// "notblank" and "bookstatus" rules in addition to the built-in ones.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		if err := RegisterRules(v); err != nil {
			panic(err)
		}
		validate = v
	})
	return validate
}

// RegisterRules adds the book rules to v.
func RegisterRules(v *validator.Validate) error {
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return err
	}
	return v.RegisterValidation("bookstatus", func(fl validator.FieldLevel) bool {
		return Status(fl.Field().String()).Valid()
	})
}

func (b *Book) Validate() error {
	return Validator().Struct(b)
}
