// Package validate holds the shared struct validator for journal and library records.
package validate

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	once sync.Once
	v    *validator.Validate
)

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return instance().Struct(s)
}

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails for an empty tag or nil func.
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	})
	return v
}
