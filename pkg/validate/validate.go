package validate

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Struct validates v against its `validate` tags using a shared
// validator instance.
func Struct(v interface{}) error {
	once.Do(func() {
		instance = validator.New()
	})
	return instance.Struct(v)
}
