package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New builds a validator that reports violations under the mapstructure
// key names, so that a failed check on a config-bound struct names the
// actual configuration key rather than the Go field.
func New() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}
