package apperror

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Init registers a tag name function on v so validation errors report the
// csv column name (contoh: `csv:"employee_id"`) instead of the Go field name.
// Fields without a csv tag fall back to the field name.
func Init(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("csv"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
