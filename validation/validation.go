package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors перечисляет все невалидные поля: имя поля (json-тег) -> причина.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct checks the struct against its validate tags and reports every
// failing field at once, not just the first one.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, exists := out[fe.Field()]; !exists {
			out[fe.Field()] = message(fe)
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
