// Package validation checks request structs against their `validate` struct
// tags and reports every violation at once as a serrors.ErrValidation error.
package validation

import (
	"directory/pkg/serrors"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the layout accepted for calendar dates (yyyy-MM-dd).
const DateLayout = "2006-01-02"

var (
	once     sync.Once           //nolint: gochecknoglobals
	validate *validator.Validate //nolint: gochecknoglobals
)

func get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report fields by their JSON names
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" || name == "" {
				return f.Name
			}

			return name
		})
	})

	return validate
}

// Struct validates v and returns nil or an ErrValidation error whose
// *serrors.ValidationError lists one message per violated rule, in field order.
func Struct(v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return serrors.Wrap(serrors.ErrValidation, err, "could not validate request")
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, message(fe))
	}

	return serrors.Invalid(messages...)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s can't be blank", fe.Field())
	case "email":
		return fmt.Sprintf("%s should be a proper email address", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s should be a valid date (yyyy-MM-dd)", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s should be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
