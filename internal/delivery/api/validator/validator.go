// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator that reports fields by their json or query name.
func New() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	return &echoValidator{validate: v}
}

func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Describe renders validation failures as "field: rule" pairs. Other errors are returned as is.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fe.Field()+": "+rule)
	}

	return strings.Join(parts, "; ")
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "query", "param"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}
