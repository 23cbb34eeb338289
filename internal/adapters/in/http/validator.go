package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"lifecycle/internal/pkg/errs"
)

// RequestValidator plugs validator/v10 into echo. Failures come back as
// errs.ValueIsInvalidError naming the offending JSON fields.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}
	return errs.NewValueIsInvalidErrorWithCause("request body", errors.New(strings.Join(problems, "; ")))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), rootNamespace(fe))
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed on %s=%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed on %s", field, fe.Tag())
}

// rootNamespace is the struct type prefix validator puts in front of every
// namespace, e.g. "NewOrder.".
func rootNamespace(fe validator.FieldError) string {
	root, _, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return ""
	}
	return root + "."
}
