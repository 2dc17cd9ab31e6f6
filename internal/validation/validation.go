// Package validation runs go-playground/validator rules and reports failures
// as an apperrors.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "trainingdiary/internal/errors"
)

// Entity names the validated document in error messages ("User validation failed: ...").
type Entity interface {
	ValidationEntity() string
}

// Validator wraps validator.Validate. Field paths use the json names.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.Struct(i)
}

// Struct validates s. Rule failures come back as *apperrors.ValidationError,
// one FieldError per failing field in declaration order.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	entity := "Document"
	if e, ok := s.(Entity); ok {
		entity = e.ValidationEntity()
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldError(fe))
	}
	return apperrors.NewValidationError(entity, fields)
}

func fieldError(fe validator.FieldError) apperrors.FieldError {
	path := fe.Field()
	switch fe.Tag() {
	case "required":
		return apperrors.Required(path)
	case "email":
		return apperrors.FieldError{Path: path, Message: fmt.Sprintf("%v is not a valid email", fe.Value())}
	case "min":
		return apperrors.FieldError{
			Path:    path,
			Message: fmt.Sprintf("Path `%s` is shorter than the minimum allowed length (%s).", path, fe.Param()),
		}
	default:
		return apperrors.FieldError{Path: path, Message: fmt.Sprintf("Path `%s` is invalid (%s).", path, fe.Tag())}
	}
}
