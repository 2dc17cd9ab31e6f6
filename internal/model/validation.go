package model

import (
	"fmt"

	apperrors "trainingdiary/internal/errors"
)

// Validate checks every required field of the aggregate and reports all
// failures at once. Exercise fields are reported as order then name, series
// fields as load, repetition then order.
func (t *Training) Validate() error {
	var fields []apperrors.FieldError
	if t.Date == nil {
		fields = append(fields, apperrors.Required("date"))
	}
	for i := range t.Exercises {
		fields = append(fields, t.Exercises[i].validate(fmt.Sprintf("exercises.%d", i))...)
	}
	return apperrors.NewValidationError("Training", fields)
}

func (e *Exercise) validate(prefix string) []apperrors.FieldError {
	var fields []apperrors.FieldError
	if e.Order == nil {
		fields = append(fields, apperrors.Required(prefix+".order"))
	}
	if e.Name == "" {
		fields = append(fields, apperrors.Required(prefix+".name"))
	}
	for i := range e.Series {
		fields = append(fields, e.Series[i].validate(fmt.Sprintf("%s.series.%d", prefix, i))...)
	}
	return fields
}

func (s *Series) validate(prefix string) []apperrors.FieldError {
	var fields []apperrors.FieldError
	if s.Load == nil {
		fields = append(fields, apperrors.Required(prefix+".load"))
	}
	if s.Repetition == nil {
		fields = append(fields, apperrors.Required(prefix+".repetition"))
	}
	if s.Order == nil {
		fields = append(fields, apperrors.Required(prefix+".order"))
	}
	return fields
}
