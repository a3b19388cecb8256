package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"antrean/internal/shared/biztime"
)

// RegisterCustomValidators wires domain validators into gin's binding
// engine. Called once during router construction.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("visitdate", validateVisitDate)
}

// validateVisitDate accepts an empty value (date is optional everywhere it
// appears) or a YYYY-MM-DD string parseable in the clinic timezone.
func validateVisitDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := biztime.ParseDateInClinicTimezone(value)
	return err == nil
}
