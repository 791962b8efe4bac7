package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("entry_kind", validateEntryKind)
	validate.RegisterValidation("entry_status", validateEntryStatus)
	validate.RegisterValidation("doc_status", validateDocStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateEntryKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "immunization" || value == "diagnostic"
}

// Immunization statuses per the FHIR value set, plus the diagnostic-report
// ones a form can capture.
func validateEntryStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "completed", "entered-in-error", "not-done",
		"registered", "partial", "preliminary", "final":
		return true
	}
	return false
}

func validateDocStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "preliminary", "final", "amended":
		return true
	}
	return false
}
