package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid e-mail address", field)
	case "min":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "numeric", "len":
		return fmt.Sprintf("%s is not valid", field)
	default:
		return fmt.Sprintf("%s is not valid", field)
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"Email":                    "E-mail",
		"Password":                 "Password",
		"Username":                 "Username",
		"Name":                     "Name",
		"NationalID":               "National ID",
		"Role":                     "Role",
		"Title":                    "Title",
		"Description":              "Description",
		"DailyCalories":            "Daily calories",
		"HeightCm":                 "Height",
		"WeightKg":                 "Weight",
		"Plan":                     "Plan",
		"PlanName":                 "Plan name",
		"Status":                   "Status",
		"Bio":                      "Bio",
		"YearsExperience":          "Years of experience",
		"ProfessionalRegistration": "Professional registration",
		"Q":                        "Search query",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
