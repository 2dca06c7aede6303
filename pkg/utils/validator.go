package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// ValidationErrors collects field-level validation failures.
type ValidationErrors map[string]string

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}

	var errs []string
	for field, message := range v {
		errs = append(errs, fmt.Sprintf("%s: %s", field, message))
	}

	return strings.Join(errs, ", ")
}

// StructValidator validates struct fields based on `validate` tags.
// Supported rules: required, min=n (string length), email.
type StructValidator struct{}

func NewValidator() *StructValidator {
	return &StructValidator{}
}

// Validate checks every tagged field of the given struct.
func (v *StructValidator) Validate(data interface{}) ValidationErrors {
	errors := make(ValidationErrors)

	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		errors.Add("_error", "only structs can be validated")
		return errors
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		typeField := typ.Field(i)

		validateTag := typeField.Tag.Get("validate")
		if validateTag == "" {
			continue
		}

		fieldName := typeField.Name
		jsonTag := typeField.Tag.Get("json")
		if jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" && parts[0] != "-" {
				fieldName = parts[0]
			}
		}

		for _, rule := range strings.Split(validateTag, ",") {
			if msg := validateField(field, rule); msg != "" {
				errors.Add(fieldName, msg)
				break // report only the first failure per field
			}
		}
	}

	return errors
}

func validateField(field reflect.Value, rule string) string {
	parts := strings.SplitN(rule, "=", 2)
	ruleName := parts[0]

	var param string
	if len(parts) > 1 {
		param = parts[1]
	}

	switch ruleName {
	case "required":
		if field.Kind() == reflect.String && field.String() == "" {
			return "is required"
		}

	case "min":
		min := 0
		fmt.Sscanf(param, "%d", &min)
		if field.Kind() == reflect.String && field.String() != "" && len(field.String()) < min {
			return fmt.Sprintf("must be at least %d characters", min)
		}

	case "email":
		if field.Kind() == reflect.String && field.String() != "" {
			if !isValidEmail(field.String()) {
				return "must be a valid email address"
			}
		}
	}

	return ""
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
