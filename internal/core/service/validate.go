package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/relutech/asset-management/internal/core/domain"
)

// validate is shared by all services; validator.Validate is safe for
// concurrent use.
var validate = validator.New()

// checkStruct runs struct validation and converts failures into a
// domain.ValidationError keyed by the lowercased field name, matching
// the field → messages shape the API returns on 400s.
func checkStruct(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	out := domain.ValidationError{}
	for _, fe := range ve {
		out.Add(strings.ToLower(fe.Field()), fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is at least %s.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Value must be one of: %s.", strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("Failed %s validation.", fe.Tag())
	}
}
