package book

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("notblank", validateNotBlank)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidationError describes the first input field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// validateInput returns a *ValidationError for the first failing field, or nil.
func validateInput(in Input) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate input: %w", err)
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]

	var message string
	switch fe.Tag() {
	case "notblank":
		message = fmt.Sprintf("%s is required", field)
	case "ltefield":
		param := strings.ToLower(fe.Param()[:1]) + fe.Param()[1:]
		message = fmt.Sprintf("%s must not exceed %s", field, param)
	default:
		message = fmt.Sprintf("%s is invalid", field)
	}
	return &ValidationError{Field: field, Message: message}
}
