package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseAndValidate decodes the JSON body into payload and runs its validate tags.
// The returned message is empty on success.
func parseAndValidate(c *fiber.Ctx, payload any) string {
	if err := c.BodyParser(payload); err != nil {
		return "invalid input"
	}
	if err := validate.Struct(payload); err != nil {
		return validationMessage(err)
	}
	return ""
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "invalid input"
	}

	first := validationErrors[0]
	field := first.Field()
	switch first.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, first.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, first.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
