package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"takuezy-housing/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validator validates request bodies and reports the first failing field by its JSON name
type Validator struct {
	v *validator.Validate
}

// NewValidator creates a validator that names fields by their json tag
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Bind parses the request body into out and validates it
func (v *Validator) Bind(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return domain.Validation("Invalid request body")
	}
	return v.Struct(out)
}

// Struct validates out, returning a Validation error for the first failing field
func (v *Validator) Struct(out interface{}) error {
	err := v.v.Struct(out)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.Validation("Invalid request body")
	}
	return domain.Validation(describe(verrs[0]))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}

// queryBool parses an optional boolean query parameter
func queryBool(c *fiber.Ctx, key string, def bool) (bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.Validation(fmt.Sprintf("%s must be a boolean", key))
	}
	return b, nil
}

// queryFloat parses an optional numeric query parameter
func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domain.Validation(fmt.Sprintf("%s must be a number", key))
	}
	return &f, nil
}
