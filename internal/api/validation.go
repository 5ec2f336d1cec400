package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yamato-dev/kotoba-api/internal/domain"
)

// newValidator builds the validator used for request DTOs. Field names
// in violation messages come from the json tag, so clients see "en_word"
// rather than "EnWord".
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// checkRequest validates a decoded request DTO and converts the result
// into domain.FieldViolations so a 400 names every failing field.
func checkRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// InvalidValidationError only happens on a non-struct input,
		// which would be a programming error here.
		return err
	}

	var violations domain.FieldViolations
	for _, fieldErr := range validationErrs {
		violations.Add(fieldErr.Field(), tagMessage(fieldErr.Tag()))
	}
	return violations.ErrOrNil()
}

// combineViolations merges the DTO-stage and domain-stage validation
// results so a single 400 names every failing field. The stages overlap
// on required and length checks, so duplicates are collapsed keeping the
// first message reported for a field. Any non-violation error wins
// outright.
func combineViolations(errs ...error) error {
	var combined domain.FieldViolations
	seen := make(map[string]bool)

	for _, err := range errs {
		if err == nil {
			continue
		}

		var violations domain.FieldViolations
		if !errors.As(err, &violations) {
			return err
		}

		for _, violation := range violations {
			if seen[violation.Field] {
				continue
			}
			seen[violation.Field] = true
			combined = append(combined, violation)
		}
	}

	return combined.ErrOrNil()
}

// tagMessage maps validation tags to user-friendly error messages.
func tagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "uuid":
		return "is not a valid UUID"
	default:
		return "validation failed"
	}
}
