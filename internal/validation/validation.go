// Package validation checks domain entities against their field rules. Every
// check returns all violations at once, in field order.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError is one violated rule.
type FieldError struct {
	Field   string
	Message string
}

// Errors is an ordered list of violations. An empty list means valid.
type Errors []FieldError

func (e Errors) Valid() bool { return len(e) == 0 }

// ByField groups messages by field, keeping per-field order.
func (e Errors) ByField() map[string][]string {
	fields := make(map[string][]string, len(e))
	for _, fe := range e {
		fields[fe.Field] = append(fields[fe.Field], fe.Message)
	}
	return fields
}

func (e *Errors) add(field, format string, args ...any) {
	*e = append(*e, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Clock supplies the current time for rules that depend on it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)

// newEngine builds a validator that reports json field names and knows the
// username character rule.
func newEngine() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	return v
}

// structErrors runs the tag rules on entity and converts the result.
func structErrors(engine *validator.Validate, entity any) Errors {
	var out Errors
	err := engine.Struct(entity)
	if err == nil {
		return out
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		out.add("entity", "%s", err.Error())
		return out
	}
	for _, fe := range fieldErrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters.", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "username":
		return fmt.Sprintf("%s may only contain letters, digits, hyphens and underscores.", field)
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}
