// Package validation checks generation parameters before any geometry is built.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidParams is matched by every error Struct returns.
var ErrInvalidParams = errors.New("invalid parameters")

// ParamError reports the first parameter that failed validation.
type ParamError struct {
	Field  string // yaml name of the offending parameter
	Value  any
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s (got %v)", e.Field, e.Reason, e.Value)
}

// Is lets errors.Is(err, ErrInvalidParams) match any ParamError.
func (e *ParamError) Is(target error) bool {
	return target == ErrInvalidParams
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by the names users write in config files.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
}

// Struct validates v against its `validate` tags. It returns nil or a
// *ParamError describing the first failing field.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	fe := fieldErrs[0]
	return &ParamError{
		Field:  fe.Field(),
		Value:  fe.Value(),
		Reason: reason(fe),
	}
}

// Finite reports a *ParamError naming field when any of values is NaN or
// infinite.
func Finite(field string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ParamError{Field: field, Value: v, Reason: "must be finite"}
		}
	}
	return nil
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	case "ltefield":
		return "must not exceed " + fieldName(fe)
	case "oneof":
		return "must be one of " + fe.Param()
	case "required":
		return "is required"
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// fieldName resolves the yaml name of a cross-field parameter.
func fieldName(fe validator.FieldError) string {
	return toSnake(fe.Param())
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
