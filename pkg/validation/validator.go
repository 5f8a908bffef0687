package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// FieldError is one violated rule, keyed by the JSON field name.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Messages overrides default messages; keys are "field.tag" (e.g. "email.email").
type Messages map[string]string

// New returns a validator that reports JSON field names and knows the project aliases.
func New() *validator.Validate {
	v := validator.New()
	configure(v)
	return v
}

// Init configures the global validator used by Gin's binding.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		configure(v)
	}
}

func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("pwd", fmt.Sprintf("min=%d", MinPasswordLength))
	v.RegisterAlias("nonzero", "required")
}

// Struct validates s and returns every violation in field declaration order.
// A nil result means s is valid.
func Struct(v *validator.Validate, s any, msgs Messages) ([]FieldError, error) {
	err := v.Struct(s)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := msgs[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " " + formatFieldError(fe)
		}
		out = append(out, FieldError{Field: fe.Field(), Tag: fe.Tag(), Message: msg})
	}
	return out, nil
}

// ToDetails converts validation/binding errors into a map[field]message suitable for API error.details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	// Fallback
	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required", "nonzero":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if param != "" {
			if isNumberKind(fe.Kind()) {
				return "must be at least " + param
			}
			return "must be at least " + param + " characters long"
		}
		return "too small"
	case "max":
		if param != "" {
			if isNumberKind(fe.Kind()) {
				return "must be at most " + param
			}
			return "must be at most " + param + " characters long"
		}
		return "too large"
	case "len":
		return "must be exactly " + param + " characters long"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "pwd":
		return fmt.Sprintf("must be at least %d characters long", MinPasswordLength)
	default:
		if param != "" {
			return fmt.Sprintf("failed '%s' validation with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("failed '%s' validation", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
