package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"towerinv/pkg/domain"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report fields under their json names, matching request bodies.
	structValidator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Enum check shared with the Action helper.
	_ = structValidator.RegisterValidation("action", func(fl validator.FieldLevel) bool {
		return domain.ActionType(fl.Field().String()).Valid()
	})
}

// FieldError describes one failed rule from struct validation.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Value string `json:"value,omitempty"`
}

// Fields runs v's validate tags and lists every failure. An empty result
// means v passed.
func Fields(v any) []FieldError {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "request", Rule: "struct"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag(), Value: fe.Param()})
	}
	return out
}

// Struct runs v's validate tags and folds any failures into a single
// invalid-argument error naming every offending field.
func Struct(v any) error {
	fields := Fields(v)
	if len(fields) == 0 {
		return nil
	}
	details := make([]string, 0, len(fields))
	for _, fe := range fields {
		rule := fe.Rule
		if fe.Value != "" {
			rule += "=" + fe.Value
		}
		details = append(details, fmt.Sprintf("%s fails %s", fe.Field, rule))
	}
	return domain.ErrInvalid{Field: "request", Reason: strings.Join(details, "; ")}
}
