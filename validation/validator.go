package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Violation is one failed rule on one field. Field is the dotted path built from json names.
type Violation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
	Value any    `json:"value,omitempty"`
}

type Violations []Violation

func (v Violations) Error() string {
	messages := make([]string, 0, len(v))
	for _, violation := range v {
		rule := violation.Rule
		if violation.Param != "" {
			rule = fmt.Sprintf("%s=%s", rule, violation.Param)
		}
		messages = append(messages, fmt.Sprintf("%s: %s", violation.Field, rule))
	}
	return strings.Join(messages, "; ")
}

func (v Violations) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, violation := range v {
		fields = append(fields, violation.Field)
	}
	return fields
}

func (v Violations) Has(field string, rule string) bool {
	for _, violation := range v {
		if violation.Field == field && violation.Rule == rule {
			return true
		}
	}
	return false
}

var (
	defaultValidator     *validator.Validate
	defaultValidatorOnce sync.Once
)

// DefaultValidator is shared by all extractors without their own validator.
func DefaultValidator() *validator.Validate {
	defaultValidatorOnce.Do(func() {
		defaultValidator = NewValidator()
	})
	return defaultValidator
}

// NewValidator returns a validator reporting fields by their json name.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

// validate runs the struct rules of v against body. Bodies that are not structs carry no rules.
func validate(v *validator.Validate, body any) Violations {
	var validationErrors validator.ValidationErrors
	if err := v.Struct(body); !errors.As(err, &validationErrors) {
		return nil
	}

	violations := make(Violations, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		field := fieldErr.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		violations = append(violations, Violation{
			Field: field,
			Rule:  fieldErr.Tag(),
			Param: fieldErr.Param(),
			Value: fieldErr.Value(),
		})
	}
	return violations
}
