// Package validation checks request payloads against their `validate` struct
// tags and turns those tags into human-readable constraint descriptions.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"brewery/internal/model"
)

// FieldError describes a single failed constraint on a payload field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"-"`
	Message string `json:"message"`
}

// Errors is returned by Validate when one or more constraints fail.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator wraps a configured go-playground validator.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator that reports JSON field names and knows the
// notblank and beerstyle rules.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("beerstyle", func(fl validator.FieldLevel) bool {
		return model.BeerStyle(fl.Field().String()).Valid()
	})
	return &Validator{v: v}
}

// Validate checks s and returns *Errors when any constraint fails.
func (val *Validator) Validate(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	out := &Errors{Fields: make([]FieldError, 0, len(ves))}
	for _, fe := range ves {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: describeRule(fe.Tag(), fe.Param(), fe.Kind()),
		})
	}
	return out
}

// Descriptions returns the constraint descriptions for the field of struct
// type t whose JSON name is field. Unknown fields have no constraints.
func Descriptions(t any, field string) []string {
	rt := reflect.TypeOf(t)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if jsonName(sf) != field {
			continue
		}
		return describeTag(sf.Tag.Get("validate"), sf.Type.Kind())
	}
	return nil
}

func describeTag(tag string, kind reflect.Kind) []string {
	if tag == "" || tag == "-" {
		return nil
	}
	rules := strings.Split(tag, ",")
	params := make(map[string]string, len(rules))
	for _, r := range rules {
		name, param, _ := strings.Cut(r, "=")
		params[name] = param
	}

	var out []string
	for _, r := range rules {
		name, param, _ := strings.Cut(r, "=")
		switch name {
		case "min":
			if hi, ok := params["max"]; ok {
				out = append(out, describeRule("size", param+","+hi, kind))
				continue
			}
		case "max":
			if _, ok := params["min"]; ok {
				continue
			}
		}
		if d := describeRule(name, param, kind); d != "" {
			out = append(out, d)
		}
	}
	return out
}

func describeRule(rule, param string, kind reflect.Kind) string {
	switch rule {
	case "isdefault":
		return "Must be null"
	case "required":
		return "Must not be null"
	case "notblank":
		return "Must not be blank"
	case "size":
		lo, hi, _ := strings.Cut(param, ",")
		return fmt.Sprintf("Size must be between %s and %s inclusive", lo, hi)
	case "min":
		if kind == reflect.String {
			return fmt.Sprintf("Size must be at least %s", param)
		}
		return fmt.Sprintf("Must be at least %s", param)
	case "max":
		if kind == reflect.String {
			return fmt.Sprintf("Size must be at most %s", param)
		}
		return fmt.Sprintf("Must be at most %s", param)
	case "gt":
		if param == "0" {
			return "Must be positive"
		}
		return fmt.Sprintf("Must be greater than %s", param)
	case "gte":
		if param == "0" {
			return "Must be positive or zero"
		}
		return fmt.Sprintf("Must be greater than or equal to %s", param)
	case "oneof":
		return fmt.Sprintf("Must be one of [%s]", strings.Join(strings.Fields(param), ", "))
	case "beerstyle":
		styles := model.BeerStyles()
		names := make([]string, len(styles))
		for i, s := range styles {
			names[i] = string(s)
		}
		return fmt.Sprintf("Must be one of [%s]", strings.Join(names, ", "))
	default:
		return ""
	}
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return sf.Name
	}
	return name
}
