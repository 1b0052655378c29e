package restdocs

import (
	"strings"

	"brewery/internal/validation"
)

// ConstrainedFields builds field descriptors carrying a "constraints"
// attribute derived from the validate tags of a payload type.
type ConstrainedFields struct {
	target any
}

// NewConstrainedFields returns ConstrainedFields for the struct type of target.
func NewConstrainedFields(target any) ConstrainedFields {
	return ConstrainedFields{target: target}
}

// WithPath is FieldWithPath with the constraints of the matching struct field.
func (c ConstrainedFields) WithPath(path string) *FieldDescriptor {
	desc := validation.Descriptions(c.target, path)
	return FieldWithPath(path).Attributes(Key("constraints").Value(strings.Join(desc, ". ")))
}
