package restdocs

// FieldType names the JSON type of a documented field.
type FieldType string

const (
	TypeString  FieldType = "String"
	TypeNumber  FieldType = "Number"
	TypeBoolean FieldType = "Boolean"
	TypeObject  FieldType = "Object"
	TypeArray   FieldType = "Array"
	TypeNull    FieldType = "Null"
	TypeVaries  FieldType = "Varies"
)

// Attribute is an extra named column rendered next to a descriptor.
type Attribute struct {
	Key   string
	Value string
}

// AttributeKey starts an Attribute: Key("constraints").Value("Must not be null").
type AttributeKey string

// Key returns an AttributeKey.
func Key(k string) AttributeKey { return AttributeKey(k) }

// Value completes the attribute.
func (k AttributeKey) Value(v string) Attribute { return Attribute{Key: string(k), Value: v} }

type attributes []Attribute

func (a attributes) get(key string) (string, bool) {
	for _, at := range a {
		if at.Key == key {
			return at.Value, true
		}
	}
	return "", false
}

// FieldDescriptor documents one field of a JSON payload. Paths use dots for
// nesting and [] for array elements, e.g. items[].name.
type FieldDescriptor struct {
	path        string
	fieldType   FieldType
	description string
	optional    bool
	subsection  bool
	attrs       attributes
}

// FieldWithPath documents the field at path.
func FieldWithPath(path string) *FieldDescriptor {
	return &FieldDescriptor{path: path}
}

// SubsectionWithPath documents the field at path and everything beneath it.
func SubsectionWithPath(path string) *FieldDescriptor {
	return &FieldDescriptor{path: path, subsection: true}
}

// Description sets the human-readable description.
func (f *FieldDescriptor) Description(d string) *FieldDescriptor {
	f.description = d
	return f
}

// OfType pins the expected JSON type instead of inferring it from the payload.
func (f *FieldDescriptor) OfType(t FieldType) *FieldDescriptor {
	f.fieldType = t
	return f
}

// Optional allows the field to be absent from the payload.
func (f *FieldDescriptor) Optional() *FieldDescriptor {
	f.optional = true
	return f
}

// Attributes adds extra columns to the rendered table.
func (f *FieldDescriptor) Attributes(attrs ...Attribute) *FieldDescriptor {
	f.attrs = append(f.attrs, attrs...)
	return f
}

// Path returns the documented path.
func (f *FieldDescriptor) Path() string { return f.path }

// ParameterDescriptor documents one path parameter.
type ParameterDescriptor struct {
	name        string
	description string
	optional    bool
	attrs       attributes
}

// ParameterWithName documents the path parameter name.
func ParameterWithName(name string) *ParameterDescriptor {
	return &ParameterDescriptor{name: name}
}

// Description sets the human-readable description.
func (p *ParameterDescriptor) Description(d string) *ParameterDescriptor {
	p.description = d
	return p
}

// Optional allows the parameter to be missing from the template.
func (p *ParameterDescriptor) Optional() *ParameterDescriptor {
	p.optional = true
	return p
}

// Attributes adds extra columns to the rendered table.
func (p *ParameterDescriptor) Attributes(attrs ...Attribute) *ParameterDescriptor {
	p.attrs = append(p.attrs, attrs...)
	return p
}
