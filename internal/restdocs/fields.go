package restdocs

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

type payloadSide int

const (
	requestPayload payloadSide = iota
	responsePayload
)

type fieldsSnippet struct {
	side        payloadSide
	descriptors []*FieldDescriptor
}

// RequestFields documents the JSON fields of the request body.
func RequestFields(descriptors ...*FieldDescriptor) Snippet {
	return &fieldsSnippet{side: requestPayload, descriptors: descriptors}
}

// ResponseFields documents the JSON fields of the response body.
func ResponseFields(descriptors ...*FieldDescriptor) Snippet {
	return &fieldsSnippet{side: responsePayload, descriptors: descriptors}
}

func (s *fieldsSnippet) Name() string {
	if s.side == requestPayload {
		return "request-fields"
	}
	return "response-fields"
}

func (s *fieldsSnippet) payload(op *Operation) []byte {
	if s.side == requestPayload {
		return op.Request.Body
	}
	return op.Response.Body
}

func (s *fieldsSnippet) Render(op *Operation) ([]byte, error) {
	body := s.payload(op)
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, fmt.Errorf("%s: cannot document fields of an empty payload", s.Name())
	}
	data, err := oj.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%s: payload is not JSON: %w", s.Name(), err)
	}

	types := make([]FieldType, len(s.descriptors))
	var missing, untyped, mismatched []string
	for i, d := range s.descriptors {
		x, err := jp.ParseString(toJSONPath(d.path))
		if err != nil {
			return nil, fmt.Errorf("%s: invalid field path %q: %w", s.Name(), d.path, err)
		}
		values := x.Get(data)
		if len(values) == 0 {
			switch {
			case !d.optional:
				missing = append(missing, d.path)
			case d.fieldType == "":
				untyped = append(untyped, d.path)
			}
			types[i] = d.fieldType
			continue
		}
		actual := typeOfValues(values, d.optional)
		if d.fieldType != "" && actual != d.fieldType && !(d.optional && actual == TypeNull) {
			mismatched = append(mismatched, fmt.Sprintf("%s (documented %s, actual %s)", d.path, d.fieldType, actual))
		}
		types[i] = actual
		if d.fieldType != "" {
			types[i] = d.fieldType
		}
	}

	undocumented := s.undocumented(data)

	var problems []string
	if len(undocumented) > 0 {
		problems = append(problems, "the following parts of the payload were not documented: "+strings.Join(undocumented, ", "))
	}
	if len(missing) > 0 {
		problems = append(problems, "fields with the following paths were not found in the payload: "+strings.Join(missing, ", "))
	}
	if len(untyped) > 0 {
		problems = append(problems, "cannot determine the type of absent optional fields, set one with OfType: "+strings.Join(untyped, ", "))
	}
	if len(mismatched) > 0 {
		problems = append(problems, "fields with mismatched types: "+strings.Join(mismatched, ", "))
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%s: %s", s.Name(), strings.Join(problems, "; "))
	}

	sets := make([]attributes, len(s.descriptors))
	for i, d := range s.descriptors {
		sets[i] = d.attrs
	}
	extra := attributeColumns(sets...)

	header := []string{"Path", "Type", "Description"}
	for _, k := range extra {
		header = append(header, columnTitle(k))
	}
	rows := make([][]string, 0, len(s.descriptors))
	for i, d := range s.descriptors {
		row := []string{literal(d.path), literal(string(types[i])), d.description}
		for _, k := range extra {
			v, _ := d.attrs.get(k)
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return table("", header, rows), nil
}

func (s *fieldsSnippet) undocumented(data any) []string {
	var leaves []string
	collectLeaves("", data, &leaves)

	var out []string
	for _, leaf := range leaves {
		if !s.covers(leaf) {
			out = append(out, leaf)
		}
	}
	sort.Strings(out)
	return out
}

func (s *fieldsSnippet) covers(leaf string) bool {
	for _, d := range s.descriptors {
		if d.path == leaf {
			return true
		}
		if d.subsection && (strings.HasPrefix(leaf, d.path+".") || strings.HasPrefix(leaf, d.path+"[]")) {
			return true
		}
	}
	return false
}

// collectLeaves records every scalar, null, empty container and scalar array
// in data using dotted paths with [] for array elements.
func collectLeaves(prefix string, data any, out *[]string) {
	switch v := data.(type) {
	case map[string]any:
		if len(v) == 0 && prefix != "" {
			*out = append(*out, prefix)
			return
		}
		for k, child := range v {
			collectLeaves(joinPath(prefix, k), child, out)
		}
	case []any:
		nested := false
		for _, el := range v {
			switch el.(type) {
			case map[string]any, []any:
				nested = true
				collectLeaves(prefix+"[]", el, out)
			}
		}
		if !nested && prefix != "" {
			*out = append(*out, prefix)
		}
	default:
		if prefix != "" {
			*out = append(*out, prefix)
		}
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func toJSONPath(path string) string {
	if strings.HasPrefix(path, "$") {
		return path
	}
	return "$." + strings.ReplaceAll(path, "[]", "[*]")
}

func typeOf(v any) FieldType {
	switch v.(type) {
	case nil:
		return TypeNull
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case int64, float64, json.Number:
		return TypeNumber
	case map[string]any:
		return TypeObject
	case []any:
		return TypeArray
	default:
		return TypeVaries
	}
}

func typeOfValues(values []any, ignoreNull bool) FieldType {
	var found FieldType
	for _, v := range values {
		t := typeOf(v)
		if ignoreNull && t == TypeNull {
			continue
		}
		if found == "" {
			found = t
		} else if found != t {
			return TypeVaries
		}
	}
	if found == "" {
		return TypeNull
	}
	return found
}
