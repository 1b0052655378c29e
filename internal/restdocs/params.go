package restdocs

import (
	"fmt"
	"sort"
	"strings"
)

type pathParametersSnippet struct {
	descriptors []*ParameterDescriptor
}

// PathParameters documents the variables of the request's URI template.
func PathParameters(descriptors ...*ParameterDescriptor) Snippet {
	return &pathParametersSnippet{descriptors: descriptors}
}

func (*pathParametersSnippet) Name() string { return "path-parameters" }

func (s *pathParametersSnippet) Render(op *Operation) ([]byte, error) {
	actual := map[string]bool{}
	for _, n := range templateVariables(op.Request.Template) {
		actual[n] = true
	}
	documented := map[string]bool{}
	var missing []string
	for _, d := range s.descriptors {
		documented[d.name] = true
		if !actual[d.name] && !d.optional {
			missing = append(missing, d.name)
		}
	}
	var undocumented []string
	for n := range actual {
		if !documented[n] {
			undocumented = append(undocumented, n)
		}
	}
	sort.Strings(undocumented)

	var problems []string
	if len(undocumented) > 0 {
		problems = append(problems, "path parameters with the following names were not documented: "+strings.Join(undocumented, ", "))
	}
	if len(missing) > 0 {
		problems = append(problems, "path parameters with the following names were not found in the request: "+strings.Join(missing, ", "))
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%s: %s", s.Name(), strings.Join(problems, "; "))
	}

	sets := make([]attributes, len(s.descriptors))
	for i, d := range s.descriptors {
		sets[i] = d.attrs
	}
	extra := attributeColumns(sets...)

	header := []string{"Parameter", "Description"}
	for _, k := range extra {
		header = append(header, columnTitle(k))
	}
	rows := make([][]string, 0, len(s.descriptors))
	for _, d := range s.descriptors {
		row := []string{literal(d.name), d.description}
		for _, k := range extra {
			v, _ := d.attrs.get(k)
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return table(op.Request.Template, header, rows), nil
}
