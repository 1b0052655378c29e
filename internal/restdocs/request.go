// Package restdocs documents HTTP endpoints from the requests and responses
// exercised by handler tests. A documented operation is verified against its
// descriptors (undocumented payload fields or path parameters fail the test)
// and rendered as asciidoc snippets.
package restdocs

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
)

var templateVar = regexp.MustCompile(`\{([^{}/]+)\}`)

// Request is a test request built from a URI template such as
// /api/v2/beer/{beerId}. The template is kept so path parameters can be
// documented.
type Request struct {
	Method   string
	Template string
	Path     string
	Header   http.Header
	Body     []byte
}

// NewRequest expands template with vars, in order, and returns the request.
func NewRequest(method, template string, body []byte, vars ...any) (*Request, error) {
	names := templateVariables(template)
	if len(names) != len(vars) {
		return nil, fmt.Errorf("template %q has %d variables, got %d values", template, len(names), len(vars))
	}
	i := 0
	path := templateVar.ReplaceAllStringFunc(template, func(string) string {
		v := url.PathEscape(fmt.Sprint(vars[i]))
		i++
		return v
	})
	return &Request{
		Method:   method,
		Template: template,
		Path:     path,
		Header:   make(http.Header),
		Body:     body,
	}, nil
}

// Get is NewRequest for GET without a body. It panics when vars do not match
// the template.
func Get(template string, vars ...any) *Request {
	return mustRequest(http.MethodGet, template, nil, vars)
}

// Post is NewRequest for POST. It panics when vars do not match the template.
func Post(template string, body []byte, vars ...any) *Request {
	return mustRequest(http.MethodPost, template, body, vars)
}

// Put is NewRequest for PUT. It panics when vars do not match the template.
func Put(template string, body []byte, vars ...any) *Request {
	return mustRequest(http.MethodPut, template, body, vars)
}

// Delete is NewRequest for DELETE without a body. It panics when vars do not
// match the template.
func Delete(template string, vars ...any) *Request {
	return mustRequest(http.MethodDelete, template, nil, vars)
}

func mustRequest(method, template string, body []byte, vars []any) *Request {
	r, err := NewRequest(method, template, body, vars...)
	if err != nil {
		panic(err)
	}
	return r
}

// Accept sets the Accept header and returns r.
func (r *Request) Accept(mediaType string) *Request {
	r.Header.Set("Accept", mediaType)
	return r
}

// ContentType sets the Content-Type header and returns r.
func (r *Request) ContentType(mediaType string) *Request {
	r.Header.Set("Content-Type", mediaType)
	return r
}

// HTTP returns a fresh *http.Request for the in-process server. It can be
// called more than once.
func (r *Request) HTTP() *http.Request {
	req := httptest.NewRequest(r.Method, r.Path, bytes.NewReader(r.Body))
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req
}

func templateVariables(template string) []string {
	matches := templateVar.FindAllStringSubmatch(template, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
