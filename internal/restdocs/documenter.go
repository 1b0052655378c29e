package restdocs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
)

// DefaultBaseURL is the scheme and host shown in rendered snippets.
const DefaultBaseURL = "http://localhost:8080"

// Documenter verifies and renders documented operations into a SnippetStore.
type Documenter struct {
	store       SnippetStore
	baseURL     *url.URL
	pretty      bool
	skipHeaders map[string]bool
}

// Option configures a Documenter.
type Option func(*Documenter)

// WithBaseURL sets the scheme and host shown in curl and HTTP snippets.
func WithBaseURL(raw string) Option {
	return func(d *Documenter) {
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			d.baseURL = u
		}
	}
}

// WithPrettyPrint indents JSON bodies in HTTP snippets.
func WithPrettyPrint() Option {
	return func(d *Documenter) { d.pretty = true }
}

// WithoutResponseHeaders drops volatile headers from HTTP response snippets.
// Date is always dropped.
func WithoutResponseHeaders(names ...string) Option {
	return func(d *Documenter) {
		for _, n := range names {
			d.skipHeaders[http.CanonicalHeaderKey(n)] = true
		}
	}
}

// New returns a Documenter writing to store.
func New(store SnippetStore, opts ...Option) *Documenter {
	base, _ := url.Parse(DefaultBaseURL)
	d := &Documenter{
		store:       store,
		baseURL:     base,
		skipHeaders: map[string]bool{"Date": true},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Document verifies req/resp against snippets and, when every snippet is
// satisfied, saves curl-request, http-request, http-response and the given
// snippets under name. resp.Body is buffered and replaced so callers can
// still read it. Nothing is saved when verification fails.
func (d *Documenter) Document(ctx context.Context, name string, req *Request, resp *http.Response, snippets ...Snippet) error {
	if req == nil || resp == nil {
		return errors.New("restdocs: request and response are required")
	}

	var body []byte
	if resp.Body != nil {
		b, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return fmt.Errorf("restdocs: read response body: %w", err)
		}
		body = b
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	op := &Operation{
		Name:    name,
		BaseURL: d.baseURL,
		Request: req,
		Response: Response{
			Status: resp.StatusCode,
			Header: resp.Header.Clone(),
			Body:   body,
		},
	}

	all := append([]Snippet{
		curlSnippet{},
		httpRequestSnippet{pretty: d.pretty},
		httpResponseSnippet{pretty: d.pretty, skip: d.skipHeaders},
	}, snippets...)

	rendered := make(map[string][]byte, len(all))
	order := make([]string, 0, len(all))
	var errs []error
	for _, s := range all {
		out, err := s.Render(op)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		file := path.Join(name, s.Name()+".adoc")
		rendered[file] = out
		order = append(order, file)
	}
	if len(errs) > 0 {
		return fmt.Errorf("restdocs: document %s: %w", name, errors.Join(errs...))
	}

	for _, file := range order {
		if err := d.store.Save(ctx, file, rendered[file]); err != nil {
			return fmt.Errorf("restdocs: save %s: %w", file, err)
		}
	}
	return nil
}
