package restdocs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Operation is one documented request/response exchange.
type Operation struct {
	Name     string
	BaseURL  *url.URL
	Request  *Request
	Response Response
}

// Response is the captured response of an operation.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Snippet verifies an operation against its descriptors and renders it.
type Snippet interface {
	Name() string
	Render(op *Operation) ([]byte, error)
}

func sortedHeaderLines(h http.Header, skip map[string]bool) []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		if skip[http.CanonicalHeaderKey(k)] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		for _, v := range h[k] {
			lines = append(lines, http.CanonicalHeaderKey(k)+": "+v)
		}
	}
	return lines
}

func isJSON(h http.Header) bool {
	ct := h.Get("Content-Type")
	return strings.HasPrefix(ct, "application/json") || strings.Contains(ct, "+json")
}

func prettyJSON(b []byte) []byte {
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return b
	}
	return out.Bytes()
}

func headerBody(h http.Header, body []byte, pretty bool) []byte {
	if pretty && len(body) > 0 && isJSON(h) {
		return prettyJSON(body)
	}
	return body
}

type curlSnippet struct{}

func (curlSnippet) Name() string { return "curl-request" }

func (curlSnippet) Render(op *Operation) ([]byte, error) {
	var b strings.Builder
	b.WriteString("[source,bash]\n----\n")
	fmt.Fprintf(&b, "$ curl %s -i -X %s", shellQuote(op.BaseURL.String()+op.Request.Path), op.Request.Method)
	for _, line := range sortedHeaderLines(op.Request.Header, map[string]bool{"Host": true, "Content-Length": true}) {
		fmt.Fprintf(&b, " \\\n    -H %s", shellQuote(line))
	}
	if len(op.Request.Body) > 0 {
		fmt.Fprintf(&b, " \\\n    -d %s", shellQuote(string(op.Request.Body)))
	}
	b.WriteString("\n----\n")
	return []byte(b.String()), nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

type httpRequestSnippet struct {
	pretty bool
}

func (httpRequestSnippet) Name() string { return "http-request" }

func (s httpRequestSnippet) Render(op *Operation) ([]byte, error) {
	var b strings.Builder
	b.WriteString("[source,http,options=\"nowrap\"]\n----\n")
	fmt.Fprintf(&b, "%s %s HTTP/1.1\n", op.Request.Method, op.Request.Path)

	h := op.Request.Header.Clone()
	if len(op.Request.Body) > 0 {
		h.Set("Content-Length", fmt.Sprint(len(op.Request.Body)))
	}
	h.Set("Host", op.BaseURL.Host)
	for _, line := range sortedHeaderLines(h, nil) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	b.Write(headerBody(op.Request.Header, op.Request.Body, s.pretty))
	b.WriteString("\n----\n")
	return []byte(b.String()), nil
}

type httpResponseSnippet struct {
	pretty bool
	skip   map[string]bool
}

func (httpResponseSnippet) Name() string { return "http-response" }

func (s httpResponseSnippet) Render(op *Operation) ([]byte, error) {
	var b strings.Builder
	b.WriteString("[source,http,options=\"nowrap\"]\n----\n")
	fmt.Fprintf(&b, "HTTP/1.1 %d %s\n", op.Response.Status, http.StatusText(op.Response.Status))
	for _, line := range sortedHeaderLines(op.Response.Header, s.skip) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	b.Write(headerBody(op.Response.Header, op.Response.Body, s.pretty))
	b.WriteString("\n----\n")
	return []byte(b.String()), nil
}

// table renders an asciidoc table with the given header and rows.
func table(title string, header []string, rows [][]string) []byte {
	var b strings.Builder
	if title != "" {
		b.WriteString("." + title + "\n")
	}
	b.WriteString("|===\n")
	b.WriteString("|" + strings.Join(header, "|") + "\n")
	for _, row := range rows {
		b.WriteString("\n")
		for _, cell := range row {
			b.WriteString("|" + escapeCell(cell) + "\n")
		}
	}
	b.WriteString("\n|===\n")
	return []byte(b.String())
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func literal(s string) string {
	return "`+" + s + "+`"
}

func attributeColumns(sets ...attributes) []string {
	var keys []string
	seen := map[string]bool{}
	for _, set := range sets {
		for _, a := range set {
			if !seen[a.Key] {
				seen[a.Key] = true
				keys = append(keys, a.Key)
			}
		}
	}
	return keys
}

func columnTitle(key string) string {
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
