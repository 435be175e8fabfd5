package commands

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	jsoniter "github.com/json-iterator/go"

	"github.com/jroosing/awsrest/internal/protocol"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errInvalidFlag = errors.New("invalid flag")

// printJSON pretty-prints a JSON document, dropping nulls. A non-empty query
// is evaluated as JSONPath against the document first.
func printJSON(w io.Writer, raw []byte, query string) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	doc = dropNulls(doc)

	if q := strings.TrimSpace(query); q != "" {
		v, err := jsonpath.Get(q, doc)
		if err != nil {
			return fmt.Errorf("query %q: %w", q, err)
		}
		doc = v
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// printValue renders a model through its exported fields.
func printValue(w io.Writer, v any, query string) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return printJSON(w, raw, query)
}

func dropNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			if e == nil {
				delete(t, k)
				continue
			}
			t[k] = dropNulls(e)
		}
	case []any:
		for i, e := range t {
			t[i] = dropNulls(e)
		}
	}
	return v
}

// printRequest writes a marshalled request in HTTP/1.1 message style:
// request line, sorted headers, blank line, body.
func printRequest(w io.Writer, req *protocol.Request, endpoint string) error {
	rawURL, err := req.URL(endpoint)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", req.Method, rawURL)
	names := make([]string, 0, len(req.Headers))
	for name := range req.Headers {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		for _, v := range req.Headers[name] {
			fmt.Fprintf(&b, "%s: %s\n", name, v)
		}
	}
	if len(req.Content) > 0 {
		b.WriteString("\n")
		b.Write(req.Content)
		b.WriteString("\n")
	}
	_, err = io.WriteString(w, b.String())
	return err
}
