package protocol

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Protocol identifies the wire format of a request.
type Protocol string

const (
	RestJSON Protocol = "rest-json"
	RestXML  Protocol = "rest-xml"
)

const (
	HeaderContentLength = "Content-Length"
	HeaderContentType   = "Content-Type"
)

// Request is the output of a marshaller: everything a transport needs to
// execute one API call, minus endpoint and signing.
type Request struct {
	ServiceName  string
	Operation    string
	Protocol     Protocol
	Method       string
	ResourcePath string
	Query        url.Values
	Headers      http.Header
	Content      []byte
}

// NewRequest returns an empty request for the given operation.
func NewRequest(serviceName, operation string, p Protocol, method string) *Request {
	return &Request{
		ServiceName: serviceName,
		Operation:   operation,
		Protocol:    p,
		Method:      method,
		Query:       url.Values{},
		Headers:     http.Header{},
	}
}

// AddHeader sets a header, replacing any previous value.
func (r *Request) AddHeader(name, value string) {
	r.Headers.Set(name, value)
}

// HasHeader reports whether the header is present.
func (r *Request) HasHeader(name string) bool {
	_, ok := r.Headers[http.CanonicalHeaderKey(name)]
	return ok
}

// SetContent stores the body and always sets Content-Length from it.
// Content-Type is only added when the request does not carry one yet and
// contentType is non-empty.
func (r *Request) SetContent(body []byte, contentType string) {
	r.Content = body
	r.AddHeader(HeaderContentLength, strconv.Itoa(len(body)))
	if contentType != "" && !r.HasHeader(HeaderContentType) {
		r.AddHeader(HeaderContentType, contentType)
	}
}

// AddQueryParam sets a query parameter when v is non-nil.
func (r *Request) AddQueryParam(name string, v *string) {
	if v == nil {
		return
	}
	r.Query.Set(name, *v)
}

// URL joins the endpoint with the resource path and query string.
func (r *Request) URL(endpoint string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", fmt.Errorf("%s: endpoint is empty", r.Operation)
	}
	base, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("%s: parse endpoint: %w", r.Operation, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("%s: endpoint %q must include scheme and host", r.Operation, endpoint)
	}

	raw := strings.TrimRight(endpoint, "/") + r.ResourcePath
	if len(r.Query) > 0 {
		raw += "?" + r.Query.Encode()
	}
	if _, err := url.Parse(raw); err != nil {
		return "", fmt.Errorf("%s: build url: %w", r.Operation, err)
	}
	return raw, nil
}
