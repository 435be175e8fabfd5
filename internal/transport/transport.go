// Package transport executes marshalled requests over HTTP.
//
// It is deliberately thin: one attempt per call, no retries and no
// pagination. Requests are signed with SigV4 when static credentials are
// configured; otherwise they are sent unsigned, which is what the local stub
// endpoint expects.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws/credentials"
	v4 "github.com/aws/aws-sdk-go/aws/signer/v4"
	"github.com/google/uuid"
	"github.com/jroosing/awsrest/internal/protocol"
)

const (
	HeaderUserAgent    = "User-Agent"
	HeaderInvocationID = "Amz-Sdk-Invocation-Id"

	// UserAgent is sent with every request.
	UserAgent = "awsrest/1.0"

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 10 << 20
)

// Endpoint is where a service is reached and how requests to it are signed.
type Endpoint struct {
	URL           string
	SigningName   string
	SigningRegion string
}

// Response is a fully-read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	RequestID  string
}

// Executor sends one request and returns the response. A non-2xx status is
// returned as an error.
type Executor interface {
	Do(ctx context.Context, req *protocol.Request, ep Endpoint) (*Response, error)
}

// HTTPExecutor is the net/http implementation of Executor.
type HTTPExecutor struct {
	client  *http.Client
	signer  *v4.Signer
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time
}

// Option configures an HTTPExecutor.
type Option func(*HTTPExecutor)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(e *HTTPExecutor) { e.client = c }
}

// WithCredentials enables SigV4 signing with static credentials. An empty
// access key leaves signing disabled.
func WithCredentials(accessKeyID, secretAccessKey, sessionToken string) Option {
	return func(e *HTTPExecutor) {
		if accessKeyID == "" {
			return
		}
		creds := credentials.NewStaticCredentials(accessKeyID, secretAccessKey, sessionToken)
		e.signer = v4.NewSigner(creds)
	}
}

// WithLogger sets the logger used for per-call debug output.
func WithLogger(l *slog.Logger) Option {
	return func(e *HTTPExecutor) { e.logger = l }
}

// WithTimeout bounds every call. Zero means no per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *HTTPExecutor) { e.timeout = d }
}

// NewHTTPExecutor returns an executor with the given options applied.
func NewHTTPExecutor(opts ...Option) *HTTPExecutor {
	e := &HTTPExecutor{
		client: http.DefaultClient,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Signed reports whether requests are SigV4-signed.
func (e *HTTPExecutor) Signed() bool { return e.signer != nil }

// Do implements Executor.
func (e *HTTPExecutor) Do(ctx context.Context, req *protocol.Request, ep Endpoint) (*Response, error) {
	if req == nil {
		return nil, protocol.InvalidArgument("Do")
	}
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	httpReq, err := e.build(ctx, req, ep)
	if err != nil {
		return nil, err
	}

	start := e.now()
	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: send request: %w", req.Operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", req.Operation, err)
	}

	out := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		RequestID:  resp.Header.Get(protocol.HeaderRequestID),
	}

	e.logger.Debug("aws call",
		"service", req.ServiceName,
		"operation", req.Operation,
		"method", req.Method,
		"path", req.ResourcePath,
		"status", resp.StatusCode,
		"latency_ms", e.now().Sub(start).Milliseconds(),
		"request_id", out.RequestID,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, protocol.ReadError(req.Protocol, resp.StatusCode, resp.Header, body)
	}
	return out, nil
}

func (e *HTTPExecutor) build(ctx context.Context, req *protocol.Request, ep Endpoint) (*http.Request, error) {
	rawURL, err := req.URL(ep.URL)
	if err != nil {
		return nil, err
	}

	body := bytes.NewReader(req.Content)
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", req.Operation, err)
	}
	for k, vs := range req.Headers {
		if k == protocol.HeaderContentLength {
			continue
		}
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.ContentLength = int64(len(req.Content))
	httpReq.Header.Set(HeaderUserAgent, UserAgent)
	httpReq.Header.Set(HeaderInvocationID, uuid.NewString())

	if e.signer != nil {
		if _, err := e.signer.Sign(httpReq, body, ep.SigningName, ep.SigningRegion, e.now()); err != nil {
			return nil, fmt.Errorf("%s: sign request: %w", req.Operation, err)
		}
	}
	return httpReq, nil
}
