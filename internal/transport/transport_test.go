package transport_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/google/uuid"
	"github.com/jroosing/awsrest/internal/protocol"
	"github.com/jroosing/awsrest/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
	length int64
}

func newServer(t *testing.T, status int, respBody string, got *captured) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*got = captured{
			method: r.Method,
			path:   r.URL.EscapedPath(),
			query:  r.URL.RawQuery,
			header: r.Header.Clone(),
			body:   body,
			length: r.ContentLength,
		}
		w.Header().Set(protocol.HeaderRequestID, "req-123")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func patchRequest() *protocol.Request {
	req := protocol.NewRequest("AmazonApiGateway", "UpdateMethodResponse", protocol.RestJSON, http.MethodPatch)
	req.ResourcePath = "/restapis/a%2Fb/resources/r/methods/GET/responses/200"
	req.SetContent([]byte(`{"patchOperations":[]}`), protocol.ContentTypeJSON)
	return req
}

// =============================================================================
// Request Building Tests
// =============================================================================

func TestHTTPExecutor_SendsRequest(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, `{"statusCode":"200"}`, &got)

	exec := transport.NewHTTPExecutor()
	resp, err := exec.Do(context.Background(), patchRequest(), transport.Endpoint{URL: srv.URL})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, got.method)
	assert.Equal(t, "/restapis/a%2Fb/resources/r/methods/GET/responses/200", got.path)
	assert.Equal(t, `{"patchOperations":[]}`, string(got.body))
	assert.Equal(t, int64(len(`{"patchOperations":[]}`)), got.length)
	assert.Equal(t, protocol.ContentTypeJSON, got.header.Get("Content-Type"))
	assert.Equal(t, transport.UserAgent, got.header.Get("User-Agent"))
	_, err = uuid.Parse(got.header.Get(transport.HeaderInvocationID))
	assert.NoError(t, err)
	assert.Empty(t, got.header.Get("Authorization"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.Equal(t, `{"statusCode":"200"}`, string(resp.Body))
}

func TestHTTPExecutor_QueryString(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, "", &got)

	req := protocol.NewRequest("AmazonRoute53", "ListResourceRecordSets", protocol.RestXML, http.MethodGet)
	req.ResourcePath = "/2013-04-01/hostedzone/Z1/rrset"
	name := "www.example.com."
	req.AddQueryParam("name", &name)
	req.SetContent(nil, "")

	_, err := transport.NewHTTPExecutor().Do(context.Background(), req, transport.Endpoint{URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "name=www.example.com.", got.query)
	assert.Equal(t, int64(0), got.length)
}

func TestHTTPExecutor_SignsWithCredentials(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, "", &got)

	exec := transport.NewHTTPExecutor(transport.WithCredentials("AKID", "SECRET", "TOKEN"))
	require.True(t, exec.Signed())

	ep := transport.Endpoint{URL: srv.URL, SigningName: "apigateway", SigningRegion: "eu-west-1"}
	_, err := exec.Do(context.Background(), patchRequest(), ep)
	require.NoError(t, err)

	auth := got.header.Get("Authorization")
	assert.True(t, strings.HasPrefix(auth, "AWS4-HMAC-SHA256 Credential=AKID/"), auth)
	assert.Contains(t, auth, "/eu-west-1/apigateway/aws4_request")
	assert.NotEmpty(t, got.header.Get("X-Amz-Date"))
	assert.Equal(t, "TOKEN", got.header.Get("X-Amz-Security-Token"))
	assert.Equal(t, `{"patchOperations":[]}`, string(got.body), "body survives signing")
}

func TestHTTPExecutor_EmptyAccessKeyDisablesSigning(t *testing.T) {
	exec := transport.NewHTTPExecutor(transport.WithCredentials("", "SECRET", ""))
	assert.False(t, exec.Signed())
}

func TestHTTPExecutor_NilRequest(t *testing.T) {
	_, err := transport.NewHTTPExecutor().Do(context.Background(), nil, transport.Endpoint{URL: "http://localhost"})
	assert.ErrorIs(t, err, protocol.ErrInvalidArgument)
}

func TestHTTPExecutor_BadEndpoint(t *testing.T) {
	_, err := transport.NewHTTPExecutor().Do(context.Background(), patchRequest(), transport.Endpoint{URL: "not a url"})
	assert.Error(t, err)
}

// =============================================================================
// Response Handling Tests
// =============================================================================

func TestHTTPExecutor_ServiceError(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusNotFound, `{"__type":"NotFoundException","message":"Invalid Method identifier specified"}`, &got)

	resp, err := transport.NewHTTPExecutor().Do(context.Background(), patchRequest(), transport.Endpoint{URL: srv.URL})
	require.Error(t, err)
	require.NotNil(t, resp)

	var rf awserr.RequestFailure
	require.ErrorAs(t, err, &rf)
	assert.Equal(t, "NotFoundException", rf.Code())
	assert.Equal(t, http.StatusNotFound, rf.StatusCode())
	assert.Equal(t, "req-123", rf.RequestID())
}

func TestHTTPExecutor_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	exec := transport.NewHTTPExecutor(transport.WithTimeout(50 * time.Millisecond))
	_, err := exec.Do(context.Background(), patchRequest(), transport.Endpoint{URL: srv.URL})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPExecutor_LogsCall(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, "", &got)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	exec := transport.NewHTTPExecutor(transport.WithLogger(logger), transport.WithHTTPClient(srv.Client()))
	_, err := exec.Do(context.Background(), patchRequest(), transport.Endpoint{URL: srv.URL})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"operation":"UpdateMethodResponse"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"request_id":"req-123"`)
}
