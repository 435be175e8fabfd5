// Package stub_test drives the stub through the real clients and transport.
package stub_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/jroosing/awsrest/internal/apigateway"
	"github.com/jroosing/awsrest/internal/config"
	"github.com/jroosing/awsrest/internal/route53"
	"github.com/jroosing/awsrest/internal/stub"
	"github.com/jroosing/awsrest/internal/stub/store"
	"github.com/jroosing/awsrest/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *config.Config {
	return &config.Config{
		Stub: config.StubConfig{Host: "127.0.0.1", Port: 4566, DBPath: store.MemoryPath},
	}
}

func startStub(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()
	st, err := store.Open(store.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	srv := httptest.NewServer(stub.New(cfg, st, nil).Engine())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// ============================================================================
// Server Creation Tests
// ============================================================================

func TestNew_PanicsOnNilConfig(t *testing.T) {
	assert.Panics(t, func() { stub.New(nil, nil, nil) })
}

func TestServer_Addr(t *testing.T) {
	st, err := store.Open(store.MemoryPath)
	require.NoError(t, err)
	defer st.Close()

	cfg := createTestConfig()
	cfg.Stub.Port = 9090
	assert.Equal(t, "127.0.0.1:9090", stub.New(cfg, st, nil).Addr())
}

func TestServer_ShutdownBeforeServe(t *testing.T) {
	st, err := store.Open(store.MemoryPath)
	require.NoError(t, err)
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, stub.New(createTestConfig(), st, nil).Shutdown(ctx))
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	st, err := store.Open(store.MemoryPath)
	require.NoError(t, err)
	defer st.Close()

	cfg := createTestConfig()
	cfg.Stub.Port = 0
	srv := stub.New(cfg, st, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

// ============================================================================
// System Route Tests
// ============================================================================

func TestSystemRoutes(t *testing.T) {
	srv := startStub(t, createTestConfig())

	assert.Equal(t, http.StatusOK, get(t, srv.URL+"/health").StatusCode)
	assert.Equal(t, http.StatusOK, get(t, srv.URL+"/swagger/doc.json").StatusCode)

	// Hit a service route first so the request counter has a sample.
	get(t, srv.URL+"/2013-04-01/hostedzone/Z1/rrset")
	resp := get(t, srv.URL+"/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	buf := new(bytes.Buffer)
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `awsrest_stub_requests_total{method="GET",route="/2013-04-01/hostedzone/:Id/rrset",status="200"} 1`)
	assert.Contains(t, buf.String(), "go_goroutines")
}

func TestServiceRoutes_FollowClientPathTemplates(t *testing.T) {
	st, err := store.Open(store.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	routes := map[string]bool{}
	for _, r := range stub.New(createTestConfig(), st, nil).Engine().Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	mr := "/restapis/:restapi_id/resources/:resource_id/methods/:http_method/responses/:status_code"
	for _, want := range []string{
		"PUT " + mr,
		"GET " + mr,
		"PATCH " + mr,
		"DELETE " + mr,
		"POST /2013-04-01/hostedzone/:Id/rrset/",
		"GET /2013-04-01/hostedzone/:Id/rrset",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
	for route := range routes {
		assert.NotContains(t, route, "{", "unresolved template in %s", route)
	}
}

func TestAPIKey_GatesServiceRoutesOnly(t *testing.T) {
	cfg := createTestConfig()
	cfg.Stub.APIKey = "secret"
	srv := startStub(t, cfg)

	assert.Equal(t, http.StatusOK, get(t, srv.URL+"/health").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, get(t, srv.URL+"/2013-04-01/hostedzone/Z1/rrset").StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/2013-04-01/hostedzone/Z1/rrset", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", "secret")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ============================================================================
// Client Round-Trip Tests
// ============================================================================

func TestAPIGatewayClient_AgainstStub(t *testing.T) {
	srv := startStub(t, createTestConfig())
	c := apigateway.New(transport.NewHTTPExecutor(), transport.Endpoint{URL: srv.URL})
	ctx := context.Background()

	put := new(apigateway.PutMethodResponseInput).
		SetRestAPIID("a b/c").
		SetResourceID("res1").
		SetHTTPMethod("GET").
		SetStatusCode("200").
		SetResponseModels(map[string]*string{"application/json": aws.String("Empty")})
	created, err := c.PutMethodResponse(ctx, put)
	require.NoError(t, err)
	assert.Equal(t, "200", aws.StringValue(created.StatusCode))

	update := new(apigateway.UpdateMethodResponseInput).
		SetRestAPIID("a b/c").
		SetResourceID("res1").
		SetHTTPMethod("GET").
		SetStatusCode("200").
		AddPatchOperations(new(apigateway.PatchOperation).
			SetOp(apigateway.OpAdd).
			SetPath("/responseParameters/method.response.header.X-Id").
			SetValue("true"))
	updated, err := c.UpdateMethodResponse(ctx, update)
	require.NoError(t, err)
	assert.True(t, aws.BoolValue(updated.ResponseParameters["method.response.header.X-Id"]))
	assert.Equal(t, "Empty", aws.StringValue(updated.ResponseModels["application/json"]))

	getIn := new(apigateway.GetMethodResponseInput).SetRestAPIID("a b/c").SetResourceID("res1").SetHTTPMethod("GET").SetStatusCode("200")
	got, err := c.GetMethodResponse(ctx, getIn)
	require.NoError(t, err)
	assert.True(t, updated.Equal(got))

	del := new(apigateway.DeleteMethodResponseInput).SetRestAPIID("a b/c").SetResourceID("res1").SetHTTPMethod("GET").SetStatusCode("200")
	require.NoError(t, c.DeleteMethodResponse(ctx, del))

	_, err = c.GetMethodResponse(ctx, getIn)
	require.Error(t, err)
	var rf awserr.RequestFailure
	require.ErrorAs(t, err, &rf)
	assert.Equal(t, http.StatusNotFound, rf.StatusCode())
	assert.Equal(t, "NotFoundException", rf.Code())
	assert.NotEmpty(t, rf.RequestID())
}

func TestRoute53Client_AgainstStub(t *testing.T) {
	srv := startStub(t, createTestConfig())
	c := route53.New(transport.NewHTTPExecutor(), transport.Endpoint{URL: srv.URL})
	ctx := context.Background()

	www := route53.NewResourceRecordSet("www.example.com.", route53.RRTypeA).
		SetTTL(300).
		AddResourceRecords(route53.NewResourceRecord("192.0.2.1"))
	batch := new(route53.ChangeBatch).SetComment("add www").AddChanges(route53.NewChange(route53.ChangeActionCreate, www))

	info, err := c.ChangeResourceRecordSets(ctx, new(route53.ChangeResourceRecordSetsInput).
		SetHostedZoneID("/hostedzone/Z1").
		SetChangeBatch(batch))
	require.NoError(t, err)
	assert.Equal(t, "add www", aws.StringValue(info.Comment))
	assert.True(t, strings.HasPrefix(aws.StringValue(info.ID), "/change/"))

	out, err := c.ListResourceRecordSets(ctx, new(route53.ListResourceRecordSetsInput).SetHostedZoneID("Z1"))
	require.NoError(t, err)
	require.Len(t, out.ResourceRecordSets, 1)
	assert.True(t, www.Equal(out.ResourceRecordSets[0]), "got %s", out.ResourceRecordSets[0])

	_, err = c.ChangeResourceRecordSets(ctx, new(route53.ChangeResourceRecordSetsInput).
		SetHostedZoneID("Z1").
		SetChangeBatch(batch))
	var rf awserr.RequestFailure
	require.ErrorAs(t, err, &rf)
	assert.Equal(t, http.StatusBadRequest, rf.StatusCode())
	assert.Equal(t, "InvalidChangeBatch", rf.Code())
}
