package apigateway

import (
	"context"

	"github.com/jroosing/awsrest/internal/protocol"
	"github.com/jroosing/awsrest/internal/transport"
)

// SigningName is the SigV4 service name for API Gateway.
const SigningName = "apigateway"

// Client calls the method-response operations. It is safe for concurrent
// use.
type Client struct {
	exec     transport.Executor
	endpoint transport.Endpoint

	update *UpdateMethodResponseMarshaller
	get    *GetMethodResponseMarshaller
	put    *PutMethodResponseMarshaller
	del    *DeleteMethodResponseMarshaller
}

// New returns a client sending through exec to ep.
func New(exec transport.Executor, ep transport.Endpoint) *Client {
	if ep.SigningName == "" {
		ep.SigningName = SigningName
	}
	f := protocol.NewJSONProtocolFactory(protocol.ContentTypeJSON)
	return &Client{
		exec:     exec,
		endpoint: ep,
		update:   NewUpdateMethodResponseMarshaller(f),
		get:      NewGetMethodResponseMarshaller(),
		put:      NewPutMethodResponseMarshaller(f),
		del:      NewDeleteMethodResponseMarshaller(),
	}
}

type validator interface {
	Validate() error
}

// send runs the shared call sequence: validate, marshal, execute.
func send[T validator](ctx context.Context, c *Client, op string, in T, isNil bool, marshal func(T) (*protocol.Request, error)) (*transport.Response, error) {
	if isNil {
		return nil, protocol.InvalidArgument(op)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	req, err := marshal(in)
	if err != nil {
		return nil, err
	}
	return c.exec.Do(ctx, req, c.endpoint)
}

// UpdateMethodResponse applies patch operations and returns the updated
// method response.
func (c *Client) UpdateMethodResponse(ctx context.Context, in *UpdateMethodResponseInput) (*MethodResponse, error) {
	resp, err := send(ctx, c, OpUpdateMethodResponse, in, in == nil, c.update.Marshal)
	if err != nil {
		return nil, err
	}
	return UnmarshalMethodResponse(resp.Body)
}

func (c *Client) GetMethodResponse(ctx context.Context, in *GetMethodResponseInput) (*MethodResponse, error) {
	resp, err := send(ctx, c, OpGetMethodResponse, in, in == nil, c.get.Marshal)
	if err != nil {
		return nil, err
	}
	return UnmarshalMethodResponse(resp.Body)
}

func (c *Client) PutMethodResponse(ctx context.Context, in *PutMethodResponseInput) (*MethodResponse, error) {
	resp, err := send(ctx, c, OpPutMethodResponse, in, in == nil, c.put.Marshal)
	if err != nil {
		return nil, err
	}
	return UnmarshalMethodResponse(resp.Body)
}

// DeleteMethodResponse removes the method response. The service answers
// with an empty body.
func (c *Client) DeleteMethodResponse(ctx context.Context, in *DeleteMethodResponseInput) error {
	_, err := send(ctx, c, OpDeleteMethodResponse, in, in == nil, c.del.Marshal)
	return err
}
