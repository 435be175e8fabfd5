package route53

import (
	"context"

	"github.com/jroosing/awsrest/internal/protocol"
	"github.com/jroosing/awsrest/internal/transport"
)

const (
	// SigningName is the SigV4 service name for Route 53.
	SigningName = "route53"
	// SigningRegion is fixed: Route 53 is a global service signed in us-east-1.
	SigningRegion = "us-east-1"
)

// Client calls the record-set operations. It is safe for concurrent use.
type Client struct {
	exec     transport.Executor
	endpoint transport.Endpoint

	change *ChangeResourceRecordSetsMarshaller
	list   *ListResourceRecordSetsMarshaller
}

// New returns a client sending through exec to ep. Signing name and region
// default to the Route 53 values.
func New(exec transport.Executor, ep transport.Endpoint) *Client {
	if ep.SigningName == "" {
		ep.SigningName = SigningName
	}
	if ep.SigningRegion == "" {
		ep.SigningRegion = SigningRegion
	}
	return &Client{
		exec:     exec,
		endpoint: ep,
		change:   NewChangeResourceRecordSetsMarshaller(protocol.NewXMLProtocolFactory(protocol.ContentTypeXML)),
		list:     NewListResourceRecordSetsMarshaller(),
	}
}

// ChangeResourceRecordSets submits the change batch. Route 53 applies it
// atomically; the returned ChangeInfo tracks propagation.
func (c *Client) ChangeResourceRecordSets(ctx context.Context, in *ChangeResourceRecordSetsInput) (*ChangeInfo, error) {
	if in == nil {
		return nil, protocol.InvalidArgument(OpChangeResourceRecordSets)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in = in.Clone()
	id := CleanZoneID(*in.HostedZoneID)
	in.HostedZoneID = &id

	req, err := c.change.Marshal(in)
	if err != nil {
		return nil, err
	}
	resp, err := c.exec.Do(ctx, req, c.endpoint)
	if err != nil {
		return nil, err
	}
	return UnmarshalChangeInfo(resp.Body)
}

// ListResourceRecordSets returns one page of record sets.
func (c *Client) ListResourceRecordSets(ctx context.Context, in *ListResourceRecordSetsInput) (*ListResourceRecordSetsOutput, error) {
	if in == nil {
		return nil, protocol.InvalidArgument(OpListResourceRecordSets)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in = in.Clone()
	id := CleanZoneID(*in.HostedZoneID)
	in.HostedZoneID = &id

	req, err := c.list.Marshal(in)
	if err != nil {
		return nil, err
	}
	resp, err := c.exec.Do(ctx, req, c.endpoint)
	if err != nil {
		return nil, err
	}
	return UnmarshalListResourceRecordSetsOutput(resp.Body)
}
