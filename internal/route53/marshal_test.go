package route53_test

import (
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/jroosing/awsrest/internal/protocol"
	"github.com/jroosing/awsrest/internal/route53"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroken = errors.New("encoder broke")

type brokenGenerator struct {
	protocol.XMLGenerator
}

func (brokenGenerator) Bytes() ([]byte, error) { return nil, errBroken }

type brokenFactory struct{}

func (brokenFactory) NewXMLGenerator() protocol.XMLGenerator {
	return brokenGenerator{protocol.NewXMLGenerator()}
}

func (brokenFactory) ContentType() string { return protocol.ContentTypeXML }

func xmlFactory() protocol.XMLFactory {
	return protocol.NewXMLProtocolFactory("")
}

func simpleRecordSet() *route53.ResourceRecordSet {
	return route53.NewResourceRecordSet("www.example.com.", route53.RRTypeA).
		SetTTL(300).
		AddResourceRecords(route53.NewResourceRecord("192.0.2.1"))
}

func fullRecordSet() *route53.ResourceRecordSet {
	return route53.NewResourceRecordSet("api.example.com.", route53.RRTypeCNAME).
		SetSetIdentifier("eu").
		SetWeight(10).
		SetRegion(route53.RegionEUWest1).
		SetGeoLocation(new(route53.GeoLocation).SetContinentCode("EU").SetCountryCode("DE").SetSubdivisionCode("BE")).
		SetFailover(route53.FailoverPrimary).
		SetTTL(60).
		AddResourceRecords(route53.NewResourceRecord("lb-1.example.net."), route53.NewResourceRecord("lb-2.example.net.")).
		SetAliasTarget(new(route53.AliasTarget).SetHostedZoneID("Z2FDTNDATAQYW2").SetDNSName("d111.cloudfront.net.").SetEvaluateTargetHealth(false)).
		SetHealthCheckID("hc-1").
		SetTrafficPolicyInstanceID("tp-1")
}

func changeInput(rrs *route53.ResourceRecordSet) *route53.ChangeResourceRecordSetsInput {
	batch := new(route53.ChangeBatch).SetComment("add www").AddChanges(route53.NewChange(route53.ChangeActionCreate, rrs))
	return new(route53.ChangeResourceRecordSetsInput).SetHostedZoneID("Z1D633PJN98FT9").SetChangeBatch(batch)
}

// =============================================================================
// ChangeResourceRecordSets Tests
// =============================================================================

func TestChangeResourceRecordSets_Body(t *testing.T) {
	req, err := route53.NewChangeResourceRecordSetsMarshaller(xmlFactory()).Marshal(changeInput(simpleRecordSet()))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, route53.ServiceName, req.ServiceName)
	assert.Equal(t, protocol.RestXML, req.Protocol)
	assert.Equal(t, "/2013-04-01/hostedzone/Z1D633PJN98FT9/rrset/", req.ResourcePath)

	want := `<ChangeResourceRecordSetsRequest xmlns="https://route53.amazonaws.com/doc/2013-04-01/">` +
		`<ChangeBatch><Comment>add www</Comment><Changes><Change><Action>CREATE</Action>` +
		`<ResourceRecordSet><Name>www.example.com.</Name><Type>A</Type><TTL>300</TTL>` +
		`<ResourceRecords><ResourceRecord><Value>192.0.2.1</Value></ResourceRecord></ResourceRecords>` +
		`</ResourceRecordSet></Change></Changes></ChangeBatch></ChangeResourceRecordSetsRequest>`
	assert.Equal(t, want, string(req.Content))
	assert.Equal(t, strconv.Itoa(len(want)), req.Headers.Get("Content-Length"))
	assert.Equal(t, protocol.ContentTypeXML, req.Headers.Get("Content-Type"))
}

func TestChangeResourceRecordSets_NilInput(t *testing.T) {
	req, err := route53.NewChangeResourceRecordSetsMarshaller(xmlFactory()).Marshal(nil)
	assert.ErrorIs(t, err, protocol.ErrInvalidArgument)
	assert.Nil(t, req)
}

func TestChangeResourceRecordSets_AbsentFields(t *testing.T) {
	req, err := route53.NewChangeResourceRecordSetsMarshaller(xmlFactory()).Marshal(&route53.ChangeResourceRecordSetsInput{})
	require.NoError(t, err)
	assert.Equal(t, "/2013-04-01/hostedzone//rrset/", req.ResourcePath)
	assert.Equal(t, `<ChangeResourceRecordSetsRequest xmlns="https://route53.amazonaws.com/doc/2013-04-01/"></ChangeResourceRecordSetsRequest>`, string(req.Content))
}

func TestChangeResourceRecordSets_SerializationFailure(t *testing.T) {
	req, err := route53.NewChangeResourceRecordSetsMarshaller(brokenFactory{}).Marshal(changeInput(simpleRecordSet()))
	assert.Nil(t, req)
	assert.ErrorIs(t, err, errBroken)

	var ce *protocol.ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, protocol.KindSerialization, ce.Kind)
	assert.Contains(t, err.Error(), "unable to marshal request to XML")
}

func TestChangeResourceRecordSets_ControlCharInValue(t *testing.T) {
	rrs := route53.NewResourceRecordSet("txt.example.com.", route53.RRTypeTXT).
		SetTTL(60).
		AddResourceRecords(route53.NewResourceRecord("\"a\x01b\""))
	f := protocol.NewXMLProtocolFactory(protocol.ContentTypeXML)

	req, err := route53.NewChangeResourceRecordSetsMarshaller(f).Marshal(changeInput(rrs))
	assert.Nil(t, req)
	assert.ErrorIs(t, err, protocol.ErrInvalidXMLChar)

	var ce *protocol.ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, protocol.KindSerialization, ce.Kind)
}

func TestChangeResourceRecordSets_RoundTrip(t *testing.T) {
	in := changeInput(fullRecordSet())
	in.ChangeBatch.AddChanges(route53.NewChange(route53.ChangeActionDelete,
		simpleRecordSet().SetResourceRecords([]*route53.ResourceRecord{})))

	req, err := route53.NewChangeResourceRecordSetsMarshaller(xmlFactory()).Marshal(in)
	require.NoError(t, err)

	batch, err := route53.UnmarshalChangeResourceRecordSetsRequest(req.Content)
	require.NoError(t, err)
	assert.True(t, in.ChangeBatch.Equal(batch), "got %s", batch)
	assert.Equal(t, in.ChangeBatch.Hash(), batch.Hash())
	assert.NotNil(t, batch.Changes[1].ResourceRecordSet.ResourceRecords, "empty list survives")
}

// =============================================================================
// ListResourceRecordSets Tests
// =============================================================================

func TestListResourceRecordSets_Request(t *testing.T) {
	in := new(route53.ListResourceRecordSetsInput).
		SetHostedZoneID("Z1").
		SetStartRecordName("www.example.com.").
		SetStartRecordType(route53.RRTypeA).
		SetMaxItems("10")

	req, err := route53.NewListResourceRecordSetsMarshaller().Marshal(in)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/2013-04-01/hostedzone/Z1/rrset", req.ResourcePath)
	assert.Equal(t, "maxitems=10&name=www.example.com.&type=A", req.Query.Encode())
	assert.Empty(t, req.Content)
	assert.Equal(t, "0", req.Headers.Get("Content-Length"))

	_, err = route53.NewListResourceRecordSetsMarshaller().Marshal(nil)
	assert.ErrorIs(t, err, protocol.ErrInvalidArgument)
}

func TestListResourceRecordSets_ResponseRoundTrip(t *testing.T) {
	out := &route53.ListResourceRecordSetsOutput{
		ResourceRecordSets: []*route53.ResourceRecordSet{simpleRecordSet(), fullRecordSet()},
		IsTruncated:        aws.Bool(true),
		NextRecordName:     aws.String("zzz.example.com."),
		NextRecordType:     aws.String("A"),
		MaxItems:           aws.String("2"),
	}

	body, err := route53.EncodeListResourceRecordSetsResponse(xmlFactory(), out)
	require.NoError(t, err)

	got, err := route53.UnmarshalListResourceRecordSetsOutput(body)
	require.NoError(t, err)
	assert.True(t, out.Equal(got), "got %s", got)
	assert.Equal(t, out.Hash(), got.Hash())
}

func TestUnmarshalListResourceRecordSetsOutput_AWSDocument(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<ListResourceRecordSetsResponse xmlns="https://route53.amazonaws.com/doc/2013-04-01/">
   <ResourceRecordSets>
      <ResourceRecordSet>
         <Name>example.com.</Name>
         <Type>SOA</Type>
         <TTL>900</TTL>
         <ResourceRecords>
            <ResourceRecord>
               <Value>ns-2048.awsdns-64.net. hostmaster.awsdns.com. 1 7200 900 1209600 86400</Value>
            </ResourceRecord>
         </ResourceRecords>
      </ResourceRecordSet>
   </ResourceRecordSets>
   <IsTruncated>false</IsTruncated>
   <MaxItems>10</MaxItems>
</ListResourceRecordSetsResponse>`)

	got, err := route53.UnmarshalListResourceRecordSetsOutput(body)
	require.NoError(t, err)
	require.Len(t, got.ResourceRecordSets, 1)

	rrs := got.ResourceRecordSets[0]
	assert.Equal(t, "example.com.", aws.StringValue(rrs.Name))
	assert.Equal(t, string(route53.RRTypeSOA), aws.StringValue(rrs.Type))
	assert.Equal(t, int64(900), aws.Int64Value(rrs.TTL))
	require.Len(t, rrs.ResourceRecords, 1)
	assert.Nil(t, rrs.AliasTarget)
	assert.False(t, aws.BoolValue(got.IsTruncated))
	assert.NotNil(t, got.IsTruncated)
}

// =============================================================================
// ChangeInfo Tests
// =============================================================================

func TestChangeInfo_RoundTrip(t *testing.T) {
	info := new(route53.ChangeInfo).
		SetID("/change/C2682N5HXP0BZ4").
		SetStatus(route53.ChangeStatusPending).
		SetSubmittedAt(time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)).
		SetComment("add www")

	body, err := route53.EncodeChangeResourceRecordSetsResponse(xmlFactory(), info)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<SubmittedAt>2024-01-02T03:04:05.006Z</SubmittedAt>")

	got, err := route53.UnmarshalChangeInfo(body)
	require.NoError(t, err)
	assert.True(t, info.Equal(got), "got %s", got)
	assert.Equal(t, info.Hash(), got.Hash())
}

func TestUnmarshal_Malformed(t *testing.T) {
	for _, body := range []string{"", "  ", "{}", "<ChangeResourceRecordSetsResponse><ChangeInfo>"} {
		_, err := route53.UnmarshalChangeInfo([]byte(body))
		assert.ErrorIs(t, err, protocol.ErrMalformedResponse, "body %q", body)
	}
}

func TestUnmarshalResourceRecordSet(t *testing.T) {
	rrs := fullRecordSet()
	g := protocol.NewXMLGenerator()
	route53.MarshalResourceRecordSet(g, rrs)
	body, err := g.Bytes()
	require.NoError(t, err)

	got, err := route53.UnmarshalResourceRecordSet(body)
	require.NoError(t, err)
	assert.True(t, rrs.Equal(got))
}
