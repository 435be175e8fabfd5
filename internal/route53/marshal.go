package route53

import (
	"net/http"
	"strconv"

	"github.com/jroosing/awsrest/internal/protocol"
)

// ServiceName is the service identifier carried on every request.
const ServiceName = "AmazonRoute53"

// Namespace is the XML namespace of every Route 53 document.
const Namespace = "https://route53.amazonaws.com/doc/2013-04-01/"

// Operation names.
const (
	OpChangeResourceRecordSets = "ChangeResourceRecordSets"
	OpListResourceRecordSets   = "ListResourceRecordSets"
)

// URI templates.
const (
	ChangeResourceRecordSetsPath = "/2013-04-01/hostedzone/{Id}/rrset/"
	ListResourceRecordSetsPath   = "/2013-04-01/hostedzone/{Id}/rrset"
)

// =============================================================================
// Element writers
// =============================================================================

func writeString(g protocol.XMLGenerator, name string, v *string) {
	if v != nil {
		g.WriteElement(name, *v)
	}
}

func writeInt64(g protocol.XMLGenerator, name string, v *int64) {
	if v != nil {
		g.WriteElement(name, strconv.FormatInt(*v, 10))
	}
}

func writeBool(g protocol.XMLGenerator, name string, v *bool) {
	if v != nil {
		g.WriteElement(name, strconv.FormatBool(*v))
	}
}

// MarshalResourceRecordSet writes rrs as a <ResourceRecordSet> element.
func MarshalResourceRecordSet(g protocol.XMLGenerator, rrs *ResourceRecordSet) {
	g.WriteStartElement("ResourceRecordSet", "")
	writeString(g, "Name", rrs.Name)
	writeString(g, "Type", rrs.Type)
	writeString(g, "SetIdentifier", rrs.SetIdentifier)
	writeInt64(g, "Weight", rrs.Weight)
	writeString(g, "Region", rrs.Region)
	if geo := rrs.GeoLocation; geo != nil {
		g.WriteStartElement("GeoLocation", "")
		writeString(g, "ContinentCode", geo.ContinentCode)
		writeString(g, "CountryCode", geo.CountryCode)
		writeString(g, "SubdivisionCode", geo.SubdivisionCode)
		g.WriteEndElement()
	}
	writeString(g, "Failover", rrs.Failover)
	writeInt64(g, "TTL", rrs.TTL)
	if rrs.ResourceRecords != nil {
		g.WriteStartElement("ResourceRecords", "")
		for _, rr := range rrs.ResourceRecords {
			if rr == nil {
				continue
			}
			g.WriteStartElement("ResourceRecord", "")
			writeString(g, "Value", rr.Value)
			g.WriteEndElement()
		}
		g.WriteEndElement()
	}
	if at := rrs.AliasTarget; at != nil {
		g.WriteStartElement("AliasTarget", "")
		writeString(g, "HostedZoneId", at.HostedZoneID)
		writeString(g, "DNSName", at.DNSName)
		writeBool(g, "EvaluateTargetHealth", at.EvaluateTargetHealth)
		g.WriteEndElement()
	}
	writeString(g, "HealthCheckId", rrs.HealthCheckID)
	writeString(g, "TrafficPolicyInstanceId", rrs.TrafficPolicyInstanceID)
	g.WriteEndElement()
}

// MarshalChange writes c as a <Change> element.
func MarshalChange(g protocol.XMLGenerator, c *Change) {
	g.WriteStartElement("Change", "")
	writeString(g, "Action", c.Action)
	if c.ResourceRecordSet != nil {
		MarshalResourceRecordSet(g, c.ResourceRecordSet)
	}
	g.WriteEndElement()
}

// MarshalChangeBatch writes b as a <ChangeBatch> element.
func MarshalChangeBatch(g protocol.XMLGenerator, b *ChangeBatch) {
	g.WriteStartElement("ChangeBatch", "")
	writeString(g, "Comment", b.Comment)
	if b.Changes != nil {
		g.WriteStartElement("Changes", "")
		for _, c := range b.Changes {
			if c != nil {
				MarshalChange(g, c)
			}
		}
		g.WriteEndElement()
	}
	g.WriteEndElement()
}

// MarshalChangeInfo writes info as a <ChangeInfo> element.
func MarshalChangeInfo(g protocol.XMLGenerator, info *ChangeInfo) {
	g.WriteStartElement("ChangeInfo", "")
	writeString(g, "Id", info.ID)
	writeString(g, "Status", info.Status)
	if info.SubmittedAt != nil {
		g.WriteElement("SubmittedAt", info.SubmittedAt.UTC().Format(timeFormat))
	}
	writeString(g, "Comment", info.Comment)
	g.WriteEndElement()
}

const timeFormat = "2006-01-02T15:04:05.000Z"

// =============================================================================
// Operation marshallers
// =============================================================================

// ChangeResourceRecordSetsMarshaller builds POST requests carrying a
// ChangeResourceRecordSetsRequest document.
type ChangeResourceRecordSetsMarshaller struct {
	factory protocol.XMLFactory
}

func NewChangeResourceRecordSetsMarshaller(f protocol.XMLFactory) *ChangeResourceRecordSetsMarshaller {
	return &ChangeResourceRecordSetsMarshaller{factory: f}
}

func (m *ChangeResourceRecordSetsMarshaller) Marshal(in *ChangeResourceRecordSetsInput) (*protocol.Request, error) {
	if in == nil {
		return nil, protocol.InvalidArgument(OpChangeResourceRecordSets)
	}

	req := protocol.NewRequest(ServiceName, OpChangeResourceRecordSets, protocol.RestXML, http.MethodPost)
	req.ResourcePath = protocol.ReplacePathParam(ChangeResourceRecordSetsPath, "Id", in.HostedZoneID)

	g := m.factory.NewXMLGenerator()
	g.WriteStartElement("ChangeResourceRecordSetsRequest", Namespace)
	if in.ChangeBatch != nil {
		MarshalChangeBatch(g, in.ChangeBatch)
	}
	g.WriteEndElement()

	body, err := g.Bytes()
	if err != nil {
		return nil, protocol.SerializationFailure(OpChangeResourceRecordSets, "XML", err)
	}
	req.SetContent(body, m.factory.ContentType())
	return req, nil
}

// ListResourceRecordSetsMarshaller builds GET requests. Paging parameters go
// into the query string.
type ListResourceRecordSetsMarshaller struct{}

func NewListResourceRecordSetsMarshaller() *ListResourceRecordSetsMarshaller {
	return &ListResourceRecordSetsMarshaller{}
}

func (m *ListResourceRecordSetsMarshaller) Marshal(in *ListResourceRecordSetsInput) (*protocol.Request, error) {
	if in == nil {
		return nil, protocol.InvalidArgument(OpListResourceRecordSets)
	}

	req := protocol.NewRequest(ServiceName, OpListResourceRecordSets, protocol.RestXML, http.MethodGet)
	req.ResourcePath = protocol.ReplacePathParam(ListResourceRecordSetsPath, "Id", in.HostedZoneID)
	req.AddQueryParam("name", in.StartRecordName)
	req.AddQueryParam("type", in.StartRecordType)
	req.AddQueryParam("identifier", in.StartRecordIdentifier)
	req.AddQueryParam("maxitems", in.MaxItems)
	req.SetContent(nil, "")
	return req, nil
}

// =============================================================================
// Response documents
// =============================================================================

// EncodeChangeResourceRecordSetsResponse renders the response document that
// carries info.
func EncodeChangeResourceRecordSetsResponse(f protocol.XMLFactory, info *ChangeInfo) ([]byte, error) {
	const op = "EncodeChangeResourceRecordSetsResponse"
	if info == nil {
		return nil, protocol.InvalidArgument(op)
	}
	g := f.NewXMLGenerator()
	g.WriteStartElement("ChangeResourceRecordSetsResponse", Namespace)
	MarshalChangeInfo(g, info)
	g.WriteEndElement()
	body, err := g.Bytes()
	if err != nil {
		return nil, protocol.SerializationFailure(op, "XML", err)
	}
	return body, nil
}

// EncodeListResourceRecordSetsResponse renders one page of record sets.
func EncodeListResourceRecordSetsResponse(f protocol.XMLFactory, out *ListResourceRecordSetsOutput) ([]byte, error) {
	const op = "EncodeListResourceRecordSetsResponse"
	if out == nil {
		return nil, protocol.InvalidArgument(op)
	}
	g := f.NewXMLGenerator()
	g.WriteStartElement("ListResourceRecordSetsResponse", Namespace)
	g.WriteStartElement("ResourceRecordSets", "")
	for _, rrs := range out.ResourceRecordSets {
		if rrs != nil {
			MarshalResourceRecordSet(g, rrs)
		}
	}
	g.WriteEndElement()
	writeBool(g, "IsTruncated", out.IsTruncated)
	writeString(g, "NextRecordName", out.NextRecordName)
	writeString(g, "NextRecordType", out.NextRecordType)
	writeString(g, "NextRecordIdentifier", out.NextRecordIdentifier)
	writeString(g, "MaxItems", out.MaxItems)
	g.WriteEndElement()
	body, err := g.Bytes()
	if err != nil {
		return nil, protocol.SerializationFailure(op, "XML", err)
	}
	return body, nil
}

// EncodeResourceRecordSet renders rrs as a standalone XML element.
func EncodeResourceRecordSet(f protocol.XMLFactory, rrs *ResourceRecordSet) ([]byte, error) {
	const op = "EncodeResourceRecordSet"
	if rrs == nil {
		return nil, protocol.InvalidArgument(op)
	}
	g := f.NewXMLGenerator()
	MarshalResourceRecordSet(g, rrs)
	body, err := g.Bytes()
	if err != nil {
		return nil, protocol.SerializationFailure(op, "XML", err)
	}
	return body, nil
}
