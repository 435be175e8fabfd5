package route53

import (
	"bytes"
	"encoding/xml"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go/aws/awsutil"
	"github.com/jroosing/awsrest/internal/protocol"
	"github.com/jroosing/awsrest/internal/shape"
)

// ListResourceRecordSetsOutput is one page of record sets.
type ListResourceRecordSetsOutput struct {
	ResourceRecordSets   []*ResourceRecordSet
	IsTruncated          *bool
	NextRecordName       *string
	NextRecordType       *string
	NextRecordIdentifier *string
	MaxItems             *string
}

func (s *ListResourceRecordSetsOutput) Equal(o *ListResourceRecordSetsOutput) bool {
	if s == nil || o == nil {
		return s == o
	}
	return shape.SliceEqual(s.ResourceRecordSets, o.ResourceRecordSets, (*ResourceRecordSet).Equal) &&
		shape.BoolEqual(s.IsTruncated, o.IsTruncated) &&
		shape.StringEqual(s.NextRecordName, o.NextRecordName) &&
		shape.StringEqual(s.NextRecordType, o.NextRecordType) &&
		shape.StringEqual(s.NextRecordIdentifier, o.NextRecordIdentifier) &&
		shape.StringEqual(s.MaxItems, o.MaxItems)
}

func (s *ListResourceRecordSetsOutput) Hash() uint64 {
	if s == nil {
		return 0
	}
	h := shape.Slice(shape.NewHasher(), s.ResourceRecordSets, func(r *ResourceRecordSet) (uint64, bool) {
		return r.Hash(), r != nil
	})
	return h.
		Bool(s.IsTruncated).
		String(s.NextRecordName).
		String(s.NextRecordType).
		String(s.NextRecordIdentifier).
		String(s.MaxItems).
		Sum64()
}

func (s *ListResourceRecordSetsOutput) Clone() *ListResourceRecordSetsOutput {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s ListResourceRecordSetsOutput) String() string   { return awsutil.Prettify(s) }
func (s ListResourceRecordSetsOutput) GoString() string { return s.String() }

var errEmptyBody = errors.New("empty body")

// =============================================================================
// Wire shapes
// =============================================================================

type xmlResourceRecords struct {
	Items []*ResourceRecord `xml:"ResourceRecord"`
}

type xmlResourceRecordSet struct {
	Name                    *string             `xml:"Name"`
	Type                    *string             `xml:"Type"`
	SetIdentifier           *string             `xml:"SetIdentifier"`
	Weight                  *int64              `xml:"Weight"`
	Region                  *string             `xml:"Region"`
	GeoLocation             *GeoLocation        `xml:"GeoLocation"`
	Failover                *string             `xml:"Failover"`
	TTL                     *int64              `xml:"TTL"`
	ResourceRecords         *xmlResourceRecords `xml:"ResourceRecords"`
	AliasTarget             *AliasTarget        `xml:"AliasTarget"`
	HealthCheckID           *string             `xml:"HealthCheckId"`
	TrafficPolicyInstanceID *string             `xml:"TrafficPolicyInstanceId"`
}

func (x *xmlResourceRecordSet) model() *ResourceRecordSet {
	if x == nil {
		return nil
	}
	out := &ResourceRecordSet{
		Name:                    x.Name,
		Type:                    x.Type,
		SetIdentifier:           x.SetIdentifier,
		Weight:                  x.Weight,
		Region:                  x.Region,
		GeoLocation:             x.GeoLocation,
		Failover:                x.Failover,
		TTL:                     x.TTL,
		AliasTarget:             x.AliasTarget,
		HealthCheckID:           x.HealthCheckID,
		TrafficPolicyInstanceID: x.TrafficPolicyInstanceID,
	}
	// A present but empty <ResourceRecords/> stays an empty, non-nil slice.
	if x.ResourceRecords != nil {
		out.ResourceRecords = make([]*ResourceRecord, 0, len(x.ResourceRecords.Items))
		out.ResourceRecords = append(out.ResourceRecords, x.ResourceRecords.Items...)
	}
	return out
}

type xmlChange struct {
	Action            *string               `xml:"Action"`
	ResourceRecordSet *xmlResourceRecordSet `xml:"ResourceRecordSet"`
}

type xmlChanges struct {
	Items []*xmlChange `xml:"Change"`
}

type xmlChangeBatch struct {
	Comment *string     `xml:"Comment"`
	Changes *xmlChanges `xml:"Changes"`
}

func (x *xmlChangeBatch) model() *ChangeBatch {
	if x == nil {
		return nil
	}
	out := &ChangeBatch{Comment: x.Comment}
	if x.Changes != nil {
		out.Changes = make([]*Change, 0, len(x.Changes.Items))
		for _, c := range x.Changes.Items {
			out.Changes = append(out.Changes, &Change{Action: c.Action, ResourceRecordSet: c.ResourceRecordSet.model()})
		}
	}
	return out
}

type xmlChangeInfo struct {
	ID          *string    `xml:"Id"`
	Status      *string    `xml:"Status"`
	SubmittedAt *time.Time `xml:"SubmittedAt"`
	Comment     *string    `xml:"Comment"`
}

func (x *xmlChangeInfo) model() *ChangeInfo {
	if x == nil {
		return nil
	}
	return &ChangeInfo{ID: x.ID, Status: x.Status, SubmittedAt: x.SubmittedAt, Comment: x.Comment}
}

type xmlChangeRequest struct {
	XMLName     xml.Name        `xml:"ChangeResourceRecordSetsRequest"`
	ChangeBatch *xmlChangeBatch `xml:"ChangeBatch"`
}

type xmlChangeResponse struct {
	XMLName    xml.Name       `xml:"ChangeResourceRecordSetsResponse"`
	ChangeInfo *xmlChangeInfo `xml:"ChangeInfo"`
}

type xmlRecordSets struct {
	Items []*xmlResourceRecordSet `xml:"ResourceRecordSet"`
}

type xmlListResponse struct {
	XMLName              xml.Name       `xml:"ListResourceRecordSetsResponse"`
	ResourceRecordSets   *xmlRecordSets `xml:"ResourceRecordSets"`
	IsTruncated          *bool          `xml:"IsTruncated"`
	NextRecordName       *string        `xml:"NextRecordName"`
	NextRecordType       *string        `xml:"NextRecordType"`
	NextRecordIdentifier *string        `xml:"NextRecordIdentifier"`
	MaxItems             *string        `xml:"MaxItems"`
}

func decode(op string, data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return protocol.MalformedResponse(op, errEmptyBody)
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return protocol.MalformedResponse(op, err)
	}
	return nil
}

// =============================================================================
// Readers
// =============================================================================

// UnmarshalResourceRecordSet reads a standalone <ResourceRecordSet> element.
// The root element name is not checked.
func UnmarshalResourceRecordSet(data []byte) (*ResourceRecordSet, error) {
	var x xmlResourceRecordSet
	if err := decode("UnmarshalResourceRecordSet", data, &x); err != nil {
		return nil, err
	}
	return x.model(), nil
}

// UnmarshalChangeResourceRecordSetsRequest reads the request document and
// returns its change batch.
func UnmarshalChangeResourceRecordSetsRequest(data []byte) (*ChangeBatch, error) {
	var x xmlChangeRequest
	if err := decode("UnmarshalChangeResourceRecordSetsRequest", data, &x); err != nil {
		return nil, err
	}
	return x.ChangeBatch.model(), nil
}

// UnmarshalChangeInfo reads a ChangeResourceRecordSetsResponse document.
func UnmarshalChangeInfo(data []byte) (*ChangeInfo, error) {
	var x xmlChangeResponse
	if err := decode("UnmarshalChangeInfo", data, &x); err != nil {
		return nil, err
	}
	return x.ChangeInfo.model(), nil
}

// UnmarshalListResourceRecordSetsOutput reads a ListResourceRecordSetsResponse
// document.
func UnmarshalListResourceRecordSetsOutput(data []byte) (*ListResourceRecordSetsOutput, error) {
	var x xmlListResponse
	if err := decode("UnmarshalListResourceRecordSetsOutput", data, &x); err != nil {
		return nil, err
	}
	out := &ListResourceRecordSetsOutput{
		IsTruncated:          x.IsTruncated,
		NextRecordName:       x.NextRecordName,
		NextRecordType:       x.NextRecordType,
		NextRecordIdentifier: x.NextRecordIdentifier,
		MaxItems:             x.MaxItems,
	}
	if x.ResourceRecordSets != nil {
		out.ResourceRecordSets = make([]*ResourceRecordSet, 0, len(x.ResourceRecordSets.Items))
		for _, rrs := range x.ResourceRecordSets.Items {
			out.ResourceRecordSets = append(out.ResourceRecordSets, rrs.model())
		}
	}
	return out, nil
}
