// Package route53 contains the Route 53 record-set models, their REST-XML
// marshallers and readers, and a thin client.
package route53

import (
	"time"

	"github.com/aws/aws-sdk-go/aws/awsutil"
	"github.com/jroosing/awsrest/internal/shape"
)

// RRType is a DNS record type accepted by Route 53.
type RRType string

const (
	RRTypeSOA   RRType = "SOA"
	RRTypeA     RRType = "A"
	RRTypeTXT   RRType = "TXT"
	RRTypeNS    RRType = "NS"
	RRTypeCNAME RRType = "CNAME"
	RRTypeMX    RRType = "MX"
	RRTypeNAPTR RRType = "NAPTR"
	RRTypePTR   RRType = "PTR"
	RRTypeSRV   RRType = "SRV"
	RRTypeSPF   RRType = "SPF"
	RRTypeAAAA  RRType = "AAAA"
	RRTypeCAA   RRType = "CAA"
)

// RRTypeValues returns every RRType.
func RRTypeValues() []RRType {
	return []RRType{
		RRTypeSOA, RRTypeA, RRTypeTXT, RRTypeNS, RRTypeCNAME, RRTypeMX,
		RRTypeNAPTR, RRTypePTR, RRTypeSRV, RRTypeSPF, RRTypeAAAA, RRTypeCAA,
	}
}

// ResourceRecordSetRegion is the EC2 region of a latency record set.
type ResourceRecordSetRegion string

const (
	RegionUSEast1      ResourceRecordSetRegion = "us-east-1"
	RegionUSEast2      ResourceRecordSetRegion = "us-east-2"
	RegionUSWest1      ResourceRecordSetRegion = "us-west-1"
	RegionUSWest2      ResourceRecordSetRegion = "us-west-2"
	RegionCACentral1   ResourceRecordSetRegion = "ca-central-1"
	RegionEUWest1      ResourceRecordSetRegion = "eu-west-1"
	RegionEUWest2      ResourceRecordSetRegion = "eu-west-2"
	RegionEUCentral1   ResourceRecordSetRegion = "eu-central-1"
	RegionAPSoutheast1 ResourceRecordSetRegion = "ap-southeast-1"
	RegionAPSoutheast2 ResourceRecordSetRegion = "ap-southeast-2"
	RegionAPNortheast1 ResourceRecordSetRegion = "ap-northeast-1"
	RegionAPNortheast2 ResourceRecordSetRegion = "ap-northeast-2"
	RegionAPSouth1     ResourceRecordSetRegion = "ap-south-1"
	RegionSAEast1      ResourceRecordSetRegion = "sa-east-1"
	RegionCNNorth1     ResourceRecordSetRegion = "cn-north-1"
)

// ResourceRecordSetFailover marks a failover record set as primary or
// secondary.
type ResourceRecordSetFailover string

const (
	FailoverPrimary   ResourceRecordSetFailover = "PRIMARY"
	FailoverSecondary ResourceRecordSetFailover = "SECONDARY"
)

// ChangeAction is what a Change does to its record set.
type ChangeAction string

const (
	ChangeActionCreate ChangeAction = "CREATE"
	ChangeActionDelete ChangeAction = "DELETE"
	ChangeActionUpsert ChangeAction = "UPSERT"
)

// ChangeActionValues returns every ChangeAction.
func ChangeActionValues() []ChangeAction {
	return []ChangeAction{ChangeActionCreate, ChangeActionDelete, ChangeActionUpsert}
}

// Change status values reported in ChangeInfo.
const (
	ChangeStatusPending = "PENDING"
	ChangeStatusInsync  = "INSYNC"
)

// =============================================================================
// Leaf records
// =============================================================================

// ResourceRecord holds one value of a record set, e.g. an IP address.
type ResourceRecord struct {
	Value *string `xml:"Value"`
}

// NewResourceRecord returns a record holding value.
func NewResourceRecord(value string) *ResourceRecord {
	return &ResourceRecord{Value: &value}
}

func (s *ResourceRecord) SetValue(v string) *ResourceRecord { s.Value = &v; return s }

func (s *ResourceRecord) Equal(o *ResourceRecord) bool {
	if s == nil || o == nil {
		return s == o
	}
	return shape.StringEqual(s.Value, o.Value)
}

func (s *ResourceRecord) Hash() uint64 {
	if s == nil {
		return 0
	}
	return shape.NewHasher().String(s.Value).Sum64()
}

func (s *ResourceRecord) Clone() *ResourceRecord {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s ResourceRecord) String() string   { return awsutil.Prettify(s) }
func (s ResourceRecord) GoString() string { return s.String() }

// GeoLocation routes queries by the location they originate from.
type GeoLocation struct {
	ContinentCode   *string `xml:"ContinentCode"`
	CountryCode     *string `xml:"CountryCode"`
	SubdivisionCode *string `xml:"SubdivisionCode"`
}

func (s *GeoLocation) SetContinentCode(v string) *GeoLocation   { s.ContinentCode = &v; return s }
func (s *GeoLocation) SetCountryCode(v string) *GeoLocation     { s.CountryCode = &v; return s }
func (s *GeoLocation) SetSubdivisionCode(v string) *GeoLocation { s.SubdivisionCode = &v; return s }

func (s *GeoLocation) Equal(o *GeoLocation) bool {
	if s == nil || o == nil {
		return s == o
	}
	return shape.StringEqual(s.ContinentCode, o.ContinentCode) &&
		shape.StringEqual(s.CountryCode, o.CountryCode) &&
		shape.StringEqual(s.SubdivisionCode, o.SubdivisionCode)
}

func (s *GeoLocation) Hash() uint64 {
	if s == nil {
		return 0
	}
	return shape.NewHasher().String(s.ContinentCode).String(s.CountryCode).String(s.SubdivisionCode).Sum64()
}

func (s *GeoLocation) Clone() *GeoLocation {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s GeoLocation) String() string   { return awsutil.Prettify(s) }
func (s GeoLocation) GoString() string { return s.String() }

// AliasTarget points an alias record set at another AWS resource.
type AliasTarget struct {
	HostedZoneID         *string `xml:"HostedZoneId"`
	DNSName              *string `xml:"DNSName"`
	EvaluateTargetHealth *bool   `xml:"EvaluateTargetHealth"`
}

func (s *AliasTarget) SetHostedZoneID(v string) *AliasTarget       { s.HostedZoneID = &v; return s }
func (s *AliasTarget) SetDNSName(v string) *AliasTarget            { s.DNSName = &v; return s }
func (s *AliasTarget) SetEvaluateTargetHealth(v bool) *AliasTarget { s.EvaluateTargetHealth = &v; return s }

func (s *AliasTarget) Equal(o *AliasTarget) bool {
	if s == nil || o == nil {
		return s == o
	}
	return shape.StringEqual(s.HostedZoneID, o.HostedZoneID) &&
		shape.StringEqual(s.DNSName, o.DNSName) &&
		shape.BoolEqual(s.EvaluateTargetHealth, o.EvaluateTargetHealth)
}

func (s *AliasTarget) Hash() uint64 {
	if s == nil {
		return 0
	}
	return shape.NewHasher().String(s.HostedZoneID).String(s.DNSName).Bool(s.EvaluateTargetHealth).Sum64()
}

func (s *AliasTarget) Clone() *AliasTarget {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s AliasTarget) String() string   { return awsutil.Prettify(s) }
func (s AliasTarget) GoString() string { return s.String() }

// =============================================================================
// ResourceRecordSet
// =============================================================================

// ResourceRecordSet is the unit Route 53 changes and lists: every record
// sharing a name and type, plus the routing policy that applies to them.
type ResourceRecordSet struct {
	Name                    *string
	Type                    *string
	SetIdentifier           *string
	Weight                  *int64
	Region                  *string
	GeoLocation             *GeoLocation
	Failover                *string
	TTL                     *int64
	ResourceRecords         []*ResourceRecord
	AliasTarget             *AliasTarget
	HealthCheckID           *string
	TrafficPolicyInstanceID *string
}

// NewResourceRecordSet returns a record set with its name and type set.
func NewResourceRecordSet(name string, typ RRType) *ResourceRecordSet {
	return new(ResourceRecordSet).SetName(name).SetType(typ)
}

func (s *ResourceRecordSet) SetName(v string) *ResourceRecordSet { s.Name = &v; return s }

func (s *ResourceRecordSet) SetType(v RRType) *ResourceRecordSet {
	t := string(v)
	s.Type = &t
	return s
}

func (s *ResourceRecordSet) SetSetIdentifier(v string) *ResourceRecordSet {
	s.SetIdentifier = &v
	return s
}

func (s *ResourceRecordSet) SetWeight(v int64) *ResourceRecordSet { s.Weight = &v; return s }

func (s *ResourceRecordSet) SetRegion(v ResourceRecordSetRegion) *ResourceRecordSet {
	r := string(v)
	s.Region = &r
	return s
}

func (s *ResourceRecordSet) SetGeoLocation(v *GeoLocation) *ResourceRecordSet {
	s.GeoLocation = v
	return s
}

func (s *ResourceRecordSet) SetFailover(v ResourceRecordSetFailover) *ResourceRecordSet {
	f := string(v)
	s.Failover = &f
	return s
}

func (s *ResourceRecordSet) SetTTL(v int64) *ResourceRecordSet { s.TTL = &v; return s }

func (s *ResourceRecordSet) SetResourceRecords(v []*ResourceRecord) *ResourceRecordSet {
	s.ResourceRecords = v
	return s
}

// AddResourceRecords appends to ResourceRecords, allocating it if needed.
func (s *ResourceRecordSet) AddResourceRecords(v ...*ResourceRecord) *ResourceRecordSet {
	if s.ResourceRecords == nil {
		s.ResourceRecords = make([]*ResourceRecord, 0, len(v))
	}
	s.ResourceRecords = append(s.ResourceRecords, v...)
	return s
}

func (s *ResourceRecordSet) SetAliasTarget(v *AliasTarget) *ResourceRecordSet {
	s.AliasTarget = v
	return s
}

func (s *ResourceRecordSet) SetHealthCheckID(v string) *ResourceRecordSet {
	s.HealthCheckID = &v
	return s
}

func (s *ResourceRecordSet) SetTrafficPolicyInstanceID(v string) *ResourceRecordSet {
	s.TrafficPolicyInstanceID = &v
	return s
}

func (s *ResourceRecordSet) Equal(o *ResourceRecordSet) bool {
	if s == nil || o == nil {
		return s == o
	}
	return shape.StringEqual(s.Name, o.Name) &&
		shape.StringEqual(s.Type, o.Type) &&
		shape.StringEqual(s.SetIdentifier, o.SetIdentifier) &&
		shape.Int64Equal(s.Weight, o.Weight) &&
		shape.StringEqual(s.Region, o.Region) &&
		s.GeoLocation.Equal(o.GeoLocation) &&
		shape.StringEqual(s.Failover, o.Failover) &&
		shape.Int64Equal(s.TTL, o.TTL) &&
		shape.SliceEqual(s.ResourceRecords, o.ResourceRecords, (*ResourceRecord).Equal) &&
		s.AliasTarget.Equal(o.AliasTarget) &&
		shape.StringEqual(s.HealthCheckID, o.HealthCheckID) &&
		shape.StringEqual(s.TrafficPolicyInstanceID, o.TrafficPolicyInstanceID)
}

func (s *ResourceRecordSet) Hash() uint64 {
	if s == nil {
		return 0
	}
	h := shape.NewHasher().
		String(s.Name).
		String(s.Type).
		String(s.SetIdentifier).
		Int64(s.Weight).
		String(s.Region).
		Uint64(s.GeoLocation.Hash(), s.GeoLocation != nil).
		String(s.Failover).
		Int64(s.TTL)
	h = shape.Slice(h, s.ResourceRecords, func(r *ResourceRecord) (uint64, bool) { return r.Hash(), r != nil })
	return h.
		Uint64(s.AliasTarget.Hash(), s.AliasTarget != nil).
		String(s.HealthCheckID).
		String(s.TrafficPolicyInstanceID).
		Sum64()
}

// Clone returns a shallow copy; nested records and the ResourceRecords slice
// are shared with s.
func (s *ResourceRecordSet) Clone() *ResourceRecordSet {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s ResourceRecordSet) String() string   { return awsutil.Prettify(s) }
func (s ResourceRecordSet) GoString() string { return s.String() }

// =============================================================================
// Changes
// =============================================================================

// Change is one action applied to one record set.
type Change struct {
	Action            *string
	ResourceRecordSet *ResourceRecordSet
}

// NewChange returns a change applying action to rrs.
func NewChange(action ChangeAction, rrs *ResourceRecordSet) *Change {
	return new(Change).SetAction(action).SetResourceRecordSet(rrs)
}

func (s *Change) SetAction(v ChangeAction) *Change {
	a := string(v)
	s.Action = &a
	return s
}

func (s *Change) SetResourceRecordSet(v *ResourceRecordSet) *Change {
	s.ResourceRecordSet = v
	return s
}

func (s *Change) Equal(o *Change) bool {
	if s == nil || o == nil {
		return s == o
	}
	return shape.StringEqual(s.Action, o.Action) && s.ResourceRecordSet.Equal(o.ResourceRecordSet)
}

func (s *Change) Hash() uint64 {
	if s == nil {
		return 0
	}
	return shape.NewHasher().
		String(s.Action).
		Uint64(s.ResourceRecordSet.Hash(), s.ResourceRecordSet != nil).
		Sum64()
}

func (s *Change) Clone() *Change {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s Change) String() string   { return awsutil.Prettify(s) }
func (s Change) GoString() string { return s.String() }

// ChangeBatch groups changes that Route 53 applies atomically.
type ChangeBatch struct {
	Comment *string
	Changes []*Change
}

func (s *ChangeBatch) SetComment(v string) *ChangeBatch { s.Comment = &v; return s }

func (s *ChangeBatch) SetChanges(v []*Change) *ChangeBatch { s.Changes = v; return s }

// AddChanges appends to Changes, allocating it if needed.
func (s *ChangeBatch) AddChanges(v ...*Change) *ChangeBatch {
	if s.Changes == nil {
		s.Changes = make([]*Change, 0, len(v))
	}
	s.Changes = append(s.Changes, v...)
	return s
}

func (s *ChangeBatch) Equal(o *ChangeBatch) bool {
	if s == nil || o == nil {
		return s == o
	}
	return shape.StringEqual(s.Comment, o.Comment) &&
		shape.SliceEqual(s.Changes, o.Changes, (*Change).Equal)
}

func (s *ChangeBatch) Hash() uint64 {
	if s == nil {
		return 0
	}
	h := shape.NewHasher().String(s.Comment)
	return shape.Slice(h, s.Changes, func(c *Change) (uint64, bool) { return c.Hash(), c != nil }).Sum64()
}

func (s *ChangeBatch) Clone() *ChangeBatch {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s ChangeBatch) String() string   { return awsutil.Prettify(s) }
func (s ChangeBatch) GoString() string { return s.String() }

// ChangeInfo describes a submitted change batch.
type ChangeInfo struct {
	ID          *string
	Status      *string
	SubmittedAt *time.Time
	Comment     *string
}

func (s *ChangeInfo) SetID(v string) *ChangeInfo              { s.ID = &v; return s }
func (s *ChangeInfo) SetStatus(v string) *ChangeInfo          { s.Status = &v; return s }
func (s *ChangeInfo) SetSubmittedAt(v time.Time) *ChangeInfo  { s.SubmittedAt = &v; return s }
func (s *ChangeInfo) SetComment(v string) *ChangeInfo         { s.Comment = &v; return s }

func (s *ChangeInfo) Equal(o *ChangeInfo) bool {
	if s == nil || o == nil {
		return s == o
	}
	return shape.StringEqual(s.ID, o.ID) &&
		shape.StringEqual(s.Status, o.Status) &&
		timeEqual(s.SubmittedAt, o.SubmittedAt) &&
		shape.StringEqual(s.Comment, o.Comment)
}

func (s *ChangeInfo) Hash() uint64 {
	if s == nil {
		return 0
	}
	var submitted *int64
	if s.SubmittedAt != nil {
		n := s.SubmittedAt.UnixNano()
		submitted = &n
	}
	return shape.NewHasher().String(s.ID).String(s.Status).Int64(submitted).String(s.Comment).Sum64()
}

func (s *ChangeInfo) Clone() *ChangeInfo {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s ChangeInfo) String() string   { return awsutil.Prettify(s) }
func (s ChangeInfo) GoString() string { return s.String() }

func timeEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
