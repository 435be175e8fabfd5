package route53

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/awsutil"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/jroosing/awsrest/internal/dnsname"
	"github.com/jroosing/awsrest/internal/shape"
)

// Limits enforced by Validate.
const (
	MaxTTL              = 2147483647
	MaxWeight           = 255
	maxHostedZoneIDLen  = 32
	maxSetIdentifierLen = 128
)

// =============================================================================
// ChangeResourceRecordSetsInput
// =============================================================================

// ChangeResourceRecordSetsInput submits a change batch to a hosted zone.
type ChangeResourceRecordSetsInput struct {
	HostedZoneID *string
	ChangeBatch  *ChangeBatch
}

func (s *ChangeResourceRecordSetsInput) SetHostedZoneID(v string) *ChangeResourceRecordSetsInput {
	s.HostedZoneID = &v
	return s
}

func (s *ChangeResourceRecordSetsInput) SetChangeBatch(v *ChangeBatch) *ChangeResourceRecordSetsInput {
	s.ChangeBatch = v
	return s
}

func (s *ChangeResourceRecordSetsInput) Validate() error {
	invalid := request.ErrInvalidParams{Context: "ChangeResourceRecordSetsInput"}
	validateZoneID(&invalid, s.HostedZoneID)
	if s.ChangeBatch == nil {
		invalid.Add(request.NewErrParamRequired("ChangeBatch"))
	} else if err := s.ChangeBatch.Validate(); err != nil {
		invalid.AddNested("ChangeBatch", err.(request.ErrInvalidParams))
	}
	if invalid.Len() > 0 {
		return invalid
	}
	return nil
}

func (s *ChangeResourceRecordSetsInput) Equal(o *ChangeResourceRecordSetsInput) bool {
	if s == nil || o == nil {
		return s == o
	}
	return shape.StringEqual(s.HostedZoneID, o.HostedZoneID) && s.ChangeBatch.Equal(o.ChangeBatch)
}

func (s *ChangeResourceRecordSetsInput) Hash() uint64 {
	if s == nil {
		return 0
	}
	return shape.NewHasher().
		String(s.HostedZoneID).
		Uint64(s.ChangeBatch.Hash(), s.ChangeBatch != nil).
		Sum64()
}

func (s *ChangeResourceRecordSetsInput) Clone() *ChangeResourceRecordSetsInput {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s ChangeResourceRecordSetsInput) String() string   { return awsutil.Prettify(s) }
func (s ChangeResourceRecordSetsInput) GoString() string { return s.String() }

// =============================================================================
// ListResourceRecordSetsInput
// =============================================================================

// ListResourceRecordSetsInput lists the record sets of a hosted zone,
// starting at the given name/type/identifier.
type ListResourceRecordSetsInput struct {
	HostedZoneID          *string
	StartRecordName       *string
	StartRecordType       *string
	StartRecordIdentifier *string
	MaxItems              *string
}

func (s *ListResourceRecordSetsInput) SetHostedZoneID(v string) *ListResourceRecordSetsInput {
	s.HostedZoneID = &v
	return s
}

func (s *ListResourceRecordSetsInput) SetStartRecordName(v string) *ListResourceRecordSetsInput {
	s.StartRecordName = &v
	return s
}

func (s *ListResourceRecordSetsInput) SetStartRecordType(v RRType) *ListResourceRecordSetsInput {
	t := string(v)
	s.StartRecordType = &t
	return s
}

func (s *ListResourceRecordSetsInput) SetStartRecordIdentifier(v string) *ListResourceRecordSetsInput {
	s.StartRecordIdentifier = &v
	return s
}

func (s *ListResourceRecordSetsInput) SetMaxItems(v string) *ListResourceRecordSetsInput {
	s.MaxItems = &v
	return s
}

func (s *ListResourceRecordSetsInput) Validate() error {
	invalid := request.ErrInvalidParams{Context: "ListResourceRecordSetsInput"}
	validateZoneID(&invalid, s.HostedZoneID)
	if s.StartRecordIdentifier != nil && len(*s.StartRecordIdentifier) < 1 {
		invalid.Add(request.NewErrParamMinLen("StartRecordIdentifier", 1))
	}
	if invalid.Len() > 0 {
		return invalid
	}
	return nil
}

func (s *ListResourceRecordSetsInput) Equal(o *ListResourceRecordSetsInput) bool {
	if s == nil || o == nil {
		return s == o
	}
	return shape.StringEqual(s.HostedZoneID, o.HostedZoneID) &&
		shape.StringEqual(s.StartRecordName, o.StartRecordName) &&
		shape.StringEqual(s.StartRecordType, o.StartRecordType) &&
		shape.StringEqual(s.StartRecordIdentifier, o.StartRecordIdentifier) &&
		shape.StringEqual(s.MaxItems, o.MaxItems)
}

func (s *ListResourceRecordSetsInput) Hash() uint64 {
	if s == nil {
		return 0
	}
	return shape.NewHasher().
		String(s.HostedZoneID).
		String(s.StartRecordName).
		String(s.StartRecordType).
		String(s.StartRecordIdentifier).
		String(s.MaxItems).
		Sum64()
}

func (s *ListResourceRecordSetsInput) Clone() *ListResourceRecordSetsInput {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s ListResourceRecordSetsInput) String() string   { return awsutil.Prettify(s) }
func (s ListResourceRecordSetsInput) GoString() string { return s.String() }

// =============================================================================
// Nested validation
// =============================================================================

func validateZoneID(invalid *request.ErrInvalidParams, id *string) {
	switch {
	case id == nil:
		invalid.Add(request.NewErrParamRequired("HostedZoneID"))
	case len(CleanZoneID(*id)) < 1:
		invalid.Add(request.NewErrParamMinLen("HostedZoneID", 1))
	case len(CleanZoneID(*id)) > maxHostedZoneIDLen:
		invalid.Add(request.NewErrParamMaxLen("HostedZoneID", maxHostedZoneIDLen, *id))
	}
}

// CleanZoneID strips the "/hostedzone/" prefix Route 53 puts on the zone IDs
// it returns, so those IDs can be passed back as-is.
func CleanZoneID(id string) string {
	return strings.TrimPrefix(id, "/hostedzone/")
}

// Validate checks that the batch has at least one change and that every
// change is well formed.
func (s *ChangeBatch) Validate() error {
	invalid := request.ErrInvalidParams{Context: "ChangeBatch"}
	if s.Changes == nil {
		invalid.Add(request.NewErrParamRequired("Changes"))
	} else if len(s.Changes) < 1 {
		invalid.Add(request.NewErrParamMinLen("Changes", 1))
	}
	for i, c := range s.Changes {
		if c == nil {
			invalid.Add(request.NewErrParamRequired(fmt.Sprintf("Changes[%d]", i)))
			continue
		}
		if err := c.Validate(); err != nil {
			invalid.AddNested(fmt.Sprintf("Changes[%d]", i), err.(request.ErrInvalidParams))
		}
	}
	if invalid.Len() > 0 {
		return invalid
	}
	return nil
}

func (s *Change) Validate() error {
	invalid := request.ErrInvalidParams{Context: "Change"}
	if s.Action == nil {
		invalid.Add(request.NewErrParamRequired("Action"))
	} else if !validAction(*s.Action) {
		invalid.Add(request.NewErrParamFormat("Action", "CREATE|DELETE|UPSERT", *s.Action))
	}
	if s.ResourceRecordSet == nil {
		invalid.Add(request.NewErrParamRequired("ResourceRecordSet"))
	} else if err := s.ResourceRecordSet.Validate(); err != nil {
		invalid.AddNested("ResourceRecordSet", err.(request.ErrInvalidParams))
	}
	if invalid.Len() > 0 {
		return invalid
	}
	return nil
}

func validAction(a string) bool {
	for _, v := range ChangeActionValues() {
		if string(v) == a {
			return true
		}
	}
	return false
}

// Validate checks field presence and ranges of the record set. The name must
// be a well-formed DNS name.
func (s *ResourceRecordSet) Validate() error {
	invalid := request.ErrInvalidParams{Context: "ResourceRecordSet"}
	if s.Name == nil {
		invalid.Add(request.NewErrParamRequired("Name"))
	} else if err := dnsname.Validate(dnsname.Unescape(*s.Name)); err != nil {
		invalid.Add(request.NewErrParamFormat("Name", "domain name", *s.Name))
	}
	if s.Type == nil {
		invalid.Add(request.NewErrParamRequired("Type"))
	}
	if s.SetIdentifier != nil {
		if len(*s.SetIdentifier) < 1 {
			invalid.Add(request.NewErrParamMinLen("SetIdentifier", 1))
		} else if len(*s.SetIdentifier) > maxSetIdentifierLen {
			invalid.Add(request.NewErrParamMaxLen("SetIdentifier", maxSetIdentifierLen, *s.SetIdentifier))
		}
	}
	if s.Weight != nil {
		if *s.Weight < 0 {
			invalid.Add(request.NewErrParamMinValue("Weight", 0))
		} else if *s.Weight > MaxWeight {
			invalid.Add(newErrParamMaxValue("Weight", MaxWeight))
		}
	}
	if s.TTL != nil {
		if *s.TTL < 0 {
			invalid.Add(request.NewErrParamMinValue("TTL", 0))
		} else if *s.TTL > MaxTTL {
			invalid.Add(newErrParamMaxValue("TTL", MaxTTL))
		}
	}
	for i, rr := range s.ResourceRecords {
		if rr != nil && rr.Value == nil {
			invalid.Add(request.NewErrParamRequired(fmt.Sprintf("ResourceRecords[%d].Value", i)))
		}
	}
	if at := s.AliasTarget; at != nil {
		if at.HostedZoneID == nil {
			invalid.Add(request.NewErrParamRequired("AliasTarget.HostedZoneID"))
		}
		if at.DNSName == nil {
			invalid.Add(request.NewErrParamRequired("AliasTarget.DNSName"))
		}
		if at.EvaluateTargetHealth == nil {
			invalid.Add(request.NewErrParamRequired("AliasTarget.EvaluateTargetHealth"))
		}
	}
	if geo := s.GeoLocation; geo != nil {
		if geo.ContinentCode != nil && len(*geo.ContinentCode) != 2 {
			invalid.Add(request.NewErrParamFormat("GeoLocation.ContinentCode", "2 letters", *geo.ContinentCode))
		}
		if geo.CountryCode != nil && (len(*geo.CountryCode) < 1 || len(*geo.CountryCode) > 2) {
			invalid.Add(request.NewErrParamFormat("GeoLocation.CountryCode", "1-2 letters", *geo.CountryCode))
		}
		if geo.SubdivisionCode != nil && (len(*geo.SubdivisionCode) < 1 || len(*geo.SubdivisionCode) > 3) {
			invalid.Add(request.NewErrParamFormat("GeoLocation.SubdivisionCode", "1-3 letters", *geo.SubdivisionCode))
		}
	}
	if invalid.Len() > 0 {
		return invalid
	}
	return nil
}

// errParamMaxValue is the upper-bound counterpart of request.ErrParamMinValue.
type errParamMaxValue struct {
	field         string
	context       string
	nestedContext string
	max           int64
}

var _ request.ErrInvalidParam = (*errParamMaxValue)(nil)

func newErrParamMaxValue(field string, max int64) *errParamMaxValue {
	return &errParamMaxValue{field: field, max: max}
}

func (e *errParamMaxValue) Code() string { return "ParamMaxValueError" }

func (e *errParamMaxValue) Message() string {
	return fmt.Sprintf("maximum field value of %d, %s.", e.max, e.Field())
}

func (e *errParamMaxValue) Error() string {
	return awserr.SprintError(e.Code(), e.Message(), "", nil)
}

func (e *errParamMaxValue) OrigErr() error { return nil }

func (e *errParamMaxValue) Field() string {
	field := e.context
	if field != "" {
		field += "."
	}
	if e.nestedContext != "" {
		field += e.nestedContext + "."
	}
	return field + e.field
}

func (e *errParamMaxValue) SetContext(ctx string) { e.context = ctx }

func (e *errParamMaxValue) AddNestedContext(ctx string) {
	if e.nestedContext == "" {
		e.nestedContext = ctx
	} else {
		e.nestedContext = ctx + "." + e.nestedContext
	}
}
