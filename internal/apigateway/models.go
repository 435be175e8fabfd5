// Package apigateway contains the API Gateway method-response models, their
// REST-JSON marshallers and readers, and a thin client tying them to a
// transport.
package apigateway

import (
	"github.com/aws/aws-sdk-go/aws/awsutil"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/jroosing/awsrest/internal/shape"
)

// Patch operation verbs (RFC 6902).
const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpReplace = "replace"
	OpMove    = "move"
	OpCopy    = "copy"
	OpTest    = "test"
)

// OpValues returns every valid PatchOperation.Op value.
func OpValues() []string {
	return []string{OpAdd, OpRemove, OpReplace, OpMove, OpCopy, OpTest}
}

// =============================================================================
// PatchOperation
// =============================================================================

// PatchOperation is a single update applied to a resource.
type PatchOperation struct {
	Op    *string `json:"op,omitempty"`
	Path  *string `json:"path,omitempty"`
	Value *string `json:"value,omitempty"`
	From  *string `json:"from,omitempty"`
}

func (s *PatchOperation) SetOp(v string) *PatchOperation    { s.Op = &v; return s }
func (s *PatchOperation) SetPath(v string) *PatchOperation  { s.Path = &v; return s }
func (s *PatchOperation) SetValue(v string) *PatchOperation { s.Value = &v; return s }
func (s *PatchOperation) SetFrom(v string) *PatchOperation  { s.From = &v; return s }

func (s *PatchOperation) Equal(o *PatchOperation) bool {
	if s == nil || o == nil {
		return s == o
	}
	return shape.StringEqual(s.Op, o.Op) &&
		shape.StringEqual(s.Path, o.Path) &&
		shape.StringEqual(s.Value, o.Value) &&
		shape.StringEqual(s.From, o.From)
}

func (s *PatchOperation) Hash() uint64 {
	if s == nil {
		return 0
	}
	return shape.NewHasher().String(s.Op).String(s.Path).String(s.Value).String(s.From).Sum64()
}

func (s *PatchOperation) Clone() *PatchOperation {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s PatchOperation) String() string   { return awsutil.Prettify(s) }
func (s PatchOperation) GoString() string { return s.String() }

func hashPatchOperation(p *PatchOperation) (uint64, bool) { return p.Hash(), p != nil }

// =============================================================================
// MethodResponse
// =============================================================================

// MethodResponse describes a response a method may return. ResponseParameters
// maps header names to whether they are required; ResponseModels maps content
// types to model names.
type MethodResponse struct {
	StatusCode         *string            `json:"statusCode,omitempty"`
	ResponseParameters map[string]*bool   `json:"responseParameters,omitempty"`
	ResponseModels     map[string]*string `json:"responseModels,omitempty"`
}

func (s *MethodResponse) SetStatusCode(v string) *MethodResponse { s.StatusCode = &v; return s }

func (s *MethodResponse) SetResponseParameters(v map[string]*bool) *MethodResponse {
	s.ResponseParameters = v
	return s
}

func (s *MethodResponse) SetResponseModels(v map[string]*string) *MethodResponse {
	s.ResponseModels = v
	return s
}

func (s *MethodResponse) Equal(o *MethodResponse) bool {
	if s == nil || o == nil {
		return s == o
	}
	return shape.StringEqual(s.StatusCode, o.StatusCode) &&
		shape.MapEqual(s.ResponseParameters, o.ResponseParameters) &&
		shape.MapEqual(s.ResponseModels, o.ResponseModels)
}

func (s *MethodResponse) Hash() uint64 {
	if s == nil {
		return 0
	}
	return shape.NewHasher().
		String(s.StatusCode).
		BoolMap(s.ResponseParameters).
		StringMap(s.ResponseModels).
		Sum64()
}

// Clone returns a shallow copy; the maps are shared with s.
func (s *MethodResponse) Clone() *MethodResponse {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s MethodResponse) String() string   { return awsutil.Prettify(s) }
func (s MethodResponse) GoString() string { return s.String() }

// =============================================================================
// Request inputs
// =============================================================================

// MethodResponseKey is the path identity shared by every method-response
// operation.
type MethodResponseKey struct {
	RestAPIID  *string `json:"-"`
	ResourceID *string `json:"-"`
	HTTPMethod *string `json:"-"`
	StatusCode *string `json:"-"`
}

func (k *MethodResponseKey) equal(o *MethodResponseKey) bool {
	return shape.StringEqual(k.RestAPIID, o.RestAPIID) &&
		shape.StringEqual(k.ResourceID, o.ResourceID) &&
		shape.StringEqual(k.HTTPMethod, o.HTTPMethod) &&
		shape.StringEqual(k.StatusCode, o.StatusCode)
}

func (k *MethodResponseKey) hash() *shape.Hasher {
	return shape.NewHasher().
		String(k.RestAPIID).
		String(k.ResourceID).
		String(k.HTTPMethod).
		String(k.StatusCode)
}

func (k *MethodResponseKey) validate(context string) error {
	invalid := request.ErrInvalidParams{Context: context}
	for _, f := range []struct {
		name string
		v    *string
	}{
		{"RestAPIID", k.RestAPIID},
		{"ResourceID", k.ResourceID},
		{"HTTPMethod", k.HTTPMethod},
		{"StatusCode", k.StatusCode},
	} {
		if f.v == nil {
			invalid.Add(request.NewErrParamRequired(f.name))
		} else if len(*f.v) < 1 {
			invalid.Add(request.NewErrParamMinLen(f.name, 1))
		}
	}
	if invalid.Len() > 0 {
		return invalid
	}
	return nil
}

// UpdateMethodResponseInput updates an existing method response with a list
// of patch operations.
type UpdateMethodResponseInput struct {
	MethodResponseKey
	PatchOperations []*PatchOperation `json:"patchOperations,omitempty"`
}

func (s *UpdateMethodResponseInput) SetRestAPIID(v string) *UpdateMethodResponseInput {
	s.RestAPIID = &v
	return s
}

func (s *UpdateMethodResponseInput) SetResourceID(v string) *UpdateMethodResponseInput {
	s.ResourceID = &v
	return s
}

func (s *UpdateMethodResponseInput) SetHTTPMethod(v string) *UpdateMethodResponseInput {
	s.HTTPMethod = &v
	return s
}

func (s *UpdateMethodResponseInput) SetStatusCode(v string) *UpdateMethodResponseInput {
	s.StatusCode = &v
	return s
}

func (s *UpdateMethodResponseInput) SetPatchOperations(v []*PatchOperation) *UpdateMethodResponseInput {
	s.PatchOperations = v
	return s
}

// AddPatchOperations appends to PatchOperations, allocating it if needed.
func (s *UpdateMethodResponseInput) AddPatchOperations(v ...*PatchOperation) *UpdateMethodResponseInput {
	if s.PatchOperations == nil {
		s.PatchOperations = make([]*PatchOperation, 0, len(v))
	}
	s.PatchOperations = append(s.PatchOperations, v...)
	return s
}

// Validate checks the path fields. Patch operations are not inspected; the
// service reports semantic errors.
func (s *UpdateMethodResponseInput) Validate() error {
	return s.validate("UpdateMethodResponseInput")
}

func (s *UpdateMethodResponseInput) Equal(o *UpdateMethodResponseInput) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.MethodResponseKey.equal(&o.MethodResponseKey) &&
		shape.SliceEqual(s.PatchOperations, o.PatchOperations, (*PatchOperation).Equal)
}

func (s *UpdateMethodResponseInput) Hash() uint64 {
	if s == nil {
		return 0
	}
	return shape.Slice(s.hash(), s.PatchOperations, hashPatchOperation).Sum64()
}

func (s *UpdateMethodResponseInput) Clone() *UpdateMethodResponseInput {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s UpdateMethodResponseInput) String() string   { return awsutil.Prettify(s) }
func (s UpdateMethodResponseInput) GoString() string { return s.String() }

// GetMethodResponseInput identifies a method response to describe.
type GetMethodResponseInput struct {
	MethodResponseKey
}

func (s *GetMethodResponseInput) SetRestAPIID(v string) *GetMethodResponseInput {
	s.RestAPIID = &v
	return s
}

func (s *GetMethodResponseInput) SetResourceID(v string) *GetMethodResponseInput {
	s.ResourceID = &v
	return s
}

func (s *GetMethodResponseInput) SetHTTPMethod(v string) *GetMethodResponseInput {
	s.HTTPMethod = &v
	return s
}

func (s *GetMethodResponseInput) SetStatusCode(v string) *GetMethodResponseInput {
	s.StatusCode = &v
	return s
}

func (s *GetMethodResponseInput) Validate() error {
	return s.validate("GetMethodResponseInput")
}

func (s *GetMethodResponseInput) Equal(o *GetMethodResponseInput) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.MethodResponseKey.equal(&o.MethodResponseKey)
}

func (s *GetMethodResponseInput) Hash() uint64 {
	if s == nil {
		return 0
	}
	return s.hash().Sum64()
}

func (s *GetMethodResponseInput) Clone() *GetMethodResponseInput {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s GetMethodResponseInput) String() string   { return awsutil.Prettify(s) }
func (s GetMethodResponseInput) GoString() string { return s.String() }

// PutMethodResponseInput creates or replaces a method response.
type PutMethodResponseInput struct {
	MethodResponseKey
	ResponseParameters map[string]*bool   `json:"responseParameters,omitempty"`
	ResponseModels     map[string]*string `json:"responseModels,omitempty"`
}

func (s *PutMethodResponseInput) SetRestAPIID(v string) *PutMethodResponseInput {
	s.RestAPIID = &v
	return s
}

func (s *PutMethodResponseInput) SetResourceID(v string) *PutMethodResponseInput {
	s.ResourceID = &v
	return s
}

func (s *PutMethodResponseInput) SetHTTPMethod(v string) *PutMethodResponseInput {
	s.HTTPMethod = &v
	return s
}

func (s *PutMethodResponseInput) SetStatusCode(v string) *PutMethodResponseInput {
	s.StatusCode = &v
	return s
}

func (s *PutMethodResponseInput) SetResponseParameters(v map[string]*bool) *PutMethodResponseInput {
	s.ResponseParameters = v
	return s
}

func (s *PutMethodResponseInput) SetResponseModels(v map[string]*string) *PutMethodResponseInput {
	s.ResponseModels = v
	return s
}

func (s *PutMethodResponseInput) Validate() error {
	return s.validate("PutMethodResponseInput")
}

func (s *PutMethodResponseInput) Equal(o *PutMethodResponseInput) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.MethodResponseKey.equal(&o.MethodResponseKey) &&
		shape.MapEqual(s.ResponseParameters, o.ResponseParameters) &&
		shape.MapEqual(s.ResponseModels, o.ResponseModels)
}

func (s *PutMethodResponseInput) Hash() uint64 {
	if s == nil {
		return 0
	}
	return s.hash().BoolMap(s.ResponseParameters).StringMap(s.ResponseModels).Sum64()
}

func (s *PutMethodResponseInput) Clone() *PutMethodResponseInput {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s PutMethodResponseInput) String() string   { return awsutil.Prettify(s) }
func (s PutMethodResponseInput) GoString() string { return s.String() }

// DeleteMethodResponseInput identifies a method response to delete.
type DeleteMethodResponseInput struct {
	MethodResponseKey
}

func (s *DeleteMethodResponseInput) SetRestAPIID(v string) *DeleteMethodResponseInput {
	s.RestAPIID = &v
	return s
}

func (s *DeleteMethodResponseInput) SetResourceID(v string) *DeleteMethodResponseInput {
	s.ResourceID = &v
	return s
}

func (s *DeleteMethodResponseInput) SetHTTPMethod(v string) *DeleteMethodResponseInput {
	s.HTTPMethod = &v
	return s
}

func (s *DeleteMethodResponseInput) SetStatusCode(v string) *DeleteMethodResponseInput {
	s.StatusCode = &v
	return s
}

func (s *DeleteMethodResponseInput) Validate() error {
	return s.validate("DeleteMethodResponseInput")
}

func (s *DeleteMethodResponseInput) Equal(o *DeleteMethodResponseInput) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.MethodResponseKey.equal(&o.MethodResponseKey)
}

func (s *DeleteMethodResponseInput) Hash() uint64 {
	if s == nil {
		return 0
	}
	return s.hash().Sum64()
}

func (s *DeleteMethodResponseInput) Clone() *DeleteMethodResponseInput {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s DeleteMethodResponseInput) String() string   { return awsutil.Prettify(s) }
func (s DeleteMethodResponseInput) GoString() string { return s.String() }
