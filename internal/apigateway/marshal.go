package apigateway

import (
	"net/http"
	"slices"

	"github.com/jroosing/awsrest/internal/protocol"
)

// ServiceName is the service identifier carried on every request.
const ServiceName = "AmazonApiGateway"

// Operation names.
const (
	OpUpdateMethodResponse = "UpdateMethodResponse"
	OpGetMethodResponse    = "GetMethodResponse"
	OpPutMethodResponse    = "PutMethodResponse"
	OpDeleteMethodResponse = "DeleteMethodResponse"
)

// MethodResponsePath is the URI template shared by the method-response
// operations.
const MethodResponsePath = "/restapis/{restapi_id}/resources/{resource_id}/methods/{http_method}/responses/{status_code}"

func methodResponseURI(k *MethodResponseKey) string {
	path := MethodResponsePath
	path = protocol.ReplacePathParam(path, "restapi_id", k.RestAPIID)
	path = protocol.ReplacePathParam(path, "resource_id", k.ResourceID)
	path = protocol.ReplacePathParam(path, "http_method", k.HTTPMethod)
	path = protocol.ReplacePathParam(path, "status_code", k.StatusCode)
	return path
}

// finish closes the document and attaches it to req. A generator failure
// discards req entirely.
func finish(op string, req *protocol.Request, f protocol.JSONFactory, g protocol.JSONGenerator) (*protocol.Request, error) {
	body, err := g.Bytes()
	if err != nil {
		return nil, protocol.SerializationFailure(op, "JSON", err)
	}
	req.SetContent(body, f.ContentType())
	return req, nil
}

// =============================================================================
// Element writers
// =============================================================================

// MarshalPatchOperation writes p as a JSON object. Nil fields are omitted.
func MarshalPatchOperation(g protocol.JSONGenerator, p *PatchOperation) {
	g.WriteStartObject()
	writeString(g, "op", p.Op)
	writeString(g, "path", p.Path)
	writeString(g, "value", p.Value)
	writeString(g, "from", p.From)
	g.WriteEndObject()
}

// MarshalMethodResponse writes r as a JSON object. Nil fields are omitted.
func MarshalMethodResponse(g protocol.JSONGenerator, r *MethodResponse) {
	g.WriteStartObject()
	writeString(g, "statusCode", r.StatusCode)
	writeBoolMap(g, "responseParameters", r.ResponseParameters)
	writeStringMap(g, "responseModels", r.ResponseModels)
	g.WriteEndObject()
}

func writeString(g protocol.JSONGenerator, name string, v *string) {
	if v == nil {
		return
	}
	g.WriteFieldName(name)
	g.WriteString(*v)
}

func writeBoolMap(g protocol.JSONGenerator, name string, m map[string]*bool) {
	if m == nil {
		return
	}
	g.WriteFieldName(name)
	g.WriteStartObject()
	for _, k := range sortedKeys(m) {
		if v := m[k]; v != nil {
			g.WriteFieldName(k)
			g.WriteBool(*v)
		}
	}
	g.WriteEndObject()
}

func writeStringMap(g protocol.JSONGenerator, name string, m map[string]*string) {
	if m == nil {
		return
	}
	g.WriteFieldName(name)
	g.WriteStartObject()
	for _, k := range sortedKeys(m) {
		writeString(g, k, m[k])
	}
	g.WriteEndObject()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// =============================================================================
// Operation marshallers
// =============================================================================

// UpdateMethodResponseMarshaller builds PATCH requests.
type UpdateMethodResponseMarshaller struct {
	factory protocol.JSONFactory
}

func NewUpdateMethodResponseMarshaller(f protocol.JSONFactory) *UpdateMethodResponseMarshaller {
	return &UpdateMethodResponseMarshaller{factory: f}
}

func (m *UpdateMethodResponseMarshaller) Marshal(in *UpdateMethodResponseInput) (*protocol.Request, error) {
	if in == nil {
		return nil, protocol.InvalidArgument(OpUpdateMethodResponse)
	}

	req := protocol.NewRequest(ServiceName, OpUpdateMethodResponse, protocol.RestJSON, http.MethodPatch)
	req.ResourcePath = methodResponseURI(&in.MethodResponseKey)

	g := m.factory.NewJSONGenerator()
	g.WriteStartObject()
	if in.PatchOperations != nil {
		g.WriteFieldName("patchOperations")
		g.WriteStartArray()
		for _, p := range in.PatchOperations {
			if p != nil {
				MarshalPatchOperation(g, p)
			}
		}
		g.WriteEndArray()
	}
	g.WriteEndObject()

	return finish(OpUpdateMethodResponse, req, m.factory, g)
}

// PutMethodResponseMarshaller builds PUT requests.
type PutMethodResponseMarshaller struct {
	factory protocol.JSONFactory
}

func NewPutMethodResponseMarshaller(f protocol.JSONFactory) *PutMethodResponseMarshaller {
	return &PutMethodResponseMarshaller{factory: f}
}

func (m *PutMethodResponseMarshaller) Marshal(in *PutMethodResponseInput) (*protocol.Request, error) {
	if in == nil {
		return nil, protocol.InvalidArgument(OpPutMethodResponse)
	}

	req := protocol.NewRequest(ServiceName, OpPutMethodResponse, protocol.RestJSON, http.MethodPut)
	req.ResourcePath = methodResponseURI(&in.MethodResponseKey)

	g := m.factory.NewJSONGenerator()
	g.WriteStartObject()
	writeBoolMap(g, "responseParameters", in.ResponseParameters)
	writeStringMap(g, "responseModels", in.ResponseModels)
	g.WriteEndObject()

	return finish(OpPutMethodResponse, req, m.factory, g)
}

// GetMethodResponseMarshaller builds GET requests. They carry no body.
type GetMethodResponseMarshaller struct{}

func NewGetMethodResponseMarshaller() *GetMethodResponseMarshaller {
	return &GetMethodResponseMarshaller{}
}

func (m *GetMethodResponseMarshaller) Marshal(in *GetMethodResponseInput) (*protocol.Request, error) {
	if in == nil {
		return nil, protocol.InvalidArgument(OpGetMethodResponse)
	}
	req := protocol.NewRequest(ServiceName, OpGetMethodResponse, protocol.RestJSON, http.MethodGet)
	req.ResourcePath = methodResponseURI(&in.MethodResponseKey)
	req.SetContent(nil, "")
	return req, nil
}

// DeleteMethodResponseMarshaller builds DELETE requests. They carry no body.
type DeleteMethodResponseMarshaller struct{}

func NewDeleteMethodResponseMarshaller() *DeleteMethodResponseMarshaller {
	return &DeleteMethodResponseMarshaller{}
}

func (m *DeleteMethodResponseMarshaller) Marshal(in *DeleteMethodResponseInput) (*protocol.Request, error) {
	if in == nil {
		return nil, protocol.InvalidArgument(OpDeleteMethodResponse)
	}
	req := protocol.NewRequest(ServiceName, OpDeleteMethodResponse, protocol.RestJSON, http.MethodDelete)
	req.ResourcePath = methodResponseURI(&in.MethodResponseKey)
	req.SetContent(nil, "")
	return req, nil
}

// EncodeMethodResponse renders r as a standalone JSON document.
func EncodeMethodResponse(f protocol.JSONFactory, r *MethodResponse) ([]byte, error) {
	if r == nil {
		return nil, protocol.InvalidArgument("EncodeMethodResponse")
	}
	g := f.NewJSONGenerator()
	MarshalMethodResponse(g, r)
	body, err := g.Bytes()
	if err != nil {
		return nil, protocol.SerializationFailure("EncodeMethodResponse", "JSON", err)
	}
	return body, nil
}
