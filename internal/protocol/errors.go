// Package protocol turns SDK request models into transport-ready requests.
//
// Wire Formats:
//
//   - rest-json: JSON bodies, used by API Gateway
//   - rest-xml: XML bodies, used by Route 53
//
// A marshaller is a stateless converter: it takes one model, substitutes the
// URI placeholders of its operation, writes the present fields through a
// structured generator and returns a Request. The generators keep a sticky
// error that is surfaced once, when the body bytes are requested.
//
// Error Handling:
//
// Only two client-side failures exist. A nil model yields ErrInvalidArgument
// and a generator failure yields a ClientError of kind KindSerialization that
// wraps the cause. Both satisfy awserr.Error so callers can treat them like
// any other aws-sdk-go error.
package protocol

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
)

var (
	// ErrInvalidArgument is returned when a marshaller receives a nil model.
	ErrInvalidArgument = errors.New("invalid argument passed to marshal")

	// ErrGeneratorState is the sentinel for structurally invalid generator use,
	// e.g. a value written inside an object without a field name.
	ErrGeneratorState = errors.New("invalid generator state")

	// ErrInvalidXMLChar is reported by the XML generator for character data
	// that XML 1.0 cannot carry, such as control bytes or invalid UTF-8.
	ErrInvalidXMLChar = errors.New("character not allowed in XML")

	// ErrMalformedResponse is returned by readers when a response body does
	// not match the expected shape.
	ErrMalformedResponse = errors.New("malformed response body")
)

// Kind classifies a ClientError.
type Kind int

const (
	KindInvalidArgument Kind = iota + 1
	KindSerialization
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindSerialization:
		return "serialization"
	default:
		return "unknown"
	}
}

// ClientError is a failure raised before a request ever leaves the process.
type ClientError struct {
	Op   string
	Kind Kind
	Msg  string
	Err  error
}

var _ awserr.Error = (*ClientError)(nil)

func (e *ClientError) Error() string {
	if e.Op == "" {
		return e.Msg
	}
	return e.Op + ": " + e.Msg
}

func (e *ClientError) Unwrap() error { return e.Err }

// Code returns the aws-sdk-go error code for the kind.
func (e *ClientError) Code() string {
	if e.Kind == KindSerialization {
		return request.ErrCodeSerialization
	}
	return request.InvalidParameterErrCode
}

func (e *ClientError) Message() string { return e.Msg }

func (e *ClientError) OrigErr() error { return e.Err }

// InvalidArgument builds the error returned for a nil model.
func InvalidArgument(op string) error {
	return &ClientError{
		Op:   op,
		Kind: KindInvalidArgument,
		Msg:  ErrInvalidArgument.Error(),
		Err:  ErrInvalidArgument,
	}
}

// SerializationFailure wraps a generator failure. format names the wire
// format ("JSON", "XML") and ends up in the message.
func SerializationFailure(op, format string, err error) error {
	return &ClientError{
		Op:   op,
		Kind: KindSerialization,
		Msg:  fmt.Sprintf("unable to marshal request to %s: %v", format, err),
		Err:  err,
	}
}

// MalformedResponse wraps a reader failure for op.
func MalformedResponse(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrMalformedResponse, err)
}
