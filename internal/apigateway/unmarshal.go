package apigateway

import (
	"bytes"
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/jroosing/awsrest/internal/protocol"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	errEmptyBody    = errors.New("empty body")
	errTrailingData = errors.New("trailing data after document")
)

// parse runs read over data and converts iterator failures. A document that
// ends early surfaces as io.EOF and is malformed too, as is anything but
// whitespace after the document.
func parse(op string, data []byte, read func(iter *jsoniter.Iterator)) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return protocol.MalformedResponse(op, errEmptyBody)
	}
	iter := jsoniter.ParseBytes(jsonAPI, data)
	read(iter)
	if iter.Error != nil {
		return protocol.MalformedResponse(op, iter.Error)
	}
	// Only a clean end of input sets io.EOF here.
	iter.WhatIsNext()
	if !errors.Is(iter.Error, io.EOF) {
		return protocol.MalformedResponse(op, errTrailingData)
	}
	return nil
}

// UnmarshalMethodResponse reads a MethodResponse document. Unknown fields are
// skipped.
func UnmarshalMethodResponse(data []byte) (*MethodResponse, error) {
	var out *MethodResponse
	err := parse("UnmarshalMethodResponse", data, func(iter *jsoniter.Iterator) {
		out = readMethodResponse(iter)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UnmarshalPatchOperation reads a single PatchOperation document.
func UnmarshalPatchOperation(data []byte) (*PatchOperation, error) {
	var out *PatchOperation
	err := parse("UnmarshalPatchOperation", data, func(iter *jsoniter.Iterator) {
		out = readPatchOperation(iter)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UnmarshalPatchOperations reads the body of an UpdateMethodResponse request,
// i.e. {"patchOperations":[...]}.
func UnmarshalPatchOperations(data []byte) ([]*PatchOperation, error) {
	var out []*PatchOperation
	err := parse("UnmarshalPatchOperations", data, func(iter *jsoniter.Iterator) {
		if iter.ReadNil() {
			return
		}
		// A repeated key replaces the earlier list.
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
			if field != "patchOperations" {
				iter.Skip()
				return true
			}
			if iter.ReadNil() {
				out = nil
				return true
			}
			out = make([]*PatchOperation, 0, 4)
			for iter.ReadArray() {
				out = append(out, readPatchOperation(iter))
			}
			return true
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func readPatchOperation(iter *jsoniter.Iterator) *PatchOperation {
	if iter.ReadNil() {
		return nil
	}
	out := &PatchOperation{}
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
		switch field {
		case "op":
			out.Op = readString(iter)
		case "path":
			out.Path = readString(iter)
		case "value":
			out.Value = readString(iter)
		case "from":
			out.From = readString(iter)
		default:
			iter.Skip()
		}
		return true
	})
	return out
}

func readMethodResponse(iter *jsoniter.Iterator) *MethodResponse {
	if iter.ReadNil() {
		return nil
	}
	out := &MethodResponse{}
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
		switch field {
		case "statusCode":
			out.StatusCode = readString(iter)
		case "responseParameters":
			out.ResponseParameters = readBoolMap(iter)
		case "responseModels":
			out.ResponseModels = readStringMap(iter)
		default:
			iter.Skip()
		}
		return true
	})
	return out
}

func readString(iter *jsoniter.Iterator) *string {
	if iter.ReadNil() {
		return nil
	}
	v := iter.ReadString()
	return &v
}

func readBool(iter *jsoniter.Iterator) *bool {
	if iter.ReadNil() {
		return nil
	}
	v := iter.ReadBool()
	return &v
}

func readBoolMap(iter *jsoniter.Iterator) map[string]*bool {
	if iter.ReadNil() {
		return nil
	}
	m := make(map[string]*bool)
	iter.ReadMapCB(func(iter *jsoniter.Iterator, k string) bool {
		m[k] = readBool(iter)
		return true
	})
	return m
}

func readStringMap(iter *jsoniter.Iterator) map[string]*string {
	if iter.ReadNil() {
		return nil
	}
	m := make(map[string]*string)
	iter.ReadMapCB(func(iter *jsoniter.Iterator, k string) bool {
		m[k] = readString(iter)
		return true
	})
	return m
}
