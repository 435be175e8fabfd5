package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/jroosing/awsrest/internal/apigateway"
)

// errInvalidPatch is wrapped by every rejected patch operation.
var errInvalidPatch = errors.New("invalid patch operation")

// JSON pointer escapes: "~1" is "/", "~0" is "~".
var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// applyPatch applies ops in order to mr, which it mutates and returns.
// Supported paths are /responseParameters/<header> and
// /responseModels/<content type>; add and replace set the entry, remove
// deletes it.
func applyPatch(mr *apigateway.MethodResponse, ops []*apigateway.PatchOperation) (*apigateway.MethodResponse, error) {
	for i, op := range ops {
		if op == nil {
			continue
		}
		if err := applyOne(mr, op); err != nil {
			return nil, fmt.Errorf("%w %d: %w", errInvalidPatch, i, err)
		}
	}
	return mr, nil
}

func applyOne(mr *apigateway.MethodResponse, op *apigateway.PatchOperation) error {
	path := aws.StringValue(op.Path)
	section, rawKey, ok := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if !ok || rawKey == "" {
		return fmt.Errorf("unsupported path %q", path)
	}
	key := pointerUnescaper.Replace(rawKey)

	verb := aws.StringValue(op.Op)
	switch verb {
	case apigateway.OpAdd, apigateway.OpReplace, apigateway.OpRemove:
	default:
		return fmt.Errorf("unsupported op %q", verb)
	}
	if verb != apigateway.OpRemove && op.Value == nil {
		return fmt.Errorf("%s %s: value is required", verb, path)
	}

	switch section {
	case "responseParameters":
		if verb == apigateway.OpRemove {
			delete(mr.ResponseParameters, key)
			return nil
		}
		required, err := strconv.ParseBool(*op.Value)
		if err != nil {
			return fmt.Errorf("%s %s: value must be true or false", verb, path)
		}
		if mr.ResponseParameters == nil {
			mr.ResponseParameters = map[string]*bool{}
		}
		mr.ResponseParameters[key] = aws.Bool(required)
	case "responseModels":
		if verb == apigateway.OpRemove {
			delete(mr.ResponseModels, key)
			return nil
		}
		if mr.ResponseModels == nil {
			mr.ResponseModels = map[string]*string{}
		}
		mr.ResponseModels[key] = aws.String(*op.Value)
	default:
		return fmt.Errorf("unsupported path %q", path)
	}
	return nil
}
