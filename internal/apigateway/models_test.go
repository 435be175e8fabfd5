package apigateway_test

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/jroosing/awsrest/internal/apigateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchOperation_ValueSemantics(t *testing.T) {
	a := new(apigateway.PatchOperation).SetOp(apigateway.OpAdd).SetPath("/x").SetValue("1")
	b := new(apigateway.PatchOperation).SetOp(apigateway.OpAdd).SetPath("/x").SetValue("1")

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.Equal(t, a.Hash(), b.Hash())

	b.SetValue("2")
	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(a))

	assert.False(t, a.Equal(nil))
	assert.True(t, (*apigateway.PatchOperation)(nil).Equal(nil))
}

func TestPatchOperation_AbsentIsNotEmpty(t *testing.T) {
	a := new(apigateway.PatchOperation).SetOp(apigateway.OpRemove)
	b := new(apigateway.PatchOperation).SetOp(apigateway.OpRemove).SetValue("")

	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestPatchOperation_Clone(t *testing.T) {
	a := new(apigateway.PatchOperation).SetOp(apigateway.OpTest).SetPath("/p")
	c := a.Clone()

	assert.True(t, a.Equal(c))
	assert.NotSame(t, a, c)
	assert.Nil(t, (*apigateway.PatchOperation)(nil).Clone())
}

func TestMethodResponse_ValueSemantics(t *testing.T) {
	build := func() *apigateway.MethodResponse {
		return new(apigateway.MethodResponse).
			SetStatusCode("200").
			SetResponseParameters(map[string]*bool{"a": aws.Bool(true), "b": aws.Bool(false)}).
			SetResponseModels(map[string]*string{"application/json": aws.String("Empty")})
	}
	a, b := build(), build()

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	b.ResponseModels = map[string]*string{}
	assert.False(t, a.Equal(b))

	c := a.Clone()
	assert.True(t, a.Equal(c))
	assert.NotSame(t, a, c)

	// shallow: maps are shared
	c.ResponseParameters["z"] = aws.Bool(true)
	assert.Contains(t, a.ResponseParameters, "z")
}

func TestMethodResponse_String(t *testing.T) {
	mr := new(apigateway.MethodResponse).SetStatusCode("200")
	assert.Contains(t, mr.String(), `StatusCode: "200"`)
	assert.Equal(t, mr.String(), mr.GoString())
}

func TestUpdateMethodResponseInput_ValueSemantics(t *testing.T) {
	a, b := exampleUpdate(), exampleUpdate()

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.Equal(t, a.Hash(), b.Hash())

	b.SetStatusCode("500")
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())

	c := a.Clone()
	assert.True(t, a.Equal(c))
	assert.NotSame(t, a, c)
	assert.Same(t, a.PatchOperations[0], c.PatchOperations[0])
}

func TestUpdateMethodResponseInput_OrderMatters(t *testing.T) {
	op1 := new(apigateway.PatchOperation).SetOp(apigateway.OpAdd)
	op2 := new(apigateway.PatchOperation).SetOp(apigateway.OpRemove)

	a := new(apigateway.UpdateMethodResponseInput).AddPatchOperations(op1, op2)
	b := new(apigateway.UpdateMethodResponseInput).AddPatchOperations(op2, op1)
	assert.False(t, a.Equal(b))
}

func TestInputs_HashDistinguishesTypes(t *testing.T) {
	get := new(apigateway.GetMethodResponseInput).SetRestAPIID("a")
	get2 := new(apigateway.GetMethodResponseInput).SetRestAPIID("a")
	del := new(apigateway.DeleteMethodResponseInput).SetRestAPIID("a")
	put := new(apigateway.PutMethodResponseInput).SetRestAPIID("a").SetResponseModels(map[string]*string{})

	assert.True(t, get.Equal(get2))
	assert.Equal(t, get.Hash(), get2.Hash())
	assert.True(t, del.Equal(del.Clone()))
	assert.True(t, put.Equal(put.Clone()))
	assert.False(t, put.Equal(new(apigateway.PutMethodResponseInput).SetRestAPIID("a")))
}

func TestValidate(t *testing.T) {
	full := new(apigateway.GetMethodResponseInput).
		SetRestAPIID("abc").SetResourceID("r").SetHTTPMethod("GET").SetStatusCode("200")
	assert.NoError(t, full.Validate())

	err := new(apigateway.DeleteMethodResponseInput).SetRestAPIID("").SetHTTPMethod("GET").Validate()
	require.Error(t, err)

	var invalid request.ErrInvalidParams
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "DeleteMethodResponseInput", invalid.Context)
	assert.Equal(t, 3, invalid.Len())
	assert.Contains(t, err.Error(), "RestAPIID")
	assert.Contains(t, err.Error(), "ResourceID")
	assert.Contains(t, err.Error(), "StatusCode")
	assert.NotContains(t, err.Error(), "HTTPMethod")
}
