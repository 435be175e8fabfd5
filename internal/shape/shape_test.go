package shape_test

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/jroosing/awsrest/internal/shape"
	"github.com/stretchr/testify/assert"
)

func TestStringEqual(t *testing.T) {
	assert.True(t, shape.StringEqual(nil, nil))
	assert.True(t, shape.StringEqual(aws.String("a"), aws.String("a")))
	assert.False(t, shape.StringEqual(aws.String("a"), aws.String("b")))
	assert.False(t, shape.StringEqual(aws.String(""), nil))
	assert.False(t, shape.StringEqual(nil, aws.String("")))
}

func TestInt64AndBoolEqual(t *testing.T) {
	assert.True(t, shape.Int64Equal(aws.Int64(0), aws.Int64(0)))
	assert.False(t, shape.Int64Equal(aws.Int64(0), nil))
	assert.True(t, shape.BoolEqual(aws.Bool(false), aws.Bool(false)))
	assert.False(t, shape.BoolEqual(aws.Bool(false), nil))
}

func TestMapEqual(t *testing.T) {
	a := map[string]*string{"application/json": aws.String("Empty")}
	b := map[string]*string{"application/json": aws.String("Empty")}
	c := map[string]*string{"application/json": aws.String("Error")}

	assert.True(t, shape.MapEqual(a, b))
	assert.False(t, shape.MapEqual(a, c))
	assert.False(t, shape.MapEqual(map[string]*string{}, nil), "empty and absent differ")
	assert.True(t, shape.MapEqual[string](nil, nil))
	assert.False(t, shape.MapEqual(
		map[string]*bool{"k": nil},
		map[string]*bool{"k": aws.Bool(false)},
	))
}

func TestSliceEqual(t *testing.T) {
	eq := func(x, y *string) bool { return shape.StringEqual(x, y) }
	a := []*string{aws.String("1"), aws.String("2")}

	assert.True(t, shape.SliceEqual(a, []*string{aws.String("1"), aws.String("2")}, eq))
	assert.False(t, shape.SliceEqual(a, []*string{aws.String("2"), aws.String("1")}, eq), "order matters")
	assert.False(t, shape.SliceEqual([]*string{}, nil, eq))
}

func TestHasher_AbsentAndZeroDiffer(t *testing.T) {
	h1 := shape.NewHasher().String(nil).Sum64()
	h2 := shape.NewHasher().String(aws.String("")).Sum64()
	assert.NotEqual(t, h1, h2)
}

func TestHasher_FieldBoundaries(t *testing.T) {
	h1 := shape.NewHasher().String(aws.String("ab")).String(aws.String("c")).Sum64()
	h2 := shape.NewHasher().String(aws.String("a")).String(aws.String("bc")).Sum64()
	assert.NotEqual(t, h1, h2)
}

func TestHasher_MapOrderIndependent(t *testing.T) {
	m1 := map[string]*bool{"a": aws.Bool(true), "b": aws.Bool(false), "c": nil}
	m2 := map[string]*bool{"c": nil, "b": aws.Bool(false), "a": aws.Bool(true)}

	for i := 0; i < 10; i++ {
		assert.Equal(t, shape.NewHasher().BoolMap(m1).Sum64(), shape.NewHasher().BoolMap(m2).Sum64())
	}
}

func TestHasher_Deterministic(t *testing.T) {
	sum := func() uint64 {
		h := shape.NewHasher().
			String(aws.String("www.example.com")).
			Int64(aws.Int64(300)).
			Bool(aws.Bool(true)).
			StringMap(map[string]*string{"x": aws.String("y")})
		return shape.Slice(h, []int{1, 2}, func(v int) (uint64, bool) { return uint64(v), true }).Sum64()
	}
	assert.Equal(t, sum(), sum())
}
