package vtype_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vertigosql/vtype"
)

func TestDecodeFloat(t *testing.T) {
	assert.Equal(t, vtype.Float(1.5), mustDecode(t, "1.5", "FLOAT"))
	assert.Equal(t, vtype.Float(-1e300), mustDecode(t, "-1e300", "FLOAT"))
	assert.Equal(t, vtype.Float(math.Inf(1)), mustDecode(t, "Infinity", "FLOAT"))
	assert.Equal(t, vtype.Float(math.Inf(-1)), mustDecode(t, "-Infinity", "FLOAT"))

	v := mustDecode(t, "NaN", "FLOAT")
	assert.True(t, math.IsNaN(float64(v.(vtype.Float))))
}

func TestEncodeFloatSpecials(t *testing.T) {
	s, err := vtype.Encode(vtype.Float(math.Inf(1)), "FLOAT")
	require.NoError(t, err)
	assert.Equal(t, "'Infinity'::float", s)

	s, err = vtype.Encode(vtype.Float(math.NaN()), "FLOAT")
	require.NoError(t, err)
	assert.Equal(t, "'NaN'::float", s)

	s, err = vtype.Encode(vtype.Float(-0.5), "FLOAT")
	require.NoError(t, err)
	assert.Equal(t, "-0.5", s)
}

func TestDecodeFloatArray(t *testing.T) {
	// Inside containers the specials arrive quoted and cast.
	v := mustDecode(t, "ARRAY[1.5,'Infinity'::float,null]", "ARRAY[FLOAT]")
	arr := v.(vtype.Array)
	require.Len(t, arr, 3)
	assert.Equal(t, vtype.Float(1.5), arr[0])
	assert.Equal(t, vtype.Float(math.Inf(1)), arr[1])
	assert.Equal(t, vtype.Null{}, arr[2])
}
