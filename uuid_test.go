package vtype_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vertigosql/vtype"
)

func TestDecodeUUID(t *testing.T) {
	v := mustDecode(t, "00010203-0405-0607-0809-0a0b0c0d0e0f", "UUID")
	assert.Equal(t, "00010203-0405-0607-0809-0a0b0c0d0e0f", v.(vtype.UUID).String())

	// Case-insensitive input, lowercase canonical form out.
	v = mustDecode(t, "00010203-0405-0607-0809-0A0B0C0D0E0F", "UUID")
	assert.Equal(t, "00010203-0405-0607-0809-0a0b0c0d0e0f", v.(vtype.UUID).String())

	_, err := vtype.Decode([]byte("not-a-uuid"), mustType(t, "UUID"), time.UTC)
	var vfe *vtype.ValueFormatError
	assert.ErrorAs(t, err, &vfe)
}

func TestEncodeUUID(t *testing.T) {
	v := mustDecode(t, "00010203-0405-0607-0809-0a0b0c0d0e0f", "UUID")
	s, err := vtype.Encode(v, "UUID")
	require.NoError(t, err)
	assert.Equal(t, "'00010203-0405-0607-0809-0a0b0c0d0e0f'", s)
}
