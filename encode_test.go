package vtype_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vertigosql/vtype"
)

func mustEncode(t *testing.T, v vtype.Value, typeName string) string {
	t.Helper()
	s, err := vtype.Encode(v, typeName)
	require.NoError(t, err)
	return s
}

func TestEncodeStringEscaping(t *testing.T) {
	assert.Equal(t, "'plain'", mustEncode(t, vtype.Text("plain"), "VARCHAR"))
	assert.Equal(t, "'it''s'", mustEncode(t, vtype.Text("it's"), "VARCHAR"))
	assert.Equal(t, `'a\\b'`, mustEncode(t, vtype.Text(`a\b`), "VARCHAR"))
	assert.Equal(t, "'''); DROP TABLE users;--'", mustEncode(t, vtype.Text("'); DROP TABLE users;--"), ""))
}

func TestEncodeNull(t *testing.T) {
	assert.Equal(t, "NULL", mustEncode(t, vtype.Null{}, "INT"))
	assert.Equal(t, "NULL", mustEncode(t, vtype.Null{}, ""))
}

func TestEncodeContainers(t *testing.T) {
	assert.Equal(t, "ARRAY[1,2,3]", mustEncode(t, vtype.Array{vtype.Int(1), vtype.Int(2), vtype.Int(3)}, "ARRAY[INT]"))
	assert.Equal(t, "ARRAY['a','b''c']", mustEncode(t, vtype.Array{vtype.Text("a"), vtype.Text("b'c")}, "ARRAY[VARCHAR]"))
	assert.Equal(t, "SET[1,2]", mustEncode(t, vtype.Set{vtype.Int(1), vtype.Int(2)}, "SET[INT]"))
	assert.Equal(t, "ROW('Amy',-3,NULL)", mustEncode(t, vtype.Row{
		Names:  []string{"name", "id", "d"},
		Values: []vtype.Value{vtype.Text("Amy"), vtype.Int(-3), vtype.Null{}},
	}, "ROW(name VARCHAR, id INT, d DATE)"))
	assert.Equal(t, "ARRAY[ARRAY[1],ARRAY[]]",
		mustEncode(t, vtype.Array{vtype.Array{vtype.Int(1)}, vtype.Array{}}, "ARRAY[ARRAY[INT]]"))
}

func TestEncodeUntypableContainersGetCast(t *testing.T) {
	// Empty and all-null containers carry no element the server could infer
	// a type from; they need the cast.
	assert.Equal(t, "ARRAY[]::ARRAY[INT]", mustEncode(t, vtype.Array{}, "ARRAY[INT]"))
	assert.Equal(t, "ARRAY[NULL]::ARRAY[VARCHAR]", mustEncode(t, vtype.Array{vtype.Null{}}, "ARRAY[VARCHAR]"))
	assert.Equal(t, "SET[]::SET[DATE]", mustEncode(t, vtype.Set{}, "SET[DATE]"))

	// Without a target there is nothing to cast to.
	assert.Equal(t, "ARRAY[]", mustEncode(t, vtype.Array{}, ""))
}

func TestEncodeTypeMismatch(t *testing.T) {
	var mis *vtype.EncodingTypeMismatchError

	_, err := vtype.Encode(vtype.Text("x"), "INT")
	require.ErrorAs(t, err, &mis)

	_, err = vtype.Encode(vtype.Array{vtype.Int(1)}, "INT")
	require.ErrorAs(t, err, &mis)

	_, err = vtype.Encode(vtype.Int(1), "ARRAY[INT]")
	require.ErrorAs(t, err, &mis)

	_, err = vtype.Encode(vtype.Row{Values: []vtype.Value{vtype.Int(1)}}, "ROW(a INT, b INT)")
	require.ErrorAs(t, err, &mis)
}

func TestEncodeIntWidening(t *testing.T) {
	assert.Equal(t, "5", mustEncode(t, vtype.Int(5), "NUMERIC(10,2)"))
	assert.Equal(t, "5", mustEncode(t, vtype.Int(5), "FLOAT"))
}

func TestEncodeBadTypeName(t *testing.T) {
	_, err := vtype.Encode(vtype.Int(1), "not a type")
	assert.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		typeName string
		src      string
	}{
		{"ARRAY[INT]", "ARRAY[1,null,3]"},
		{"ARRAY[VARCHAR]", "ARRAY['it''s','x,y']"},
		{"SET[INT]", "SET[1,2]"},
		{"ROW(name VARCHAR, id INT)", "ROW('Amy',-3)"},
		{"ARRAY[ARRAY[INT]]", "ARRAY[ARRAY[1,2],ARRAY[]]"},
		{"VARBINARY", "HEX_TO_BINARY('0x0001ff')"},
	}
	for _, tt := range tests {
		typ := mustType(t, tt.typeName)
		v, err := vtype.Decode([]byte(tt.src), typ, time.UTC)
		require.NoErrorf(t, err, "decode %q", tt.src)

		s, err := vtype.Encode(v, tt.typeName)
		require.NoErrorf(t, err, "encode %q", tt.src)

		v2, err := vtype.Decode([]byte(s), typ, time.UTC)
		require.NoErrorf(t, err, "re-decode %q", s)
		assert.Truef(t, vtype.Equal(v, v2), "round trip of %q via %q", tt.src, s)
	}
}
