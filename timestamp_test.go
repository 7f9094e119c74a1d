package vtype_test

import (
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vertigosql/vtype"
)

func TestDecodeTimestamp(t *testing.T) {
	v := mustDecode(t, "2001-02-03 04:05:06.25", "TIMESTAMP")
	assert.Equal(t, vtype.Timestamp{DateTime: civil.DateTime{
		Date: civil.Date{Year: 2001, Month: time.February, Day: 3},
		Time: civil.Time{Hour: 4, Minute: 5, Second: 6, Nanosecond: 250000000},
	}}, v)

	// A bare date is midnight.
	v = mustDecode(t, "2001-02-03", "TIMESTAMP")
	assert.Equal(t, vtype.Timestamp{DateTime: civil.DateTime{
		Date: civil.Date{Year: 2001, Month: time.February, Day: 3},
	}}, v)
}

func TestDecodeTimestampRoundUpRollsDate(t *testing.T) {
	// Unlike a time of day, a timestamp's fractional carry rolls the date.
	v := mustDecode(t, "2001-12-31 23:59:59.9999999", "TIMESTAMP")
	assert.Equal(t, vtype.Timestamp{DateTime: civil.DateTime{
		Date: civil.Date{Year: 2002, Month: time.January, Day: 1},
	}}, v)
}

func TestDecodeTimestampRejectsZone(t *testing.T) {
	for _, src := range []string{"2001-02-03 04:05:06+01", "2001-02-03 04:05:06 America/New_York"} {
		_, err := vtype.Decode([]byte(src), mustType(t, "TIMESTAMP"), time.UTC)
		var vfe *vtype.ValueFormatError
		assert.ErrorAsf(t, err, &vfe, "src %q", src)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	for _, src := range []string{"2001-02-03 04:05:06", "2001-02-03 00:00:00", "1969-07-20 20:17:40.5"} {
		v := mustDecode(t, src, "TIMESTAMP")
		s, err := vtype.Encode(v, "TIMESTAMP")
		require.NoError(t, err)
		assert.Equalf(t, "'"+src+"'", s, "round trip of %q", src)
	}
}
