package vtype_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vertigosql/vtype"
)

func TestDecodeTimeTzKeepsLiteralOffset(t *testing.T) {
	// The literal's own offset wins over the session timezone.
	est := time.FixedZone("-05:00", -5*3600)
	typ := mustType(t, "TIMETZ")

	v, err := vtype.Decode([]byte("10:00:00+05:30"), typ, est)
	require.NoError(t, err)
	assert.Equal(t, vtype.TimeTz{Time: civil.Time{Hour: 10}, Offset: 19800}, v)

	v, err = vtype.Decode([]byte("10:00:00-08"), typ, est)
	require.NoError(t, err)
	assert.Equal(t, vtype.TimeTz{Time: civil.Time{Hour: 10}, Offset: -8 * 3600}, v)
}

func TestDecodeTimeTzSessionFallback(t *testing.T) {
	// Only an offset-less literal consults the session timezone.
	v, err := vtype.Decode([]byte("10:00:00"), mustType(t, "TIMETZ"), time.FixedZone("+02:00", 2*3600))
	require.NoError(t, err)
	assert.Equal(t, vtype.TimeTz{Time: civil.Time{Hour: 10}, Offset: 2 * 3600}, v)
}

func TestDecodeTimeTzZoneNameAtDate(t *testing.T) {
	// A named zone resolves at the embedded date, so DST applies.
	typ := mustType(t, "TIMETZ")

	v, err := vtype.Decode([]byte("2001-01-01 10:00:00 America/New_York"), typ, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, -5*3600, v.(vtype.TimeTz).Offset)

	v, err = vtype.Decode([]byte("2001-07-01 10:00:00 America/New_York"), typ, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, -4*3600, v.(vtype.TimeTz).Offset)
}

func TestDecodeTimeTzPrecision(t *testing.T) {
	v := mustDecode(t, "10:00:00.123956+01", "TIMETZ(3)")
	assert.Equal(t, vtype.TimeTz{
		Time:   civil.Time{Hour: 10, Nanosecond: 124000000},
		Offset: 3600,
	}, v)
}

func TestTimeTzRoundTrip(t *testing.T) {
	for _, src := range []string{"10:00:00+05:30", "23:59:59.5-08:00", "00:00:00+00:00"} {
		v := mustDecode(t, src, "TIMETZ")
		s, err := vtype.Encode(v, "TIMETZ")
		require.NoError(t, err)
		assert.Equalf(t, "'"+src+"'", s, "round trip of %q", src)
	}
}
