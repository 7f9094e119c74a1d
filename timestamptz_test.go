package vtype_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vertigosql/vtype"
)

func TestDecodeTimestampTzSessionRendering(t *testing.T) {
	// The same raw text decodes to the same instant rendered in whatever
	// timezone the session has at decode time.
	typ := mustType(t, "TIMESTAMPTZ")
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	v, err := vtype.Decode([]byte("2001-01-01 05:00:00+00:00"), typ, ny)
	require.NoError(t, err)
	got := v.(vtype.TimestampTz)
	_, off := got.Zone()
	assert.Equal(t, -5*3600, off)
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 2001, got.Year())

	v, err = vtype.Decode([]byte("2001-01-01 05:00:00+00:00"), typ, time.UTC)
	require.NoError(t, err)
	utc := v.(vtype.TimestampTz)
	_, off = utc.Zone()
	assert.Equal(t, 0, off)
	assert.Equal(t, 5, utc.Hour())

	// Two renderings of one instant.
	assert.True(t, vtype.Equal(got, utc))
}

func TestDecodeTimestampTzSessionWallClock(t *testing.T) {
	// No offset in the text: the wall clock is read in the session zone.
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	v, err := vtype.Decode([]byte("2001-07-01 12:00:00"), mustType(t, "TIMESTAMPTZ"), ny)
	require.NoError(t, err)
	got := v.(vtype.TimestampTz)
	_, off := got.Zone()
	assert.Equal(t, -4*3600, off) // July is DST
	assert.Equal(t, 12, got.Hour())
}

func TestDecodeTimestampTzNamedZone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	v, err := vtype.Decode([]byte("2001-01-01 00:00:00 UTC"), mustType(t, "TIMESTAMPTZ"), ny)
	require.NoError(t, err)
	got := v.(vtype.TimestampTz)
	assert.Equal(t, 19, got.Hour())
	assert.Equal(t, 31, got.Day())
	assert.Equal(t, time.December, got.Month())
}

func TestTimestampTzRoundTrip(t *testing.T) {
	// Round trips only when the session zone matches the rendered offset.
	src := "2001-01-01 10:30:00-05:00"
	v, err := vtype.Decode([]byte(src), mustType(t, "TIMESTAMPTZ"), time.FixedZone("-05:00", -5*3600))
	require.NoError(t, err)
	s, err := vtype.Encode(v, "TIMESTAMPTZ")
	require.NoError(t, err)
	assert.Equal(t, "'"+src+"'", s)
}

func TestSessionDecode(t *testing.T) {
	sess := vtype.NewSession()
	require.NoError(t, sess.SetTimezone("America/New_York"))

	v, err := sess.Decode([]byte("2001-01-01 05:00:00+00:00"), mustType(t, "TIMESTAMPTZ"))
	require.NoError(t, err)
	_, off := v.(vtype.TimestampTz).Zone()
	assert.Equal(t, -5*3600, off)

	require.NoError(t, sess.SetTimezone("+05:30"))
	v, err = sess.Decode([]byte("2001-01-01 05:00:00+00:00"), mustType(t, "TIMESTAMPTZ"))
	require.NoError(t, err)
	_, off = v.(vtype.TimestampTz).Zone()
	assert.Equal(t, 19800, off)

	assert.Error(t, sess.SetTimezone("Not/AZone"))
	assert.Error(t, sess.SetTimezone(""))
}
