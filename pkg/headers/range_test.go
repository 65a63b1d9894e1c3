package headers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReadRangeNPT(t *testing.T) {
	r, err := ReadRange("npt=0-7.5")
	require.NoError(t, err)
	require.Equal(t, RangeUnitNPT, r.Unit)
	require.Equal(t, time.Duration(0), r.NPTStart)
	require.NotNil(t, r.NPTEnd)
	require.InDelta(t, 7.5, r.NPTEnd.Seconds(), 0.0001)
}

func TestReadRangeNPTOpenEnded(t *testing.T) {
	r, err := ReadRange("npt=0-")
	require.NoError(t, err)
	require.Nil(t, r.NPTEnd)
	require.Equal(t, "npt=0-", r.Write())
}

func TestReadRangeSMPTE(t *testing.T) {
	r, err := ReadRange("smpte-25=10:07:00-10:07:33:05")
	require.NoError(t, err)
	require.Equal(t, RangeUnitSMPTE, r.Unit)
	require.Equal(t, "smpte-25", r.SMPTEType)
	require.Equal(t, "10:07:00", r.SMPTEStart)
	require.Equal(t, "10:07:33:05", *r.SMPTEEnd)
}

func TestReadRangeUTC(t *testing.T) {
	r, err := ReadRange("clock=19961108T143720Z-19961108T144320Z")
	require.NoError(t, err)
	require.Equal(t, RangeUnitUTC, r.Unit)
	require.Equal(t, 1996, r.UTCStart.Year())
	require.NotNil(t, r.UTCEnd)
}

func TestReadRangeUnsupportedUnit(t *testing.T) {
	_, err := ReadRange("frames=0-10")
	require.Error(t, err)
}

func TestRangeWriteNPTRoundTrip(t *testing.T) {
	r, err := ReadRange("npt=0-7.5")
	require.NoError(t, err)
	require.Equal(t, "npt=0-7.5", r.Write())
}
