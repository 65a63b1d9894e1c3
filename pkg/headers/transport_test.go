package headers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransportReadUnicastClientPorts(t *testing.T) {
	tr := Transport{}
	err := tr.Read("RTP/AVP;unicast;client_port=8000-8001")
	require.NoError(t, err)
	require.Equal(t, "RTP", tr.TransportProtocol)
	require.Equal(t, "AVP", tr.Profile)
	require.NotNil(t, tr.Cast)
	require.Equal(t, CastUnicast, *tr.Cast)
	require.Equal(t, [2]int{8000, 8001}, *tr.ClientPorts)
}

func TestTransportReadTCPInterleaved(t *testing.T) {
	tr := Transport{}
	err := tr.Read("RTP/AVP/TCP;unicast;interleaved=0-1")
	require.NoError(t, err)
	require.True(t, tr.HasLower)
	require.Equal(t, LowerTransportTCP, tr.Lower)
	require.Equal(t, [2]int{0, 1}, *tr.InterleavedIDs)
}

func TestTransportReadMissingProtocolErrors(t *testing.T) {
	tr := Transport{}
	err := tr.Read("unicast;client_port=8000-8001")
	require.Error(t, err)
}

func TestTransportWriteReadRoundTrip(t *testing.T) {
	orig := Transport{}
	require.NoError(t, orig.Read("RTP/AVP;unicast;client_port=8000-8001;server_port=5541-5542;ssrc=abcd1234"))

	again := Transport{}
	require.NoError(t, again.Read(orig.Write()))
	require.Equal(t, orig, again)
}

func TestTransportSinglePortImpliesPlusOne(t *testing.T) {
	tr := Transport{}
	require.NoError(t, tr.Read("RTP/AVP;unicast;client_port=8000"))
	require.Equal(t, [2]int{8000, 8001}, *tr.ClientPorts)
}
