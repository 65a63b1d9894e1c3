package headers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWWWAuthenticateBasic(t *testing.T) {
	w := ReadWWWAuthenticate(`Basic realm="streaming-server"`)
	require.True(t, w.IsBasic)
	require.Equal(t, "streaming-server", w.Realm)
}

func TestReadWWWAuthenticateDigestIsNotBasic(t *testing.T) {
	w := ReadWWWAuthenticate(`Digest realm="streaming-server", nonce="abc123"`)
	require.False(t, w.IsBasic)
}
