package base

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRequestInitializesHeader(t *testing.T) {
	u, err := ParseURL("rtsp://example.com/media")
	require.NoError(t, err)

	req := NewRequest(Options, u, Proto10)
	require.NotNil(t, req.Header)

	_, ok := req.CSeq()
	require.False(t, ok)

	req.Header.Set("CSeq", "1")
	cseq, ok := req.CSeq()
	require.True(t, ok)
	require.Equal(t, "1", cseq)
}
