package base

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderGetSetCaseInsensitive(t *testing.T) {
	h := make(Header)
	h.Set("CSeq", "1")

	v, ok := h.Get("cseq")
	require.True(t, ok)
	require.Equal(t, "1", v)
}

func TestHeaderDel(t *testing.T) {
	h := make(Header)
	h.Set("Session", "abc")
	h.Del("session")
	require.False(t, h.Has("Session"))
}

func TestHeaderClone(t *testing.T) {
	h := make(Header)
	h.Set("CSeq", "1")

	c := h.Clone()
	c.Set("CSeq", "2")

	v, _ := h.Get("cseq")
	require.Equal(t, "1", v)
	cv, _ := c.Get("cseq")
	require.Equal(t, "2", cv)
}

func TestCanonicalNameWellKnown(t *testing.T) {
	require.Equal(t, "CSeq", CanonicalName("cseq"))
	require.Equal(t, "Content-Length", CanonicalName("content-length"))
	require.Equal(t, "WWW-Authenticate", CanonicalName("www-authenticate"))
}

func TestCanonicalNameFallbackTitleCases(t *testing.T) {
	require.Equal(t, "X-Custom-Thing", CanonicalName("x-custom-thing"))
	require.Equal(t, "X", CanonicalName("x"))
}
