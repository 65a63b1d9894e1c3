package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicHeader(t *testing.T) {
	got := BasicHeader("admin", "secret")
	require.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:secret")), got)
}
