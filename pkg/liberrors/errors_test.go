package liberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streamkit-go/rtspclient/pkg/base"
)

func TestErrInvalidURLUnwraps(t *testing.T) {
	inner := fmt.Errorf("bad scheme")
	err := error(ErrInvalidURL{Reason: inner})
	require.ErrorIs(t, err, inner)
}

func TestErrTransportFailureUnwraps(t *testing.T) {
	inner := fmt.Errorf("dial failed")
	err := error(ErrTransportFailure{Cause: inner})
	require.ErrorIs(t, err, inner)
}

func TestErrIllegalStateMessage(t *testing.T) {
	err := ErrIllegalState{From: fmt.Stringer(stubState("init")), Method: base.Pause}
	require.Contains(t, err.Error(), "PAUSE")
	require.Contains(t, err.Error(), "init")
}

type stubState string

func (s stubState) String() string { return string(s) }

func TestErrCSeqCollisionAsType(t *testing.T) {
	var err error = ErrCSeqCollision{CSeq: 5}
	var target ErrCSeqCollision
	require.True(t, errors.As(err, &target))
	require.Equal(t, 5, target.CSeq)
}
