package codec

import "github.com/streamkit-go/rtspclient/pkg/liberrors"

func errMalformedStatusLine(reason string) error {
	return liberrors.ErrMalformedStatusLine{Reason: reason}
}

func errMalformedHeaders(reason string) error {
	return liberrors.ErrMalformedHeaders{Reason: reason}
}

func errInvalidURL(reason error) error {
	return liberrors.ErrInvalidURL{Reason: reason}
}
