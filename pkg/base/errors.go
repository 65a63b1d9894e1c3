package base

import "errors"

// URL parse failures, named per spec.md §4.1. liberrors.ErrInvalidURL wraps
// these for callers that want the single InvalidUrl(reason) taxonomy
// entry from spec.md §7.
var (
	ErrInvalidURLSyntax = errors.New("invalid RTSP URL syntax")
	ErrInvalidURLScheme = errors.New("invalid RTSP URL scheme")
	ErrInvalidURLHost   = errors.New("invalid RTSP URL host")
	ErrInvalidURLPort   = errors.New("invalid RTSP URL port")
)
