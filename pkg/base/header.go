package base

import "strings"

// Header is a mapping from normalized-lowercase field name to a single
// field value, whitespace-trimmed. When the same field name appears
// multiple times on the wire, the first occurrence wins — see
// pkg/codec, which is the only place that parses Header off the wire.
type Header map[string]string

// canonicalNames gives the on-the-wire capitalization for well-known
// headers; anything else falls back to CanonicalName's title-case rule.
var canonicalNames = map[string]string{
	"cseq":             "CSeq",
	"content-length":   "Content-Length",
	"content-type":     "Content-Type",
	"session":          "Session",
	"transport":        "Transport",
	"range":            "Range",
	"public":           "Public",
	"www-authenticate": "WWW-Authenticate",
	"authorization":    "Authorization",
	"accept":           "Accept",
	"user-agent":       "User-Agent",
	"rtp-info":         "RTP-Info",
	"location":         "Location",
	"date":             "Date",
	"server":           "Server",
	"require":          "Require",
	"unsupported":      "Unsupported",
	"allow":            "Allow",
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CanonicalName returns the canonical on-the-wire capitalization of name.
// Well-known headers use the fixed table above; anything else is rendered
// by title-casing each hyphen-separated segment (e.g. "x-custom-thing" ->
// "X-Custom-Thing"), since Header itself only retains lowercased keys.
func CanonicalName(name string) string {
	norm := normalizeName(name)
	if c, ok := canonicalNames[norm]; ok {
		return c
	}

	parts := strings.Split(norm, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "-")
}

// Get returns the value of the header named name (case-insensitive) and
// whether it was present.
func (h Header) Get(name string) (string, bool) {
	v, ok := h[normalizeName(name)]
	return v, ok
}

// Set stores value under the normalized name. Unlike the wire parser, Set
// always overwrites — "first occurrence wins" is a parsing rule, not a
// property of the map itself.
func (h Header) Set(name, value string) {
	h[normalizeName(name)] = strings.TrimSpace(value)
}

// Has reports whether name (case-insensitive) is present.
func (h Header) Has(name string) bool {
	_, ok := h[normalizeName(name)]
	return ok
}

// Del removes a header by name (case-insensitive).
func (h Header) Del(name string) {
	delete(h, normalizeName(name))
}

// Clone returns a shallow copy of h.
func (h Header) Clone() Header {
	c := make(Header, len(h))
	for k, v := range h {
		c[k] = v
	}
	return c
}
