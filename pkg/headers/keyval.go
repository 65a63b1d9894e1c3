// Package headers contains structured representations of the RTSP headers
// the core cares about: Transport, Range and Session.
package headers

import "strings"

// keyVal is one "key" or "key=value" token out of a semicolon/comma
// separated header value, preserving encounter order (Transport and Range
// both need to render their parameters back in a stable, predictable
// order).
type keyVal struct {
	key string
	val string
	has bool // whether '=' was present (flag-only tokens have has == false)
}

// keyValParse splits s on separator into ordered key/value tokens. A
// quoted value ("...") may itself contain separator or '=' without
// splitting early.
func keyValParse(s string, separator byte) []keyVal {
	var out []keyVal

	for _, tok := range splitUnquoted(s, separator) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		eq := strings.IndexByte(tok, '=')
		if eq < 0 {
			out = append(out, keyVal{key: tok})
			continue
		}

		k := tok[:eq]
		v := strings.TrimSpace(tok[eq+1:])
		v = strings.TrimPrefix(v, "\"")
		v = strings.TrimSuffix(v, "\"")
		out = append(out, keyVal{key: k, val: v, has: true})
	}

	return out
}

// splitUnquoted splits s on separator, treating double-quoted spans as
// opaque.
func splitUnquoted(s string, separator byte) []string {
	var out []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case c == separator && !inQuotes:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	out = append(out, cur.String())
	return out
}
