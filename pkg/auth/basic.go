// Package auth builds Basic-auth Authorization headers from a URL's
// userinfo. Digest authentication is out of scope (spec.md Non-goals).
package auth

import "encoding/base64"

// BasicHeader returns the value of an Authorization header for Basic auth
// given a username and password.
func BasicHeader(user, pass string) string {
	token := base64.StdEncoding.EncodeToString([]byte(user + ":" + pass))
	return "Basic " + token
}
