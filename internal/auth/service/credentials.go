// Package service provides authentication-related services for credential handling.
package service

import (
	"encoding/base64"
	"strings"
)

// basicPrefix is the literal scheme token of HTTP Basic Authentication.
const basicPrefix = "Basic "

// ParseBasicAuth decodes an Authorization header value into an email/password
// pair. It fails closed: a missing header, a scheme other than "Basic ",
// invalid base64, or a decoded string without a ':' separator all yield
// ok == false. The decoded string is split on the FIRST ':' only, so the
// password may itself contain ':' characters. Pure parsing, no side effects.
func ParseBasicAuth(header string) (email, password string, ok bool) {
	if !strings.HasPrefix(header, basicPrefix) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(header[len(basicPrefix):])
	if err != nil {
		return "", "", false
	}

	email, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", false
	}

	return email, password, true
}
