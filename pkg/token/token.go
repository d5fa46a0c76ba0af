// Package token provides opaque session token generation.
package token

import (
	"crypto/rand"
	"encoding/base64"
)

// Length is the token entropy in bytes.
const Length = 32

// New generates a cryptographically random opaque token.
//
// The token is Base64 RawURL encoded so it is safe to carry in an
// Authorization header or a cookie value.
func New() (string, error) {
	b := make([]byte, Length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
