// Package hash wraps password hashing so the rest of the service treats it as
// an opaque digest/verify capability.
package hash

import (
	"golang.org/x/crypto/bcrypt"
)

func Password(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// Verify reports whether plain matches digest. It never returns an error on
// mismatch, only false.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
