package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credentials holds the single admin identity the server accepts.
type Credentials struct {
	username     string
	passwordHash string
}

// NewCredentials wraps the configured admin username and bcrypt password hash.
func NewCredentials(username, passwordHash string) Credentials {
	return Credentials{username: username, passwordHash: passwordHash}
}

// Verify reports whether the submitted username and password match the
// configured credential. The username comparison is constant time; the
// password check relies on bcrypt being a deliberately slow hash, so its
// comparison timing leaks nothing useful.
func (c Credentials) Verify(username, password string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passMatch := bcrypt.CompareHashAndPassword([]byte(c.passwordHash), []byte(password)) == nil
	return userMatch && passMatch
}

// HashPassword hashes a plaintext password with the given cost. Used by
// operators to mint ADMIN_PASSWORD_HASH values.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
