package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// CSRFCookieName is the cookie carrying the nonce an anti-forgery token is
// bound to.
const CSRFCookieName = "phbq_csrf"

// CSRFManager issues and validates anti-forgery tokens for the login form.
// Tokens are HS256-signed with the session secret and expire, so they are
// checkable before any session exists. Each token is bound to a nonce the
// caller stores in a cookie: a token lifted from one browser is useless in
// another (double-submit with signature).
type CSRFManager struct {
	secret []byte
	ttl    time.Duration
}

// NewCSRFManager builds a manager.
func NewCSRFManager(secret string, ttlMinutes int) *CSRFManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 30
	}
	return &CSRFManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// TTL returns the token lifetime, also used for the nonce cookie max-age.
func (m *CSRFManager) TTL() time.Duration {
	return m.ttl
}

type csrfClaims struct {
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}

// Generate builds a fresh signed anti-forgery token and the nonce it is
// bound to. The caller sets the nonce as a cookie on the same response that
// carries the form.
func (m *CSRFManager) Generate() (token, nonce string, err error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	nonce = base64.RawURLEncoding.EncodeToString(raw)

	now := time.Now()
	claims := &csrfClaims{
		Nonce: nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", err
	}
	return token, nonce, nil
}

// Validate reports whether tokenStr is a well-formed, unexpired token signed
// with our secret whose nonce matches the cookie value. Both the token and
// the cookie are required.
func (m *CSRFManager) Validate(tokenStr, cookieNonce string) error {
	if tokenStr == "" {
		return errors.New("missing anti-forgery token")
	}
	if cookieNonce == "" {
		return errors.New("missing anti-forgery cookie")
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &csrfClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return err
	}
	claims, ok := parsed.Claims.(*csrfClaims)
	if !parsed.Valid || !ok {
		return errors.New("invalid anti-forgery token")
	}
	if subtle.ConstantTimeCompare([]byte(claims.Nonce), []byte(cookieNonce)) != 1 {
		return errors.New("anti-forgery token is not bound to this client")
	}
	return nil
}
