package auth

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the cookie holding the opaque session token.
const SessionCookieName = "phbq_session"

const usernameKey = "auth_username"

// Gate redirects unauthenticated requests to the login page. Every path is
// protected except the login and logout pages and the public /api/ prefix.
type Gate struct {
	sessions *SessionStore
}

// NewGate constructs the request gate.
func NewGate(sessions *SessionStore) *Gate {
	return &Gate{sessions: sessions}
}

// Handle enforces authentication for protected routes. The original path is
// carried in a next parameter so login can return the visitor where they
// started; the parameter is omitted for the root path.
func (g *Gate) Handle(c *fiber.Ctx) error {
	path := c.Path()
	if path == "/login" || path == "/logout" || strings.HasPrefix(path, "/api/") {
		return c.Next()
	}

	token := c.Cookies(SessionCookieName)
	if username, ok := g.sessions.Lookup(token); ok {
		c.Locals(usernameKey, username)
		return c.Next()
	}

	destination := "/login"
	if path != "/" {
		destination += "?next=" + url.QueryEscape(path)
	}
	return c.Redirect(destination, fiber.StatusFound)
}

// UsernameFromContext retrieves the authenticated username, if any.
func UsernameFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(usernameKey)
	if val == nil {
		return "", false
	}
	username, ok := val.(string)
	return username, ok
}

// SafeNextPath validates a post-login redirect target. Only same-origin
// absolute paths are allowed: the path must start with a single "/" and must
// not start with "//", else it collapses to the root. This blocks
// open-redirect abuse through the next parameter.
func SafeNextPath(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}

// ClientIP returns the requester's address, preferring the first entry of
// X-Forwarded-For when present.
func ClientIP(c *fiber.Ctx) string {
	forwarded := c.Get("X-Forwarded-For")
	if forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "unknown"
}
