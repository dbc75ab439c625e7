package domain

import "time"

// Session is a server-side authenticated session. The cookie sent to the
// client holds only the opaque token, never any session data.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
}
