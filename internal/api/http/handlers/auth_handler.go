package handlers

import (
	"html"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pigsheadbbq/site/internal/auth"
	"github.com/pigsheadbbq/site/internal/sitegen"
)

const loginTemplate = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Login | Pigs Head BBQ</title>
    <style>
      :root { color-scheme: dark; }
      body {
        margin: 0;
        min-height: 100vh;
        font-family: Inter, system-ui, -apple-system, sans-serif;
        background: #111;
        color: #f2f2f2;
        display: grid;
        place-items: center;
      }
      .card {
        width: min(420px, 92vw);
        background: #1b1b1b;
        border: 1px solid #333;
        border-radius: 12px;
        padding: 1.5rem;
        box-shadow: 0 10px 30px rgba(0, 0, 0, 0.45);
      }
      h1 {
        margin-top: 0;
        font-size: 1.5rem;
      }
      p { color: #c9c9c9; }
      label {
        display: block;
        margin-top: 1rem;
        margin-bottom: 0.35rem;
        font-weight: 700;
      }
      input {
        width: 100%;
        box-sizing: border-box;
        padding: 0.7rem;
        border-radius: 8px;
        border: 1px solid #4a4a4a;
        background: #111;
        color: #fff;
      }
      button {
        margin-top: 1rem;
        width: 100%;
        border: 0;
        border-radius: 8px;
        padding: 0.8rem;
        font-weight: 700;
        cursor: pointer;
        background: #f97316;
        color: #111;
      }
      .error {
        color: #fca5a5;
        margin: 0.5rem 0 0;
      }
    </style>
  </head>
  <body>
    <main class="card">
      <h1>Pigs Head BBQ Login</h1>
      <p>Sign in to access the protected site.</p>
      {{ERROR_BLOCK}}
      <form method="post" action="/login">
        <input type="hidden" name="csrf_token" value="{{CSRF_TOKEN}}" />
        <input type="hidden" name="next" value="{{NEXT_PATH}}" />
        <label for="username">Username</label>
        <input id="username" name="username" required autocomplete="username" />

        <label for="password">Password</label>
        <input id="password" name="password" type="password" required autocomplete="current-password" />

        <button type="submit">Login</button>
      </form>
    </main>
  </body>
</html>
`

// AuthHandler serves the login form and manages session lifecycle.
type AuthHandler struct {
	credentials auth.Credentials
	sessions    *auth.SessionStore
	limiter     *auth.LoginLimiter
	csrf        *auth.CSRFManager
	logger      *zap.Logger

	cookieSecure bool
	cookieMaxAge time.Duration
	clock        func() time.Time
}

// AuthHandlerConfig bundles the auth handler's dependencies.
type AuthHandlerConfig struct {
	Credentials  auth.Credentials
	Sessions     *auth.SessionStore
	Limiter      *auth.LoginLimiter
	CSRF         *auth.CSRFManager
	Logger       *zap.Logger
	CookieSecure bool
	CookieMaxAge time.Duration
	Clock        func() time.Time
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(cfg AuthHandlerConfig) *AuthHandler {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	maxAge := cfg.CookieMaxAge
	if maxAge <= 0 {
		maxAge = 8 * time.Hour
	}
	return &AuthHandler{
		credentials:  cfg.Credentials,
		sessions:     cfg.Sessions,
		limiter:      cfg.Limiter,
		csrf:         cfg.CSRF,
		logger:       cfg.Logger,
		cookieSecure: cfg.CookieSecure,
		cookieMaxAge: maxAge,
		clock:        clock,
	}
}

// LoginForm handles GET /login.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	nextPath := auth.SafeNextPath(c.Query("next"))

	if _, ok := h.sessions.Lookup(c.Cookies(auth.SessionCookieName)); ok {
		return c.Redirect(nextPath, fiber.StatusFound)
	}

	return h.renderLogin(c, http.StatusOK, "", nextPath)
}

// LoginSubmit handles POST /login.
//
// Order matters: the anti-forgery token is checked before anything else, the
// rate limit before credentials, and a limited caller never gets a
// credential evaluation.
func (h *AuthHandler) LoginSubmit(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	nextPath := auth.SafeNextPath(c.FormValue("next"))
	ip := auth.ClientIP(c)
	now := h.clock()

	if err := h.csrf.Validate(c.FormValue("csrf_token"), c.Cookies(auth.CSRFCookieName)); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, "Your session expired. Please try again.", nextPath)
	}

	if h.limiter.IsLimited(ip, username, now) {
		h.logger.Warn("login rate limited", zap.String("ip", ip))
		return h.renderLogin(c, http.StatusTooManyRequests, "Too many failed login attempts. Please wait and try again.", nextPath)
	}

	if !h.credentials.Verify(username, password) {
		h.limiter.RecordFailure(ip, username, now)
		h.logger.Info("login failed", zap.String("ip", ip))
		return h.renderLogin(c, http.StatusUnauthorized, "Invalid username or password.", nextPath)
	}

	h.limiter.Clear(ip, username)

	token, err := h.sessions.Create(username)
	if err != nil {
		h.logger.Error("session create failed", zap.Error(err))
		return h.renderLogin(c, http.StatusInternalServerError, "Something went wrong. Please try again.", nextPath)
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   int(h.cookieMaxAge.Seconds()),
		Path:     "/",
	})
	return c.Redirect(nextPath, fiber.StatusFound)
}

// Logout handles GET /logout. It succeeds even when no session existed.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Delete(c.Cookies(auth.SessionCookieName))

	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   -1,
		Path:     "/",
	})
	return c.Redirect("/login", fiber.StatusFound)
}

func (h *AuthHandler) renderLogin(c *fiber.Ctx, status int, errorMessage, nextPath string) error {
	csrfToken, nonce, err := h.csrf.Generate()
	if err != nil {
		h.logger.Error("csrf generate failed", zap.Error(err))
		return fiber.NewError(http.StatusInternalServerError, "internal server error")
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.CSRFCookieName,
		Value:    nonce,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   int(h.csrf.TTL().Seconds()),
		Path:     "/login",
	})

	errorBlock := ""
	if errorMessage != "" {
		errorBlock = `<p class="error">` + errorMessage + `</p>`
	}

	// nextPath comes from the request; Render substitutes values verbatim.
	page := sitegen.Render(loginTemplate, map[string]string{
		"ERROR_BLOCK": errorBlock,
		"CSRF_TOKEN":  csrfToken,
		"NEXT_PATH":   html.EscapeString(nextPath),
	})

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).SendString(page)
}
