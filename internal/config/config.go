package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the site server.
type Config struct {
	App       AppConfig
	Admin     AdminConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	Menu      MenuConfig
	Subscribe SubscribeConfig
	Logger    LoggerConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name    string
	Env     string
	Host    string
	Port    string
	Version string
	SiteDir string
}

// AdminConfig holds the single admin credential.
type AdminConfig struct {
	Username     string
	PasswordHash string
}

// SessionConfig defines session and anti-forgery parameters.
type SessionConfig struct {
	Secret        string
	CookieSecure  bool
	CookieMaxAge  time.Duration
	CSRFTTLMinute int
}

// RateLimitConfig bounds failed login attempts.
type RateLimitConfig struct {
	WindowSeconds int
	MaxAttempts   int
}

// MenuConfig points at the upstream menu spreadsheets and slide decks.
type MenuConfig struct {
	SheetURL         string
	SheetGID         string
	CateringSheetURL string
	CateringSheetGID string
	WebMenuSlidesURL string
	TruckMenuSlides  string
	FetchTimeoutSecs int
}

// SubscribeConfig controls signup persistence and forwarding.
type SubscribeConfig struct {
	LogPath            string
	WebhookURL         string
	ForwardTimeoutSecs int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

const defaultMenuSheetURL = "https://docs.google.com/spreadsheets/d/1dR1oA7Aox5IvtsD9qc5xaRYf-tK11IAY-8xcFkMn0LY/edit?usp=drivesdk"

// Load reads configuration from environment variables, applying defaults where possible.
// ADMIN_USERNAME, ADMIN_PASSWORD_HASH and SESSION_SECRET are required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	adminUser := os.Getenv("ADMIN_USERNAME")
	if adminUser == "" {
		return nil, fmt.Errorf("missing required environment variable: ADMIN_USERNAME")
	}
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminHash == "" {
		return nil, fmt.Errorf("missing required environment variable: ADMIN_PASSWORD_HASH")
	}
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		return nil, fmt.Errorf("missing required environment variable: SESSION_SECRET")
	}

	menuSheetURL := getEnv("MENU_SHEET_URL", defaultMenuSheetURL)

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "pigsheadbbq-site"),
			Env:     getEnv("APP_ENV", "development"),
			Host:    getEnv("HOST", "0.0.0.0"),
			Port:    getEnv("PORT", "8000"),
			Version: getEnv("APP_VERSION", "dev"),
			SiteDir: getEnv("SITE_DIR", "site/pigsheadbbq.com"),
		},
		Admin: AdminConfig{
			Username:     adminUser,
			PasswordHash: adminHash,
		},
		Session: SessionConfig{
			Secret:        sessionSecret,
			CookieSecure:  getEnvAsBool("SESSION_COOKIE_SECURE", true),
			CookieMaxAge:  time.Duration(getEnvAsInt("SESSION_COOKIE_MAX_AGE_HOURS", 8)) * time.Hour,
			CSRFTTLMinute: getEnvAsInt("CSRF_TOKEN_TTL_MINUTES", 30),
		},
		RateLimit: RateLimitConfig{
			WindowSeconds: getEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 15*60),
			MaxAttempts:   getEnvAsInt("RATE_LIMIT_MAX_ATTEMPTS", 8),
		},
		Menu: MenuConfig{
			SheetURL:         menuSheetURL,
			SheetGID:         os.Getenv("MENU_SHEET_GID"),
			CateringSheetURL: getEnv("CATERING_SHEET_URL", menuSheetURL),
			CateringSheetGID: os.Getenv("CATERING_SHEET_GID"),
			WebMenuSlidesURL: os.Getenv("WEBMENU_SLIDES_URL"),
			TruckMenuSlides:  os.Getenv("TRUCKMENU_SLIDES_URL"),
			FetchTimeoutSecs: getEnvAsInt("MENU_FETCH_TIMEOUT_SECONDS", 10),
		},
		Subscribe: SubscribeConfig{
			LogPath:            getEnv("SUBSCRIBE_LOG_PATH", "data/subscriptions.ndjson"),
			WebhookURL:         os.Getenv("SUBSCRIBE_WEBHOOK_URL"),
			ForwardTimeoutSecs: getEnvAsInt("SUBSCRIBE_FORWARD_TIMEOUT_SECONDS", 5),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// Window returns the rate limit window duration.
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// FetchTimeout returns the spreadsheet fetch timeout.
func (m MenuConfig) FetchTimeout() time.Duration {
	return time.Duration(m.FetchTimeoutSecs) * time.Second
}

// ForwardTimeout returns the webhook forward timeout.
func (s SubscribeConfig) ForwardTimeout() time.Duration {
	return time.Duration(s.ForwardTimeoutSecs) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
