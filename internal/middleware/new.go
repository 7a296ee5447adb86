package middleware

import (
	"crypto/rand"
	"time"

	"daily-planner/pkg/log"
)

const (
	defaultCookieName      = "planner_session"
	defaultSessionTTL      = 7 * 24 * time.Hour
	defaultLoginRatePerMin = 10
)

// Config configures the session gate. An empty Password disables it.
type Config struct {
	Password        string
	Secret          string
	TTL             time.Duration
	CookieName      string
	LoginRatePerMin int
	Secure          bool
}

type Middleware struct {
	l          log.Logger
	password   string
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
	limiter    *rateLimiter
	now        func() time.Time
}

// New builds the middleware set. Without a configured secret a random one is used,
// so sessions do not survive a restart.
func New(l log.Logger, cfg Config) (Middleware, error) {
	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return Middleware{}, err
		}
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = defaultCookieName
	}
	perMin := cfg.LoginRatePerMin
	if perMin <= 0 {
		perMin = defaultLoginRatePerMin
	}

	return Middleware{
		l:          l,
		password:   cfg.Password,
		secret:     secret,
		ttl:        ttl,
		cookieName: cookieName,
		secure:     cfg.Secure,
		limiter:    newRateLimiter(perMin),
		now:        time.Now,
	}, nil
}

// Enabled reports whether the session gate is active.
func (m Middleware) Enabled() bool {
	return m.password != ""
}
