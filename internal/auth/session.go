package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/franciscosanchezn/gin-bar-api/internal/config"
	"github.com/franciscosanchezn/gin-bar-api/internal/models"
)

const (
	sessionUserIDKey    = "auth:user:id"
	sessionUserRoleKey  = "auth:user:role"
	sessionUserEmailKey = "auth:user:email"
)

// SessionUser is the identity stored in an authenticated browser session
type SessionUser struct {
	ID    uint
	Role  string
	Email string
}

// Sessions keeps administrator logins in cookie-backed scs sessions
type Sessions struct {
	manager *scs.SessionManager
}

// NewSessions builds the session manager. Zero values fall back to a 12h
// lifetime and the bar_session cookie.
func NewSessions(cfg config.SessionConfig) *Sessions {
	if cfg.Lifetime <= 0 {
		cfg.Lifetime = 12 * time.Hour
	}
	if strings.TrimSpace(cfg.CookieName) == "" {
		cfg.CookieName = "bar_session"
	}

	manager := scs.New()
	manager.Lifetime = cfg.Lifetime
	manager.Cookie.Name = cfg.CookieName
	manager.Cookie.HttpOnly = true
	manager.Cookie.Persist = true
	manager.Cookie.SameSite = http.SameSiteLaxMode
	manager.Cookie.Secure = cfg.CookieSecure

	return &Sessions{manager: manager}
}

// LoadAndSave loads the session of every request and writes it back on response
func (s *Sessions) LoadAndSave(next http.Handler) http.Handler {
	return s.manager.LoadAndSave(next)
}

// CookieName is the name of the session cookie
func (s *Sessions) CookieName() string {
	return s.manager.Cookie.Name
}

// Establish renews the session token and records user as signed in
func (s *Sessions) Establish(ctx context.Context, user *models.User) error {
	if user == nil || user.ID == 0 {
		return errors.New("cannot establish a session without a user")
	}
	if err := s.manager.RenewToken(ctx); err != nil {
		return err
	}
	s.manager.Put(ctx, sessionUserIDKey, int(user.ID))
	s.manager.Put(ctx, sessionUserRoleKey, user.Role)
	s.manager.Put(ctx, sessionUserEmailKey, user.Email)
	return nil
}

// Destroy signs the session out
func (s *Sessions) Destroy(ctx context.Context) error {
	return s.manager.Destroy(ctx)
}

// Current returns the signed in user, if any
func (s *Sessions) Current(ctx context.Context) (SessionUser, bool) {
	id := s.manager.GetInt(ctx, sessionUserIDKey)
	if id <= 0 {
		return SessionUser{}, false
	}
	return SessionUser{
		ID:    uint(id),
		Role:  s.manager.GetString(ctx, sessionUserRoleKey),
		Email: s.manager.GetString(ctx, sessionUserEmailKey),
	}, true
}
