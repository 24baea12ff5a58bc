package identity

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/auth/usecase"

	"github.com/gin-gonic/gin"
)

// DefaultCookieName is the session cookie name.
const DefaultCookieName = "session"

// TokenCodec issues and reads signed session tokens.
type TokenCodec interface {
	Encode(userID uint) (string, error)
	Decode(token string) (uint, error)
}

// UserFinder resolves a session's user id.
type UserFinder interface {
	FindUser(ctx context.Context, id uint) (*entity.User, error)
}

// Options configures a Manager.
type Options struct {
	AdminID    uint
	CookieName string
	TTL        time.Duration
	Secure     bool
	// OnUnknownUser handles a valid session whose user no longer exists.
	// It must abort the request. Defaults to a bare 404.
	OnUnknownUser gin.HandlerFunc
}

// Manager attaches identities to requests and starts or ends sessions.
type Manager struct {
	tokens TokenCodec
	users  UserFinder
	opts   Options
}

// NewManager creates a Manager.
func NewManager(tokens TokenCodec, users UserFinder, opts Options) *Manager {
	if opts.CookieName == "" {
		opts.CookieName = DefaultCookieName
	}
	if opts.TTL <= 0 {
		opts.TTL = 30 * 24 * time.Hour
	}
	if opts.OnUnknownUser == nil {
		opts.OnUnknownUser = func(c *gin.Context) {
			c.AbortWithStatus(http.StatusNotFound)
		}
	}
	return &Manager{tokens: tokens, users: users, opts: opts}
}

// Middleware resolves the session cookie into an Identity on every request.
// Missing or invalid tokens yield Anonymous.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(m.opts.CookieName)
		if err != nil || raw == "" {
			Set(c, Anonymous)
			c.Next()
			return
		}

		userID, err := m.tokens.Decode(raw)
		if err != nil {
			Set(c, Anonymous)
			c.Next()
			return
		}

		user, err := m.users.FindUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				slog.Warn("session refers to missing user", "user_id", userID)
				m.clearCookie(c)
				Set(c, Anonymous)
				m.opts.OnUnknownUser(c)
				c.Abort()
				return
			}
			slog.Error("failed to resolve session user", "user_id", userID, "error", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		Set(c, Identity{User: user, Admin: user.ID == m.opts.AdminID})
		c.Next()
	}
}

// LogIn issues a session cookie for user and makes it the current identity.
func (m *Manager) LogIn(c *gin.Context, user *entity.User) error {
	token, err := m.tokens.Encode(user.ID)
	if err != nil {
		return err
	}
	m.writeCookie(c, token, int(m.opts.TTL.Seconds()))
	Set(c, Identity{User: user, Admin: user.ID == m.opts.AdminID})
	return nil
}

// LogOut clears the session cookie. It is a no-op for anonymous requests.
func (m *Manager) LogOut(c *gin.Context) {
	m.clearCookie(c)
	Set(c, Anonymous)
}

func (m *Manager) clearCookie(c *gin.Context) {
	m.writeCookie(c, "", -1)
}

func (m *Manager) writeCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
