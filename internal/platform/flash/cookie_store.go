package flash

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieStore keeps flash messages in a short-lived cookie.
type CookieStore struct {
	name   string
	secure bool
}

var _ Store = (*CookieStore)(nil)

// NewCookieStore creates a CookieStore. An empty name defaults to "flash".
func NewCookieStore(name string, secure bool) *CookieStore {
	if name == "" {
		name = "flash"
	}
	return &CookieStore{name: name, secure: secure}
}

// Add queues m by rewriting the flash cookie.
func (s *CookieStore) Add(c *gin.Context, m Message) error {
	data, err := json.Marshal(pending(c, m))
	if err != nil {
		return fmt.Errorf("failed to marshal flash: %w", err)
	}
	s.write(c, base64.RawURLEncoding.EncodeToString(data), 0)
	return nil
}

// Pop reads the flash cookie from the request and expires it.
func (s *CookieStore) Pop(c *gin.Context) ([]Message, error) {
	raw, err := c.Cookie(s.name)
	if err != nil || raw == "" {
		return nil, nil
	}
	s.write(c, "", -1)

	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed flash cookie: %w", err)
	}
	msgs, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("malformed flash cookie: %w", err)
	}
	return msgs, nil
}

func (s *CookieStore) write(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
