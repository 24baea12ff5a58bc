package flash

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idContextKey = "flash.id"

// RedisStore keeps flash messages in a Redis list keyed by a random per-browser ID.
type RedisStore struct {
	client *redis.Client
	prefix string
	cookie string
	ttl    time.Duration
	secure bool
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a RedisStore. Messages not read within ttl are dropped.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration, secure bool) *RedisStore {
	if prefix == "" {
		prefix = "flash"
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
		cookie: "flash_id",
		ttl:    ttl,
		secure: secure,
	}
}

// key returns the Redis key for a flash list.
func (s *RedisStore) key(id string) string {
	return fmt.Sprintf("%s:%s", s.prefix, id)
}

// Add appends m to the browser's flash list, issuing an ID cookie if needed.
func (s *RedisStore) Add(c *gin.Context, m Message) error {
	id, err := s.ensureID(c)
	if err != nil {
		return err
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal flash: %w", err)
	}

	ctx := c.Request.Context()
	if err := s.client.RPush(ctx, s.key(id), data).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, s.key(id), s.ttl).Err()
}

// Pop returns and deletes the browser's flash list.
func (s *RedisStore) Pop(c *gin.Context) ([]Message, error) {
	id, err := c.Cookie(s.cookie)
	if err != nil || id == "" {
		return nil, nil
	}

	ctx := c.Request.Context()
	items, err := s.client.LRange(ctx, s.key(id), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return nil, err
	}

	msgs := make([]Message, 0, len(items))
	for _, item := range items {
		var m Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			continue
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (s *RedisStore) ensureID(c *gin.Context) (string, error) {
	if id := c.GetString(idContextKey); id != "" {
		return id, nil
	}
	if id, err := c.Cookie(s.cookie); err == nil && id != "" {
		c.Set(idContextKey, id)
		return id, nil
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate flash id: %w", err)
	}
	id := hex.EncodeToString(buf)
	c.Set(idContextKey, id)
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.cookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return id, nil
}
