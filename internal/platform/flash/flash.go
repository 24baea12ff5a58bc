// Package flash carries one-time user notices across a redirect.
package flash

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// Message categories.
const (
	CategoryError = "error"
	CategoryInfo  = "info"
)

// contextKey holds messages added during the current request.
const contextKey = "flash.pending"

// Message is a single flash notice.
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Error builds an error-category message.
func Error(text string) Message {
	return Message{Category: CategoryError, Text: text}
}

// Info builds an info-category message.
func Info(text string) Message {
	return Message{Category: CategoryInfo, Text: text}
}

// Store keeps flash messages between the request that adds them and the next rendered page.
type Store interface {
	// Add queues m for the next page.
	Add(c *gin.Context, m Message) error
	// Pop returns and clears the queued messages.
	Pop(c *gin.Context) ([]Message, error)
}

// pending appends m to the messages added during this request and returns all of them.
func pending(c *gin.Context, m Message) []Message {
	var msgs []Message
	if v, ok := c.Get(contextKey); ok {
		msgs, _ = v.([]Message)
	}
	msgs = append(msgs, m)
	c.Set(contextKey, msgs)
	return msgs
}

func decode(data []byte) ([]Message, error) {
	var msgs []Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
