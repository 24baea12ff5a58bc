package flash

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisStore_Defaults(t *testing.T) {
	t.Parallel()

	db, _ := redismock.NewClientMock()

	s := NewRedisStore(db, "", 0, false)
	assert.Equal(t, "flash", s.prefix)
	assert.Equal(t, 5*time.Minute, s.ttl)
	assert.Equal(t, "flash_id", s.cookie)

	s = NewRedisStore(db, "notice", time.Minute, true)
	assert.Equal(t, "notice", s.prefix)
	assert.Equal(t, time.Minute, s.ttl)
	assert.True(t, s.secure)
}

func TestRedisStore_Add_ExistingID(t *testing.T) {
	t.Parallel()

	db, mock := redismock.NewClientMock()
	store := NewRedisStore(db, "flash", time.Minute, false)

	data, err := json.Marshal(Error("boom"))
	require.NoError(t, err)
	mock.ExpectRPush("flash:abc", data).SetVal(1)
	mock.ExpectExpire("flash:abc", time.Minute).SetVal(true)

	c, w := newContext(t, &http.Cookie{Name: "flash_id", Value: "abc"})
	require.NoError(t, store.Add(c, Error("boom")))

	assert.Nil(t, findCookie(w, "flash_id"), "existing id must be reused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Add_IssuesID(t *testing.T) {
	t.Parallel()

	db, _ := redismock.NewClientMock()
	store := NewRedisStore(db, "flash", time.Minute, false)

	c, w := newContext(t)
	// The mock has no expectations, so the push itself fails.
	_ = store.Add(c, Info("hello"))

	ck := findCookie(w, "flash_id")
	require.NotNil(t, ck)
	assert.Len(t, ck.Value, 32)
	assert.True(t, ck.HttpOnly)
}

func TestRedisStore_Add_RedisError(t *testing.T) {
	t.Parallel()

	db, mock := redismock.NewClientMock()
	store := NewRedisStore(db, "flash", time.Minute, false)

	data, err := json.Marshal(Error("boom"))
	require.NoError(t, err)
	mock.ExpectRPush("flash:abc", data).SetErr(errors.New("redis down"))

	c, _ := newContext(t, &http.Cookie{Name: "flash_id", Value: "abc"})
	assert.Error(t, store.Add(c, Error("boom")))
}

func TestRedisStore_Pop(t *testing.T) {
	t.Parallel()

	first, _ := json.Marshal(Error("first"))
	second, _ := json.Marshal(Info("second"))

	tests := []struct {
		name      string
		cookie    *http.Cookie
		setupMock func(mock redismock.ClientMock)
		want      []Message
		wantErr   bool
	}{
		{
			name:      "no id cookie",
			setupMock: func(mock redismock.ClientMock) {},
			want:      nil,
		},
		{
			name:   "empty list",
			cookie: &http.Cookie{Name: "flash_id", Value: "abc"},
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectLRange("flash:abc", 0, -1).SetVal([]string{})
			},
			want: nil,
		},
		{
			name:   "returns and deletes messages",
			cookie: &http.Cookie{Name: "flash_id", Value: "abc"},
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectLRange("flash:abc", 0, -1).SetVal([]string{string(first), "garbage", string(second)})
				mock.ExpectDel("flash:abc").SetVal(1)
			},
			want: []Message{Error("first"), Info("second")},
		},
		{
			name:   "lrange error",
			cookie: &http.Cookie{Name: "flash_id", Value: "abc"},
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectLRange("flash:abc", 0, -1).SetErr(errors.New("redis down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, mock := redismock.NewClientMock()
			tt.setupMock(mock)
			store := NewRedisStore(db, "flash", time.Minute, false)

			var cookies []*http.Cookie
			if tt.cookie != nil {
				cookies = append(cookies, tt.cookie)
			}
			c, _ := newContext(t, cookies...)

			msgs, err := store.Pop(c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, msgs)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
