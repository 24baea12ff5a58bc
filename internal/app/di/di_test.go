package di

import (
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blog_backend/internal/platform/flash"
)

func TestNewFlashStore(t *testing.T) {
	t.Parallel()

	_, ok := NewFlashStore(nil, false).(*flash.CookieStore)
	assert.True(t, ok, "cookie store without redis")

	rdb, _ := redismock.NewClientMock()
	_, ok = NewFlashStore(rdb, false).(*flash.RedisStore)
	assert.True(t, ok, "redis store with redis")
}

func TestMigrate(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=1"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "migrating twice is a no-op")

	for _, table := range []string{"users", "blog_posts", "comments"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
