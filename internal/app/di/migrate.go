package di

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	authentity "blog_backend/internal/feature/auth/domain/entity"
	commentadapters "blog_backend/internal/feature/comments/adapters"
	postadapters "blog_backend/internal/feature/posts/adapters"
)

// Migrate creates or updates the users, blog_posts and comments tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&postadapters.PostModel{},
		&commentadapters.CommentModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	slog.Info("database schema migrated")
	return nil
}
