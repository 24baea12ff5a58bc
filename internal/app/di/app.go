package di

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"blog_backend/internal/app/router"
	authadapters "blog_backend/internal/feature/auth/adapters"
	authhandler "blog_backend/internal/feature/auth/transport/handler"
	authusecase "blog_backend/internal/feature/auth/usecase"
	commentadapters "blog_backend/internal/feature/comments/adapters"
	commenthandler "blog_backend/internal/feature/comments/transport/handler"
	commentusecase "blog_backend/internal/feature/comments/usecase"
	pageshandler "blog_backend/internal/feature/pages/transport/handler"
	postadapters "blog_backend/internal/feature/posts/adapters"
	posthandler "blog_backend/internal/feature/posts/transport/handler"
	postusecase "blog_backend/internal/feature/posts/usecase"
	"blog_backend/internal/platform/config"
	"blog_backend/internal/platform/guard"
	"blog_backend/internal/platform/http/handler"
	"blog_backend/internal/platform/identity"
	"blog_backend/internal/platform/password"
	"blog_backend/internal/platform/token"
	"blog_backend/internal/platform/view"
)

// NewApp wires repositories, usecases, handlers and middleware into the HTTP handler.
// rdb may be nil, in which case flashes are kept in cookies.
func NewApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (http.Handler, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql.DB: %w", err)
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	postRepo := postadapters.NewPostRepository(db)
	commentRepo := commentadapters.NewCommentRepository(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, password.NewHasher(cfg.PasswordIterations))
	postUC := postusecase.NewPostUsecase(postRepo, userRepo, commentRepo)
	commentUC := commentusecase.NewCommentUsecase(commentRepo, postRepo)

	// Session / view
	flashes := NewFlashStore(rdb, cfg.CookieSecure)
	pages := view.NewRenderer(flashes)
	sessions := identity.NewManager(token.NewCodec(cfg.SessionSecret, cfg.SessionTTL), authUC, identity.Options{
		AdminID:       cfg.AdminUserID,
		TTL:           cfg.SessionTTL,
		Secure:        cfg.CookieSecure,
		OnUnknownUser: func(c *gin.Context) { pages.Error(c, http.StatusNotFound) },
	})

	// Handler
	handlers := router.Handlers{
		Auth:     authhandler.NewAuthHandler(authUC, sessions, flashes, pages),
		Posts:    posthandler.NewPostHandler(postUC, commentUC, flashes, pages),
		Comments: commenthandler.NewCommentHandler(commentUC, pages.Error),
		Pages:    pageshandler.NewPagesHandler(pages),
		Health:   handler.NewHealthHandler(sqlDB),
	}
	middleware := router.Middleware{
		Identity:         sessions.Middleware(),
		LoginRequired:    guard.LoginRequired(flashes),
		AdminOnly:        guard.AdminOnly(cfg.AdminUserID, pages.Error),
		CommentOwnerOnly: guard.CommentOwnerOnly(commentUC, cfg.StrictCommentOwnership, pages.Error),
		NotFound:         func(c *gin.Context) { pages.Error(c, http.StatusNotFound) },
	}

	engine := router.NewRouter(handlers, middleware)
	return router.WithRateLimit(engine, cfg.RateLimitPerMinute), nil
}
