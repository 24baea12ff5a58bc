package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/httprate"

	authhandler "blog_backend/internal/feature/auth/transport/handler"
	commenthandler "blog_backend/internal/feature/comments/transport/handler"
	pageshandler "blog_backend/internal/feature/pages/transport/handler"
	posthandler "blog_backend/internal/feature/posts/transport/handler"
	"blog_backend/internal/platform/http/handler"
)

// Handlers groups the route handlers.
type Handlers struct {
	Auth     *authhandler.AuthHandler
	Posts    *posthandler.PostHandler
	Comments *commenthandler.CommentHandler
	Pages    *pageshandler.PagesHandler
	Health   *handler.HealthHandler
}

// Middleware groups the identity and authorization middleware.
type Middleware struct {
	Identity         gin.HandlerFunc
	LoginRequired    gin.HandlerFunc
	AdminOnly        gin.HandlerFunc
	CommentOwnerOnly gin.HandlerFunc
	// NotFound renders unknown paths.
	NotFound gin.HandlerFunc
}

func NewRouter(h Handlers, mw Middleware) *gin.Engine {
	r := gin.Default()

	// 導通確認用（セッション解決の前に置く）
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.OPTIONS("/healthz", h.Health.Health)

	site := r.Group("/")
	site.Use(mw.Identity)
	{
		// 認証不要
		site.GET("/", h.Posts.List)
		site.GET("/post/:post_id", h.Posts.Show)
		// 未ログイン時はハンドラー内でフラッシュ付きリダイレクト
		site.POST("/post/:post_id", h.Posts.AddComment)
		site.GET("/register", h.Auth.RegisterForm)
		site.POST("/register", h.Auth.Register)
		site.GET("/login", h.Auth.LoginForm)
		site.POST("/login", h.Auth.Login)
		site.GET("/logout", h.Auth.Logout)
		site.GET("/about", h.Pages.About)
		site.GET("/contact", h.Pages.Contact)

		// 管理者のみ
		admin := site.Group("/", mw.LoginRequired, mw.AdminOnly)
		admin.GET("/new-post", h.Posts.NewForm)
		admin.POST("/new-post", h.Posts.Create)
		admin.GET("/edit-post/:post_id", h.Posts.EditForm)
		admin.POST("/edit-post/:post_id", h.Posts.Update)
		admin.GET("/delete/:post_id", h.Posts.Delete)

		// コメント投稿者のみ
		owner := site.Group("/", mw.LoginRequired, mw.CommentOwnerOnly)
		owner.GET("/show-post/:post_id/:comment_id", h.Comments.Delete)
	}

	if mw.NotFound != nil {
		r.NoRoute(mw.Identity, mw.NotFound)
	}
	return r
}

// WithRateLimit limits each client IP to perMinute requests. Zero disables the limit.
func WithRateLimit(next http.Handler, perMinute int) http.Handler {
	if perMinute <= 0 {
		return next
	}
	return httprate.LimitByIP(perMinute, time.Minute)(next)
}
