// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	g "github.com/maragudk/gomponents"

	"blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/auth/transport/http/dto"
	"blog_backend/internal/feature/auth/transport/page"
	"blog_backend/internal/feature/auth/usecase"
	"blog_backend/internal/platform/flash"
	"blog_backend/internal/platform/view"
)

const (
	msgEmailTaken         = "That email already exists, log in instead!"
	msgInvalidCredentials = "Invalid email or password, please try again."
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録します。
	Register(ctx context.Context, name, email, password string) (*entity.User, error)
	// Login はメールアドレスとパスワードを検証し、一致したユーザーを返します。
	Login(ctx context.Context, email, password string) (*entity.User, error)
}

// SessionManager はセッションCookieの発行と破棄を行います。
type SessionManager interface {
	LogIn(c *gin.Context, user *entity.User) error
	LogOut(c *gin.Context)
}

// Renderer はレイアウト付きのページを描画します。
type Renderer interface {
	Page(c *gin.Context, status int, title string, body ...g.Node)
	Error(c *gin.Context, status int)
}

// AuthHandler は登録・ログイン・ログアウトのHTTPリクエストを処理します。
type AuthHandler struct {
	auth     AuthUsecase
	sessions SessionManager
	flashes  flash.Store
	pages    Renderer
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase, sessions SessionManager, flashes flash.Store, pages Renderer) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, flashes: flashes, pages: pages}
}

// RegisterForm は登録フォームを表示します。
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	h.pages.Page(c, http.StatusOK, "Register", page.RegisterPage(dto.RegisterForm{}, nil))
}

// Register はユーザー登録フォームの送信を処理します。
// - バリデーションエラー時はフォームを400で再表示
// - メール重複時はフラッシュを付けてログイン画面へリダイレクト
// - 成功時はログイン状態にして記事一覧へリダイレクト
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		h.pages.Page(c, http.StatusBadRequest, "Register", page.RegisterPage(form, view.FieldErrors(err)))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register with existing email", "email", form.Email, "remote_addr", c.ClientIP())
			h.flashAndRedirect(c, flash.Error(msgEmailTaken), "/login")
			return
		}
		slog.Error("register failed", "error", err, "email", form.Email)
		h.pages.Error(c, http.StatusInternalServerError)
		return
	}

	if err := h.sessions.LogIn(c, user); err != nil {
		slog.Error("failed to start session", "error", err, "user_id", user.ID)
		h.pages.Error(c, http.StatusInternalServerError)
		return
	}
	slog.Info("user registered", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/")
}

// LoginForm はログインフォームを表示します。
func (h *AuthHandler) LoginForm(c *gin.Context) {
	h.pages.Page(c, http.StatusOK, "Log In", page.LoginPage(dto.LoginForm{}, nil))
}

// Login はログインフォームの送信を処理します。
// 未登録メールとパスワード不一致は同じメッセージで扱います。
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		h.pages.Page(c, http.StatusBadRequest, "Log In", page.LoginPage(form, view.FieldErrors(err)))
		return
	}

	user, err := h.auth.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、実際の原因はログにのみ残す
			slog.Warn("login failed", "error", err, "email", form.Email, "remote_addr", c.ClientIP())
			h.flashAndRedirect(c, flash.Error(msgInvalidCredentials), "/login")
			return
		}
		slog.Error("login lookup failed", "error", err, "email", form.Email)
		h.pages.Error(c, http.StatusInternalServerError)
		return
	}

	if err := h.sessions.LogIn(c, user); err != nil {
		slog.Error("failed to start session", "error", err, "user_id", user.ID)
		h.pages.Error(c, http.StatusInternalServerError)
		return
	}
	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/")
}

// Logout はセッションを破棄して記事一覧へリダイレクトします。
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.LogOut(c)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) flashAndRedirect(c *gin.Context, m flash.Message, location string) {
	if err := h.flashes.Add(c, m); err != nil {
		slog.Warn("failed to store flash", "error", err)
	}
	c.Redirect(http.StatusFound, location)
}
