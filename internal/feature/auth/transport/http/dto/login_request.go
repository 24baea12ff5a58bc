// Package dto はauthフィーチャーのHTTPトランスポート層のフォームを定義します。
package dto

// LoginForm は/loginフォームの送信内容を表します。
// 必須フィールドとメール形式のバリデーションを含みます。
type LoginForm struct {
	Email    string `form:"email" binding:"required,email,max=100"`
	Password string `form:"password" binding:"required"`
}
