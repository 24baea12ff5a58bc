package dto

// RegisterForm represents the /register form submission.
type RegisterForm struct {
	Email    string `form:"email" binding:"required,email,max=100"`
	Password string `form:"password" binding:"required"`
	Name     string `form:"name" binding:"required,max=100"`
}
