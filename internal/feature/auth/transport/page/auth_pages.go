// Package page renders the auth feature's pages.
package page

import (
	"blog_backend/internal/feature/auth/transport/http/dto"
	"blog_backend/internal/platform/view"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

func RegisterPage(form dto.RegisterForm, errs map[string]string) g.Node {
	return Div(Class("auth"),
		H1(g.Text("Register")),
		P(g.Text("Start contributing to the blog!")),
		view.PostForm("/register", "Sign Me Up!", errs[""],
			view.TextField(view.FieldProps{Name: "email", Label: "Email", Type: "email", Value: form.Email, Error: errs["Email"]}),
			view.TextField(view.FieldProps{Name: "password", Label: "Password", Type: "password", Error: errs["Password"]}),
			view.TextField(view.FieldProps{Name: "name", Label: "Name", Value: form.Name, Error: errs["Name"]}),
		),
	)
}

func LoginPage(form dto.LoginForm, errs map[string]string) g.Node {
	return Div(Class("auth"),
		H1(g.Text("Log In")),
		P(g.Text("Welcome back!")),
		view.PostForm("/login", "Let Me In!", errs[""],
			view.TextField(view.FieldProps{Name: "email", Label: "Email", Type: "email", Value: form.Email, Error: errs["Email"]}),
			view.TextField(view.FieldProps{Name: "password", Label: "Password", Type: "password", Error: errs["Password"]}),
		),
	)
}
