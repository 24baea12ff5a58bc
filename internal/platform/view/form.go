package view

import (
	"errors"

	"github.com/go-playground/validator/v10"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// FieldErrors maps a binding error to a message per struct field name.
// Errors that are not validation failures are reported under the empty key.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out[""] = "The form could not be read."
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "url":
		return "Invalid URL."
	case "max":
		return "Field cannot be longer than " + fe.Param() + " characters."
	default:
		return "Invalid value."
	}
}

// FieldProps describes one form control.
type FieldProps struct {
	Name  string
	Label string
	Type  string
	Value string
	Error string
}

func TextField(p FieldProps) g.Node {
	typ := p.Type
	if typ == "" {
		typ = "text"
	}
	return Div(Class("field"),
		g.El("label", g.Attr("for", p.Name), g.Text(p.Label)),
		Input(ID(p.Name), Name(p.Name), Type(typ), g.If(typ != "password", Value(p.Value))),
		fieldError(p.Error),
	)
}

func TextAreaField(p FieldProps) g.Node {
	return Div(Class("field"),
		g.El("label", g.Attr("for", p.Name), g.Text(p.Label)),
		Textarea(ID(p.Name), Name(p.Name), g.Attr("rows", "8"), g.Text(p.Value)),
		fieldError(p.Error),
	)
}

func fieldError(msg string) g.Node {
	if msg == "" {
		return nil
	}
	return Span(Class("field-error"), g.Text(msg))
}

// PostForm renders a form posting to action with a submit button.
func PostForm(action, submit string, formError string, fields ...g.Node) g.Node {
	return g.El("form", g.Attr("method", "post"), g.Attr("action", action), Class("form"),
		fieldError(formError),
		g.Group(fields),
		Button(Type("submit"), g.Text(submit)),
	)
}
