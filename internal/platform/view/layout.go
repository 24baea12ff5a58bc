// Package view renders the shared page chrome with gomponents.
package view

import (
	"blog_backend/internal/platform/flash"
	"blog_backend/internal/platform/identity"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// SiteName is shown in the navbar and page titles.
const SiteName = "Blog"

type LayoutProps struct {
	Title    string
	Identity identity.Identity
	Flashes  []flash.Message
}

func NavbarComponent(props LayoutProps) g.Node {
	return Nav(Class("nav"),
		Div(Class("brand"), A(Href("/"), g.Text(SiteName))),
		Div(Class("nav-links"),
			A(Href("/"), g.Text("Home")),
			A(Href("/about"), g.Text("About")),
			A(Href("/contact"), g.Text("Contact")),
			g.If(props.Identity.Admin,
				A(Href("/new-post"), g.Text("New Post")),
			),
			g.If(!props.Identity.IsAuthenticated(),
				g.Group([]g.Node{
					A(Href("/login"), g.Text("Login")),
					A(Href("/register"), g.Text("Register")),
				}),
			),
			g.If(props.Identity.IsAuthenticated(),
				A(Href("/logout"), g.Text("Log Out")),
			),
		),
	)
}

func FlashesComponent(msgs []flash.Message) g.Node {
	if len(msgs) == 0 {
		return nil
	}
	items := make([]g.Node, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, Li(Class("flash flash-"+m.Category), g.Text(m.Text)))
	}
	return Ul(Class("flashes"), g.Group(items))
}

func FooterComponent() g.Node {
	return Footer(Class("footer"),
		P(Small(g.Text("Copyright " + SiteName))),
	)
}

func Layout(props LayoutProps, children ...g.Node) g.Node {
	title := SiteName
	if props.Title != "" {
		title = props.Title + " | " + SiteName
	}

	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
				StyleEl(g.Raw(stylesheet)),
			),
			Body(
				Div(Class("container"),
					NavbarComponent(props),
					FlashesComponent(props.Flashes),
					Main(g.Group(children)),
				),
				FooterComponent(),
			),
		),
	)
}

const stylesheet = `
body { font-family: Georgia, serif; margin: 0; color: #212529; }
.container { max-width: 48em; margin: 0 auto; padding: 1em; }
.nav { display: flex; justify-content: space-between; border-bottom: 1px solid #ddd; padding-bottom: .5em; }
.nav-links a { margin-left: 1em; }
.flashes { list-style: none; padding: 0; }
.flash { padding: .5em; margin: .5em 0; border-radius: 4px; }
.flash-error { background: #f8d7da; }
.flash-info { background: #d1ecf1; }
.field-error { color: #b02a37; font-size: .9em; }
.post-preview { border-bottom: 1px solid #eee; padding: 1em 0; }
.post-meta { color: #6c757d; font-style: italic; }
.comment { border-top: 1px solid #eee; padding: .5em 0; }
.footer { text-align: center; color: #6c757d; padding: 2em 0; }
`
