// Package page renders the site's static pages.
package page

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

func AboutPage() g.Node {
	return Div(Class("about"),
		H1(g.Text("About Me")),
		P(g.Text("This blog collects notes, stories and the occasional rant. Posts are written by the site's administrator and anyone with an account can join the conversation in the comments.")),
	)
}

func ContactPage() g.Node {
	return Div(Class("contact"),
		H1(g.Text("Contact Me")),
		P(g.Text("Have questions? Leave a comment on any post and I will get back to you as soon as possible.")),
	)
}
