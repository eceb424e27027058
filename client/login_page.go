//go:build js

package main

import (
	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"

	"signin-front/components"
	"signin-front/internal/form"
	"signin-front/internal/i18n"
	"signin-front/internal/logging"
	"signin-front/internal/navigate"
)

// LoginPage wraps the sign-in form with the page layout.
type LoginPage struct {
	vecty.Core
	Form *components.LoginForm `vecty:"prop"`
}

func newLoginPage(auth form.Authenticator, cat *i18n.Catalog) *LoginPage {
	return &LoginPage{
		Form: components.NewLoginForm(auth, navigate.Location{}, cat,
			form.WithDestination(destination),
			form.WithLogger(logging.For("form")),
		),
	}
}

// Render renders the component.
func (p *LoginPage) Render() vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(
			vecty.Class("login-container"),
		),
		p.Form,
	)
}
