//go:build js

package components

import (
	"context"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"

	"signin-front/internal/form"
	"signin-front/internal/i18n"
)

// LoginForm renders a form.Controller and feeds input and submit events
// back into it.
type LoginForm struct {
	vecty.Core

	ctrl *form.Controller
	cat  *i18n.Catalog
}

// NewLoginForm creates the component together with its controller. The
// controller re-renders the component whenever a submission changes state.
func NewLoginForm(auth form.Authenticator, nav form.Navigator, cat *i18n.Catalog, opts ...form.Option) *LoginForm {
	l := &LoginForm{cat: cat}
	opts = append([]form.Option{
		form.WithMessages(cat.Messages()),
		form.WithChangeHook(func() { vecty.Rerender(l) }),
	}, opts...)
	l.ctrl = form.New(auth, nav, opts...)
	return l
}

func (l *LoginForm) Controller() *form.Controller { return l.ctrl }

// onSubmit starts the login. Errors are already reflected in the
// controller state.
func (l *LoginForm) onSubmit(e *vecty.Event) {
	_ = l.ctrl.Submit(context.Background())
}

func (l *LoginForm) Render() vecty.ComponentOrHTML {
	msgs := l.ctrl.Messages()
	return elem.Div(
		vecty.Markup(
			vecty.Class("form-one-content"),
			vecty.Attribute("role", "main"),
			vecty.Attribute("aria-label", l.cat.T("form.title")),
		),
		elem.Div(
			vecty.Markup(vecty.Class("text")),
			elem.Heading2(vecty.Text(l.cat.T("form.title"))),
			l.renderError(),
		),
		elem.Form(
			vecty.Markup(
				vecty.Attribute("aria-label", l.cat.T("form.title")),
				event.Submit(l.onSubmit).PreventDefault(),
			),
			l.renderField("text", "email", l.cat.T("form.email_placeholder"), msgs.EmailHint, l.ctrl.Email(), l.ctrl.SetEmail),
			l.renderField("password", "password", l.cat.T("form.password_placeholder"), msgs.PasswordHint, l.ctrl.Password(), l.ctrl.SetPassword),
			l.renderSubmit(),
		),
	)
}

func (l *LoginForm) renderField(inputType, name, placeholder, hint string, f *form.Field, set func(string)) vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(
			vecty.Class("form-one-field"),
			vecty.MarkupIf(f.ShowHint(), vecty.Class("error")),
		),
		elem.Input(vecty.Markup(
			vecty.Property("type", inputType),
			vecty.Property("name", name),
			vecty.Property("placeholder", placeholder),
			vecty.Property("required", true),
			vecty.Property("value", f.Value()),
			event.Input(func(e *vecty.Event) {
				set(e.Target.Get("value").String())
				vecty.Rerender(l)
			}),
		)),
		vecty.If(f.ShowHint(), elem.Div(
			vecty.Markup(vecty.Class("error-txt")),
			vecty.Text(hint),
		)),
	)
}

func (l *LoginForm) renderSubmit() vecty.ComponentOrHTML {
	label := l.cat.T("form.submit")
	if l.ctrl.Pending() {
		label = l.cat.T("form.submitting")
	}
	return elem.Button(
		vecty.Text(label),
		vecty.Markup(
			vecty.Property("type", "submit"),
			vecty.Property("disabled", l.ctrl.Pending()),
		),
	)
}

// renderError shows the error block only when there is a message.
func (l *LoginForm) renderError() vecty.ComponentOrHTML {
	if l.ctrl.Err().IsEmpty() {
		return nil
	}
	return elem.Div(
		vecty.Markup(vecty.Class("error")),
		vecty.Text(l.ctrl.Err().Message()),
	)
}
