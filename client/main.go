//go:build js

package main

import (
	"syscall/js"

	"github.com/hexops/vecty"

	"signin-front/internal/authapi"
	"signin-front/internal/form"
	"signin-front/internal/i18n"
	"signin-front/internal/logging"
)

// Set at build time, e.g.
//
//	-ldflags "-X main.apiBaseURL=https://api.example.com -X main.destination=/home"
var (
	apiBaseURL  = ""
	destination = form.DefaultDestination
	language    = ""
	logLevel    = "info"
)

func main() {
	if _, err := logging.Setup(logging.Options{Level: logLevel}); err != nil {
		println(err.Error())
	}
	log := logging.For("client")

	cat := i18n.New(pageLanguage())
	auth := authapi.New(baseURL(), authapi.WithLogger(logging.For("authapi")))
	loginForm := newLoginPage(auth, cat)

	log.WithField("lang", cat.Lang()).Debug("starting")
	vecty.SetTitle(cat.T("form.title"))
	vecty.RenderBody(NewApp(loginForm))
	// ブラウザのイベントループをブロックしないように、この関数をブロックします
	select {}
}

// baseURL falls back to the page origin when no API host was compiled in.
func baseURL() string {
	if apiBaseURL != "" {
		return apiBaseURL
	}
	loc := js.Global().Get("location")
	if loc.IsUndefined() || loc.IsNull() {
		return ""
	}
	return loc.Get("origin").String()
}

// pageLanguage prefers the compiled-in language, then <html lang>.
func pageLanguage() string {
	if language != "" {
		return language
	}
	lang := js.Global().Get("document").Get("documentElement").Get("lang")
	if lang.IsUndefined() || lang.String() == "" {
		return "en"
	}
	return lang.String()
}
