//go:build js

package main

import (
	"syscall/js"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"

	"signin-front/internal/navigate"
)

const loginRoute = "#/login"

// App is the main application component, acting as a router.
type App struct {
	vecty.Core
	currentRoute string
	loginPage    *LoginPage
}

// NewApp creates a new App component.
func NewApp(loginPage *LoginPage) *App {
	return &App{loginPage: loginPage}
}

// Mount handles component mounting and sets up routing.
func (a *App) Mount() {
	a.handleRouteChange(js.Undefined(), nil)

	js.Global().Set("onhashchange", js.FuncOf(a.handleRouteChange))
}

func (a *App) handleRouteChange(this js.Value, args []js.Value) interface{} {
	newRoute := navigate.CurrentHash()
	if newRoute == "" {
		newRoute = loginRoute // Default route
	}
	if newRoute != loginRoute {
		// 未知のルートはログインへ戻す
		if err := (navigate.Hash{}).Navigate(loginRoute); err == nil {
			return nil
		}
		newRoute = loginRoute
	}
	a.currentRoute = newRoute
	vecty.Rerender(a)
	return nil
}

// Render renders the component based on the current route.
func (a *App) Render() vecty.ComponentOrHTML {
	switch a.currentRoute {
	case loginRoute:
		return elem.Body(a.loginPage)
	default:
		return elem.Body()
	}
}
