// Package navigate moves the browser to another page. Every navigator
// reports a missing browser context as ErrUnavailable instead of panicking.
package navigate

import "errors"

// ErrUnavailable is returned when there is no window or location to
// navigate with, for example outside a browser.
var ErrUnavailable = errors.New("navigate: window location not available")

// Location replaces the whole page by assigning window.location.href.
type Location struct{}

// Hash changes window.location.hash, for routes handled inside the app.
type Hash struct{}
