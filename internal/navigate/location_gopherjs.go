//go:build js && !wasm

package navigate

import "github.com/gopherjs/gopherjs/js"

func location() (*js.Object, error) {
	window := js.Global.Get("window")
	if window == js.Undefined || window == nil {
		return nil, ErrUnavailable
	}
	loc := window.Get("location")
	if loc == js.Undefined || loc == nil {
		return nil, ErrUnavailable
	}
	return loc, nil
}

func (Location) Navigate(path string) error {
	loc, err := location()
	if err != nil {
		return err
	}
	loc.Set("href", path)
	return nil
}

func (Hash) Navigate(path string) error {
	loc, err := location()
	if err != nil {
		return err
	}
	loc.Set("hash", path)
	return nil
}

// CurrentHash returns window.location.hash, or "" without a browser.
func CurrentHash() string {
	loc, err := location()
	if err != nil {
		return ""
	}
	return loc.Get("hash").String()
}
