//go:build js && wasm

package navigate

import "syscall/js"

func location() (js.Value, error) {
	window := js.Global().Get("window")
	if window.IsUndefined() || window.IsNull() {
		return js.Value{}, ErrUnavailable
	}
	loc := window.Get("location")
	if loc.IsUndefined() || loc.IsNull() {
		return js.Value{}, ErrUnavailable
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
