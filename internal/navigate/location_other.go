//go:build !js

package navigate

func (Location) Navigate(string) error { return ErrUnavailable }

func (Hash) Navigate(string) error { return ErrUnavailable }

func CurrentHash() string { return "" }
