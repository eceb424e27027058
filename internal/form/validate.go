package form

import "regexp"

// Validator reports whether a field value is acceptable.
type Validator func(string) bool

var emailPattern = regexp.MustCompile(`^[^ ]+@[^ ]+\.[a-z]{2,3}$`)

// ValidateEmail reports whether s looks like an email address: non-space
// characters, an "@", non-space characters, a "." and a 2-3 letter
// lowercase suffix.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePassword reports whether s is non-empty.
func ValidatePassword(s string) bool {
	return s != ""
}
