package form

// Gate decides whether a submission may proceed to the login call.
type Gate func(email, password *Field) bool

// RequireValid passes only when both fields are valid. Lazy fields are
// revalidated first so the check reflects the submitted values.
func RequireValid(email, password *Field) bool {
	if email.Mode() == Lazy {
		email.Validate()
	}
	if password.Mode() == Lazy {
		password.Validate()
	}
	return email.Valid() && password.Valid()
}

// AlwaysPass lets every submission through.
func AlwaysPass(_, _ *Field) bool { return true }
