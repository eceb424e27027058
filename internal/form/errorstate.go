package form

// ErrorState is the single message slot shown above the form.
// An empty message means there is nothing to show.
type ErrorState struct {
	message string
}

// Set replaces the current message.
func (e *ErrorState) Set(message string) { e.message = message }

func (e *ErrorState) Clear() { e.message = "" }

func (e *ErrorState) Message() string { return e.message }

func (e *ErrorState) IsEmpty() bool { return e.message == "" }
