package form

// Mode selects when a Field recomputes its validity.
type Mode int

const (
	// Eager revalidates on every SetValue.
	Eager Mode = iota
	// Lazy only revalidates on an explicit Validate call.
	Lazy
)

func (m Mode) String() string {
	switch m {
	case Eager:
		return "eager"
	case Lazy:
		return "lazy"
	}
	return "unknown"
}

// Field holds the current value and validity of one form input.
type Field struct {
	value    string
	valid    bool
	dirty    bool
	checked  bool
	mode     Mode
	validate Validator
}

// NewField returns an empty field. Its initial validity is the validator
// applied to "".
func NewField(v Validator, mode Mode) *Field {
	if v == nil {
		v = func(string) bool { return true }
	}
	return &Field{
		mode:     mode,
		validate: v,
		valid:    v(""),
	}
}

// SetValue stores next unconditionally.
func (f *Field) SetValue(next string) {
	f.value = next
	f.dirty = true
	if f.mode == Eager {
		f.valid = f.validate(next)
	}
}

// Validate recomputes the validity flag from the current value.
func (f *Field) Validate() bool {
	f.valid = f.validate(f.value)
	f.checked = true
	return f.valid
}

func (f *Field) Value() string { return f.value }
func (f *Field) Valid() bool   { return f.valid }
func (f *Field) Mode() Mode    { return f.mode }

// Dirty reports whether the field has received input since it was created.
func (f *Field) Dirty() bool { return f.dirty }

// ShowHint reports whether a binder should render the field's hint. A lazy
// field only shows it once it has been validated.
func (f *Field) ShowHint() bool {
	if f.mode == Lazy && !f.checked {
		return false
	}
	return f.dirty && !f.valid
}
