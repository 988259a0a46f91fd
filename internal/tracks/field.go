package tracks

// State describes whether a track property carries a value.
type State uint8

const (
	// Unset means the property was absent from the probe and never touched.
	Unset State = iota
	// Cleared means the user explicitly removed the property.
	Cleared
	// Present means the property holds a value.
	Present
)

func (s State) String() string {
	switch s {
	case Cleared:
		return "cleared"
	case Present:
		return "present"
	default:
		return "unset"
	}
}

// Field is a tri-state property value. The zero value is Unset.
//
// mkvmerge treats a missing key differently from an explicit value: an absent
// default flag leaves the decision to mkvmerge, while an explicit false writes
// one. Field keeps that distinction instead of collapsing it into a pointer.
type Field[T any] struct {
	state State
	value T
}

// Some returns a Present field holding v.
func Some[T any](v T) Field[T] {
	return Field[T]{state: Present, value: v}
}

// Clear returns a Cleared field.
func Clear[T any]() Field[T] {
	return Field[T]{state: Cleared}
}

// State reports the field's state.
func (f Field[T]) State() State { return f.state }

// IsSet reports whether the field holds a value.
func (f Field[T]) IsSet() bool { return f.state == Present }

// Get returns the value and whether it is present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == Present
}

// Or returns the value when present, otherwise fallback.
func (f Field[T]) Or(fallback T) T {
	if f.state == Present {
		return f.value
	}
	return fallback
}
