package ahocorasick

import "fmt"

// Construction errors.
//
// Building an automaton is the only fallible operation; searching a finite
// haystack cannot fail. Calling a search factory with an incompatible match
// kind is a contract violation and panics instead of returning an error.

// ErrDuplicatePattern indicates the pattern set contains the same byte
// string more than once. Values may repeat; patterns may not.
var ErrDuplicatePattern = &AutomatonError{
	Kind:    DuplicatePattern,
	Message: "duplicate pattern",
}

// ErrEmptyPattern indicates a zero-length pattern was given. The automaton
// has no transition for the empty string, so empty patterns are rejected.
var ErrEmptyPattern = &AutomatonError{
	Kind:    EmptyPattern,
	Message: "empty pattern",
}

// ErrNoPatterns indicates the pattern set itself was empty.
var ErrNoPatterns = &AutomatonError{
	Kind:    NoPatterns,
	Message: "pattern set is empty",
}

// ErrScaleExceeded indicates the pattern set needs more states than a
// 24-bit failure pointer can address, or an output table beyond the 32-bit
// position range.
var ErrScaleExceeded = &AutomatonError{
	Kind:    ScaleExceeded,
	Message: "pattern set exceeds automaton scale limits",
}

// ErrorKind classifies construction errors.
type ErrorKind uint8

const (
	// DuplicatePattern indicates a repeated pattern in the input.
	DuplicatePattern ErrorKind = iota

	// EmptyPattern indicates a zero-length pattern in the input.
	EmptyPattern

	// NoPatterns indicates an empty pattern set.
	NoPatterns

	// ScaleExceeded indicates the automaton would not fit its 24-bit
	// state indexing or 32-bit output indexing.
	ScaleExceeded
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case DuplicatePattern:
		return "DuplicatePattern"
	case EmptyPattern:
		return "EmptyPattern"
	case NoPatterns:
		return "NoPatterns"
	case ScaleExceeded:
		return "ScaleExceeded"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", uint8(k))
	}
}

// AutomatonError is an error produced while building an automaton.
type AutomatonError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *AutomatonError) Error() string {
	return e.Message
}

// Is reports whether target is an AutomatonError of the same kind, so that
// errors.Is(err, ErrDuplicatePattern) matches errors carrying specifics.
func (e *AutomatonError) Is(target error) bool {
	t, ok := target.(*AutomatonError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func duplicatePatternError(pattern []byte) error {
	return &AutomatonError{
		Kind:    DuplicatePattern,
		Message: fmt.Sprintf("duplicate pattern: %q", pattern),
	}
}

func scaleExceededError(what string) error {
	return &AutomatonError{
		Kind:    ScaleExceeded,
		Message: fmt.Sprintf("pattern set exceeds automaton scale limits: %s", what),
	}
}
