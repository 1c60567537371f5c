package enc

import "fmt"

// DecodeErrorKind tells which structural check rejected the input
type DecodeErrorKind int

const (
	// InvalidLength is raised when the input is not a multiple of EncodedGroupSize
	InvalidLength DecodeErrorKind = iota + 1
	// InvalidPadding is raised when the padding field of the first group is not in the range 0-6
	InvalidPadding
)

func (k DecodeErrorKind) String() string {
	switch k {
	case InvalidLength:
		return "InvalidLength"
	case InvalidPadding:
		return "InvalidPadding"
	default:
		return fmt.Sprintf("DecodeErrorKind(%d)", int(k))
	}
}

// DecodeError is returned by Decode for malformed input. Length is the length of the rejected input in
// both cases, not the offending padding value.
type DecodeError struct {
	Kind   DecodeErrorKind
	Length int
}

var (
	// ErrInvalidLength matches any DecodeError of kind InvalidLength with errors.Is
	ErrInvalidLength = &DecodeError{Kind: InvalidLength}
	// ErrInvalidPadding matches any DecodeError of kind InvalidPadding with errors.Is
	ErrInvalidPadding = &DecodeError{Kind: InvalidPadding}
)

func (e *DecodeError) Error() string {
	switch e.Kind {
	case InvalidLength:
		return fmt.Sprintf("invalid length: %d is not a multiple of %d", e.Length, EncodedGroupSize)
	case InvalidPadding:
		return fmt.Sprintf("invalid padding: %d is not a valid padding length", e.Length)
	default:
		return fmt.Sprintf("decode error %v: %d", e.Kind, e.Length)
	}
}

// Is matches on kind. A zero Length in the target matches any length.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Length == 0 || t.Length == e.Length)
}
