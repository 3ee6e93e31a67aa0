package blame

// ErrorCode identifies a class of caller error.
type ErrorCode string

// String returns the error code as a string.
func (e ErrorCode) String() string {
	return string(e)
}

// Error codes surfaced by the parser. Only caller misuse is ever reported as
// an error; unparseable input is a nil result, not an error.
const (
	// ErrInvalidOption marks an option key the parser does not know.
	ErrInvalidOption ErrorCode = "err-invalid-option"

	// ErrInvalidOptionValue marks a known option carrying a disallowed value.
	ErrInvalidOptionValue ErrorCode = "err-invalid-option-value"
)
