package blame

import (
	"fmt"
	"runtime"
	"strings"
)

// Error struct holds the error information
type Error struct {
	errCode ErrorCode
	message string
	fields  map[string]any
	causes  []error
	source  string
}

// NewError creates a new Error instance
func NewError(errCode ErrorCode, message string) *Error {
	return &Error{
		errCode: errCode,
		message: message,
		fields:  map[string]any{},
		causes:  make([]error, 0),
		source:  findSource(),
	}
}

// NewBasicError creates a new Error instance with just an error code
func NewBasicError(errCode ErrorCode) *Error {
	return &Error{
		errCode: errCode,
		fields:  map[string]any{},
		causes:  make([]error, 0),
		source:  findSource(),
	}
}

// FetchErrCode returns the error code of the error as a ErrorCode
func (e *Error) FetchErrCode() ErrorCode {
	return e.errCode
}

// FetchMessage returns the message of the error as a string
func (e *Error) FetchMessage() string {
	return e.message
}

// FetchFields returns the fields of the error as a map[string]any
func (e *Error) FetchFields() map[string]any {
	return e.fields
}

// FetchCauses returns the causes of the error as a slice of errors
func (e *Error) FetchCauses() []error {
	return e.causes
}

// FetchSource returns the source of the error as a string
func (e *Error) FetchSource() string {
	return e.source
}

// WithMessage sets the message of the error and returns the updated Error instance.
func (e *Error) WithMessage(msg string) *Error {
	e.message = msg
	return e
}

// WithField adds a field to the error and returns the updated Error instance.
func (e *Error) WithField(key string, value any) *Error {
	e.fields[key] = value
	return e
}

// WithFields adds multiple fields to the error and returns the updated Error instance.
func (e *Error) WithFields(fields map[string]any) *Error {
	for k, v := range fields {
		e.fields[k] = v
	}
	return e
}

// WithCause adds a cause to the error and returns the updated Error instance.
func (e *Error) WithCause(err error) *Error {
	e.causes = append(e.causes, err)
	return e
}

// Error returns the error message with the causes as a string
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.errCode.String())
	if e.message != "" {
		b.WriteString(": ")
		b.WriteString(e.message)
	}
	if len(e.fields) > 0 {
		fmt.Fprintf(&b, " %v", e.fields)
	}
	if len(e.causes) > 0 {
		fmt.Fprintf(&b, " (causes: %v)", e.causes)
	}
	return b.String()
}

// Unwrap exposes the causes for errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	return e.causes
}

// findSource captures the source of the error at the point of instantiation.
func findSource() string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s:%d", file, line)
}
