package bowerfile

import (
	"errors"
	"fmt"
)

// Code classifies a manifest failure for programmatic handling. The values
// are stable and consumer-visible.
type Code string

const (
	// CodeNotFound means no manifest file could be located.
	CodeNotFound Code = "ENOENT"
	// CodeMalformed means the file contents are not valid JSON.
	CodeMalformed Code = "EMALFORMED"
	// CodeInvalid means the manifest violates the schema rules.
	CodeInvalid Code = "EINVALID"
)

// Error is a manifest failure carrying a stable code and, when it was
// determined at the reader boundary, the resolved file it originated from.
type Error struct {
	Code    Code
	Message string
	File    string
	cause   error
}

func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// newInvalid builds an EINVALID error from a format string.
func newInvalid(format string, args ...any) *Error {
	return &Error{Code: CodeInvalid, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode returns the Code carried by err, or the empty Code when err is
// not a manifest Error.
func ErrorCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsNotFound reports whether err is an ENOENT manifest error.
func IsNotFound(err error) bool { return ErrorCode(err) == CodeNotFound }

// IsMalformed reports whether err is an EMALFORMED manifest error.
func IsMalformed(err error) bool { return ErrorCode(err) == CodeMalformed }

// IsInvalid reports whether err is an EINVALID manifest error.
func IsInvalid(err error) bool { return ErrorCode(err) == CodeInvalid }

// tagFile attaches the resolved path to err when it is a manifest Error
// that has no file context yet. Validation errors are tagged only at the
// reader boundary, never inside pure validation calls.
func tagFile(err error, file string) error {
	var e *Error
	if errors.As(err, &e) && e.File == "" {
		e.File = file
	}
	return err
}
