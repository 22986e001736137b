package fs

import (
	"errors"
	"fmt"
)

// Kind classifies engine failures.
type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindPermissionDenied    Kind = "permission_denied"
	KindInvalidPath         Kind = "invalid_path"
	KindUnsupportedPlatform Kind = "unsupported_platform"
	KindIO                  Kind = "io_error"
	KindPathTraversal       Kind = "path_traversal"
)

// Error is the structured failure type crossing the engine boundary.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s %s", e.Kind, e.Op, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an engine error for the given operation and path.
func NewError(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// KindOf extracts the failure kind, or KindIO for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindIO
}

// IsNotFound reports whether err is a NotFound engine error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsInvalidPath reports whether err is an InvalidPath engine error.
func IsInvalidPath(err error) bool { return KindOf(err) == KindInvalidPath }

// IsPathTraversal reports whether err is a PathTraversal engine error.
func IsPathTraversal(err error) bool { return KindOf(err) == KindPathTraversal }

// IsUnsupportedPlatform reports whether err is an UnsupportedPlatform engine error.
func IsUnsupportedPlatform(err error) bool { return KindOf(err) == KindUnsupportedPlatform }
