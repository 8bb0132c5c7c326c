// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/h315uk3/mcp-forge/src/internal/forge/pathsafe"
	"github.com/h315uk3/mcp-forge/src/internal/forge/render"
	"github.com/h315uk3/mcp-forge/src/internal/forge/schema"
)

// Error kind tags carried on every structured error response.
const (
	KindNotFound         = "NotFound"
	KindValidationFailed = "ValidationFailed"
	KindPathRejected     = "PathRejected"
	KindTemplateError    = "TemplateError"
	KindIoError          = "IoError"
	KindInternal         = "Internal"
)

// NotFoundError reports an operation name with no catalog entry. Known
// carries the full sorted operation list so the response can point the
// caller at what exists.
type NotFoundError struct {
	Op    string
	Known []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dispatch: unknown operation %q (known: %s)", e.Op, strings.Join(e.Known, ", "))
}

// IoError reports a failed delegated write of an artifact. It exists so a
// filesystem failure is never conflated with a generation failure.
type IoError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IoError) Error() string {
	return fmt.Sprintf("dispatch: failed to write %q: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying filesystem error.
func (e *IoError) Unwrap() error { return e.Err }

// ErrorKind maps an error from Dispatch (or a delegated write) to its
// stable kind tag. Unrecognized errors are internal: their detail is for
// the log, not the caller.
func ErrorKind(err error) string {
	var (
		notFound *NotFoundError
		pathErr  *pathsafe.Error
		slotErr  *render.SlotError
		ioErr    *IoError
		viols    schema.Violations
	)
	switch {
	case errors.As(err, &notFound):
		return KindNotFound
	case errors.As(err, &viols):
		return KindValidationFailed
	case errors.As(err, &pathErr):
		return KindPathRejected
	case errors.As(err, &slotErr):
		return KindTemplateError
	case errors.As(err, &ioErr):
		return KindIoError
	default:
		return KindInternal
	}
}
