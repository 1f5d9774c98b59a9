// Package errors mixes stdlib matching with pkg/errors stack traces so infra
// code can wrap failures without importing both packages.
package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"

	pkgerrors "github.com/pkg/errors"
)

// maxStackFrames caps how much of a trace ends up in a log line.
const maxStackFrames = 8

// facadeFile is this file; its frames are skipped so traces start at the caller.
var facadeFile = func() string {
	_, file, _, _ := runtime.Caller(0)

	return file
}()

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// New returns an error with a stack trace recorded at the call site.
func New(text string) error {
	return pkgerrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap returns an error annotating err with a stack trace and the supplied message.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf returns an error annotating err with a stack trace and the format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace at the point WithStack was called.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error with stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Cause returns the innermost error that does not wrap another one.
func Cause(err error) error {
	for err != nil {
		next := stderrors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}

	return nil
}

// StackTrace returns the deepest recorded stack in err's chain, one "func file:line" entry per frame.
// It returns nil when nothing in the chain carries a trace.
func StackTrace(err error) []string {
	var trace pkgerrors.StackTrace
	for err != nil {
		if tracer, ok := err.(stackTracer); ok {
			trace = tracer.StackTrace()
		}
		err = stderrors.Unwrap(err)
	}

	frames := make([]string, 0, maxStackFrames)
	for _, frame := range trace {
		if len(frames) == maxStackFrames {
			break
		}
		if frameFile(frame) == facadeFile {
			continue
		}
		frames = append(frames, fmt.Sprintf("%n %s:%d", frame, frame, frame))
	}
	if len(frames) == 0 {
		return nil
	}

	return frames
}

func frameFile(frame pkgerrors.Frame) string {
	pc := uintptr(frame) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	file, _ := fn.FileLine(pc)

	return file
}
