// SPDX-License-Identifier: EPL-2.0

package muxer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Sentinel causes engines report and the facade translates. Engines may
// also return arbitrary errors; those map to StatusUnknown.
var (
	ErrNotStarted           = errors.New("muxer not started")
	ErrAlreadyStarted       = errors.New("muxer already started")
	ErrStopped              = errors.New("muxer stopped")
	ErrTrackOutOfRange      = errors.New("track index out of range")
	ErrFormatUnsupported    = errors.New("track format not supported")
	ErrOperationUnsupported = errors.New("operation not supported by engine")
	ErrMalformedSample      = errors.New("malformed sample data")
)

// Error is the only error type the facade returns: the operation that
// failed, the translated status, and the underlying cause.
type Error struct {
	Op     string
	Status Status
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("muxer: %s: %s: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("muxer: %s: %s", e.Op, e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by status, so callers can test
// errors.Is(err, &muxer.Error{Status: muxer.StatusIO}) without knowing the
// operation or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Status == e.Status && (t.Op == "" || t.Op == e.Op)
}

// StatusOf recovers a status code from any error: nil is StatusOK, facade
// errors carry their own status, everything else is StatusUnknown.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return StatusUnknown
}

var statusByCause = []struct {
	cause  error
	status Status
}{
	{ErrNotStarted, StatusInvalidOperation},
	{ErrAlreadyStarted, StatusInvalidOperation},
	{ErrStopped, StatusInvalidOperation},
	{ErrTrackOutOfRange, StatusInvalidParameter},
	{ErrFormatUnsupported, StatusUnsupported},
	{ErrOperationUnsupported, StatusUnsupported},
	{ErrMalformedSample, StatusMalformed},
	{io.EOF, StatusEndOfStream},
	{io.ErrUnexpectedEOF, StatusIO},
	{io.ErrShortWrite, StatusIO},
	{io.ErrClosedPipe, StatusIO},
	{fs.ErrClosed, StatusIO},
}

// translate wraps an engine error into a *Error with the mapped status.
// Errors already carrying a status pass through.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	for _, m := range statusByCause {
		if errors.Is(err, m.cause) {
			return &Error{Op: op, Status: m.status, Err: err}
		}
	}
	return &Error{Op: op, Status: StatusUnknown, Err: err}
}

func fail(op string, status Status, err error) error {
	return &Error{Op: op, Status: status, Err: err}
}
