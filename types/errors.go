package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// BackendDataError is returned when the backend answers with a payload we
// can't make sense of.
type BackendDataError struct {
	Msg string
}

func (e *BackendDataError) Error() string {
	return "unexpected backend data: " + e.Msg
}

// NewBackendDataError returns a BackendDataError with a formatted message
func NewBackendDataError(format string, args ...interface{}) *BackendDataError {
	return &BackendDataError{Msg: fmt.Sprintf(format, args...)}
}

// BackendError is returned when the backend reports an asynchronous task as failed.
type BackendError struct {
	Msg  string
	Task string   // Task handle, if known
	Log  []string // Task log as reported by the backend
}

func (e *BackendError) Error() string {
	if len(e.Log) == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s. Task Log: \n%s", e.Msg, strings.Join(e.Log, "\n"))
}

// TimeoutError is returned when a bounded wait exceeds its deadline.
type TimeoutError struct {
	Waiting string        // What we were waiting for
	Timeout time.Duration // The bound that was exceeded
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s while waiting for %s", e.Timeout, e.Waiting)
}

// IsBackendDataError returns true if err, or its cause, is a BackendDataError
func IsBackendDataError(err error) bool {
	var e *BackendDataError
	return errors.As(err, &e)
}

// IsBackendError returns true if err, or its cause, is a BackendError
func IsBackendError(err error) bool {
	var e *BackendError
	return errors.As(err, &e)
}

// IsTimeout returns true if err, or its cause, is a TimeoutError
func IsTimeout(err error) bool {
	var e *TimeoutError
	return errors.As(err, &e)
}
