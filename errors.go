package recurgo

import (
	"errors"
	"fmt"
)

// ParameterError reports an invalid argument to one of the public entry
// points. All parameter validation happens before any work is done, so
// a ParameterError implies no partial output was produced.
//
// The original underlying error (if any) can be accessed via
// errors.Unwrap.
type ParameterError struct {
	msg   string
	cause error
}

func (e *ParameterError) Error() string { return e.msg }

func (e *ParameterError) Unwrap() error { return e.cause }

// IsParameterError reports whether err is (or wraps) a ParameterError.
func IsParameterError(err error) bool {
	var pe *ParameterError
	return errors.As(err, &pe)
}

func paramErrorf(format string, args ...any) *ParameterError {
	return &ParameterError{msg: fmt.Sprintf(format, args...)}
}
