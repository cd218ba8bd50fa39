package errors

import (
	stderrors "errors"
)

// exitStatuser is implemented by errors that carry the exit status of a
// failed child process, such as *exec.ExecError.
type exitStatuser interface {
	ExitStatus() int
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from the outermost PlatformError in the
// chain. Returns CodeUnknown if the error is nil or not a PlatformError.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}
	return CodeUnknown
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not a PlatformError.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Classification().IsRetryable()
	}
	return false
}

// ContextValue returns the value stored under key by the first PlatformError
// in the chain that carries it.
func ContextValue(err error, key string) (interface{}, bool) {
	for err != nil {
		if pe, ok := err.(PlatformError); ok {
			if v, found := pe.Context()[key]; found {
				return v, true
			}
		}
		err = stderrors.Unwrap(err)
	}
	return nil, false
}

// ExitCode returns the process exit status for err.
//
//   - nil → 0
//   - CodeInvalidInput anywhere at the top of the chain → 2 (usage error)
//   - a child process exit status found in the chain (> 0) → that status
//   - anything else → 1
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if GetCode(err) == CodeInvalidInput {
		return 2
	}

	var status exitStatuser
	if stderrors.As(err, &status) && status.ExitStatus() > 0 {
		return status.ExitStatus()
	}
	return 1
}
