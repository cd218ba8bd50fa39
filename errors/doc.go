// Package errors provides structured error handling for gitc.
//
// Every failure that leaves a gitc package is a PlatformError: it carries an
// ErrorCode for categorization, a retry classification, a human-readable
// message, optional context metadata and the wrapped cause. The package stays
// compatible with the standard library (errors.Is, errors.As, errors.Unwrap).
//
// # Creating errors
//
//	err := errors.New(errors.CodeInvalidInput, "empty repository specifier")
//	err := errors.Newf(errors.CodeInvalidInput, "invalid pull request number %q", raw)
//
// # Wrapping errors
//
//	if err := git.Clone(ctx, opts); err != nil {
//	    return errors.WrapWithContext(err, errors.CodeExecutionFailed, "clone failed",
//	        map[string]interface{}{"step": "clone"})
//	}
//
// # Process exit codes
//
// ExitCode maps an error chain to the status gitc exits with. Usage errors
// map to 2. Failures of a delegated command map to that command's own exit
// status when one is available in the chain (any error implementing
// ExitStatus() int). Everything else maps to 1.
package errors
