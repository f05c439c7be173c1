// Package errors provides the structured error model shared by every ghwatch package.
//
// Errors carry an ErrorCode describing what went wrong, a classification that
// tells callers whether retrying could help, and optional context metadata.
// The package stays compatible with the standard library (errors.Is,
// errors.As, errors.Unwrap), so a PlatformError can be wrapped and inspected
// like any other error.
//
// # Creating errors
//
//	err := errors.New(errors.CodeInvalidInput, "user is required")
//	err = errors.WithContext(err, "field", "user")
//
// # Wrapping transport failures
//
//	resp, err := client.Do(ctx, req, &buf)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeNetwork, "request failed")
//	}
//
// # Inspecting errors
//
//	switch errors.GetCode(err) {
//	case errors.CodeNotFound:
//	    // the remote resource does not exist
//	case errors.CodeRateLimit:
//	    // back off; errors.IsRetryable(err) is true
//	}
//
// The library never retries on its own. Classification exists so callers can
// make that decision with errors.IsRetryable.
package errors
