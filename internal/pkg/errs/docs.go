// Package errs provides standardized error types shared across the
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The HTTP adapter maps these classes onto response codes, so core code
// never needs to know about transports: a repository returning an
// ObjectNotFoundError becomes a 404, a ValueIsRequiredError a 400, and
// so on.
package errs
