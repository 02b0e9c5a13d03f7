// Package errs provides the standardized error types of the drone fleet service.
//
// Each type follows the same pattern:
//   - a sentinel error (e.g. ErrObjectNotFound) usable with errors.Is
//   - a struct carrying the details (parameter name, offending value, cause)
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Types:
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
package errs
