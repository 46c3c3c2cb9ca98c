// Package errs provides the typed errors shared by the storefront domain and its adapters.
//
// The package includes:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value is present but unacceptable (unknown status, bad quantity)
//   - ObjectNotFoundError: a lookup by identifier matched nothing
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired) for errors.Is checks
//   - A struct type carrying the offending parameter and an optional cause
//   - Constructor functions with and without cause
//   - Unwrap() returning the sentinel
package errs
