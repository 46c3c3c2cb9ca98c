// Package kernel provides the value objects shared by the storefront aggregates.
//
// The package includes:
//   - UUID: the opaque order identifier
//   - Scalar: a closed string/number/boolean value used for settings
//
// Both have invalid zero values and expose Validate so aggregates can reject
// values that bypassed their constructors.
package kernel
