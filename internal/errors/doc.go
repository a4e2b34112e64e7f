// Package apperrors defines structured application error types and exit
// codes, allowing a clear distinction between error classes (configuration,
// validation, result delivery) while carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types with a cause implement Unwrap() to support errors.Is() and errors.As().
package apperrors
