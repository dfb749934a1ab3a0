// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (invalid algorithm
// input, configuration, memory budget) and for carrying the underlying cause.
//
// The algorithm packages report structurally invalid input with
// InvalidArgumentError, which matches ErrInvalidArgument under errors.Is.
// Every error type supports errors.Is and errors.As through the usual
// fmt.Errorf %w wrapping conventions.
package apperrors
