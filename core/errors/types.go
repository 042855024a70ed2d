// ABOUTME: Failure taxonomy for the research aggregation core
// ABOUTME: Distinguishes contained source/cache/fetch failures from caller contract violations

package errors

import (
	"errors"
	"fmt"
)

// AdapterError reports that a single source adapter failed. It is fully
// contained within the aggregator's fan-out step and never surfaces to
// callers.
type AdapterError struct {
	Source string
	Err    error
}

// Error implements the error interface
func (e *AdapterError) Error() string {
	return fmt.Sprintf("source %s failed: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error
func (e *AdapterError) Unwrap() error {
	return e.Err
}

// CacheError reports a failed cache read or write. Reads degrade to a
// miss, writes to a no-op; the surrounding search call never fails.
type CacheError struct {
	Op  string // "get" or "set"
	Err error
}

// Error implements the error interface
func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *CacheError) Unwrap() error {
	return e.Err
}

// ContentFetchError reports a failed full-text enrichment fetch for one
// URL. The corresponding result simply lacks content.
type ContentFetchError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *ContentFetchError) Error() string {
	return fmt.Sprintf("content fetch failed for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *ContentFetchError) Unwrap() error {
	return e.Err
}

// ValidationError represents a caller contract violation, such as an
// empty query or a non-positive result count. This is the only error
// class that propagates out of the aggregator.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsAdapter checks if an error is an AdapterError
func IsAdapter(err error) bool {
	var adapterErr *AdapterError
	return errors.As(err, &adapterErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
