// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts core errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"taxresearch-api/core/errors"
)

// toHumaError converts core errors to appropriate Huma HTTP errors.
// Only validation errors ever reach a handler; anything else is an
// internal failure.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
