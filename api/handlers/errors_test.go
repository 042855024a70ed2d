// ABOUTME: Tests for core-error to HTTP status mapping

package handlers

import (
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"

	coreerrors "taxresearch-api/core/errors"
)

func TestToHumaError_Nil(t *testing.T) {
	if got := toHumaError(nil); got != nil {
		t.Errorf("toHumaError(nil) = %v, want nil", got)
	}
}

func TestToHumaError_ValidationBecomes400(t *testing.T) {
	err := toHumaError(&coreerrors.ValidationError{Field: "query", Message: "query cannot be empty"})

	var status huma.StatusError
	if !errors.As(err, &status) {
		t.Fatalf("error %T does not carry a status", err)
	}
	if status.GetStatus() != 400 {
		t.Errorf("status = %d, want 400", status.GetStatus())
	}
}

func TestToHumaError_UnknownBecomes500(t *testing.T) {
	err := toHumaError(errors.New("backend exploded"))

	var status huma.StatusError
	if !errors.As(err, &status) {
		t.Fatalf("error %T does not carry a status", err)
	}
	if status.GetStatus() != 500 {
		t.Errorf("status = %d, want 500", status.GetStatus())
	}
}
