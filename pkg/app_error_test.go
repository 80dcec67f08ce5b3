package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
		if e.HTTPStatus != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", e.HTTPStatus)
		}
		body := e.ToHTTPError()
		if body.Code != "ESTIMATE_NOT_FOUND" || body.Message != "Estimate not found" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if e.Error() != "ESTIMATE_NOT_FOUND: Estimate not found" {
			t.Fatalf("unexpected error string: %s", e.Error())
		}
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("db down")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 0)
		if e.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("expected default 500, got %d", e.HTTPStatus)
		}
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to unwrap")
		}
		if e.ToHTTPError().Message != "An internal error occurred" {
			t.Fatalf("cause leaked into body")
		}
	})
}
