package response_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/maxviazov/mods-catalog-service/internal/repository"
	"github.com/maxviazov/mods-catalog-service/internal/service"
	"github.com/maxviazov/mods-catalog-service/pkg/response"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name     string
		in       error
		wantCode int
		wantErr  string
	}{
		{"invalid_input", service.InvalidInput(service.FieldError{Field: "page", Message: "must be >= 1"}), 400, "invalid_input"},
		{"bare_invalid_input", service.ErrInvalidInput, 400, "invalid_input"},
		{"unavailable", fmt.Errorf("%w: dial tcp", repository.ErrUnavailable), 503, "storage_unavailable"},
		{"internal", errors.New("boom"), 500, "internal_error"},
		{"client_gone", fmt.Errorf("list mods: %w", context.Canceled), 499, "request_canceled"},
		{"deadline", context.DeadlineExceeded, 500, "internal_error"},
		{"ok", nil, 200, "ok"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, payload := response.MapError(tc.in)
			if code != tc.wantCode || payload.Error.Code != tc.wantErr {
				t.Fatalf("unexpected mapping: got (%d,%s) want (%d,%s)", code, payload.Error.Code, tc.wantCode, tc.wantErr)
			}
			if tc.name == "invalid_input" && len(payload.Error.FieldErrors) != 1 {
				t.Fatalf("expected field errors in payload, got %+v", payload.Error.FieldErrors)
			}
			if tc.in != nil && payload.Error.Message == "" {
				t.Fatalf("error responses must carry a message")
			}
		})
	}
}
