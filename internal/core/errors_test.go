// AngelaMos | 2026
// errors_test.go

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", fmt.Errorf("get compte: %w", ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"duplicate", fmt.Errorf("create user: %w", ErrDuplicateKey), http.StatusConflict, "DUPLICATE"},
		{"self delete", fmt.Errorf("delete user: %w", ErrSelfDelete), http.StatusConflict, "SELF_DELETE"},
		{"forbidden", fmt.Errorf("authorize: %w", ErrForbidden), http.StatusForbidden, "FORBIDDEN"},
		{"unauthenticated", ErrUnauthorized, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"invalid session", fmt.Errorf("resolve: %w", ErrInvalidSession), http.StatusUnauthorized, "INVALID_SESSION"},
		{"expired token", fmt.Errorf("verify: %w", ErrTokenExpired), http.StatusUnauthorized, "INVALID_SESSION"},
		{"upstream", fmt.Errorf("exchange: %w", ErrUpstream), http.StatusBadRequest, "UPSTREAM_FAILURE"},
		{"internal", errors.New("disk full"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromError(tt.err, "compte")
			if appErr.StatusCode != tt.wantStatus || appErr.Code != tt.wantCode {
				t.Fatalf("FromError() = %d %s, want %d %s",
					appErr.StatusCode, appErr.Code, tt.wantStatus, tt.wantCode)
			}
		})
	}
}

func TestFromErrorKeepsAppError(t *testing.T) {
	orig := ForbiddenError("admin only")
	wrapped := fmt.Errorf("handler: %w", orig)

	if got := FromError(wrapped, "x"); got != orig {
		t.Fatalf("FromError() = %+v, want original AppError", got)
	}
	if !errors.Is(wrapped, ErrForbidden) {
		t.Fatal("AppError must unwrap to its sentinel")
	}
}

func TestJSONErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "compte")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body Response
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Error == nil || body.Error.Message != "compte not found" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestListWritesEmptyArray(t *testing.T) {
	rec := httptest.NewRecorder()
	List[string](rec, nil)

	var body struct {
		Data []string `json:"data"`
		Meta ListMeta `json:"meta"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data == nil || len(body.Data) != 0 {
		t.Fatalf("data = %v, want empty array", body.Data)
	}
	if body.Meta.Limit != ListLimit {
		t.Fatalf("limit = %d, want %d", body.Meta.Limit, ListLimit)
	}
}
