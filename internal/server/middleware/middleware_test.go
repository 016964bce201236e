package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	var captured string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if captured == "" {
		t.Fatal("expected a generated request ID in context")
	}
	if rr.Header().Get("X-Request-ID") != captured {
		t.Errorf("response header %q does not match context ID %q",
			rr.Header().Get("X-Request-ID"), captured)
	}
}

func TestRequestID_HonorsClientHeader(t *testing.T) {
	var captured string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if captured != "client-supplied-id" {
		t.Errorf("request ID = %q, want client-supplied-id", captured)
	}
}

func TestGetRequestID_EmptyContext(t *testing.T) {
	if id := GetRequestID(context.Background()); id != "" {
		t.Errorf("expected empty ID, got %q", id)
	}
}

func TestGetAdmin_EmptyContext(t *testing.T) {
	if admin := GetAdmin(context.Background()); admin != nil {
		t.Errorf("expected nil admin, got %+v", admin)
	}
}
