package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/vastra/pkg/apperr"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"name": "Banarasi Silk Saree"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	body := decode(t, rec)
	data, ok := body["data"].(map[string]interface{})
	if !ok || data["name"] != "Banarasi Silk Saree" {
		t.Errorf("data = %v", body["data"])
	}
	if _, present := body["errors"]; present {
		t.Error("errors key should be omitted on success")
	}
}

func TestAppErrorMapsStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperr.Unauthenticated(), http.StatusUnauthorized},
		{apperr.InvalidArgument("quantity must be positive"), http.StatusBadRequest},
		{apperr.NotFound("product", "abc"), http.StatusNotFound},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		AppError(rec, tc.err)
		if rec.Code != tc.want {
			t.Errorf("AppError(%v) status = %d, want %d", tc.err, rec.Code, tc.want)
		}
	}
}

func TestAppErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	AppError(rec, json.Unmarshal(nil, (*int)(nil))) // an arbitrary non-taxonomy error

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := decode(t, rec)
	if body["message"] != "internal error" {
		t.Errorf("message = %q, internal detail must not leak", body["message"])
	}
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"email": "required"})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	body := decode(t, rec)
	errs, ok := body["errors"].(map[string]interface{})
	if !ok || errs["email"] != "required" {
		t.Errorf("errors = %v", body["errors"])
	}
}
