package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"talenthub/internal/domain/auth"
)

const testSecret = "unit-test-secret"

func bearerFor(t *testing.T, claims auth.Claims) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, claims, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}

func TestAuthSetsUserContext(t *testing.T) {
	var got auth.UserContext
	var ok bool
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/applications", nil)
	req.Header.Set("Authorization", bearerFor(t, auth.Claims{UserID: "u-1", RoleID: "r-hr", RoleName: auth.RoleHR}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatal("user context not set")
	}
	if got.UserID != "u-1" || got.RoleID != "r-hr" || got.RoleName != auth.RoleHR {
		t.Fatalf("user = %+v", got)
	}
}

func TestAuthAnonymousPassThrough(t *testing.T) {
	cases := map[string]string{
		"missing":    "",
		"not bearer": "Basic dXNlcjpwYXNz",
		"garbage":    "Bearer not.a.token",
		"wrong secret": func() string {
			tok, _ := auth.GenerateToken("other", auth.Claims{UserID: "u"}, time.Hour)
			return "Bearer " + tok
		}(),
	}
	for name, header := range cases {
		var ok bool
		handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok = GetUser(r.Context())
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if ok {
			t.Errorf("%s: user context set for invalid credentials", name)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, anonymous requests pass through", name, rec.Code)
		}
	}
}

type staticPermissions struct {
	allowed map[string]bool
}

func (s staticPermissions) HasPermission(_ context.Context, roleID, permission string) (bool, error) {
	return s.allowed[roleID+"/"+permission], nil
}

func TestRequirePermission(t *testing.T) {
	store := staticPermissions{allowed: map[string]bool{"r-hr/applications.write": true}}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	protected := RequirePermission("applications.write", store)(next)

	t.Run("unauthenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		var body struct {
			Success bool `json:"success"`
			Error   struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Success || body.Error.Code != "unauthorized" {
			t.Fatalf("body = %s", rec.Body.String())
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", bearerFor(t, auth.Claims{UserID: "u-2", RoleID: "r-applicant", RoleName: auth.RoleApplicant}))
		rec := httptest.NewRecorder()
		Auth(testSecret)(protected).ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", bearerFor(t, auth.Claims{UserID: "u-1", RoleID: "r-hr", RoleName: auth.RoleHR}))
		rec := httptest.NewRecorder()
		Auth(testSecret)(protected).ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
	})
}
