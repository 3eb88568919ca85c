package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/tmondal/trvl-backend/controllers"
	"github.com/tmondal/trvl-backend/middleware"
	"github.com/tmondal/trvl-backend/utils"
)

func silentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func identityProbe(t *testing.T, gotID *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := r.Context().Value(controllers.UserIDKey).(string); ok {
			*gotID = id
		}
	})
}

func TestIdentityFromCookie(t *testing.T) {
	token, err := utils.GenerateJWT("a1b2c3")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var gotID string
	req := httptest.NewRequest("GET", "/getuser", nil)
	req.AddCookie(utils.SessionCookie(token))
	middleware.Identity(silentLogger())(identityProbe(t, &gotID)).ServeHTTP(httptest.NewRecorder(), req)

	if gotID != "a1b2c3" {
		t.Fatalf("context userID = %q, want a1b2c3", gotID)
	}
}

func TestIdentityFromBearerHeader(t *testing.T) {
	token, err := utils.GenerateJWT("a1b2c3")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var gotID string
	req := httptest.NewRequest("GET", "/getuser", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	middleware.Identity(silentLogger())(identityProbe(t, &gotID)).ServeHTTP(httptest.NewRecorder(), req)

	if gotID != "a1b2c3" {
		t.Fatalf("context userID = %q, want a1b2c3", gotID)
	}
}

func TestIdentityPassesAnonymousThrough(t *testing.T) {
	var gotID string
	rec := httptest.NewRecorder()
	middleware.Identity(silentLogger())(identityProbe(t, &gotID)).ServeHTTP(rec, httptest.NewRequest("GET", "/gethotels", nil))

	if gotID != "" {
		t.Fatalf("anonymous request carried identity %q", gotID)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, anonymous requests must pass through", rec.Code)
	}
}

func TestIdentityIgnoresGarbageToken(t *testing.T) {
	var gotID string
	req := httptest.NewRequest("GET", "/gethotels", nil)
	req.AddCookie(utils.SessionCookie("not-a-jwt"))
	rec := httptest.NewRecorder()
	middleware.Identity(silentLogger())(identityProbe(t, &gotID)).ServeHTTP(rec, req)

	if gotID != "" {
		t.Fatal("garbage token produced an identity")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, invalid session means anonymous, not an error", rec.Code)
	}
}

func TestRequireUser(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	middleware.RequireUser(next).ServeHTTP(rec, httptest.NewRequest("POST", "/book", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: status = %d, want 401", rec.Code)
	}

	token, err := utils.GenerateJWT("a1b2c3")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	req := httptest.NewRequest("POST", "/book", nil)
	req.AddCookie(utils.SessionCookie(token))
	rec = httptest.NewRecorder()
	middleware.Identity(silentLogger())(middleware.RequireUser(next)).ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("authenticated: status = %d, want 204", rec.Code)
	}
}
