package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestLoginRedirectsToGoogle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := NewGoogleService("client-id", "client-secret", "http://localhost:8080/api/v1/auth/google/callback", "http://localhost:5173/auth")
	router := gin.New()
	svc.RegisterRoutes(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/login", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.Code)
	}
	loc := resp.Header().Get("Location")
	if !strings.Contains(loc, "accounts.google.com") || !strings.Contains(loc, "state=") {
		t.Fatalf("unexpected redirect: %s", loc)
	}
}

func TestLoginFailsWithoutCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := NewGoogleService("", "", "", "http://localhost:5173/auth")
	router := gin.New()
	svc.RegisterRoutes(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/login", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestCallbackRejectsUnknownState(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := NewGoogleService("client-id", "client-secret", "http://localhost:8080/cb", "http://localhost:5173/auth")
	router := gin.New()
	svc.RegisterRoutes(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=bogus&code=abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestStateIsSingleUseAndExpires(t *testing.T) {
	store := newStateStore()

	store.put("alive", time.Now().Add(time.Minute))
	if !store.consume("alive") {
		t.Fatalf("expected live state to be accepted")
	}
	if store.consume("alive") {
		t.Fatalf("expected state to be single use")
	}

	store.put("stale", time.Now().Add(-time.Second))
	if store.consume("stale") {
		t.Fatalf("expected expired state to be rejected")
	}
}

func TestAppendToken(t *testing.T) {
	out, err := appendToken("http://localhost:5173/auth?tab=login", "tok123")
	if err != nil {
		t.Fatalf("append token: %v", err)
	}
	if !strings.Contains(out, "token=tok123") || !strings.Contains(out, "tab=login") {
		t.Fatalf("unexpected url: %s", out)
	}

	if _, err := appendToken("", "tok"); err == nil {
		t.Fatalf("expected error for empty redirect url")
	}
}
