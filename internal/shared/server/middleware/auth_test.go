package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/auth"
)

func TestAuthAllowsOptionsWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth("dev"))
	router.OPTIONS("/api/v1/documents", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/documents", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestAuthRejectsMissingIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth("dev"))
	router.GET("/api/v1/documents", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthStoresIdentityFromJWT(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := auth.SignJWT(auth.Claims{Sub: "user-1", Sid: "sess-1", Email: "u@example.com"})
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}

	router := gin.New()
	router.Use(Auth("dev"))
	router.GET("/api/v1/me", func(c *gin.Context) {
		if got := UserIDFromContext(c); got != "user-1" {
			t.Fatalf("expected user-1, got %q", got)
		}
		if got := SessionIDFromContext(c); got != "sess-1" {
			t.Fatalf("expected sess-1, got %q", got)
		}
		if got := UserEmailFromContext(c); got != "u@example.com" {
			t.Fatalf("expected u@example.com, got %q", got)
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestAuthGuestFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth("dev"))
	router.GET("/api/v1/me", func(c *gin.Context) {
		if got := UserIDFromContext(c); got != "guest:abc" {
			t.Fatalf("expected guest:abc, got %q", got)
		}
		if got := SessionIDFromContext(c); got != "guest:abc" {
			t.Fatalf("expected guest:abc session, got %q", got)
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("X-Guest-Id", "abc")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
