package profile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newProfileRouter(repo Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Set("sessionId", "session-1")
	})
	NewHandler(NewService(repo)).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestProfileGetNotFound(t *testing.T) {
	router := newProfileRouter(NewMemoryRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestProfileUpdateAndGet(t *testing.T) {
	router := newProfileRouter(NewMemoryRepo())

	body := `{"name":"Ana","email":"ana@example.com","languages":[{"language":"Spanish","proficiency":"Native"}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}

	var got ProfileResponse
	if err := json.NewDecoder(respGet.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "Ana" || got.Email != "ana@example.com" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if len(got.Languages) != 1 || got.Languages[0].Proficiency != "Native" {
		t.Fatalf("unexpected languages: %+v", got.Languages)
	}
}

func TestProfileUpdateIgnoresSubmittedIdentity(t *testing.T) {
	repo := NewMemoryRepo()
	router := newProfileRouter(repo)

	body := `{"name":"Ana","userId":"intruder","sessionId":"intruder-session"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	rec, err := repo.GetByUser(req.Context(), "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.UserID != "user-1" || rec.SessionID != "session-1" {
		t.Fatalf("identity must come from auth context: %+v", rec)
	}
}
