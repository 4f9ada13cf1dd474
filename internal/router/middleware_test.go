package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blogium-next/internal/config"
	"github.com/blogium-next/internal/constants"
	"github.com/blogium-next/internal/models"
	"github.com/blogium-next/internal/repository"
	"github.com/blogium-next/internal/service"

	"github.com/gin-gonic/gin"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	generated := w2.Header().Get(requestIDHeader)
	if strings.TrimSpace(generated) == "" {
		t.Fatalf("generated request id should not be blank")
	}
}

func TestAdminJWTAuthMiddlewareMissingSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AdminJWTAuthMiddleware("", nil))
	r.GET("/admin/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("status_code want 401 got %d", resp.StatusCode)
	}
}

type stubUserRepo struct {
	user *models.User
}

func (s *stubUserRepo) GetByUsername(username string) (*models.User, error) { return nil, nil }
func (s *stubUserRepo) GetByEmail(email string) (*models.User, error)       { return nil, nil }
func (s *stubUserRepo) GetByID(id uint) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}
func (s *stubUserRepo) Create(user *models.User) error { return nil }
func (s *stubUserRepo) Update(user *models.User) error { return nil }
func (s *stubUserRepo) Delete(id uint) error           { return nil }
func (s *stubUserRepo) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return nil, 0, nil
}
func (s *stubUserRepo) BatchUpdateStatus(userIDs []uint, status string) error { return nil }

func userMiddlewareFixture(t *testing.T, status string) (string, *stubUserRepo, *config.Config) {
	t.Helper()
	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "middleware-test-secret"
	cfg.UserJWT.ExpireHours = 1

	user := &models.User{
		Username: "reader",
		Email:    "reader@example.com",
		Status:   status,
	}
	user.ID = 7

	svc := service.NewUserAuthService(cfg, nil)
	token, _, err := svc.GenerateUserJWT(user, 0)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	return token, &stubUserRepo{user: user}, cfg
}

func TestUserJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, repo, cfg := userMiddlewareFixture(t, constants.UserStatusActive)

	r := gin.New()
	r.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, repo))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id")})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	var resp struct {
		UserID uint `json:"user_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.UserID != 7 {
		t.Fatalf("user_id want 7 got %d", resp.UserID)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/me", nil)
	req2.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w2, req2)
	var resp2 struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &resp2); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp2.StatusCode != 401 {
		t.Fatalf("status_code want 401 got %d", resp2.StatusCode)
	}
}

func TestUserJWTAuthMiddlewareDisabledUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, repo, cfg := userMiddlewareFixture(t, constants.UserStatusDisabled)

	r := gin.New()
	r.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, repo))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("disabled user status_code want 401 got %d", resp.StatusCode)
	}
}

func TestOptionalUserJWTMiddlewareAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, repo, cfg := userMiddlewareFixture(t, constants.UserStatusActive)

	r := gin.New()
	r.Use(OptionalUserJWTMiddleware(cfg.UserJWT.SecretKey, repo))
	r.GET("/posts/1", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id")})
	})

	// 匿名访问放行，user_id 为零值
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/1", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous status want 200 got %d", w.Code)
	}
	var resp struct {
		UserID uint `json:"user_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.UserID != 0 {
		t.Fatalf("anonymous user_id want 0 got %d", resp.UserID)
	}

	// 携带令牌时识别出访问者
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/posts/1", nil)
	req2.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w2, req2)
	if err := json.Unmarshal(w2.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.UserID != 7 {
		t.Fatalf("token user_id want 7 got %d", resp.UserID)
	}
}
