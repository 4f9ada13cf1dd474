package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(target string, acceptLanguage string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	if acceptLanguage != "" {
		c.Request.Header.Set("Accept-Language", acceptLanguage)
	}
	return c
}

func TestResolveLocaleQueryWins(t *testing.T) {
	c := newTestContext("/posts?locale=en", "zh-CN")
	if got := ResolveLocale(c); got != "en-US" {
		t.Fatalf("expected en-US, got %s", got)
	}
}

func TestResolveLocaleAcceptLanguage(t *testing.T) {
	c := newTestContext("/posts", "en-GB;q=0.9, zh-CN;q=0.8")
	if got := ResolveLocale(c); got != "en-US" {
		t.Fatalf("expected en-US from region fallback, got %s", got)
	}
}

func TestResolveLocaleDefault(t *testing.T) {
	c := newTestContext("/posts", "fr-FR")
	if got := ResolveLocale(c); got != DefaultLocale {
		t.Fatalf("expected default locale, got %s", got)
	}
}

func TestTFallsBackToDefaultLocale(t *testing.T) {
	if got := T("en-US", "error.not_found"); got != "resource not found" {
		t.Fatalf("unexpected message: %s", got)
	}
	if got := T("fr-FR", "error.not_found"); got != catalog[DefaultLocale]["error.not_found"] {
		t.Fatalf("expected default-locale fallback, got %s", got)
	}
	if got := T("zh-CN", "error.unknown_key"); got != "error.unknown_key" {
		t.Fatalf("expected key echo for missing entry, got %s", got)
	}
}

func TestSprintfFormatsArgs(t *testing.T) {
	got := Sprintf("en-US", "error.password_policy", 8)
	if got != "password must be at least 8 characters with letters and digits" {
		t.Fatalf("unexpected message: %s", got)
	}
}
