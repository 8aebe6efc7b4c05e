// AngelaMos | 2026
// handler_test.go

package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/auth"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/config"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/middleware"
)

func newRouter(f *fixture) http.Handler {
	cookie := config.SessionConfig{
		CookieName:   "session_token",
		TTL:          7 * 24 * time.Hour,
		CookieSecure: true,
	}
	h := auth.NewHandler(f.service, cookie)

	r := chi.NewRouter()
	h.RegisterRoutes(r, middleware.Authenticator(f.service, cookie.CookieName))
	return r
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestGoogleSessionHandlerSetsCookie(t *testing.T) {
	srv := oauthServer(t, http.StatusOK, map[string]string{
		"email":         "paul@als.fr",
		"name":          "Paul",
		"session_token": "paul-token",
	})
	f := newFixture(t, oauthClient(srv.URL))
	router := newRouter(f)

	req := httptest.NewRequest(http.MethodPost, "/auth/google-session",
		strings.NewReader(`{"session_id":"abc"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}

	c := findCookie(rec.Result().Cookies(), "session_token")
	if c == nil {
		t.Fatal("session cookie not set")
	}
	if c.Value != "paul-token" || !c.HttpOnly || !c.Secure ||
		c.SameSite != http.SameSiteNoneMode || c.Path != "/" ||
		c.MaxAge != 7*24*60*60 {
		t.Fatalf("cookie = %+v", c)
	}

	me := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	me.AddCookie(&http.Cookie{Name: "session_token", Value: "paul-token"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, me)

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "paul@als.fr") {
		t.Fatalf("me = %d %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatal("me leaks password field")
	}

	logout := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	logout.AddCookie(&http.Cookie{Name: "session_token", Value: "paul-token"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, logout)

	cleared := findCookie(rec.Result().Cookies(), "session_token")
	if rec.Code != http.StatusOK || cleared == nil || cleared.MaxAge >= 0 {
		t.Fatalf("logout = %d cookie=%+v", rec.Code, cleared)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, me)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout = %d, want 401", rec.Code)
	}
}

func TestRegisterHandlerStatusCodes(t *testing.T) {
	f := newFixture(t, nil)
	router := newRouter(f)

	body := `{"email":"nora@als.fr","password":"password1","name":"Nora"}`
	tests := []struct {
		name string
		body string
		want int
	}{
		{"created", body, http.StatusCreated},
		{"duplicate", body, http.StatusConflict},
		{"bad role", `{"email":"x@als.fr","password":"password1","name":"X","role":"Boss"}`, http.StatusBadRequest},
		{"missing email", `{"password":"password1","name":"X"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}
