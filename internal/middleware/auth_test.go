package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func authTestRouter(t *testing.T, required bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth := NewAuthenticator(testSecret)

	r := gin.New()
	handler := func(c *gin.Context) {
		if userID, ok := GetUserID(c); ok {
			c.String(http.StatusOK, userID.String())
			return
		}
		c.String(http.StatusOK, "anonymous")
	}
	if required {
		r.GET("/protected", auth.RequireAuth(), handler)
	} else {
		r.GET("/protected", auth.OptionalAuth(), handler)
	}
	return r
}

func TestRequireAuthWithBearerToken(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	authTestRouter(t, true).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != userID.String() {
		t.Fatalf("expected user id %s, got %q", userID, w.Body.String())
	}
}

func TestRequireAuthWithSessionCookie(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
	w := httptest.NewRecorder()
	authTestRouter(t, true).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequireAuthRejections(t *testing.T) {
	userID := uuid.New()
	cases := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"wrong secret", signToken(t, "other-secret", jwt.MapClaims{
			"sub": userID.String(),
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
		{"expired", signToken(t, testSecret, jwt.MapClaims{
			"sub": userID.String(),
			"exp": time.Now().Add(-time.Hour).Unix(),
		})},
		{"non uuid subject", signToken(t, testSecret, jwt.MapClaims{
			"sub": "not-a-uuid",
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
		{"garbage", "not.a.jwt"},
	}

	router := authTestRouter(t, true)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestOptionalAuthLetsAnonymousThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	authTestRouter(t, false).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "anonymous" {
		t.Fatalf("expected anonymous, got %q", w.Body.String())
	}
}

func TestOptionalAuthIgnoresInvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	authTestRouter(t, false).ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "anonymous" {
		t.Fatalf("invalid token on an optional route must fall back to anonymous, got %d %q", w.Code, w.Body.String())
	}
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	header := w.Header().Get("X-Request-Id")
	if header == "" {
		t.Fatal("expected a generated request id header")
	}
	if w.Body.String() != header {
		t.Fatalf("handler and header ids differ: %q vs %q", w.Body.String(), header)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "client-supplied")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("X-Request-Id") != "client-supplied" {
		t.Fatalf("client-supplied id must be echoed, got %q", w.Header().Get("X-Request-Id"))
	}
}
