package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"warranty_hub/internal/session"
)

const testSecret = "default-secret-key-change-in-production"

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newTestRouter(store *session.Store) (*gin.Engine, *session.Session) {
	gin.SetMode(gin.TestMode)
	captured := &session.Session{}
	r := gin.New()
	r.Use(NewSessionAuth(store).Handler())
	r.GET("/probe", func(c *gin.Context) {
		if sess := SessionFrom(c); sess != nil {
			*captured = *sess
		}
		c.Status(http.StatusOK)
	})
	return r, captured
}

func TestSessionAuth_ValidToken(t *testing.T) {
	r, captured := newTestRouter(session.NewStore())
	token := signTestToken(t, jwt.MapClaims{
		"account_id": "acc-1",
		"full_name":  "Dana Tech",
		"role":       "SC_TECHNICIAN",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if captured.AccountID != "acc-1" || captured.Name != "Dana Tech" {
		t.Fatalf("unexpected session: %+v", captured)
	}
	if string(captured.Role) != "SC_TECHNICIAN" {
		t.Fatalf("unexpected role: %q", captured.Role)
	}
	if captured.Token != token {
		t.Fatalf("session must keep the raw token for backend calls")
	}
}

func TestSessionAuth_Rejections(t *testing.T) {
	store := session.NewStore()
	r, _ := newTestRouter(store)

	expired := signTestToken(t, jwt.MapClaims{
		"account_id": "acc-1",
		"role":       "ADMIN",
		"exp":        time.Now().Add(-time.Hour).Unix(),
	})
	invalidated := signTestToken(t, jwt.MapClaims{
		"account_id": "acc-2",
		"role":       "ADMIN",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	store.Invalidate(invalidated)
	missingRole := signTestToken(t, jwt.MapClaims{
		"account_id": "acc-3",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"malformed header", "Token abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expired},
		{"invalidated token", "Bearer " + invalidated},
		{"missing role claim", "Bearer " + missingRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}
