package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/edulearn/config"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/lshigami/edulearn/internal/service"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	id := w.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("generated id %q is not a uuid: %v", id, err)
	}
	if w.Body.String() != id {
		t.Fatalf("context id %q != header id %q", w.Body.String(), id)
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "upstream-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "upstream-123" {
		t.Fatalf("incoming id not kept, got %q", got)
	}
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := service.NewTokenService(&config.Config{Auth: config.Auth{JWTSecret: "k", TokenTTL: time.Minute}})

	r := gin.New()
	r.GET("/private", RequireAuth(tokens), func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})

	token, err := tokens.Issue(&model.User{ID: 9, Email: "a@b.co", Username: "a"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	cases := map[string]struct {
		header string
		status int
	}{
		"missing header": {"", http.StatusUnauthorized},
		"not bearer":     {"Basic abc", http.StatusUnauthorized},
		"garbage token":  {"Bearer not-a-jwt", http.StatusUnauthorized},
		"valid token":    {"Bearer " + token, http.StatusOK},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
		})
	}
}
