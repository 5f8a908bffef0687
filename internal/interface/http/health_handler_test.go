package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	tests := []struct {
		name string
		db   Pinger
		want int
	}{
		{name: "ok", db: pingFunc(func(context.Context) error { return nil }), want: http.StatusOK},
		{name: "down", db: pingFunc(func(context.Context) error { return errors.New("down") }), want: http.StatusServiceUnavailable},
		{name: "unset", db: nil, want: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/api/health", NewHealthHandler(tt.db).Health)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
			if w.Code != tt.want {
				t.Fatalf("code = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRoot(t *testing.T) {
	r := gin.New()
	r.GET("/", NewHealthHandler(nil).Root)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK || w.Body.String() != "API running" {
		t.Fatalf("GET / = %d %q", w.Code, w.Body)
	}
}
