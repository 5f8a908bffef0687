package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/oksasatya/devconnector/internal/domain/entity"
)

func TestUserDocumentOmitsPassword(t *testing.T) {
	u := &entity.User{ID: "u1", Name: "Ada", Email: "ada@example.com", AvatarURL: "https://a", Password: "$2a$10$hash", CreatedAt: time.Unix(0, 0)}
	b, err := json.Marshal(NewUserDocument(u))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "hash") || strings.Contains(string(b), "password") {
		t.Fatalf("document leaks password: %s", b)
	}
}

func TestIndexUserNoopWhenUnconfigured(t *testing.T) {
	var x *UserIndex
	if err := x.IndexUser(context.Background(), &entity.User{}); err != nil {
		t.Fatalf("nil index: %v", err)
	}
	if err := (&UserIndex{}).IndexUser(context.Background(), &entity.User{}); err != nil {
		t.Fatalf("empty index: %v", err)
	}
}

func TestIndexUserSendsDocument(t *testing.T) {
	var (
		mu   sync.Mutex
		path string
		body []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		path = r.URL.Path
		body, _ = io.ReadAll(r.Body)
		mu.Unlock()
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	}))
	defer srv.Close()

	es, err := NewClient([]string{srv.URL}, "", "")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	x := NewUserIndex(es, "users")
	if err := x.IndexUser(context.Background(), &entity.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}); err != nil {
		t.Fatalf("IndexUser: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if path != "/users/_doc/u1" {
		t.Fatalf("path = %q", path)
	}
	var doc UserDocument
	if err := json.Unmarshal(body, &doc); err != nil || doc.Email != "ada@example.com" {
		t.Fatalf("body = %s (%v)", body, err)
	}
}

func TestIndexUserReportsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad"}`))
	}))
	defer srv.Close()

	es, _ := NewClient([]string{srv.URL}, "", "")
	if err := NewUserIndex(es, "users").IndexUser(context.Background(), &entity.User{ID: "u1"}); err == nil {
		t.Fatal("expected error for 400 response")
	}
}
