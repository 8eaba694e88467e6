package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
)

func TestGetBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Path == "/slow" {
			time.Sleep(200 * time.Millisecond)
		}
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	b, err := GetBytes(context.Background(), srv.URL+"/ok", time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "hello" {
		t.Fatalf("expected hello, got %q", b)
	}

	if _, err = GetBytes(context.Background(), srv.URL+"/missing", time.Second); err == nil {
		t.Fatal("expected error for 404")
	}

	if _, err = GetBytes(context.Background(), srv.URL+"/slow", 20*time.Millisecond); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
}
