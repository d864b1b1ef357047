package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	tokens := &MemoryTokenProvider{}
	tokens.Set("session-token")
	c, err := New(server.URL, tokens, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out map[string]string
	if err := c.Get(context.Background(), "/projects", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer session-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if out["status"] != "ok" {
		t.Errorf("decoded = %v", out)
	}
}

func TestClientOmitsHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c, err := New(server.URL, &MemoryTokenProvider{}, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Delete(context.Background(), "/projects/1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestClientUnauthorizedClearsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	tokens := &MemoryTokenProvider{}
	tokens.Set("stale-token")
	c, err := New(server.URL, tokens, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = c.Get(context.Background(), "/auth/me", nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if _, ok := tokens.Token(); ok {
		t.Error("token not cleared after 401")
	}
}

func TestClientErrorIncludesBodySnippet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"VALIDATION_FAILED"}}`))
	}))
	defer server.Close()

	c, err := New(server.URL, &MemoryTokenProvider{}, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = c.Post(context.Background(), "/contact", map[string]string{"name": ""}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); !strings.Contains(got, "status 400") || !strings.Contains(got, "VALIDATION_FAILED") {
		t.Errorf("error = %q", got)
	}
}

func TestClientPostSendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "msg-1"})
	}))
	defer server.Close()

	c, err := New(server.URL, nil, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out map[string]string
	if err := c.Post(context.Background(), "/contact", map[string]string{"name": "Visitor"}, &out); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotBody["name"] != "Visitor" {
		t.Errorf("body = %v", gotBody)
	}
	if out["id"] != "msg-1" {
		t.Errorf("decoded = %v", out)
	}
}

func TestNewRejectsEmptyBaseURL(t *testing.T) {
	if _, err := New("", nil, Options{}); err == nil {
		t.Fatal("expected error")
	}
}
