package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGetAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, NewMemStore("tok-123"))

	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.Get(context.Background(), "/api/courses", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization header: got %q, want %q", gotAuth, "Bearer tok-123")
	}
	if !out.OK {
		t.Error("response body not decoded")
	}
}

func TestWithoutAuthSkipsHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, NewMemStore("tok-123"))

	if err := c.Post(context.Background(), "/contact", map[string]string{"subject": "hi"}, nil, WithoutAuth()); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization header: got %q, want none", gotAuth)
	}
}

func TestRetryOnceAfterSuccessfulRefresh(t *testing.T) {
	var attempts, validations atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/validate" {
			validations.Add(1)
			w.WriteHeader(http.StatusOK)
			return
		}
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value": "second attempt"}`))
	}))
	defer srv.Close()

	store := NewMemStore("still-good")
	c := New(srv.URL, store)

	var out struct {
		Value string `json:"value"`
	}
	if err := c.Get(context.Background(), "/api/dashboard/home", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if out.Value != "second attempt" {
		t.Errorf("value: got %q, want the retried response", out.Value)
	}
	if got := attempts.Load(); got != 2 {
		t.Errorf("request attempts: got %d, want 2", got)
	}
	if got := validations.Load(); got != 1 {
		t.Errorf("validation calls: got %d, want 1", got)
	}
	// The backend does not rotate tokens; the original one must survive.
	if tok, _ := store.Token(); tok != "still-good" {
		t.Errorf("token: got %q, want preserved %q", tok, "still-good")
	}
}

func TestNoSecondRetryOnRepeated401(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/validate" {
			w.WriteHeader(http.StatusOK) // token "valid", yet requests keep failing
			return
		}
		attempts.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, NewMemStore("tok"))

	err := c.Get(context.Background(), "/api/dashboard/home", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("error: got %v, want *HTTPError with status 401", err)
	}
	if got := attempts.Load(); got != 2 {
		t.Errorf("request attempts: got %d, want exactly 2 (no retry loop)", got)
	}
}

func TestFailedRefreshClearsTokenAndReportsAuthRequired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Both the request and the validation reject the token.
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := NewMemStore("expired")
	c := New(srv.URL, store)

	err := c.Get(context.Background(), "/api/dashboard/messages", nil)
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("error: got %v, want ErrAuthRequired", err)
	}
	if tok, _ := store.Token(); tok != "" {
		t.Errorf("token: got %q, want cleared", tok)
	}
}

func TestNetworkErrorPreservesToken(t *testing.T) {
	// A server that is already closed: connections are refused, so the
	// request fails before any HTTP response exists.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	store := NewMemStore("abc")
	c := New(srv.URL, store)

	err := c.Get(context.Background(), "/x", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error: got %T, want *NetworkError", err)
	}
	if !strings.Contains(err.Error(), "network error") {
		t.Errorf("message: got %q, want it to mention the network", err.Error())
	}
	if tok, _ := store.Token(); tok != "abc" {
		t.Errorf("token: got %q, want preserved %q", tok, "abc")
	}
}

func TestErrorMessagePrefersJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "course not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, NewMemStore(""))

	err := c.Get(context.Background(), "/api/courses/nope", nil, WithoutAuth())
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "course not found" {
		t.Errorf("message: got %q, want the body's error field", err.Error())
	}
}

func TestErrorMessageFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream broke</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, NewMemStore(""))

	err := c.Get(context.Background(), "/api/blog", nil, WithoutAuth())
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "HTTP 502: Bad Gateway" {
		t.Errorf("message: got %q, want %q", err.Error(), "HTTP 502: Bad Gateway")
	}
}

func TestValidateOutageKeepsToken(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/validate" {
			// Backend trouble, not a verdict on the token.
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := NewMemStore("keep-me")
	c := New(srv.URL, store)

	// The 401 triggers a refresh; the validation 500 is indeterminate, so
	// the existing token is treated as usable and the request retried.
	if err := c.Get(context.Background(), "/api/dashboard/home", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if tok, _ := store.Token(); tok != "keep-me" {
		t.Errorf("token: got %q, want preserved %q", tok, "keep-me")
	}
}

func TestConcurrentRefreshIsSingleFlight(t *testing.T) {
	var validations atomic.Int32
	release := make(chan struct{})
	var arrived sync.WaitGroup
	arrived.Add(2)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/validate":
			validations.Add(1)
			// Stay in flight long enough for every waiter to join.
			time.Sleep(100 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		case "/slow":
			// Hold both first attempts until each has arrived, so the two
			// refreshes overlap.
			arrived.Done()
			<-release
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL, NewMemStore("tok"))

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// A second 401 lands the retry on /slow again; don't care
			// about the final outcome here, only the validation count.
			c.Get(context.Background(), "/slow", nil)
		}()
	}

	arrived.Wait()
	close(release)
	wg.Wait()

	if got := validations.Load(); got != 1 {
		t.Errorf("validation calls: got %d, want 1 (single-flight)", got)
	}
}

func TestNonJSONSuccessReturnsRawText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("pong"))
	}))
	defer srv.Close()

	c := New(srv.URL, NewMemStore(""))

	var out string
	if err := c.Get(context.Background(), "/ping", &out, WithoutAuth()); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out != "pong" {
		t.Errorf("body: got %q, want %q", out, "pong")
	}
}

func TestAbsoluteURLBypassesBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"here": true}`))
	}))
	defer srv.Close()

	// Base URL points somewhere unreachable; the absolute endpoint wins.
	c := New("http://127.0.0.1:1", NewMemStore(""))

	var out struct {
		Here bool `json:"here"`
	}
	if err := c.Get(context.Background(), srv.URL+"/absolute", &out, WithoutAuth()); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !out.Here {
		t.Error("absolute URL was not used as-is")
	}
}
