// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "resp:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestNilResponseCacheIsSafe(t *testing.T) {
	var rc *ResponseCache
	ctx := context.Background()

	if _, ok := rc.Get(ctx, KeyHome); ok {
		t.Error("nil cache reported a hit")
	}
	// None of these may panic.
	rc.Set(ctx, KeyHome, []byte(`{}`))
	rc.Invalidate(ctx, KeyHome, KeyCourses)
	rc.InvalidateAll(ctx)
}

func TestResponseCacheRoundTrip(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResponseCache(client, time.Minute)
	ctx := context.Background()

	if _, ok := rc.Get(ctx, KeyCourses); ok {
		t.Error("expected miss on empty cache")
	}

	body := []byte(`[{"id":"c1"}]`)
	rc.Set(ctx, KeyCourses, body)

	got, ok := rc.Get(ctx, KeyCourses)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(got) != string(body) {
		t.Errorf("body: got %q, want %q", got, body)
	}
}

func TestResponseCacheInvalidate(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResponseCache(client, time.Minute)
	ctx := context.Background()

	rc.Set(ctx, KeyHome, []byte(`{}`))
	rc.Set(ctx, PostKey("intro"), []byte(`{}`))

	rc.Invalidate(ctx, KeyHome)
	if _, ok := rc.Get(ctx, KeyHome); ok {
		t.Error("invalidated key still present")
	}
	if _, ok := rc.Get(ctx, PostKey("intro")); !ok {
		t.Error("unrelated key was dropped")
	}
}

func TestResponseCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResponseCache(client, time.Minute)
	ctx := context.Background()

	rc.Set(ctx, KeyCourses, []byte(`[]`))
	rc.Set(ctx, KeyPosts, []byte(`[]`))
	rc.Set(ctx, CourseKey("c1"), []byte(`{}`))

	rc.InvalidateAll(ctx)

	for _, key := range []string{KeyCourses, KeyPosts, CourseKey("c1")} {
		if _, ok := rc.Get(ctx, key); ok {
			t.Errorf("key %s survived InvalidateAll", key)
		}
	}
}
