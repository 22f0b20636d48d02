package engine

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestCacheKey(t *testing.T) {
	a := CacheKey("resume text", "jd text")
	b := CacheKey("resume text", "jd text")
	if a != b {
		t.Errorf("CacheKey not deterministic: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "ats:") {
		t.Errorf("CacheKey missing namespace prefix: %q", a)
	}
	if c := CacheKey("resume text", "other jd"); c == a {
		t.Error("CacheKey collision for different inputs")
	}
	// Part boundaries matter: ("ab","c") must not equal ("a","bc").
	if CacheKey("ab", "c") == CacheKey("a", "bc") {
		t.Error("CacheKey ignores part boundaries")
	}
}

func TestCacheGetSet(t *testing.T) {
	InitCache("", time.Minute, 100, time.Minute)
	ctx := context.Background()

	key := CacheKey("get-set-test")
	if _, ok := CacheGet(ctx, key); ok {
		t.Fatal("unexpected hit before set")
	}

	want := []byte(`{"score":72}`)
	CacheSet(ctx, key, want)
	got, ok := CacheGet(ctx, key)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(got) != string(want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCacheExpiry(t *testing.T) {
	InitCache("", 10*time.Millisecond, 100, time.Minute)
	ctx := context.Background()

	key := CacheKey("expiry-test")
	CacheSet(ctx, key, []byte("x"))
	time.Sleep(30 * time.Millisecond)
	if _, ok := CacheGet(ctx, key); ok {
		t.Error("expected miss after TTL")
	}
}

func TestCacheStatsCount(t *testing.T) {
	InitCache("", time.Minute, 100, time.Minute)
	ctx := context.Background()

	h0, m0 := CacheStats()
	CacheGet(ctx, CacheKey("stats-miss"))
	key := CacheKey("stats-hit")
	CacheSet(ctx, key, []byte("y"))
	CacheGet(ctx, key)

	h1, m1 := CacheStats()
	if h1-h0 != 1 {
		t.Errorf("hits delta = %d, want 1", h1-h0)
	}
	if m1-m0 != 1 {
		t.Errorf("misses delta = %d, want 1", m1-m0)
	}
}
