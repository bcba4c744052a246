package middleware

import (
	"testing"
)

func TestTokenBucketExhausts(t *testing.T) {
	// 3 tokens, effectively no refill within the test.
	bucket := NewTokenBucket(3, 0.0001)

	for i := 0; i < 3; i++ {
		if !bucket.Allow() {
			t.Fatalf("request %d should pass", i+1)
		}
	}
	if bucket.Allow() {
		t.Fatalf("bucket should be empty after 3 requests")
	}
}

func TestRateLimiterIsolatesKeys(t *testing.T) {
	rl := NewRateLimiter(1, 3600)

	if !rl.Allow("10.0.0.1") {
		t.Fatalf("first request for a key should pass")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatalf("second request for the same key should be limited")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatalf("a different key must have its own bucket")
	}
}
