package ratelimit

import (
	"testing"
	"time"
)

func TestLimiter_BurstThenRefill(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := New(time.Minute, 2)
	l.now = func() time.Time { return clock }

	for i := 0; i < 2; i++ {
		if !l.Allow("admin@test.com") {
			t.Fatalf("call %d denied inside burst", i+1)
		}
	}
	if l.Allow("admin@test.com") {
		t.Fatal("third call allowed past burst")
	}
	if !l.Allow("other@test.com") {
		t.Error("other key should have its own bucket")
	}

	clock = clock.Add(time.Minute)
	if !l.Allow("admin@test.com") {
		t.Error("token not refilled after interval")
	}
}

func TestLimiter_Reset(t *testing.T) {
	l := New(time.Hour, 1)
	if !l.Allow("k") {
		t.Fatal("first call denied")
	}
	if l.Allow("k") {
		t.Fatal("second call allowed")
	}
	l.Reset("k")
	if !l.Allow("k") {
		t.Error("call denied after reset")
	}
}

func TestLimiter_SweepsIdleKeys(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := New(time.Second, 1)
	l.now = func() time.Time { return clock }

	l.Allow("a")
	clock = clock.Add(time.Minute)
	l.Allow("b")

	if _, ok := l.keys["a"]; ok {
		t.Error("idle key a was not swept")
	}
	if len(l.keys) != 1 {
		t.Errorf("keys = %d, want 1", len(l.keys))
	}
}

func TestNilLimiterAllows(t *testing.T) {
	var l *Limiter
	if New(time.Second, 0) != nil {
		t.Fatal("zero burst should disable the limiter")
	}
	for i := 0; i < 5; i++ {
		if !l.Allow("k") {
			t.Fatal("nil limiter denied")
		}
	}
	l.Reset("k")
}
