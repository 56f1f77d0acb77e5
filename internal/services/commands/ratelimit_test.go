package commands

import (
	"testing"
	"time"
)

func TestNickLimiter_PerNick(t *testing.T) {
	l := NewNickLimiter(RateLimitConfig{CommandsPerSec: 1, Burst: 2})
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if !l.AllowAt("Alice", now) || !l.AllowAt("alice", now) {
		t.Fatal("burst should allow two commands")
	}
	if l.AllowAt("ALICE", now) {
		t.Error("third command in the same instant should be dropped")
	}
	if !l.AllowAt("bob", now) {
		t.Error("bob has his own bucket")
	}
	if !l.AllowAt("alice", now.Add(time.Second)) {
		t.Error("bucket should refill after a second")
	}
}

func TestNickLimiter_Defaults(t *testing.T) {
	l := NewNickLimiter(RateLimitConfig{})
	if l.config.CommandsPerSec != 1 || l.config.Burst != 3 {
		t.Errorf("unexpected defaults %+v", l.config)
	}
}

func TestNickLimiter_Cleanup(t *testing.T) {
	l := NewNickLimiter(RateLimitConfig{CommandsPerSec: 1, Burst: 1})
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	l.AllowAt("alice", now)
	l.AllowAt("bob", now.Add(time.Minute))

	l.Cleanup(now.Add(time.Minute))

	if l.Len() != 1 {
		t.Errorf("expected only bob to remain, got %d nicks", l.Len())
	}
}
