package timer

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRepeatedTimer_Fires(t *testing.T) {
	var calls atomic.Int32
	rt := NewRepeatedTimer(5*time.Millisecond, func(time.Time) { calls.Add(1) })

	rt.Start()
	deadline := time.Now().Add(time.Second)
	for calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	rt.Stop()

	if calls.Load() < 3 {
		t.Fatalf("expected at least 3 calls, got %d", calls.Load())
	}

	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != after {
		t.Errorf("timer kept firing after Stop: %d -> %d", after, calls.Load())
	}
}

func TestRepeatedTimer_StartStopIdempotent(t *testing.T) {
	rt := NewRepeatedTimer(time.Hour, func(time.Time) {})

	rt.Stop()
	rt.Start()
	rt.Start()
	if !rt.IsRunning() {
		t.Fatal("timer should be running")
	}
	rt.Stop()
	rt.Stop()
	if rt.IsRunning() {
		t.Fatal("timer should be stopped")
	}

	// restart after stop
	rt.Start()
	defer rt.Stop()
	if !rt.IsRunning() {
		t.Error("timer should restart")
	}
}
