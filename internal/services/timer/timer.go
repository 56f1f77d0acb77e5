package timer

import (
	"sync"
	"time"
)

// RepeatedTimer calls function every interval on its own goroutine until
// stopped.
type RepeatedTimer struct {
	mu        sync.Mutex
	interval  time.Duration
	function  func(now time.Time)
	stopChan  chan struct{}
	done      chan struct{}
	isRunning bool
}

func NewRepeatedTimer(interval time.Duration, function func(now time.Time)) *RepeatedTimer {
	return &RepeatedTimer{
		interval: interval,
		function: function,
	}
}

func (rt *RepeatedTimer) Start() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.isRunning {
		return
	}

	rt.isRunning = true
	rt.stopChan = make(chan struct{})
	rt.done = make(chan struct{})
	go rt.loop(rt.stopChan, rt.done)
}

func (rt *RepeatedTimer) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(rt.interval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			rt.function(now)
		case <-stop:
			return
		}
	}
}

// Stop halts the timer and waits for a running call to finish.
func (rt *RepeatedTimer) Stop() {
	rt.mu.Lock()
	if !rt.isRunning {
		rt.mu.Unlock()
		return
	}
	rt.isRunning = false
	close(rt.stopChan)
	done := rt.done
	rt.mu.Unlock()

	<-done
}

func (rt *RepeatedTimer) IsRunning() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.isRunning
}
