package commands

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type RateLimitConfig struct {
	CommandsPerSec float64
	Burst          int
}

// NickLimiter hands every nick its own token bucket.
type NickLimiter struct {
	config RateLimitConfig
	nicks  map[string]*rate.Limiter
	mu     sync.RWMutex
}

func NewNickLimiter(config RateLimitConfig) *NickLimiter {
	if config.CommandsPerSec <= 0 {
		config.CommandsPerSec = 1
	}
	if config.Burst <= 0 {
		config.Burst = 3
	}
	return &NickLimiter{
		config: config,
		nicks:  make(map[string]*rate.Limiter),
	}
}

func (l *NickLimiter) Allow(nick string) bool {
	return l.AllowAt(nick, time.Now())
}

func (l *NickLimiter) AllowAt(nick string, now time.Time) bool {
	return l.getLimiter(strings.ToLower(nick)).AllowN(now, 1)
}

func (l *NickLimiter) getLimiter(nick string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.nicks[nick]
	l.mu.RUnlock()
	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if limiter, exists = l.nicks[nick]; !exists {
		limiter = rate.NewLimiter(rate.Limit(l.config.CommandsPerSec), l.config.Burst)
		l.nicks[nick] = limiter
	}
	return limiter
}

// Cleanup forgets nicks whose bucket has refilled.
func (l *NickLimiter) Cleanup(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for nick, limiter := range l.nicks {
		if limiter.TokensAt(now) >= float64(l.config.Burst) {
			delete(l.nicks, nick)
		}
	}
}

func (l *NickLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.nicks)
}
