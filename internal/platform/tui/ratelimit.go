package tui

import (
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// hostLimiter limits new connections per remote host.
type hostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    time.Duration
	burst    int
}

// newHostLimiter allows perMinute connections per host, with bursts of up
// to burst. A non-positive perMinute disables limiting.
func newHostLimiter(perMinute, burst int) *hostLimiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &hostLimiter{
		limiters: make(map[string]*rate.Limiter),
		every:    time.Minute / time.Duration(perMinute),
		burst:    burst,
	}
}

// getLimiter returns the limiter for a host, creating it on first use.
func (h *hostLimiter) getLimiter(host string) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()
	if lim, ok := h.limiters[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Every(h.every), h.burst)
	h.limiters[host] = lim
	return lim
}

// Allow reports whether a new connection from addr may proceed.
func (h *hostLimiter) Allow(addr net.Addr) bool {
	if h == nil {
		return true
	}
	return h.getLimiter(remoteHost(addr)).Allow()
}

// remoteHost strips the port from a remote address.
func remoteHost(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
