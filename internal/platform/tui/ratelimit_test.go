package tui

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tcpAddr(host string, port int) net.Addr {
	return &net.TCPAddr{IP: net.ParseIP(host), Port: port}
}

func TestHostLimiterBurst(t *testing.T) {
	lim := newHostLimiter(1, 2)

	assert.True(t, lim.Allow(tcpAddr("10.0.0.1", 5000)))
	assert.True(t, lim.Allow(tcpAddr("10.0.0.1", 5001)), "port does not matter")
	assert.False(t, lim.Allow(tcpAddr("10.0.0.1", 5002)))

	assert.True(t, lim.Allow(tcpAddr("10.0.0.2", 5000)), "hosts are limited separately")
}

func TestHostLimiterDisabled(t *testing.T) {
	lim := newHostLimiter(0, 0)
	assert.Nil(t, lim)
	for range 100 {
		assert.True(t, lim.Allow(tcpAddr("10.0.0.1", 5000)))
	}
}

func TestRemoteHost(t *testing.T) {
	assert.Equal(t, "10.0.0.1", remoteHost(tcpAddr("10.0.0.1", 22)))
	assert.Equal(t, "::1", remoteHost(tcpAddr("::1", 22)))
	assert.Equal(t, "", remoteHost(nil))
}
