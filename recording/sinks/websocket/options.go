package websocket

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Option configures a Hub.
type Option func(*hubOptions)

type hubOptions struct {
	path         string
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	fallback     http.Handler
	replayLast   bool
}

func defaultHubOptions() hubOptions {
	return hubOptions{
		path:         "/ws",
		writeTimeout: 5 * time.Second,
		replayLast:   true,
	}
}

// WithPath sets the URL path renderers connect to. Default: "/ws".
func WithPath(path string) Option {
	return func(o *hubOptions) {
		if path != "" {
			o.path = path
		}
	}
}

// WithUpgrader replaces the default websocket.Upgrader, for example to
// relax CheckOrigin during development.
func WithUpgrader(u websocket.Upgrader) Option {
	return func(o *hubOptions) {
		o.upgrader = u
	}
}

// WithWriteTimeout bounds each per-client write. Default: 5s.
func WithWriteTimeout(d time.Duration) Option {
	return func(o *hubOptions) {
		if d > 0 {
			o.writeTimeout = d
		}
	}
}

// WithFallback serves h for every request outside the websocket path when
// the hub runs its own server via Listen. Use it to serve the renderer page.
func WithFallback(h http.Handler) Option {
	return func(o *hubOptions) {
		o.fallback = h
	}
}

// WithReplayLast controls whether a newly connected renderer immediately
// receives the most recent payload. Default: true.
func WithReplayLast(enabled bool) Option {
	return func(o *hubOptions) {
		o.replayLast = enabled
	}
}
