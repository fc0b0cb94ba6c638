// Package websocket provides a sink that broadcasts payloads to browser
// renderers over WebSocket connections.
//
// Importing the package registers the "websocket" sink, whose target is the
// listen address:
//
//	import _ "github.com/gogpu/fastcanvas/recording/sinks/websocket"
//
//	sink, err := recording.NewSink("websocket", "localhost:8080")
//
// Renderers connect to ws://localhost:8080/ws and receive every payload as
// one text message. A renderer that connects late gets the last payload
// first, so it can draw the current frame without waiting for the next one.
//
// Hub also implements http.Handler and can be mounted on an existing mux.
package websocket

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gogpu/fastcanvas"
	"github.com/gogpu/fastcanvas/recording"
)

func init() {
	recording.Register("websocket", func(addr string) (recording.Sink, error) {
		return Listen(addr)
	})
}

// Hub fans payloads out to every connected renderer.
type Hub struct {
	opts hubOptions

	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte
	closed  bool

	server   *http.Server
	listener net.Listener
}

var (
	_ recording.Sink = (*Hub)(nil)
	_ http.Handler   = (*Hub)(nil)
)

// client serializes writes to one connection.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(deadline time.Time, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

// NewHub creates a hub without a server. Mount it with http.Handle.
func NewHub(opts ...Option) *Hub {
	o := defaultHubOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Hub{
		opts:    o,
		clients: make(map[*client]struct{}),
	}
}

// Listen creates a hub and serves it on addr. The websocket endpoint is at
// the configured path; other requests go to the fallback handler, if any.
func Listen(addr string, opts ...Option) (*Hub, error) {
	h := NewHub(opts...)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(h.opts.path, h)
	if h.opts.fallback != nil {
		mux.Handle("/", h.opts.fallback)
	}

	h.listener = ln
	h.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fastcanvas.Logger().Error("websocket: serve", "addr", ln.Addr().String(), "error", err)
		}
	}()

	fastcanvas.Logger().Info("websocket: listening", "addr", ln.Addr().String(), "path", h.opts.path)
	return h, nil
}

// Addr returns the listen address, or nil when the hub has no server.
func (h *Hub) Addr() net.Addr {
	if h.listener == nil {
		return nil
	}
	return h.listener.Addr()
}

// Clients returns the number of connected renderers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and keeps the renderer connected until it
// hangs up or the hub closes. Messages from the renderer are discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.opts.upgrader.Upgrade(w, r, nil)
	if err != nil {
		fastcanvas.Logger().Warn("websocket: upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	c := &client{conn: conn}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()
		return
	}
	var replay []byte
	if h.opts.replayLast {
		replay = h.last
	}
	// c.mu is taken before c becomes visible, so a concurrent Deliver
	// writes after the replay.
	c.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	if replay != nil {
		if err = c.conn.SetWriteDeadline(time.Now().Add(h.opts.writeTimeout)); err == nil {
			err = c.conn.WriteMessage(websocket.TextMessage, replay)
		}
	}
	c.mu.Unlock()
	if err != nil {
		fastcanvas.Logger().Warn("websocket: replay failed", "remote", conn.RemoteAddr().String(), "error", err)
		h.remove(c)
		return
	}

	remote := conn.RemoteAddr().String()
	fastcanvas.Logger().Info("websocket: renderer connected", "remote", remote, "clients", n)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	if h.remove(c) {
		fastcanvas.Logger().Info("websocket: renderer disconnected", "remote", remote)
	}
}

// remove drops c from the client set and closes it. It reports whether c
// was still registered.
func (h *Hub) remove(c *client) bool {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		_ = c.conn.Close()
	}
	return ok
}

// Deliver sends payload to every connected renderer. Renderers whose write
// fails are disconnected; Deliver itself only fails when the hub is closed
// or ctx is done.
func (h *Hub) Deliver(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := append([]byte(nil), payload...)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return recording.ErrSinkClosed
	}
	h.last = msg
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	deadline := time.Now().Add(h.opts.writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	for _, c := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.write(deadline, msg); err != nil {
			fastcanvas.Logger().Warn("websocket: dropping renderer",
				"remote", c.conn.RemoteAddr().String(), "error", err)
			h.remove(c)
		}
	}
	return nil
}

// Close disconnects every renderer and stops the server started by Listen.
// Closing twice is a no-op.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	clients := h.clients
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	bye := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	for c := range clients {
		c.mu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage, bye, time.Now().Add(time.Second))
		c.mu.Unlock()
		_ = c.conn.Close()
	}

	if h.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return h.server.Shutdown(ctx)
	}
	return nil
}
