package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fastcanvas/recording"
)

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func readText(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	typ, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, typ)
	return string(msg)
}

func TestHubRegistration(t *testing.T) {
	assert.True(t, recording.IsRegistered("websocket"))
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	a := dial(t, wsURL(srv))
	b := dial(t, wsURL(srv))
	require.Eventually(t, func() bool { return hub.Clients() == 2 }, 5*time.Second, 10*time.Millisecond)

	rec := recording.NewRecorder()
	rec.FillRect(1, 2, 3, 4)
	require.NoError(t, recording.Flush(context.Background(), rec, hub))

	want := `[{"type":"fillRect","n":[1,2,3,4],"s":[]}]`
	assert.Equal(t, want, readText(t, a))
	assert.Equal(t, want, readText(t, b))
}

func TestHubReplaysLastPayload(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	require.NoError(t, hub.Deliver(context.Background(), []byte(`[{"type":"fill","n":[],"s":[]}]`)))
	require.NoError(t, hub.Deliver(context.Background(), []byte(`[]`)))

	conn := dial(t, wsURL(srv))
	assert.Equal(t, `[]`, readText(t, conn))
}

func TestHubSlowReplayDoesNotBlockHub(t *testing.T) {
	hub := NewHub(WithWriteTimeout(10 * time.Second))
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	// Large enough to fill the socket buffers of a renderer that never reads.
	big := []byte(`"` + strings.Repeat("x", 64<<20) + `"`)
	require.NoError(t, hub.Deliver(context.Background(), big))

	conn := dial(t, wsURL(srv))

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 3*time.Second, 10*time.Millisecond,
		"Clients() blocked behind the replay write")

	_ = conn.Close()
}

func TestHubWithoutReplay(t *testing.T) {
	hub := NewHub(WithReplayLast(false))
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	require.NoError(t, hub.Deliver(context.Background(), []byte(`[1]`)))

	conn := dial(t, wsURL(srv))
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 5*time.Second, 10*time.Millisecond)
	require.NoError(t, hub.Deliver(context.Background(), []byte(`[2]`)))
	assert.Equal(t, `[2]`, readText(t, conn))
}

func TestHubDeliverWithoutClients(t *testing.T) {
	hub := NewHub()
	defer hub.Close()
	assert.NoError(t, hub.Deliver(context.Background(), []byte(`[]`)))
}

func TestHubDisconnect(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, wsURL(srv))
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestHubClose(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, wsURL(srv))
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Close())
	require.NoError(t, hub.Close())
	assert.Zero(t, hub.Clients())

	err := hub.Deliver(context.Background(), []byte(`[]`))
	assert.ErrorIs(t, err, recording.ErrSinkClosed)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}

func TestHubCanceledContext(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, hub.Deliver(ctx, []byte(`[]`)), context.Canceled)
}

func TestListen(t *testing.T) {
	page := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("renderer"))
	})
	hub, err := Listen("127.0.0.1:0", WithPath("/draw"), WithFallback(page))
	require.NoError(t, err)
	defer hub.Close()
	require.NotNil(t, hub.Addr())

	base := "http://" + hub.Addr().String()
	resp, err := http.Get(base + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	conn := dial(t, "ws://"+hub.Addr().String()+"/draw")
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 5*time.Second, 10*time.Millisecond)
	require.NoError(t, hub.Deliver(context.Background(), []byte(`[]`)))
	assert.Equal(t, `[]`, readText(t, conn))
}

func TestNewHubOptions(t *testing.T) {
	hub := NewHub(WithPath(""), WithWriteTimeout(0))
	assert.Equal(t, "/ws", hub.opts.path)
	assert.Equal(t, 5*time.Second, hub.opts.writeTimeout)
	assert.Nil(t, hub.Addr())

	hub = NewHub(WithPath("/frames"), WithWriteTimeout(time.Second))
	assert.Equal(t, "/frames", hub.opts.path)
	assert.Equal(t, time.Second, hub.opts.writeTimeout)
}
