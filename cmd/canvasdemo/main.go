// Command canvasdemo records an animated demo scene and delivers each
// frame through a named sink.
//
// Usage:
//
//	canvasdemo                                  # one frame as JSON on stdout
//	canvasdemo -sink file -target frames.jsonl -frames 10
//	canvasdemo -sink websocket -target :8080 -frames 0
//	canvasdemo -config demo.toml -v
//
// With the websocket sink the command also serves a page at the listen
// address that connects back and replays every frame onto an HTML canvas.
package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/fastcanvas"
	"github.com/gogpu/fastcanvas/recording"
	"github.com/gogpu/fastcanvas/recording/sinks/websocket"
	_ "github.com/gogpu/fastcanvas/recording/sinks/writer"
)

//go:embed web
var webFiles embed.FS

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "canvasdemo:", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	fastcanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fastcanvas.Logger().Error("canvasdemo failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config) error {
	sink, err := openSink(cfg)
	if err != nil {
		return err
	}
	defer sink.Close()

	return animate(ctx, cfg, sink)
}

// openSink opens the configured sink. The websocket sink also serves the
// renderer page.
func openSink(cfg Config) (recording.Sink, error) {
	if cfg.Sink != "websocket" {
		return recording.NewSink(cfg.Sink, cfg.Target)
	}
	page, err := fs.Sub(webFiles, "web")
	if err != nil {
		return nil, err
	}
	hub, err := websocket.Listen(cfg.Target, websocket.WithFallback(http.FileServer(http.FS(page))))
	if err != nil {
		return nil, err
	}
	fastcanvas.Logger().Info("open the renderer", "url", "http://"+hub.Addr().String()+"/")
	return hub, nil
}

// animate records and flushes frames until cfg.Frames have been sent, or
// until ctx is done when cfg.Frames is zero.
func animate(ctx context.Context, cfg Config, sink recording.Sink) error {
	rec := recording.NewRecorder(recording.WithCapacity(512))
	ticker := time.NewTicker(max(cfg.Interval(), time.Millisecond))
	defer ticker.Stop()

	for frame := 0; cfg.Frames == 0 || frame < cfg.Frames; frame++ {
		if err := drawScene(rec, cfg, frame); err != nil {
			return err
		}
		if err := recording.Flush(ctx, rec, sink); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if cfg.Frames != 0 && frame == cfg.Frames-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}
