package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fastcanvas/recording"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := parseArgs(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestParseArgsConfigFile(t *testing.T) {
	path := writeConfig(t, `
sink = "file"
target = "out.jsonl"
width = 320
height = 240
frames = 3
interval_ms = 10
title = "hello"
background = "teal"
verbose = true
`)
	cfg, err := parseArgs([]string{"-config", path}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Sink:       "file",
		Target:     "out.jsonl",
		Width:      320,
		Height:     240,
		Frames:     3,
		IntervalMS: 10,
		Title:      "hello",
		Background: "teal",
		Verbose:    true,
	}, cfg)
}

func TestParseArgsFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, "width = 320\nframes = 3\n")
	cfg, err := parseArgs([]string{"-config", path, "-width", "640"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 3, cfg.Frames)
	assert.Equal(t, 600, cfg.Height)
}

func TestParseArgsWebsocketDefaultTarget(t *testing.T) {
	cfg, err := parseArgs([]string{"-sink", "websocket"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Target)
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		body string
	}{
		{"unknown key", nil, "colour = \"red\"\n"},
		{"bad type", nil, "width = \"wide\"\n"},
		{"negative frames", []string{"-frames", "-1"}, ""},
		{"zero width", []string{"-width", "0"}, ""},
		{"empty sink", []string{"-sink", ""}, ""},
		{"unknown flag", []string{"-nope"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.body != "" {
				args = append([]string{"-config", writeConfig(t, tt.body)}, args...)
			}
			_, err := parseArgs(args, io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg := defaultConfig()
	err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), &cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDrawScene(t *testing.T) {
	rec := recording.NewRecorder()
	require.NoError(t, drawScene(rec, defaultConfig(), 0))

	payload, err := rec.Drain()
	require.NoError(t, err)

	var cmds []struct {
		Type string    `json:"type"`
		N    []float64 `json:"n"`
		S    []string  `json:"s"`
	}
	require.NoError(t, json.Unmarshal(payload, &cmds))
	require.NotEmpty(t, cmds)

	assert.Equal(t, "setTransform", cmds[0].Type)
	assert.Equal(t, []float64{1, 0, 0, 1, 0, 0}, cmds[0].N)
	assert.Equal(t, "clearRect", cmds[1].Type)
	assert.Equal(t, []float64{0, 0, 800, 600}, cmds[1].N)

	seen := make(map[string]bool)
	for _, c := range cmds {
		seen[c.Type] = true
	}
	for _, typ := range []string{
		"createLinearGradient", "createRadialGradient", "addColorStop",
		"arc", "arcTo", "bezierCurveTo", "quadraticCurveTo",
		"createPattern", "fillText", "strokeText", "measureText", "direction",
	} {
		assert.True(t, seen[typ], "scene has no %s", typ)
	}
}

func TestDrawSceneCircleColors(t *testing.T) {
	rec := recording.NewRecorder()
	require.NoError(t, drawScene(rec, defaultConfig(), 0))

	var fills []string
	for _, c := range rec.Commands() {
		if f, ok := c.(recording.FillStyleCommand); ok {
			fills = append(fills, f.Style)
		}
	}
	for _, want := range []string{
		"rgba(255, 99, 71, 0.8)",  // tomato
		"rgba(50, 205, 50, 0.8)",  // limegreen
		"rgba(30, 144, 255, 0.8)", // dodgerblue
	} {
		assert.Contains(t, fills, want)
	}
}

func TestDrawSpinnerReturnsToPageSpace(t *testing.T) {
	const cx, cy, frame = 600.0, 180.0, 5.0
	m := spinnerMatrix(cx, cy, frame)

	rec := recording.NewRecorder()
	drawSpinner(rec, cx, cy, frame)
	cmds := rec.Commands()

	first, ok := cmds[0].(recording.TransformCommand)
	require.True(t, ok, "first command is %s, want transform", cmds[0].Type())
	assert.Equal(t, m, first.Matrix)

	var transforms []recording.TransformCommand
	var marker recording.ArcCommand
	for _, c := range cmds {
		switch c := c.(type) {
		case recording.TransformCommand:
			transforms = append(transforms, c)
		case recording.ArcCommand:
			marker = c
		}
	}
	require.Len(t, transforms, 2)
	undo := transforms[1].Matrix
	assert.Equal(t, m.Invert(), undo)
	assert.True(t, m.Multiply(undo).IsIdentity())

	tipX, tipY := m.TransformPoint(0, 40)
	assert.InDelta(t, tipX, marker.X, 1e-9)
	assert.InDelta(t, tipY, marker.Y, 1e-9)
	assert.Equal(t, 4.0, marker.Radius)
}

func TestDrawSceneUnknownBackground(t *testing.T) {
	cfg := defaultConfig()
	cfg.Background = "no-such-color"
	rec := recording.NewRecorder()
	require.NoError(t, drawScene(rec, cfg, 0))

	found := false
	for _, c := range rec.Commands() {
		if stop, ok := c.(recording.AddColorStopCommand); ok && stop.Offset == 0 {
			assert.Equal(t, "#000000", stop.Color)
			found = true
		}
	}
	assert.True(t, found)
}

func TestAnimateFrames(t *testing.T) {
	cfg := defaultConfig()
	cfg.Frames = 3
	cfg.IntervalMS = 1

	var payloads []string
	sink := recording.SinkFunc(func(_ context.Context, p []byte) error {
		payloads = append(payloads, string(p))
		return nil
	})
	require.NoError(t, animate(context.Background(), cfg, sink))
	require.Len(t, payloads, 3)
	for _, p := range payloads {
		assert.True(t, strings.HasPrefix(p, `[{"type":"setTransform"`))
	}
	assert.NotEqual(t, payloads[0], payloads[1])
}

func TestAnimateStopsOnCancel(t *testing.T) {
	cfg := defaultConfig()
	cfg.Frames = 0
	cfg.IntervalMS = 1

	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	sink := recording.SinkFunc(func(context.Context, []byte) error {
		n++
		if n == 2 {
			cancel()
		}
		return nil
	})
	require.NoError(t, animate(ctx, cfg, sink))
	assert.GreaterOrEqual(t, n, 2)
}

func TestRunFileSink(t *testing.T) {
	cfg := defaultConfig()
	cfg.Sink = "file"
	cfg.Target = filepath.Join(t.TempDir(), "frames.jsonl")
	cfg.Frames = 2
	cfg.IntervalMS = 1

	require.NoError(t, run(context.Background(), cfg))

	data, err := os.ReadFile(cfg.Target)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), 2)
}

func TestWebFilesEmbedded(t *testing.T) {
	data, err := webFiles.ReadFile("web/index.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "fastCanvasDraw")
}
