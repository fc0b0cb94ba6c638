// Package fastcanvas records HTML canvas style 2D drawing operations and
// hands them to an external renderer as a compact JSON command log.
//
// # Overview
//
// Drawing code never touches a surface. It calls methods on a
// [recording.Recorder], which appends one typed command per call. When a
// drawing pass is complete the recorder is drained: the whole log is
// encoded in one payload and the log is emptied. The payload is delivered
// to a renderer (a browser page, a wasm host, a log file) which replays it.
//
// # Quick Start
//
//	import "github.com/gogpu/fastcanvas/recording"
//
//	rec := recording.NewRecorder()
//	rec.SetFillStyle("#336699")
//	rec.FillRect(10, 10, 100, 50)
//	rec.BeginPath()
//	rec.Circle(200, 60, 40)
//	rec.Stroke()
//
//	payload, err := rec.Drain()
//	// payload: [{"type":"fillStyle","n":[],"s":["#336699"]}, ...]
//
// # Wire Format
//
// A payload is a JSON array. Every element is an object with exactly three
// keys in this order:
//
//	{"type": "arc", "n": [100, 100, 50, 0, 3.141592653589793], "s": ["false"]}
//
// "type" names the canvas operation or property, "n" holds the numeric
// operands and "s" the string operands, both positional.
//
// # Delivery
//
// Payloads reach a renderer through a [recording.Sink]. Sinks are created
// by name from a registry, following the database/sql driver pattern:
//
//	import _ "github.com/gogpu/fastcanvas/recording/sinks/websocket"
//
//	sink, err := recording.NewSink("websocket", "localhost:8080")
//	err = recording.Flush(ctx, rec, sink)
//
// # Logging
//
// The library is silent by default. Call [SetLogger] to route its
// diagnostics to a [log/slog] handler.
package fastcanvas

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
