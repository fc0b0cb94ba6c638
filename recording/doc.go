// Package recording captures canvas drawing operations as a typed command
// log and encodes that log for an external renderer.
//
// # Architecture
//
// The package has three parts:
//
//   - Command: one struct per canvas operation or property (FillRectCommand,
//     ArcCommand, FontCommand, ...), each flattening to positional numeric
//     and string operands
//   - Recorder: the command log of a drawing pass, one method per canvas
//     call; Drain encodes the log and empties it
//   - Encoder: writes a log as a JSON array of {"type","n","s"} objects
//
// Delivery to the renderer goes through a Sink, created by name from a
// registry in the style of database/sql drivers.
//
// # Basic Usage
//
//	rec := recording.NewRecorder()
//
//	rec.SetFillStyle("steelblue")
//	rec.FillRect(10, 10, 200, 100)
//
//	rec.CreateLinearGradient(0, 0, 200, 0)
//	_ = rec.AddColorStop(0, "white")
//	_ = rec.AddColorStop(1, "black")
//	rec.SetFillStyle("") // apply the gradient
//
//	rec.BeginPath()
//	rec.ArcDegrees(100, 100, 50, 0, 180, false)
//	rec.Fill()
//
//	payload, err := rec.Drain()
//
// # Wire Schema
//
// Each operation has a fixed operand layout. A few examples:
//
//	fillRect      n=[x, y, width, height]          s=[]
//	arc           n=[x, y, r, start, end]          s=["true"|"false"]
//	fillText      n=[x, y, maxWidth]               s=[text]
//	createPattern n=[]                             s=[elementID, "repeat-x"]
//	lineCap       n=[]                             s=["round"]
//	lineWidth     n=[width]                        s=[]
//
// A maxWidth of -1 (UnboundedWidth) means no limit. Gradients are defined
// by a create call, any number of addColorStop records, then a fillStyle or
// strokeStyle of "" which applies them; the renderer enforces that order.
//
// # Sinks
//
//	import _ "github.com/gogpu/fastcanvas/recording/sinks/writer"
//
//	sink, _ := recording.NewSink("stdout", "")
//	err := recording.Flush(ctx, rec, sink)
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use; confine each Recorder to one
// drawing pass on one goroutine. Commands are immutable values. The sink
// registry is safe for concurrent use.
package recording
