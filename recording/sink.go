package recording

import (
	"context"
	"fmt"

	"github.com/gogpu/fastcanvas"
)

// Sink delivers encoded payloads to a renderer. A payload is one complete
// JSON command log as produced by Drain.
//
// Sinks are created via the registry using NewSink(name, target) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each sink must:
//  1. Register in init() using recording.Register()
//  2. Deliver each payload whole, in the order Deliver is called
//  3. Not retain the payload slice after Deliver returns
//  4. Return ErrSinkClosed (wrapped or not) from Deliver after Close
type Sink interface {
	// Deliver hands one payload to the renderer.
	Deliver(ctx context.Context, payload []byte) error

	// Close releases the sink's resources.
	Close() error
}

// SinkFunc adapts a function to the Sink interface. Close is a no-op.
type SinkFunc func(ctx context.Context, payload []byte) error

// Deliver calls f(ctx, payload).
func (f SinkFunc) Deliver(ctx context.Context, payload []byte) error {
	return f(ctx, payload)
}

// Close implements Sink.
func (f SinkFunc) Close() error { return nil }

// Flush drains rec and delivers the payload to sink. The log is empty
// afterwards even when delivery fails; the payload is then lost and the
// delivery error returned.
func Flush(ctx context.Context, rec *Recorder, sink Sink) error {
	payload, err := rec.Drain()
	if err != nil {
		return err
	}
	if err := sink.Deliver(ctx, payload); err != nil {
		fastcanvas.Logger().Warn("recording: delivery failed", "bytes", len(payload), "error", err)
		return fmt.Errorf("recording: deliver: %w", err)
	}
	return nil
}
