//go:build js && wasm

// Package js provides a sink for programs compiled to WebAssembly that
// hands each payload to a JavaScript function on the page.
//
// Importing the package registers the "js" sink. Its target names a global
// function; an empty target means "fastCanvasDraw":
//
//	import _ "github.com/gogpu/fastcanvas/recording/sinks/js"
//
//	sink, _ := recording.NewSink("js", "")
//
// The function receives the payload as a single string argument.
package js

import (
	"context"
	"fmt"
	"sync/atomic"
	"syscall/js"

	"github.com/gogpu/fastcanvas/recording"
)

// DefaultFunc is the global function called when no target is given.
const DefaultFunc = "fastCanvasDraw"

func init() {
	recording.Register("js", func(fn string) (recording.Sink, error) {
		return New(fn), nil
	})
}

// Sink calls a global JavaScript function with each payload.
type Sink struct {
	fn     string
	closed atomic.Bool
}

var _ recording.Sink = (*Sink)(nil)

// New creates a sink calling the global function fn.
func New(fn string) *Sink {
	if fn == "" {
		fn = DefaultFunc
	}
	return &Sink{fn: fn}
}

// Deliver invokes the function synchronously. A JavaScript exception is
// returned as an error.
func (s *Sink) Deliver(ctx context.Context, payload []byte) (err error) {
	if s.closed.Load() {
		return recording.ErrSinkClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f := js.Global().Get(s.fn)
	if f.Type() != js.TypeFunction {
		return fmt.Errorf("js: %s is not a function", s.fn)
	}

	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = fmt.Errorf("js: %s: %w", s.fn, jsErr)
				return
			}
			panic(r)
		}
	}()
	f.Invoke(string(payload))
	return nil
}

// Close marks the sink closed.
func (s *Sink) Close() error {
	s.closed.Store(true)
	return nil
}
