// Package writer provides sinks that write payloads to an io.Writer, one
// payload per line (JSON Lines).
//
// Importing the package registers three sinks:
//
//	"stdout"  writes to standard output; the target is ignored
//	"stderr"  writes to standard error; the target is ignored
//	"file"    appends to the file named by the target, creating it if needed
//
// # Example
//
//	import _ "github.com/gogpu/fastcanvas/recording/sinks/writer"
//
//	sink, _ := recording.NewSink("file", "frames.jsonl")
//	defer sink.Close()
//	err := recording.Flush(ctx, rec, sink)
//
// A renderer that tails the file replays one line per frame.
package writer

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/gogpu/fastcanvas/recording"
)

func init() {
	recording.Register("stdout", func(string) (recording.Sink, error) {
		return New(nopCloser{os.Stdout}), nil
	})
	recording.Register("stderr", func(string) (recording.Sink, error) {
		return New(nopCloser{os.Stderr}), nil
	})
	recording.Register("file", func(path string) (recording.Sink, error) {
		return OpenFile(path)
	})
}

// Sink writes each delivered payload followed by a newline.
// It is safe for concurrent use; payloads never interleave.
type Sink struct {
	mu     sync.Mutex
	w      io.WriteCloser
	closed bool
}

var _ recording.Sink = (*Sink)(nil)

// New creates a sink writing to w. Close closes w.
func New(w io.WriteCloser) *Sink {
	return &Sink{w: w}
}

// OpenFile creates a sink appending to the named file.
func OpenFile(path string) (*Sink, error) {
	if path == "" {
		return nil, errors.New("writer: empty file path")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return New(f), nil
}

// Deliver writes payload and a trailing newline in one write.
func (s *Sink) Deliver(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	line := make([]byte, 0, len(payload)+1)
	line = append(line, payload...)
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return recording.ErrSinkClosed
	}
	_, err := s.w.Write(line)
	return err
}

// Close closes the underlying writer. Closing twice is a no-op.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.w.Close()
}

// nopCloser keeps the process-wide standard streams open.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
