package recording

import (
	"fmt"
	"sort"
	"sync"
)

// SinkFactory creates a sink for a target. The meaning of target is up to
// the sink: a file path, a listen address, a JS function name.
type SinkFactory func(target string) (Sink, error)

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	sinks      = make(map[string]SinkFactory)
)

// Register registers a sink factory with the given name.
// This function is typically called from init() in sink packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    recording.Register("websocket", func(addr string) (recording.Sink, error) {
//	        return Listen(addr)
//	    })
//	}
//
// Register panics if factory is nil or the name is already registered.
func Register(name string, factory SinkFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := sinks[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	sinks[name] = factory
}

// Unregister removes a sink from the registry.
// This is primarily useful for testing to clean up between tests.
// If the sink is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(sinks, name)
}

// NewSink creates a sink by name for the given target.
//
// Example:
//
//	import _ "github.com/gogpu/fastcanvas/recording/sinks/writer"
//
//	sink, err := recording.NewSink("file", "frames.jsonl")
//
// Returns an error wrapping ErrUnknownSink if the name is not registered,
// or the factory's error.
func NewSink(name, target string) (Sink, error) {
	registryMu.RLock()
	factory, ok := sinks[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownSink, name)
	}
	s, err := factory(target)
	if err != nil {
		return nil, fmt.Errorf("recording: open %s sink %q: %w", name, target, err)
	}
	return s, nil
}

// MustSink is like NewSink but panics on error.
func MustSink(name, target string) Sink {
	s, err := NewSink(name, target)
	if err != nil {
		panic(err)
	}
	return s
}

// Sinks returns the sorted names of the registered sinks.
func Sinks() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(sinks))
	for name := range sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a sink with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := sinks[name]
	return ok
}
