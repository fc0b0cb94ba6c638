package recording

import "errors"

var (
	// ErrOutOfRange is returned when an argument lies outside its allowed
	// interval, such as a color stop offset outside [0, 1].
	ErrOutOfRange = errors.New("recording: argument out of range")

	// ErrNotImplemented is returned by operations the command log declares
	// but cannot answer, such as point-in-path hit testing.
	ErrNotImplemented = errors.New("recording: not implemented")

	// ErrUnsupportedNumber is returned when a command carries NaN or an
	// infinity, which the JSON payload cannot represent.
	ErrUnsupportedNumber = errors.New("recording: unsupported number")

	// ErrUnknownSink is returned by NewSink for unregistered names.
	ErrUnknownSink = errors.New("recording: unknown sink")

	// ErrSinkClosed is returned when delivering to a closed sink.
	ErrSinkClosed = errors.New("recording: sink closed")
)
