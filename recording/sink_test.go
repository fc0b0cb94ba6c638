package recording

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlushDeliversDrainedPayload(t *testing.T) {
	rec := NewRecorder()
	rec.FillRect(1, 2, 3, 4)
	sink := &mockSink{}

	require.NoError(t, Flush(context.Background(), rec, sink))
	require.Len(t, sink.payloads, 1)
	assert.Equal(t, `[{"type":"fillRect","n":[1,2,3,4],"s":[]}]`, string(sink.payloads[0]))
	assert.Equal(t, 0, rec.Len())

	require.NoError(t, Flush(context.Background(), rec, sink))
	assert.Equal(t, "[]", string(sink.payloads[1]))
}

func TestFlushDeliveryError(t *testing.T) {
	rec := NewRecorder()
	rec.Fill()
	boom := errors.New("renderer gone")
	sink := &mockSink{err: boom}

	err := Flush(context.Background(), rec, sink)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, rec.Len(), "log is drained even when delivery fails")
}

func TestFlushEncodeError(t *testing.T) {
	rec := NewRecorder()
	rec.Scale(1, 0)
	rec.Scale(math.NaN(), 1)
	sink := &mockSink{}

	err := Flush(context.Background(), rec, sink)
	assert.ErrorIs(t, err, ErrUnsupportedNumber)
	assert.Empty(t, sink.payloads)
	assert.Equal(t, 0, rec.Len())
}

func TestSinkFunc(t *testing.T) {
	var got string
	var s Sink = SinkFunc(func(_ context.Context, p []byte) error {
		got = string(p)
		return nil
	})
	require.NoError(t, s.Deliver(context.Background(), []byte("[]")))
	assert.Equal(t, "[]", got)
	assert.NoError(t, s.Close())
}
