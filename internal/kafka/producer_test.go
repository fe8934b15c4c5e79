package kafka

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	fail   bool
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("broker down")
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestProducerFlushesOnClose(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, 16, discard())
	p.Start(context.Background())

	for i := 0; i < 5; i++ {
		require.True(t, p.Publish([]byte("k"), []byte("v")))
	}
	p.Close()
	p.WaitClosed()

	w.mu.Lock()
	defer w.mu.Unlock()
	assert.Len(t, w.msgs, 5)
	assert.True(t, w.closed)
}

func TestProducerPublishAfterCloseDrops(t *testing.T) {
	p := newProducer(&fakeWriter{}, 1, discard())
	p.Start(context.Background())
	p.Close()
	p.Close()
	p.WaitClosed()
	assert.False(t, p.Publish([]byte("k"), []byte("v")))
}

func TestProducerFullInboxDrops(t *testing.T) {
	// not started: nothing drains the inbox
	p := newProducer(&fakeWriter{}, 1, discard())
	assert.True(t, p.Publish(nil, []byte("1")))
	assert.False(t, p.Publish(nil, []byte("2")))
}

func TestProducerStopsOnContextCancel(t *testing.T) {
	w := &fakeWriter{fail: true}
	p := newProducer(w, 4, discard())
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	p.Publish(nil, []byte("x"))
	cancel()
	p.WaitClosed()

	w.mu.Lock()
	defer w.mu.Unlock()
	assert.True(t, w.closed)
}

func TestProducerPublishAfterContextCancelDrops(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, 4, discard())
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	cancel()
	p.WaitClosed()

	assert.False(t, p.Publish([]byte("k"), []byte("late")))
	p.Close() // still safe after a cancelled context

	w.mu.Lock()
	defer w.mu.Unlock()
	assert.Empty(t, w.msgs)
}

func TestUnwrapPayload(t *testing.T) {
	type payload struct {
		N int `json:"n"`
	}
	got, err := UnwrapPayload[payload](MustMarshal(payload{N: 3}))
	require.NoError(t, err)
	assert.Equal(t, 3, got.N)

	_, err = UnwrapPayload[payload]([]byte(`"nope"`))
	assert.ErrorContains(t, err, "decode payload")
}
