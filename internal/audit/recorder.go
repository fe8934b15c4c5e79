// Package audit publishes a read-audit stream of product lookups and listings.
package audit

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	kafkax "github.com/ariefcatur/inventory-api/internal/kafka"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

const eventVersion = 1

type Recorder interface {
	Record(ctx context.Context, ev Event)
}

// Nop discards every event. Used when no brokers are configured.
type Nop struct{}

func (Nop) Record(context.Context, Event) {}

// Publisher is satisfied by *kafka.Producer.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header) bool
}

type KafkaRecorder struct {
	Producer Publisher
	Service  string
	Log      *slog.Logger
}

// Record never blocks the read path; a dropped event is only logged.
func (r *KafkaRecorder) Record(ctx context.Context, ev Event) {
	env := Envelope{
		EventID:       uuid.NewString(),
		EventType:     ev.Type,
		EventVersion:  eventVersion,
		OccurredAt:    time.Now().UTC(),
		Producer:      r.Service,
		TraceID:       middleware.GetReqID(ctx),
		CorrelationID: ev.Key,
		Payload:       kafkax.MustMarshal(ev.Payload),
	}
	ok := r.Producer.Publish(PartitionKey(ev.Key), kafkax.MustMarshal(env),
		kafkago.Header{Key: "x-event-type", Value: []byte(ev.Type)},
		kafkago.Header{Key: "x-event-version", Value: []byte(strconv.Itoa(eventVersion))},
	)
	if !ok && r.Log != nil {
		r.Log.Warn("audit_event_dropped", "event_type", ev.Type, "key", ev.Key)
	}
}
