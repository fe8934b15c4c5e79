package audit

import (
	"context"
	"log/slog"

	kafkax "github.com/ariefcatur/inventory-api/internal/kafka"
	kafkago "github.com/segmentio/kafka-go"
)

// Tail returns a consumer handler that logs every audit envelope. Undecodable
// messages are logged and acknowledged so they do not block the partition.
func Tail(log *slog.Logger) kafkax.Handler {
	return func(_ context.Context, m kafkago.Message) error {
		var env Envelope
		if err := kafkax.UnmarshalEnvelope(m.Value, &env); err != nil {
			log.Warn("audit_decode_failed", "partition", m.Partition, "offset", m.Offset, "error", err)
			return nil
		}
		attrs := []any{
			"event_id", env.EventID,
			"event_type", env.EventType,
			"producer", env.Producer,
			"trace_id", env.TraceID,
			"occurred_at", env.OccurredAt,
		}
		switch env.EventType {
		case EventProductRetrieved:
			if p, err := kafkax.UnwrapPayload[ProductRetrievedPayload](env.Payload); err == nil {
				attrs = append(attrs, "product_id", p.ProductID)
			}
		case EventProductsListed:
			if p, err := kafkax.UnwrapPayload[ProductsListedPayload](env.Payload); err == nil {
				attrs = append(attrs, "count", p.Count)
			}
		}
		log.Info("audit_event", attrs...)
		return nil
	}
}
