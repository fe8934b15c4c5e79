package audit

import (
	"encoding/json"
	"time"
)

const (
	EventProductRetrieved = "ProductRetrieved"
	EventProductsListed   = "ProductsListed"
)

type Envelope struct {
	EventID       string          `json:"event_id"`      // uuid
	EventType     string          `json:"event_type"`    // salah satu const di atas
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"` // e.g., "inventory-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // product id, atau "products"
	Payload       json.RawMessage `json:"payload"`
}

type ProductRetrievedPayload struct {
	ProductID string `json:"product_id"`
}

type ProductsListedPayload struct {
	Count int `json:"count"`
}

// Event is what the service hands to a Recorder; the recorder wraps it in an Envelope.
type Event struct {
	Type    string
	Key     string
	Payload any
}

func ProductRetrieved(id string) Event {
	return Event{Type: EventProductRetrieved, Key: id, Payload: ProductRetrievedPayload{ProductID: id}}
}

func ProductsListed(count int) Event {
	return Event{Type: EventProductsListed, Key: ListKey, Payload: ProductsListedPayload{Count: count}}
}
