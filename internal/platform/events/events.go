// Package events publishes domain events to downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is the broker-agnostic envelope for a domain event.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	RequestID  string          `json:"requestId,omitempty"`
	Payload    json.RawMessage `json:"payload"`
}

// New builds an envelope with a fresh ID, marshalling payload as JSON.
func New(eventType string, occurredAt time.Time, requestID string, payload any) (Event, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: occurredAt.UTC(),
		RequestID:  requestID,
		Payload:    body,
	}, nil
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
