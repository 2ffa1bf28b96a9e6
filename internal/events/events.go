package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Entity names carried by EntityEvent.Entity.
const (
	EntityCompany     = "company"
	EntityIndustry    = "industry"
	EntityInvoice     = "invoice"
	EntityAssociation = "association"
)

// Event types.
const (
	CompanyCreated     = "company.created"
	CompanyUpdated     = "company.updated"
	CompanyDeleted     = "company.deleted"
	IndustryCreated    = "industry.created"
	IndustryAssociated = "industry.associated"
	InvoiceCreated     = "invoice.created"
	InvoiceUpdated     = "invoice.updated"
	InvoiceDeleted     = "invoice.deleted"
)

// EntityEvent records one successful mutation.
type EntityEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the event type constants, e.g. "invoice.deleted"
	Type string `json:"type"`

	// Entity names the kind of record that changed
	Entity string `json:"entity"`

	// Key identifies the record: a company or industry code, or an invoice id
	Key string `json:"key"`

	// Payload is the JSON encoding of the record after the change
	Payload json.RawMessage `json:"payload,omitempty"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *EntityEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEntityEvent creates an event for the record identified by entity and key.
// A nil payload leaves Payload empty.
func NewEntityEvent(eventType, entity, key string, payload interface{}) (*EntityEvent, error) {
	var payloadBytes json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		payloadBytes = b
	}

	return &EntityEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Entity:    entity,
		Key:       key,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *EntityEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *EntityEvent) error
}

// EventHandlerFunc adapts a function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event *EntityEvent) error

// HandleEvent calls f(ctx, event).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *EntityEvent) error {
	return f(ctx, event)
}
