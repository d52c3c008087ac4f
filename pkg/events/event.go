package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "DOCUMENT_INGESTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common implementation used by the domain constructors.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewDocumentIngested fires after an upload completes ingestion.
func NewDocumentIngested(documentID, name string) Event {
	return BaseEvent{
		Type:       "DOCUMENT_INGESTED",
		Data:       map[string]interface{}{"document_id": documentID, "name": name},
		OccurredAt: time.Now(),
	}
}

// NewDocumentDeleted fires after a delete, including idempotent deletes of
// already absent documents.
func NewDocumentDeleted(documentID string) Event {
	return BaseEvent{
		Type:       "DOCUMENT_DELETED",
		Data:       map[string]interface{}{"document_id": documentID},
		OccurredAt: time.Now(),
	}
}

// NewChatTurn fires for every turn appended to the conversation log.
func NewChatTurn(turnID, role string) Event {
	return BaseEvent{
		Type:       "CHAT_TURN",
		Data:       map[string]interface{}{"turn_id": turnID, "role": role},
		OccurredAt: time.Now(),
	}
}
