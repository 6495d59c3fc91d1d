package events

import (
	"context"
	"encoding/json"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// Action names the write that changed a record.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// RecordChanged is published after every successful write. It carries identifiers only;
// consumers read the record itself from the store.
type RecordChanged struct {
	Action     Action      `json:"action"`
	Kind       models.Kind `json:"kind"`
	RecordID   uuid.UUID   `json:"record_id"`
	UserID     uuid.UUID   `json:"user_id"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func NewRecordChanged(action Action, kind models.Kind, userID, recordID uuid.UUID) RecordChanged {
	return RecordChanged{
		Action:     action,
		Kind:       kind,
		RecordID:   recordID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
}

func (e RecordChanged) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func RecordChangedFromJSON(data []byte) (*RecordChanged, error) {
	var event RecordChanged
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Publisher delivers record change notifications.
type Publisher interface {
	PublishRecordChanged(ctx context.Context, event RecordChanged) error
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() Publisher {
	return NoopPublisher{}
}

func (NoopPublisher) PublishRecordChanged(ctx context.Context, event RecordChanged) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
