package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEntityCreated       EventType = "entity_created"
	EventEntityUpdated       EventType = "entity_updated"
	EventEntityDeleted       EventType = "entity_deleted"
	EventEntityStatusToggled EventType = "entity_status_toggled"
	EventRoleAssigned        EventType = "role_assigned"
)

// Event is an entity-change notice emitted after a successful write. It feeds
// the audit trail; delivery is synchronous and best-effort.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Entity    string    `json:"entity"`
	EntityID  int       `json:"entity_id"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	Detail    string    `json:"detail,omitempty"`
}

// NewEvent fills in the generated fields of an entity-change event.
func NewEvent(t EventType, entity string, entityID int, actor string) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		Entity:    entity,
		EntityID:  entityID,
		Actor:     actor,
		Timestamp: time.Now(),
	}
}
