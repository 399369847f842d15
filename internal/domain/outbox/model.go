package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TicketCreated           = "ticket.created"
	TicketAssignmentUpdated = "ticket.assignment.updated"
	TicketCommentAdded      = "ticket.comment.added"
	TicketStatusChanged     = "ticket.status.changed"
	TicketEscalated         = "ticket.escalated"
	TicketTATUpdated        = "ticket.tat.updated"
	TicketRated             = "ticket.rated"
	StudentDeactivated      = "student.deactivated"
)

// Event is a pending side effect written in the same transaction as the state
// change it describes. A relay delivers it at least once. A failed event waits
// until NextAttemptAt; one that keeps failing is parked with DeadAt set and is
// no longer picked up.
type Event struct {
	ID            string         `gorm:"primaryKey;size:36" json:"id"`
	EventType     string         `gorm:"size:64;not null;index" json:"event_type"`
	Payload       datatypes.JSON `json:"payload"`
	CreatedAt     time.Time      `gorm:"not null;index" json:"created_at"`
	ProcessedAt   *time.Time     `gorm:"index" json:"processed_at"`
	Attempts      int            `gorm:"not null;default:0" json:"attempts"`
	LastError     string         `gorm:"type:text" json:"last_error"`
	NextAttemptAt *time.Time     `gorm:"index" json:"next_attempt_at"`
	DeadAt        *time.Time     `gorm:"index" json:"dead_at"`
}

func (Event) TableName() string {
	return "outbox_events"
}

func New(eventType string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:        uuid.NewString(),
		EventType: eventType,
		Payload:   datatypes.JSON(raw),
		CreatedAt: time.Now().UTC(),
	}, nil
}

type AssignmentPayload struct {
	TicketID    uint  `json:"ticket_id"`
	OldAssignee *uint `json:"old_assignee"`
	NewAssignee *uint `json:"new_assignee"`
	ActorID     uint  `json:"actor_id"`
}

type StatusPayload struct {
	TicketID uint   `json:"ticket_id"`
	From     string `json:"from"`
	To       string `json:"to"`
	ActorID  uint   `json:"actor_id"`
}

type TicketPayload struct {
	TicketID uint           `json:"ticket_id"`
	ActorID  uint           `json:"actor_id"`
	Extra    map[string]any `json:"extra,omitempty"`
}
