package application

import (
	"github.com/linskybing/campus-helpdesk/internal/domain/outbox"
	"github.com/linskybing/campus-helpdesk/internal/repository"
)

// recordEvent appends an outbox row. Call it with transaction-bound repos so
// the event commits together with the change it describes.
func recordEvent(tx *repository.Repos, eventType string, payload any) error {
	e, err := outbox.New(eventType, payload)
	if err != nil {
		return err
	}
	return tx.Outbox.InsertEvent(&e)
}
