package repository

import (
	"time"

	"github.com/linskybing/campus-helpdesk/internal/domain/outbox"
	"gorm.io/gorm"
)

type OutboxRepo interface {
	InsertEvent(e *outbox.Event) error
	PendingEvents(now time.Time, limit int) ([]outbox.Event, error)
	MarkProcessed(id string, at time.Time) error
	RecordFailure(id string, reason string, retryAt time.Time) error
	MarkDead(id string, reason string, at time.Time) error
	PurgeProcessed(before time.Time) (int64, error)
	WithTx(tx *gorm.DB) OutboxRepo
}

type DBOutboxRepo struct {
	db *gorm.DB
}

func NewOutboxRepo(db *gorm.DB) *DBOutboxRepo {
	return &DBOutboxRepo{
		db: db,
	}
}

func (r *DBOutboxRepo) InsertEvent(e *outbox.Event) error {
	return r.db.Create(e).Error
}

// PendingEvents returns undelivered, live events that are due at now. Events
// with fewer attempts come first so a run of failing events cannot fill every
// batch.
func (r *DBOutboxRepo) PendingEvents(now time.Time, limit int) ([]outbox.Event, error) {
	var events []outbox.Event
	err := r.db.Where("processed_at IS NULL AND dead_at IS NULL").
		Where("next_attempt_at IS NULL OR next_attempt_at <= ?", now).
		Order("attempts ASC").
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *DBOutboxRepo) MarkProcessed(id string, at time.Time) error {
	return r.db.Model(&outbox.Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"processed_at": at,
			"attempts":     gorm.Expr("attempts + 1"),
			"last_error":   "",
		}).Error
}

func (r *DBOutboxRepo) RecordFailure(id string, reason string, retryAt time.Time) error {
	return r.db.Model(&outbox.Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":        gorm.Expr("attempts + 1"),
			"last_error":      reason,
			"next_attempt_at": retryAt,
		}).Error
}

func (r *DBOutboxRepo) MarkDead(id string, reason string, at time.Time) error {
	return r.db.Model(&outbox.Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": reason,
			"dead_at":    at,
		}).Error
}

func (r *DBOutboxRepo) PurgeProcessed(before time.Time) (int64, error) {
	res := r.db.Where("processed_at IS NOT NULL AND processed_at < ?", before).Delete(&outbox.Event{})
	return res.RowsAffected, res.Error
}

func (r *DBOutboxRepo) WithTx(tx *gorm.DB) OutboxRepo {
	if tx == nil {
		return r
	}
	return &DBOutboxRepo{
		db: tx,
	}
}
