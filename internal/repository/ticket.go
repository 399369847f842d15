package repository

import (
	"github.com/linskybing/campus-helpdesk/internal/domain/ticket"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TicketRepo interface {
	CreateTicket(t *ticket.Ticket) error
	GetTicketByID(id uint) (ticket.Ticket, error)
	SaveTicket(t *ticket.Ticket) error
	ListTickets(filter ticket.ListFilter) ([]ticket.Ticket, int64, error)
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{
		db: db,
	}
}

func (r *DBTicketRepo) CreateTicket(t *ticket.Ticket) error {
	return r.db.Omit(clause.Associations).Create(t).Error
}

func (r *DBTicketRepo) GetTicketByID(id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	if err := r.db.Preload("Status").First(&t, id).Error; err != nil {
		return t, err
	}
	return t, nil
}

// SaveTicket writes every column. Concurrent writers are not detected; the
// last save wins.
func (r *DBTicketRepo) SaveTicket(t *ticket.Ticket) error {
	return r.db.Omit(clause.Associations).Save(t).Error
}

func (r *DBTicketRepo) ListTickets(filter ticket.ListFilter) ([]ticket.Ticket, int64, error) {
	page, limit := pageBounds(filter.Page, filter.Limit)

	query := r.db.Model(&ticket.Ticket{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.CategoryIDs != nil {
		if len(filter.CategoryIDs) == 0 {
			return []ticket.Ticket{}, 0, nil
		}
		query = query.Where("category_id IN ?", filter.CategoryIDs)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.StatusID != nil {
		query = query.Where("status_id = ?", *filter.StatusID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []ticket.Ticket
	err := query.Preload("Status").
		Order("created_at DESC").
		Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).Error
	return list, total, err
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{
		db: tx,
	}
}
