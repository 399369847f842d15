package repository

import (
	"database/sql"

	"gorm.io/gorm"
)

type Repos struct {
	User      UserRepo
	Student   StudentRepo
	Campus    CampusRepo
	Committee CommitteeRepo
	Status    StatusRepo
	Category  CategoryRepo
	Ticket    TicketRepo
	Outbox    OutboxRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:      NewUserRepo(db),
		Student:   NewStudentRepo(db),
		Campus:    NewCampusRepo(db),
		Committee: NewCommitteeRepo(db),
		Status:    NewStatusRepo(db),
		Category:  NewCategoryRepo(db),
		Ticket:    NewTicketRepo(db),
		Outbox:    NewOutboxRepo(db),
		db:        db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:      r.User.WithTx(tx),
		Student:   r.Student.WithTx(tx),
		Campus:    r.Campus.WithTx(tx),
		Committee: r.Committee.WithTx(tx),
		Status:    r.Status.WithTx(tx),
		Category:  r.Category.WithTx(tx),
		Ticket:    r.Ticket.WithTx(tx),
		Outbox:    r.Outbox.WithTx(tx),
		db:        tx,
	}
}

// ExecTx runs fn against repositories bound to one transaction. fn must not
// touch the outer repositories.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}

// SQLDB exposes the pool for health probes.
func (r *Repos) SQLDB() (*sql.DB, error) {
	return r.db.DB()
}
