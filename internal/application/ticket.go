package application

import (
	"context"
	"errors"
	"slices"

	"github.com/linskybing/campus-helpdesk/internal/domain/ticket"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/linskybing/campus-helpdesk/internal/repository"
)

// TicketService is the read side. A reader outside a ticket's scope gets
// ErrNotFound so ids of other students' tickets are not confirmed.
type TicketService struct {
	Repos    *repository.Repos
	Statuses *StatusService
}

func NewTicketService(repos *repository.Repos, statuses *StatusService) *TicketService {
	return &TicketService{Repos: repos, Statuses: statuses}
}

func (s *TicketService) Get(ctx context.Context, actor user.Actor, id uint) (ticket.View, error) {
	if !actor.Role.Valid() {
		return ticket.View{}, ErrForbidden
	}
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if err != nil {
		return ticket.View{}, mapRepoErr(err)
	}

	switch actor.Role {
	case user.RoleStudent:
		if t.UserID != actor.UserID {
			return ticket.View{}, ErrNotFound
		}
	case user.RoleCommittee:
		ids, err := s.Repos.Committee.CategoryIDsForMember(actor.UserID)
		if err != nil {
			return ticket.View{}, err
		}
		if !slices.Contains(ids, t.CategoryID) {
			return ticket.View{}, ErrNotFound
		}
	}
	return viewFor(t, actor.Role), nil
}

// List returns one page of tickets in the caller's scope, newest first.
func (s *TicketService) List(ctx context.Context, actor user.Actor, filter ticket.ListFilter) ([]ticket.View, int64, error) {
	filter.UserID = nil
	filter.CategoryIDs = nil
	filter.StatusID = nil

	switch actor.Role {
	case user.RoleStudent:
		filter.UserID = &actor.UserID
	case user.RoleCommittee:
		ids, err := s.Repos.Committee.CategoryIDsForMember(actor.UserID)
		if err != nil {
			return nil, 0, err
		}
		filter.CategoryIDs = append([]uint{}, ids...)
	case user.RoleAdmin, user.RoleSuperAdmin:
	default:
		return nil, 0, ErrForbidden
	}

	if filter.Status != "" {
		st, err := s.Statuses.Resolve(ctx, filter.Status)
		if errors.Is(err, ErrNotFound) {
			return nil, 0, invalid("status", "unknown status filter")
		}
		if err != nil {
			return nil, 0, err
		}
		filter.StatusID = &st.ID
	}

	list, total, err := s.Repos.Ticket.ListTickets(filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]ticket.View, 0, len(list))
	for _, t := range list {
		views = append(views, viewFor(t, actor.Role))
	}
	return views, total, nil
}

func viewFor(t ticket.Ticket, role user.Role) ticket.View {
	meta := t.Meta()
	comments := meta.VisibleComments(role)
	meta.Comments = comments
	t.SetMeta(meta)
	return ticket.View{Ticket: t, Comments: comments}
}
