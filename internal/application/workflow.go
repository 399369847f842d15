package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/linskybing/campus-helpdesk/internal/domain/outbox"
	"github.com/linskybing/campus-helpdesk/internal/domain/status"
	"github.com/linskybing/campus-helpdesk/internal/domain/ticket"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/linskybing/campus-helpdesk/internal/repository"
)

// WorkflowService applies ticket mutations. Role checks run before any
// datastore access, and every mutation commits with its outbox event.
type WorkflowService struct {
	Repos    *repository.Repos
	Statuses *StatusService
	Now      func() time.Time
}

func NewWorkflowService(repos *repository.Repos, statuses *StatusService) *WorkflowService {
	return &WorkflowService{
		Repos:    repos,
		Statuses: statuses,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

// Assign sets or clears the assignee of a non-final ticket. A nil or empty
// staff id unassigns.
func (s *WorkflowService) Assign(ctx context.Context, actor user.Actor, ticketID uint, staffExternalID *string) (ticket.Ticket, error) {
	if !actor.IsAdmin() {
		return ticket.Ticket{}, ErrForbidden
	}

	var newAssignee *uint
	if staffExternalID != nil && strings.TrimSpace(*staffExternalID) != "" {
		staff, err := s.Repos.User.GetUserByExternalID(strings.TrimSpace(*staffExternalID))
		if err != nil {
			return ticket.Ticket{}, mapRepoErr(err)
		}
		if !staff.Active || !staff.Role.IsStaff() {
			return ticket.Ticket{}, invalid("staffClerkId", "user is not an active staff member")
		}
		newAssignee = &staff.ID
	}

	var out ticket.Ticket
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		t, err := loadTicket(tx, ticketID)
		if err != nil {
			return err
		}
		if t.IsFinal() {
			return ErrTicketFinal
		}

		old := t.AssigneeID
		t.AssigneeID = newAssignee
		touch(&t, s.Now())
		if err := saveTicket(tx, &t); err != nil {
			return err
		}
		out = t
		return recordEvent(tx, outbox.TicketAssignmentUpdated, outbox.AssignmentPayload{
			TicketID:    t.ID,
			OldAssignee: old,
			NewAssignee: newAssignee,
			ActorID:     actor.UserID,
		})
	})
	return out, err
}

// AddComment appends to the thread. Students comment on their own tickets
// while the ticket is open, in progress or awaiting them; a reply to a
// ticket awaiting the student moves it back to in progress.
func (s *WorkflowService) AddComment(ctx context.Context, actor user.Actor, ticketID uint, in ticket.CommentInput) (ticket.Comment, error) {
	if !actor.HasRole(user.RoleStudent, user.RoleAdmin, user.RoleSuperAdmin, user.RoleCommittee) {
		return ticket.Comment{}, ErrForbidden
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return ticket.Comment{}, invalid("text", "Comment text is required")
	}
	visibility := in.Visibility
	if visibility == "" {
		visibility = ticket.VisibilityStudent
	}
	if !visibility.Valid() {
		return ticket.Comment{}, invalid("visibility", "unknown visibility")
	}
	switch actor.Role {
	case user.RoleStudent:
		if visibility != ticket.VisibilityStudent {
			return ticket.Comment{}, ErrForbidden
		}
	case user.RoleAdmin, user.RoleCommittee:
		if visibility == ticket.VisibilitySuperAdminNote {
			return ticket.Comment{}, ErrForbidden
		}
	}

	var committeeCats []uint
	if actor.Role == user.RoleCommittee {
		ids, err := s.Repos.Committee.CategoryIDsForMember(actor.UserID)
		if err != nil {
			return ticket.Comment{}, err
		}
		committeeCats = ids
	}

	var inProgress *status.Status
	if actor.Role == user.RoleStudent {
		st, err := s.Statuses.Resolve(ctx, status.InProgress)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return ticket.Comment{}, err
		}
		if err == nil {
			inProgress = &st
		}
	}

	c := ticket.Comment{
		Text:       text,
		AuthorID:   actor.UserID,
		AuthorRole: actor.Role,
		At:         s.Now(),
		Source:     sourceFor(actor.Role),
		Visibility: visibility,
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		t, err := loadTicket(tx, ticketID)
		if err != nil {
			return err
		}

		var moved *status.Status
		switch actor.Role {
		case user.RoleStudent:
			if t.UserID != actor.UserID {
				return ErrNotOwner
			}
			if !status.StudentCanComment(t.Status.Value) {
				return fmt.Errorf("%w: comments are closed while the ticket is %s", ErrConflict, t.Status.Value)
			}
			if t.Status.Value == status.AwaitingStudent && inProgress != nil {
				moved = inProgress
			}
		case user.RoleCommittee:
			if !slices.Contains(committeeCats, t.CategoryID) {
				return ErrForbidden
			}
		}

		meta := t.Meta()
		meta.AddComment(c)
		t.SetMeta(meta)

		from := t.Status.Value
		if moved != nil {
			t.StatusID = moved.ID
			t.Status = *moved
		}
		if err := saveTicket(tx, &t); err != nil {
			return err
		}
		if err := recordEvent(tx, outbox.TicketCommentAdded, outbox.TicketPayload{
			TicketID: t.ID,
			ActorID:  actor.UserID,
			Extra: map[string]any{
				"visibility": c.Visibility,
				"source":     c.Source,
			},
		}); err != nil {
			return err
		}
		if moved != nil {
			return recordEvent(tx, outbox.TicketStatusChanged, outbox.StatusPayload{
				TicketID: t.ID,
				From:     from,
				To:       moved.Value,
				ActorID:  actor.UserID,
			})
		}
		return nil
	})
	if err != nil {
		return ticket.Comment{}, err
	}
	return c, nil
}

// ChangeStatus moves a ticket to an active status. Entering a final status
// requires a rating; leaving one clears that flag.
func (s *WorkflowService) ChangeStatus(ctx context.Context, actor user.Actor, ticketID uint, in ticket.StatusInput) (ticket.Ticket, error) {
	if !actor.IsAdmin() {
		return ticket.Ticket{}, ErrForbidden
	}
	target, err := s.resolveTarget(ctx, in.Status)
	if err != nil {
		return ticket.Ticket{}, err
	}

	var out ticket.Ticket
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		t, err := loadTicket(tx, ticketID)
		if err != nil {
			return err
		}
		from := t.Status
		var note *ticket.Comment
		if text := strings.TrimSpace(in.Comment); text != "" {
			note = &ticket.Comment{
				Text:       text,
				AuthorID:   actor.UserID,
				AuthorRole: actor.Role,
				At:         s.Now(),
				Source:     ticket.SourceAdmin,
				Visibility: ticket.VisibilityStudent,
			}
		}
		applyStatus(&t, target, note, s.Now())
		if err := saveTicket(tx, &t); err != nil {
			return err
		}
		out = t
		return recordEvent(tx, outbox.TicketStatusChanged, outbox.StatusPayload{
			TicketID: t.ID,
			From:     from.Value,
			To:       target.Value,
			ActorID:  actor.UserID,
		})
	})
	return out, err
}

// Escalate raises the escalation level of a non-final ticket and moves it to
// ESCALATED. Students may escalate only their own tickets.
func (s *WorkflowService) Escalate(ctx context.Context, actor user.Actor, ticketID uint, in ticket.EscalateInput) (ticket.Ticket, error) {
	if !actor.HasRole(user.RoleStudent, user.RoleAdmin, user.RoleSuperAdmin) {
		return ticket.Ticket{}, ErrForbidden
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return ticket.Ticket{}, invalid("reason", "Reason is required")
	}
	escalated, err := s.resolveTarget(ctx, status.Escalated)
	if err != nil {
		return ticket.Ticket{}, err
	}

	var out ticket.Ticket
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		t, err := loadTicket(tx, ticketID)
		if err != nil {
			return err
		}
		if actor.Role == user.RoleStudent && t.UserID != actor.UserID {
			return ErrNotOwner
		}
		if t.IsFinal() {
			return ErrTicketFinal
		}

		from := t.Status.Value
		t.EscalationLevel++
		applyStatus(&t, escalated, &ticket.Comment{
			Text:       reason,
			AuthorID:   actor.UserID,
			AuthorRole: actor.Role,
			At:         s.Now(),
			Source:     sourceFor(actor.Role),
			Visibility: ticket.VisibilityStudent,
		}, s.Now())
		if err := saveTicket(tx, &t); err != nil {
			return err
		}
		out = t
		return recordEvent(tx, outbox.TicketEscalated, outbox.TicketPayload{
			TicketID: t.ID,
			ActorID:  actor.UserID,
			Extra: map[string]any{
				"level":  t.EscalationLevel,
				"from":   from,
				"reason": reason,
			},
		})
	})
	return out, err
}

// SetTAT sets the turnaround target, or extends it when one exists. The
// audit trail keeps every change.
func (s *WorkflowService) SetTAT(ctx context.Context, actor user.Actor, ticketID uint, in ticket.TATInput) (ticket.Ticket, error) {
	if !actor.IsAdmin() {
		return ticket.Ticket{}, ErrForbidden
	}

	at := s.Now()
	var target time.Time
	switch {
	case in.Hours != nil && in.Date != nil:
		return ticket.Ticket{}, invalid("tat", "give either hours or date, not both")
	case in.Hours != nil:
		if *in.Hours <= 0 {
			return ticket.Ticket{}, invalid("hours", "hours must be positive")
		}
		target = at.Add(time.Duration(*in.Hours) * time.Hour)
	case in.Date != nil:
		target = now.With(*in.Date).EndOfDay()
	default:
		return ticket.Ticket{}, invalid("tat", "hours or date is required")
	}
	if !target.After(at) {
		return ticket.Ticket{}, invalid("tat", "target must be in the future")
	}

	var out ticket.Ticket
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		t, err := loadTicket(tx, ticketID)
		if err != nil {
			return err
		}
		if t.IsFinal() {
			return ErrTicketFinal
		}

		meta := t.Meta()
		entry := ticket.TATEntry{
			Action: ticket.TATSet,
			By:     actor.UserID,
			At:     at,
			To:     target,
			Reason: strings.TrimSpace(in.Reason),
		}
		if cur := meta.TAT.TargetAt; cur != nil {
			if !target.After(*cur) {
				return invalid("tat", "new target must be later than the current target")
			}
			from := *cur
			entry.Action = ticket.TATExtend
			entry.From = &from
		}
		meta.TAT.TargetAt = &target
		meta.TAT.History = append(meta.TAT.History, entry)
		meta.LastActivityAt = &at
		t.SetMeta(meta)

		if err := saveTicket(tx, &t); err != nil {
			return err
		}
		out = t
		return recordEvent(tx, outbox.TicketTATUpdated, outbox.TicketPayload{
			TicketID: t.ID,
			ActorID:  actor.UserID,
			Extra: map[string]any{
				"action":    entry.Action,
				"target_at": target,
			},
		})
	})
	return out, err
}

// BulkClose moves each ticket to a final status in its own transaction so
// one failure does not affect the rest.
func (s *WorkflowService) BulkClose(ctx context.Context, actor user.Actor, in ticket.BulkCloseInput) (ticket.BulkCloseResult, error) {
	if !actor.IsAdmin() {
		return ticket.BulkCloseResult{}, ErrForbidden
	}
	value := in.Status
	if strings.TrimSpace(value) == "" {
		value = status.Resolved
	}
	target, err := s.resolveTarget(ctx, value)
	if err != nil {
		return ticket.BulkCloseResult{}, err
	}
	if !target.IsFinal {
		return ticket.BulkCloseResult{}, invalid("status", "bulk close requires a final status")
	}

	res := ticket.BulkCloseResult{
		Closed:   []uint{},
		NotFound: []uint{},
		Errors:   map[uint]string{},
	}
	seen := make(map[uint]bool, len(in.IDs))
	for _, id := range in.IDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		err := s.closeOne(actor, id, target, strings.TrimSpace(in.Comment))
		switch {
		case err == nil:
			res.Closed = append(res.Closed, id)
		case errors.Is(err, ErrNotFound):
			res.NotFound = append(res.NotFound, id)
		default:
			slog.ErrorContext(ctx, "bulk close failed for ticket", "ticket_id", id, "error", err)
			res.Errors[id] = "could not close ticket"
		}
	}
	return res, nil
}

func (s *WorkflowService) closeOne(actor user.Actor, id uint, target status.Status, comment string) error {
	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		t, err := loadTicket(tx, id)
		if err != nil {
			return err
		}
		from := t.Status.Value
		var note *ticket.Comment
		if comment != "" {
			note = &ticket.Comment{
				Text:       comment,
				AuthorID:   actor.UserID,
				AuthorRole: actor.Role,
				At:         s.Now(),
				Source:     ticket.SourceBulkAction,
				Visibility: ticket.VisibilityInternal,
			}
		}
		applyStatus(&t, target, note, s.Now())
		if err := saveTicket(tx, &t); err != nil {
			return err
		}
		return recordEvent(tx, outbox.TicketStatusChanged, outbox.StatusPayload{
			TicketID: t.ID,
			From:     from,
			To:       target.Value,
			ActorID:  actor.UserID,
		})
	})
}

// Rate records the student's rating once the ticket is final. A ticket is
// rated at most once.
func (s *WorkflowService) Rate(ctx context.Context, actor user.Actor, ticketID uint, in ticket.RateInput) (ticket.Ticket, error) {
	if !actor.HasRole(user.RoleStudent) {
		return ticket.Ticket{}, ErrForbidden
	}
	if in.Rating < 1 || in.Rating > 5 {
		return ticket.Ticket{}, invalid("rating", "Rating must be between 1 and 5")
	}

	var out ticket.Ticket
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		t, err := loadTicket(tx, ticketID)
		if err != nil {
			return err
		}
		if t.UserID != actor.UserID {
			return ErrNotOwner
		}
		if !t.IsFinal() {
			return ErrTicketNotClosed
		}
		meta := t.Meta()
		if meta.Rating != nil {
			return ErrAlreadyRated
		}
		at := s.Now()
		meta.Rating = &ticket.Rating{
			Value:    in.Rating,
			Feedback: strings.TrimSpace(in.Feedback),
			At:       at,
		}
		meta.RatingRequired = false
		meta.LastActivityAt = &at
		t.SetMeta(meta)
		if err := saveTicket(tx, &t); err != nil {
			return err
		}
		out = t
		return recordEvent(tx, outbox.TicketRated, outbox.TicketPayload{
			TicketID: t.ID,
			ActorID:  actor.UserID,
			Extra:    map[string]any{"rating": in.Rating},
		})
	})
	return out, err
}

func (s *WorkflowService) resolveTarget(ctx context.Context, value string) (status.Status, error) {
	st, err := s.Statuses.Resolve(ctx, value)
	if errors.Is(err, ErrNotFound) {
		return status.Status{}, invalid("status", fmt.Sprintf("%q is not an active status", value))
	}
	return st, err
}

func loadTicket(tx *repository.Repos, id uint) (ticket.Ticket, error) {
	t, err := tx.Ticket.GetTicketByID(id)
	if err != nil {
		return ticket.Ticket{}, mapRepoErr(err)
	}
	return t, nil
}

// applyStatus moves t to target and keeps the rating flag in step with the
// final/non-final boundary.
func applyStatus(t *ticket.Ticket, target status.Status, note *ticket.Comment, at time.Time) {
	meta := t.Meta()
	switch {
	case target.IsFinal && !t.Status.IsFinal:
		meta.RatingRequired = meta.Rating == nil
	case !target.IsFinal && t.Status.IsFinal:
		meta.RatingRequired = false
	}
	if note != nil {
		meta.AddComment(*note)
	}
	meta.LastActivityAt = &at
	t.SetMeta(meta)
	t.StatusID = target.ID
	t.Status = target
}

func touch(t *ticket.Ticket, at time.Time) {
	meta := t.Meta()
	meta.LastActivityAt = &at
	t.SetMeta(meta)
}

func sourceFor(role user.Role) ticket.Source {
	switch role {
	case user.RoleStudent:
		return ticket.SourceStudent
	case user.RoleCommittee:
		return ticket.SourceCommittee
	}
	return ticket.SourceAdmin
}

// saveTicket persists t once its metadata document passes the schema.
func saveTicket(tx *repository.Repos, t *ticket.Ticket) error {
	if err := ticket.ValidateMetadataDocument(t.Meta()); err != nil {
		return fmt.Errorf("ticket %d: %w", t.ID, err)
	}
	return tx.Ticket.SaveTicket(t)
}
