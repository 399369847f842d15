package application

import (
	"context"
	"log/slog"
	"strings"

	"github.com/linskybing/campus-helpdesk/internal/cache"
	"github.com/linskybing/campus-helpdesk/internal/domain/outbox"
	"github.com/linskybing/campus-helpdesk/internal/domain/student"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/linskybing/campus-helpdesk/internal/repository"
)

type StudentService struct {
	Repos    *repository.Repos
	Identity *IdentityService
}

func NewStudentService(repos *repository.Repos, identity *IdentityService) *StudentService {
	return &StudentService{Repos: repos, Identity: identity}
}

func (s *StudentService) GetProfile(ctx context.Context, actor user.Actor) (student.Student, error) {
	st, err := s.Repos.Student.GetStudentByUserID(actor.UserID)
	if err != nil {
		return student.Student{}, mapRepoErr(err)
	}
	return st, nil
}

// UpdateProfile applies a partial update to the caller's own profile.
func (s *StudentService) UpdateProfile(ctx context.Context, actor user.Actor, in student.UpdateProfileInput) (student.Student, error) {
	st, err := s.Repos.Student.GetStudentByUserID(actor.UserID)
	if err != nil {
		return student.Student{}, mapRepoErr(err)
	}
	if err := s.Identity.checkUnits(in.HostelID, in.BatchID, in.ClassSectionID); err != nil {
		return student.Student{}, err
	}

	if in.RoomNumber != nil {
		st.RoomNumber = strings.TrimSpace(*in.RoomNumber)
	}
	if in.HostelID != nil {
		st.HostelID = in.HostelID
	}
	if in.BatchID != nil {
		st.BatchID = in.BatchID
	}
	if in.ClassSectionID != nil {
		st.ClassSectionID = in.ClassSectionID
	}
	u := st.User
	if in.FullName != nil {
		u.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.User.SaveUser(&u); err != nil {
			return err
		}
		return tx.Student.SaveStudent(&st)
	})
	if err != nil {
		return student.Student{}, err
	}
	return s.Repos.Student.GetStudentByUserID(actor.UserID)
}

func (s *StudentService) List(ctx context.Context, actor user.Actor, filter student.ListFilter) ([]student.Student, int64, error) {
	if !actor.IsAdmin() {
		return nil, 0, ErrForbidden
	}
	return s.Repos.Student.ListStudents(filter)
}

// Deactivate soft-deactivates students and their accounts. Tickets keep
// their references; each id lands in exactly one result bucket.
func (s *StudentService) Deactivate(ctx context.Context, actor user.Actor, ids []uint) (student.DeactivateResult, error) {
	if actor.Role != user.RoleSuperAdmin {
		return student.DeactivateResult{}, ErrForbidden
	}
	res := student.DeactivateResult{
		Deactivated:     []uint{},
		AlreadyInactive: []uint{},
		NotFound:        []uint{},
	}

	found, err := s.Repos.Student.FindStudentsByIDs(ids)
	if err != nil {
		return res, err
	}
	byID := make(map[uint]student.Student, len(found))
	for _, st := range found {
		byID[st.ID] = st
	}

	var studentIDs, userIDs []uint
	var subjects []string
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		st, ok := byID[id]
		switch {
		case !ok:
			res.NotFound = append(res.NotFound, id)
		case !st.Active:
			res.AlreadyInactive = append(res.AlreadyInactive, id)
		default:
			studentIDs = append(studentIDs, id)
			userIDs = append(userIDs, st.UserID)
			subjects = append(subjects, cache.RoleKey(st.User.ExternalID))
		}
	}
	if len(studentIDs) == 0 {
		return res, nil
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Student.SetActive(studentIDs, false); err != nil {
			return err
		}
		if err := tx.User.SetActive(userIDs, false); err != nil {
			return err
		}
		return recordEvent(tx, outbox.StudentDeactivated, outbox.TicketPayload{
			ActorID: actor.UserID,
			Extra:   map[string]any{"student_ids": studentIDs},
		})
	})
	if err != nil {
		return student.DeactivateResult{}, err
	}
	res.Deactivated = studentIDs

	if err := s.Identity.Cache.Invalidate(ctx, subjects...); err != nil {
		slog.ErrorContext(ctx, "role cache invalidation failed after deactivation", "error", err)
	}
	return res, nil
}
