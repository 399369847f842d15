package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/linskybing/campus-helpdesk/internal/cache"
	"github.com/linskybing/campus-helpdesk/internal/domain/campus"
	"github.com/linskybing/campus-helpdesk/internal/domain/student"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/linskybing/campus-helpdesk/internal/repository"
)

// IdentityService maps identity-provider subjects to local users. The role
// stored here is the only role the API trusts.
type IdentityService struct {
	Repos *repository.Repos
	Cache cache.Cache
	TTL   time.Duration
}

func NewIdentityService(repos *repository.Repos, c cache.Cache, ttl time.Duration) *IdentityService {
	return &IdentityService{
		Repos: repos,
		Cache: c,
		TTL:   ttl,
	}
}

type cachedIdentity struct {
	UserID uint      `json:"user_id"`
	Role   user.Role `json:"role"`
	Active bool      `json:"active"`
}

// Resolve returns the actor for a subject. Unknown subjects yield
// ErrUnknownIdentity and inactive accounts ErrInactiveAccount.
func (s *IdentityService) Resolve(ctx context.Context, subject string) (user.Actor, error) {
	if strings.TrimSpace(subject) == "" {
		return user.Actor{}, ErrUnauthorized
	}
	key := cache.RoleKey(subject)

	id, ok, err := cache.GetJSON[cachedIdentity](ctx, s.Cache, key)
	if err != nil {
		slog.WarnContext(ctx, "role cache read failed", "error", err)
	}
	if !ok {
		u, err := s.Repos.User.GetUserByExternalID(subject)
		if repository.IsNotFound(err) {
			return user.Actor{}, ErrUnknownIdentity
		}
		if err != nil {
			return user.Actor{}, err
		}
		id = cachedIdentity{UserID: u.ID, Role: u.Role, Active: u.Active}
		if err := cache.SetJSON(ctx, s.Cache, key, id, s.TTL); err != nil {
			slog.WarnContext(ctx, "role cache write failed", "error", err)
		}
	}

	if !id.Active {
		return user.Actor{}, ErrInactiveAccount
	}
	return user.Actor{UserID: id.UserID, ExternalID: subject, Role: id.Role}, nil
}

// Onboard registers the caller as a student and creates the profile. A
// subject that already has a profile gets ErrConflict.
func (s *IdentityService) Onboard(ctx context.Context, subject, tokenEmail string, in student.OnboardInput) (user.MeDTO, error) {
	if strings.TrimSpace(subject) == "" {
		return user.MeDTO{}, ErrUnauthorized
	}
	if err := s.checkUnits(in.HostelID, in.BatchID, in.ClassSectionID); err != nil {
		return user.MeDTO{}, err
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		email = tokenEmail
	}

	var u user.User
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		existing, err := tx.User.GetUserByExternalID(subject)
		switch {
		case err == nil:
			u = existing
			if u.Role != user.RoleStudent {
				return fmt.Errorf("%w: account already registered as %s", ErrConflict, u.Role)
			}
			if _, err := tx.Student.GetStudentByUserID(u.ID); err == nil {
				return fmt.Errorf("%w: profile already exists", ErrConflict)
			} else if !repository.IsNotFound(err) {
				return err
			}
		case repository.IsNotFound(err):
			u = user.User{ExternalID: subject, Role: user.RoleStudent, Active: true}
		default:
			return err
		}

		u.FullName = strings.TrimSpace(in.FullName)
		u.Email = email
		u.Phone = strings.TrimSpace(in.Phone)
		if u.ID == 0 {
			if err := tx.User.CreateUser(&u); err != nil {
				return mapRepoErr(err)
			}
		} else if err := tx.User.SaveUser(&u); err != nil {
			return err
		}

		st := student.Student{
			UserID:         u.ID,
			RollNo:         strings.ToUpper(strings.TrimSpace(in.RollNo)),
			RoomNumber:     strings.TrimSpace(in.RoomNumber),
			HostelID:       in.HostelID,
			BatchID:        in.BatchID,
			ClassSectionID: in.ClassSectionID,
			Active:         true,
		}
		if err := tx.Student.CreateStudent(&st); err != nil {
			if repository.IsUniqueViolation(err) {
				return invalid("roll_no", "roll number is already registered")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return user.MeDTO{}, err
	}

	if err := s.Cache.Invalidate(ctx, cache.RoleKey(subject)); err != nil {
		slog.ErrorContext(ctx, "role cache invalidation failed", "subject", subject, "error", err)
	}
	return s.Me(ctx, user.Actor{UserID: u.ID, ExternalID: subject, Role: u.Role})
}

// Me describes the caller, with the student profile when there is one.
func (s *IdentityService) Me(ctx context.Context, actor user.Actor) (user.MeDTO, error) {
	u, err := s.Repos.User.GetUserByID(actor.UserID)
	if err != nil {
		return user.MeDTO{}, mapRepoErr(err)
	}
	dto := user.MeDTO{
		ID:         u.ID,
		ExternalID: u.ExternalID,
		Email:      u.Email,
		FullName:   u.FullName,
		Role:       u.Role,
	}
	if u.Role == user.RoleStudent {
		st, err := s.Repos.Student.GetStudentByUserID(u.ID)
		switch {
		case err == nil:
			dto.Profile = st
		case !repository.IsNotFound(err):
			return user.MeDTO{}, err
		}
	}
	return dto, nil
}

// UpdateRole changes a user's role and drops the cached role before
// returning, so the next request sees the new one.
func (s *IdentityService) UpdateRole(ctx context.Context, actor user.Actor, userID uint, role user.Role) (user.User, error) {
	if actor.Role != user.RoleSuperAdmin {
		return user.User{}, ErrForbidden
	}
	if !role.Valid() {
		return user.User{}, invalid("role", "unknown role")
	}
	if actor.UserID == userID && role != user.RoleSuperAdmin {
		return user.User{}, fmt.Errorf("%w: cannot demote yourself", ErrConflict)
	}

	u, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return user.User{}, mapRepoErr(err)
	}
	if err := s.Repos.User.UpdateRole(userID, role); err != nil {
		return user.User{}, mapRepoErr(err)
	}
	u.Role = role

	if err := s.Cache.Invalidate(ctx, cache.RoleKey(u.ExternalID)); err != nil {
		return u, fmt.Errorf("role cache invalidation: %w", err)
	}
	return u, nil
}

func (s *IdentityService) checkUnits(hostelID, batchID, sectionID *uint) error {
	refs := []struct {
		kind  campus.Kind
		id    *uint
		field string
	}{
		{campus.KindHostel, hostelID, "hostel_id"},
		{campus.KindBatch, batchID, "batch_id"},
		{campus.KindClassSection, sectionID, "class_section_id"},
	}
	for _, ref := range refs {
		if ref.id == nil {
			continue
		}
		u, err := s.Repos.Campus.GetUnit(ref.kind, *ref.id)
		if repository.IsNotFound(err) || (err == nil && !u.Active) {
			return invalid(ref.field, fmt.Sprintf("unknown or inactive %s", ref.kind))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
