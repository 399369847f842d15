package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/linskybing/campus-helpdesk/internal/domain/campus"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/linskybing/campus-helpdesk/internal/repository"
)

// CampusService manages hostels, batches and class sections.
type CampusService struct {
	Repos *repository.Repos
}

func NewCampusService(repos *repository.Repos) *CampusService {
	return &CampusService{Repos: repos}
}

// List shows active units to admins; super-admins also see inactive ones.
func (s *CampusService) List(ctx context.Context, actor user.Actor, kind campus.Kind) ([]campus.Unit, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if !kind.Valid() {
		return nil, ErrNotFound
	}
	return s.Repos.Campus.ListUnits(kind, actor.Role == user.RoleSuperAdmin)
}

func (s *CampusService) Create(ctx context.Context, actor user.Actor, kind campus.Kind, in campus.CreateUnitInput) (campus.Unit, error) {
	if actor.Role != user.RoleSuperAdmin {
		return campus.Unit{}, ErrForbidden
	}
	if !kind.Valid() {
		return campus.Unit{}, ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return campus.Unit{}, invalid("name", "Name is required")
	}
	u := campus.Unit{
		Kind:   kind,
		Name:   name,
		Code:   strings.TrimSpace(in.Code),
		Active: true,
	}
	if err := s.Repos.Campus.CreateUnit(&u); err != nil {
		return campus.Unit{}, mapRepoErr(err)
	}
	return u, nil
}

func (s *CampusService) Update(ctx context.Context, actor user.Actor, kind campus.Kind, id uint, in campus.UpdateUnitInput) (campus.Unit, error) {
	if actor.Role != user.RoleSuperAdmin {
		return campus.Unit{}, ErrForbidden
	}
	u, err := s.Repos.Campus.GetUnit(kind, id)
	if err != nil {
		return campus.Unit{}, mapRepoErr(err)
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return campus.Unit{}, invalid("name", "Name is required")
		}
		u.Name = name
	}
	if in.Code != nil {
		u.Code = strings.TrimSpace(*in.Code)
	}
	if in.Active != nil && !*in.Active && u.Active {
		if err := s.ensureUnassigned(kind, id); err != nil {
			return campus.Unit{}, err
		}
		u.Active = false
	} else if in.Active != nil {
		u.Active = *in.Active
	}
	if err := s.Repos.Campus.SaveUnit(&u); err != nil {
		return campus.Unit{}, mapRepoErr(err)
	}
	return u, nil
}

// Deactivate refuses while any active student references the unit.
func (s *CampusService) Deactivate(ctx context.Context, actor user.Actor, kind campus.Kind, id uint) error {
	if actor.Role != user.RoleSuperAdmin {
		return ErrForbidden
	}
	u, err := s.Repos.Campus.GetUnit(kind, id)
	if err != nil {
		return mapRepoErr(err)
	}
	if !u.Active {
		return nil
	}
	if err := s.ensureUnassigned(kind, id); err != nil {
		return err
	}
	u.Active = false
	return s.Repos.Campus.SaveUnit(&u)
}

func (s *CampusService) ensureUnassigned(kind campus.Kind, id uint) error {
	n, err := s.Repos.Student.CountActiveByUnit(kind, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: %d active students", ErrHasAssignedStudents, n)
	}
	return nil
}
