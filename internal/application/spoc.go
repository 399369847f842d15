package application

import (
	"context"
	"log/slog"

	"github.com/linskybing/campus-helpdesk/internal/repository"
	"github.com/linskybing/campus-helpdesk/pkg/types"
)

// SpocService picks the staff member a new ticket defaults to.
type SpocService struct {
	Repos *repository.Repos
}

func NewSpocService(repos *repository.Repos) *SpocService {
	return &SpocService{
		Repos: repos,
	}
}

// ResolveDefaultAssignee checks the subcategory override, then the category
// default. Lookup failures yield a degraded nil so intake is never blocked.
func (s *SpocService) ResolveDefaultAssignee(ctx context.Context, categoryID uint, subcategoryID *uint) types.Outcome[*uint] {
	if subcategoryID != nil {
		sc, err := s.Repos.Category.GetSubcategory(*subcategoryID)
		if err != nil && !repository.IsNotFound(err) {
			slog.WarnContext(ctx, "spoc lookup failed", "subcategory_id", *subcategoryID, "error", err)
			return types.Degraded[*uint](nil, err)
		}
		if err == nil && sc.CategoryID == categoryID && sc.AssignedStaffID != nil {
			return types.Complete(sc.AssignedStaffID)
		}
	}

	c, err := s.Repos.Category.GetCategory(categoryID)
	if err != nil {
		if repository.IsNotFound(err) {
			return types.Complete[*uint](nil)
		}
		slog.WarnContext(ctx, "spoc lookup failed", "category_id", categoryID, "error", err)
		return types.Degraded[*uint](nil, err)
	}
	return types.Complete(c.DefaultAssigneeID)
}
