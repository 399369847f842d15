package application

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/linskybing/campus-helpdesk/internal/cache"
	"github.com/linskybing/campus-helpdesk/internal/domain/category"
	"github.com/linskybing/campus-helpdesk/internal/repository"
)

// HierarchyService resolves the category tree that drives intake forms.
type HierarchyService struct {
	Repos *repository.Repos
	Cache cache.Cache
	TTL   time.Duration
}

func NewHierarchyService(repos *repository.Repos, c cache.Cache, ttl time.Duration) *HierarchyService {
	return &HierarchyService{
		Repos: repos,
		Cache: c,
		TTL:   ttl,
	}
}

// GetHierarchy returns every active category with its subtree. A failed
// options query degrades the result instead of failing it; degraded trees
// are not cached.
func (s *HierarchyService) GetHierarchy(ctx context.Context) (category.Hierarchy, error) {
	cached, ok, err := cache.GetJSON[category.Hierarchy](ctx, s.Cache, cache.KeyHierarchy)
	if err != nil {
		slog.WarnContext(ctx, "hierarchy cache read failed", "error", err)
	}
	if ok {
		return cached, nil
	}

	cats, err := s.Repos.Category.ListActiveCategories()
	if err != nil {
		return category.Hierarchy{}, err
	}
	h, err := s.load(ctx, cats)
	if err != nil {
		return category.Hierarchy{}, err
	}
	if !h.Degraded {
		if err := cache.SetJSON(ctx, s.Cache, cache.KeyHierarchy, h, s.TTL); err != nil {
			slog.WarnContext(ctx, "hierarchy cache write failed", "error", err)
		}
	}
	return h, nil
}

// GetSubcategoriesForCategory returns one active category with its subtree.
func (s *HierarchyService) GetSubcategoriesForCategory(ctx context.Context, categoryID uint) (category.Subtree, error) {
	if cached, ok, _ := cache.GetJSON[category.Hierarchy](ctx, s.Cache, cache.KeyHierarchy); ok {
		for _, c := range cached.Categories {
			if c.ID == categoryID {
				return category.Subtree{Category: c}, nil
			}
		}
		return category.Subtree{}, ErrNotFound
	}

	c, err := s.Repos.Category.GetCategory(categoryID)
	if err != nil {
		return category.Subtree{}, mapRepoErr(err)
	}
	if !c.Active {
		return category.Subtree{}, ErrNotFound
	}
	h, err := s.load(ctx, []category.Category{c})
	if err != nil {
		return category.Subtree{}, err
	}
	if len(h.Categories) != 1 {
		return category.Subtree{}, ErrNotFound
	}
	return category.Subtree{Category: h.Categories[0], Degraded: h.Degraded}, nil
}

// ListCategories returns category headers by display order, newest first
// within the same order.
func (s *HierarchyService) ListCategories() ([]category.Summary, error) {
	cats, err := s.Repos.Category.ListActiveCategories()
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(cats, func(a, b category.Category) int {
		if c := cmp.Compare(a.DisplayOrder, b.DisplayOrder); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	out := make([]category.Summary, 0, len(cats))
	for _, c := range cats {
		out = append(out, category.Summary{
			ID:          c.ID,
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
			Icon:        c.Icon,
			Color:       c.Color,
			SLAHours:    c.SLAHours,
		})
	}
	return out, nil
}

// Invalidate drops the cached tree. Category writers call it before
// returning.
func (s *HierarchyService) Invalidate(ctx context.Context) error {
	if err := s.Cache.Invalidate(ctx, cache.KeyHierarchy); err != nil {
		slog.ErrorContext(ctx, "hierarchy cache invalidation failed", "error", err)
		return fmt.Errorf("invalidate hierarchy cache: %w", err)
	}
	return nil
}

func (s *HierarchyService) load(ctx context.Context, cats []category.Category) (category.Hierarchy, error) {
	rows := category.Rows{Categories: cats}

	catIDs := make([]uint, 0, len(cats))
	for _, c := range cats {
		catIDs = append(catIDs, c.ID)
	}

	var err error
	if rows.Subcategories, err = s.Repos.Category.ActiveSubcategories(catIDs); err != nil {
		return category.Hierarchy{}, err
	}
	subIDs := make([]uint, 0, len(rows.Subcategories))
	for _, sc := range rows.Subcategories {
		subIDs = append(subIDs, sc.ID)
	}
	if rows.SubSubcategories, err = s.Repos.Category.ActiveSubSubcategories(subIDs); err != nil {
		return category.Hierarchy{}, err
	}
	if rows.Fields, err = s.Repos.Category.ActiveFields(subIDs); err != nil {
		return category.Hierarchy{}, err
	}

	var selectIDs []uint
	for _, f := range rows.Fields {
		if f.FieldType == category.TypeSelect {
			selectIDs = append(selectIDs, f.ID)
		}
	}

	degraded := false
	if len(selectIDs) > 0 {
		rows.Options, err = s.Repos.Category.ActiveOptions(selectIDs)
		if err != nil {
			slog.WarnContext(ctx, "field options unavailable, serving hierarchy without options", "error", err)
			rows.Options = nil
			degraded = true
		}
	}

	return category.Hierarchy{
		Categories: category.Assemble(rows),
		Degraded:   degraded,
	}, nil
}
