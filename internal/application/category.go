package application

import (
	"context"
	"strings"
	"unicode"

	"github.com/linskybing/campus-helpdesk/internal/domain/category"
	"github.com/linskybing/campus-helpdesk/internal/repository"
	"gorm.io/datatypes"
)

// CategoryService holds the super-admin writes on the intake hierarchy. Each
// successful write invalidates the cached tree before returning.
type CategoryService struct {
	Repos     *repository.Repos
	Hierarchy *HierarchyService
}

func NewCategoryService(repos *repository.Repos, hierarchy *HierarchyService) *CategoryService {
	return &CategoryService{
		Repos:     repos,
		Hierarchy: hierarchy,
	}
}

func (s *CategoryService) CreateCategory(ctx context.Context, in category.CreateCategoryInput) (category.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return category.Category{}, invalid("name", "name is required")
	}
	c := category.Category{
		Name:              name,
		Slug:              pickSlug(in.Slug, name, kebab),
		Description:       in.Description,
		Icon:              in.Icon,
		Color:             in.Color,
		SLAHours:          48,
		DisplayOrder:      in.DisplayOrder,
		Active:            true,
		ParentID:          in.ParentID,
		DefaultAssigneeID: in.DefaultAssigneeID,
		CommitteeID:       in.CommitteeID,
	}
	if c.Slug == "" {
		return category.Category{}, invalid("slug", "slug must contain letters or digits")
	}
	if in.SLAHours != nil {
		c.SLAHours = *in.SLAHours
	}
	if in.ParentID != nil {
		if _, err := s.Repos.Category.GetCategory(*in.ParentID); err != nil {
			return category.Category{}, mapRepoErr(err)
		}
	}
	if err := s.Repos.Category.CreateCategory(&c); err != nil {
		return category.Category{}, mapRepoErr(err)
	}
	return c, s.Hierarchy.Invalidate(ctx)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, in category.UpdateCategoryInput) (category.Category, error) {
	c, err := s.Repos.Category.GetCategory(id)
	if err != nil {
		return category.Category{}, mapRepoErr(err)
	}
	if in.Name != nil {
		if c.Name = strings.TrimSpace(*in.Name); c.Name == "" {
			return category.Category{}, invalid("name", "name is required")
		}
	}
	if in.Slug != nil {
		if c.Slug = kebab(*in.Slug); c.Slug == "" {
			return category.Category{}, invalid("slug", "slug must contain letters or digits")
		}
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Icon != nil {
		c.Icon = *in.Icon
	}
	if in.Color != nil {
		c.Color = *in.Color
	}
	if in.SLAHours != nil {
		c.SLAHours = *in.SLAHours
	}
	if in.DisplayOrder != nil {
		c.DisplayOrder = *in.DisplayOrder
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	if in.DefaultAssigneeID != nil {
		c.DefaultAssigneeID = in.DefaultAssigneeID
	}
	if in.CommitteeID != nil {
		c.CommitteeID = in.CommitteeID
	}
	if err := s.Repos.Category.SaveCategory(&c); err != nil {
		return category.Category{}, mapRepoErr(err)
	}
	return c, s.Hierarchy.Invalidate(ctx)
}

func (s *CategoryService) DeactivateCategory(ctx context.Context, id uint) error {
	f := false
	_, err := s.UpdateCategory(ctx, id, category.UpdateCategoryInput{Active: &f})
	return err
}

func (s *CategoryService) CreateSubcategory(ctx context.Context, in category.CreateSubcategoryInput) (category.Subcategory, error) {
	parent, err := s.Repos.Category.GetCategory(in.CategoryID)
	if err != nil {
		return category.Subcategory{}, mapRepoErr(err)
	}
	if !parent.Active {
		return category.Subcategory{}, invalid("category_id", "category is inactive")
	}
	name := strings.TrimSpace(in.Name)
	sc := category.Subcategory{
		CategoryID:      parent.ID,
		Name:            name,
		Slug:            pickSlug(in.Slug, name, kebab),
		DisplayOrder:    in.DisplayOrder,
		Active:          true,
		AssignedStaffID: in.AssignedStaffID,
	}
	if sc.Name == "" || sc.Slug == "" {
		return category.Subcategory{}, invalid("name", "name is required")
	}
	if err := s.Repos.Category.CreateSubcategory(&sc); err != nil {
		return category.Subcategory{}, mapRepoErr(err)
	}
	return sc, s.Hierarchy.Invalidate(ctx)
}

func (s *CategoryService) UpdateSubcategory(ctx context.Context, id uint, in category.UpdateSubcategoryInput) (category.Subcategory, error) {
	sc, err := s.Repos.Category.GetSubcategory(id)
	if err != nil {
		return category.Subcategory{}, mapRepoErr(err)
	}
	if in.Name != nil {
		if sc.Name = strings.TrimSpace(*in.Name); sc.Name == "" {
			return category.Subcategory{}, invalid("name", "name is required")
		}
	}
	if in.Slug != nil {
		if sc.Slug = kebab(*in.Slug); sc.Slug == "" {
			return category.Subcategory{}, invalid("slug", "slug must contain letters or digits")
		}
	}
	if in.DisplayOrder != nil {
		sc.DisplayOrder = *in.DisplayOrder
	}
	if in.Active != nil {
		sc.Active = *in.Active
	}
	if in.AssignedStaffID != nil {
		sc.AssignedStaffID = in.AssignedStaffID
	}
	if err := s.Repos.Category.SaveSubcategory(&sc); err != nil {
		return category.Subcategory{}, mapRepoErr(err)
	}
	return sc, s.Hierarchy.Invalidate(ctx)
}

func (s *CategoryService) DeactivateSubcategory(ctx context.Context, id uint) error {
	f := false
	_, err := s.UpdateSubcategory(ctx, id, category.UpdateSubcategoryInput{Active: &f})
	return err
}

func (s *CategoryService) CreateSubSubcategory(ctx context.Context, in category.CreateSubSubcategoryInput) (category.SubSubcategory, error) {
	parent, err := s.Repos.Category.GetSubcategory(in.SubcategoryID)
	if err != nil {
		return category.SubSubcategory{}, mapRepoErr(err)
	}
	if !parent.Active {
		return category.SubSubcategory{}, invalid("subcategory_id", "subcategory is inactive")
	}
	name := strings.TrimSpace(in.Name)
	ss := category.SubSubcategory{
		SubcategoryID: parent.ID,
		Name:          name,
		Slug:          pickSlug(in.Slug, name, kebab),
		DisplayOrder:  in.DisplayOrder,
		Active:        true,
	}
	if ss.Name == "" || ss.Slug == "" {
		return category.SubSubcategory{}, invalid("name", "name is required")
	}
	if err := s.Repos.Category.CreateSubSubcategory(&ss); err != nil {
		return category.SubSubcategory{}, mapRepoErr(err)
	}
	return ss, s.Hierarchy.Invalidate(ctx)
}

func (s *CategoryService) UpdateSubSubcategory(ctx context.Context, id uint, in category.UpdateSubSubcategoryInput) (category.SubSubcategory, error) {
	ss, err := s.Repos.Category.GetSubSubcategory(id)
	if err != nil {
		return category.SubSubcategory{}, mapRepoErr(err)
	}
	if in.Name != nil {
		if ss.Name = strings.TrimSpace(*in.Name); ss.Name == "" {
			return category.SubSubcategory{}, invalid("name", "name is required")
		}
	}
	if in.Slug != nil {
		if ss.Slug = kebab(*in.Slug); ss.Slug == "" {
			return category.SubSubcategory{}, invalid("slug", "slug must contain letters or digits")
		}
	}
	if in.DisplayOrder != nil {
		ss.DisplayOrder = *in.DisplayOrder
	}
	if in.Active != nil {
		ss.Active = *in.Active
	}
	if err := s.Repos.Category.SaveSubSubcategory(&ss); err != nil {
		return category.SubSubcategory{}, mapRepoErr(err)
	}
	return ss, s.Hierarchy.Invalidate(ctx)
}

func (s *CategoryService) DeactivateSubSubcategory(ctx context.Context, id uint) error {
	f := false
	_, err := s.UpdateSubSubcategory(ctx, id, category.UpdateSubSubcategoryInput{Active: &f})
	return err
}

func (s *CategoryService) CreateField(ctx context.Context, in category.CreateFieldInput) (category.Field, error) {
	parent, err := s.Repos.Category.GetSubcategory(in.SubcategoryID)
	if err != nil {
		return category.Field{}, mapRepoErr(err)
	}
	if !parent.Active {
		return category.Field{}, invalid("subcategory_id", "subcategory is inactive")
	}
	if _, err := category.KindOf(in.FieldType, in.Rules, nil); err != nil {
		return category.Field{}, invalid("validation_rules", err.Error())
	}
	name := strings.TrimSpace(in.Name)
	f := category.Field{
		SubcategoryID: parent.ID,
		Name:          name,
		Slug:          pickSlug(in.Slug, name, camel),
		FieldType:     in.FieldType,
		Required:      in.Required,
		Placeholder:   in.Placeholder,
		HelpText:      in.HelpText,
		Rules:         datatypes.NewJSONType(in.Rules),
		DisplayOrder:  in.DisplayOrder,
		Active:        true,
	}
	if f.Name == "" || f.Slug == "" {
		return category.Field{}, invalid("name", "name is required")
	}
	if err := s.Repos.Category.CreateField(&f); err != nil {
		return category.Field{}, mapRepoErr(err)
	}
	return f, s.Hierarchy.Invalidate(ctx)
}

func (s *CategoryService) UpdateField(ctx context.Context, id uint, in category.UpdateFieldInput) (category.Field, error) {
	f, err := s.Repos.Category.GetField(id)
	if err != nil {
		return category.Field{}, mapRepoErr(err)
	}
	if in.Name != nil {
		if f.Name = strings.TrimSpace(*in.Name); f.Name == "" {
			return category.Field{}, invalid("name", "name is required")
		}
	}
	if in.Required != nil {
		f.Required = *in.Required
	}
	if in.Placeholder != nil {
		f.Placeholder = *in.Placeholder
	}
	if in.HelpText != nil {
		f.HelpText = *in.HelpText
	}
	if in.Rules != nil {
		if _, err := category.KindOf(f.FieldType, *in.Rules, nil); err != nil {
			return category.Field{}, invalid("validation_rules", err.Error())
		}
		f.Rules = datatypes.NewJSONType(*in.Rules)
	}
	if in.DisplayOrder != nil {
		f.DisplayOrder = *in.DisplayOrder
	}
	if in.Active != nil {
		f.Active = *in.Active
	}
	if err := s.Repos.Category.SaveField(&f); err != nil {
		return category.Field{}, mapRepoErr(err)
	}
	return f, s.Hierarchy.Invalidate(ctx)
}

func (s *CategoryService) DeactivateField(ctx context.Context, id uint) error {
	f := false
	_, err := s.UpdateField(ctx, id, category.UpdateFieldInput{Active: &f})
	return err
}

func (s *CategoryService) CreateOption(ctx context.Context, in category.CreateOptionInput) (category.FieldOption, error) {
	field, err := s.Repos.Category.GetField(in.FieldID)
	if err != nil {
		return category.FieldOption{}, mapRepoErr(err)
	}
	if !field.Active || field.FieldType != category.TypeSelect {
		return category.FieldOption{}, invalid("field_id", "options can only be added to an active select field")
	}
	o := category.FieldOption{
		FieldID:      field.ID,
		Label:        strings.TrimSpace(in.Label),
		Value:        strings.TrimSpace(in.Value),
		DisplayOrder: in.DisplayOrder,
		Active:       true,
	}
	if o.Value == "" {
		o.Value = o.Label
	}
	if o.Label == "" {
		return category.FieldOption{}, invalid("label", "label is required")
	}
	if err := s.Repos.Category.CreateOption(&o); err != nil {
		return category.FieldOption{}, mapRepoErr(err)
	}
	return o, s.Hierarchy.Invalidate(ctx)
}

func (s *CategoryService) UpdateOption(ctx context.Context, id uint, in category.UpdateOptionInput) (category.FieldOption, error) {
	o, err := s.Repos.Category.GetOption(id)
	if err != nil {
		return category.FieldOption{}, mapRepoErr(err)
	}
	if in.Label != nil {
		if o.Label = strings.TrimSpace(*in.Label); o.Label == "" {
			return category.FieldOption{}, invalid("label", "label is required")
		}
	}
	if in.Value != nil {
		if o.Value = strings.TrimSpace(*in.Value); o.Value == "" {
			return category.FieldOption{}, invalid("value", "value is required")
		}
	}
	if in.DisplayOrder != nil {
		o.DisplayOrder = *in.DisplayOrder
	}
	if in.Active != nil {
		o.Active = *in.Active
	}
	if err := s.Repos.Category.SaveOption(&o); err != nil {
		return category.FieldOption{}, mapRepoErr(err)
	}
	return o, s.Hierarchy.Invalidate(ctx)
}

func (s *CategoryService) DeactivateOption(ctx context.Context, id uint) error {
	f := false
	_, err := s.UpdateOption(ctx, id, category.UpdateOptionInput{Active: &f})
	return err
}

func pickSlug(given, name string, form func(string) string) string {
	if strings.TrimSpace(given) != "" {
		return form(given)
	}
	return form(name)
}

// kebab renders "Hostel Maintenance" as "hostel-maintenance".
func kebab(s string) string {
	words := slugWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// camel renders "Issue Type" as "issueType". Single-word input keeps its
// casing after the first rune so existing camelCase slugs survive.
func camel(s string) string {
	words := slugWords(s)
	if len(words) == 0 {
		return ""
	}
	if len(words) == 1 {
		r := []rune(words[0])
		r[0] = unicode.ToLower(r[0])
		return string(r)
	}
	var b strings.Builder
	for i, w := range words {
		w = strings.ToLower(w)
		if i > 0 {
			r := []rune(w)
			r[0] = unicode.ToUpper(r[0])
			w = string(r)
		}
		b.WriteString(w)
	}
	return b.String()
}

func slugWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
