package category

import (
	"cmp"
	"slices"
	"strings"
)

type OptionNode struct {
	ID           uint   `json:"id"`
	Label        string `json:"label"`
	Value        string `json:"value"`
	DisplayOrder int    `json:"display_order"`
}

type FieldNode struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	FieldType    FieldType       `json:"field_type"`
	Required     bool            `json:"required"`
	Placeholder  string          `json:"placeholder,omitempty"`
	HelpText     string          `json:"help_text,omitempty"`
	Rules        ValidationRules `json:"validation_rules"`
	DisplayOrder int             `json:"display_order"`
	Options      []OptionNode    `json:"options"`
}

type SubSubcategoryNode struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	DisplayOrder int    `json:"display_order"`
}

type SubcategoryNode struct {
	ID               uint                 `json:"id"`
	CategoryID       uint                 `json:"category_id"`
	Name             string               `json:"name"`
	Slug             string               `json:"slug"`
	DisplayOrder     int                  `json:"display_order"`
	AssignedStaffID  *uint                `json:"assigned_staff_id,omitempty"`
	Fields           []FieldNode          `json:"fields"`
	SubSubcategories []SubSubcategoryNode `json:"sub_subcategories"`
}

type CategoryNode struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	Description   string            `json:"description"`
	Icon          string            `json:"icon"`
	Color         string            `json:"color"`
	SLAHours      int               `json:"sla_hours"`
	DisplayOrder  int               `json:"display_order"`
	CommitteeID   *uint             `json:"committee_id,omitempty"`
	Subcategories []SubcategoryNode `json:"subcategories"`
}

// Hierarchy is the full intake tree. Degraded is set when a decoration (field
// options) could not be loaded and was replaced by empty lists.
type Hierarchy struct {
	Categories []CategoryNode `json:"categories"`
	Degraded   bool           `json:"degraded"`
}

// Rows is the flat result of the hierarchy queries.
type Rows struct {
	Categories       []Category
	Subcategories    []Subcategory
	SubSubcategories []SubSubcategory
	Fields           []Field
	Options          []FieldOption
}

// Assemble nests flat rows into a sorted tree. Rows whose parent is missing
// from the input (inactive or absent) are dropped.
func Assemble(rows Rows) []CategoryNode {
	optionsByField := make(map[uint][]OptionNode)
	for _, o := range rows.Options {
		optionsByField[o.FieldID] = append(optionsByField[o.FieldID], OptionNode{
			ID: o.ID, Label: o.Label, Value: o.Value, DisplayOrder: o.DisplayOrder,
		})
	}

	fieldsBySub := make(map[uint][]FieldNode)
	for _, f := range rows.Fields {
		opts := optionsByField[f.ID]
		if opts == nil {
			opts = []OptionNode{}
		}
		SortNodes(opts, func(o OptionNode) (int, string) { return o.DisplayOrder, o.Label })
		fieldsBySub[f.SubcategoryID] = append(fieldsBySub[f.SubcategoryID], FieldNode{
			ID:           f.ID,
			Name:         f.Name,
			Slug:         f.Slug,
			FieldType:    f.FieldType,
			Required:     f.Required,
			Placeholder:  f.Placeholder,
			HelpText:     f.HelpText,
			Rules:        f.Rules.Data(),
			DisplayOrder: f.DisplayOrder,
			Options:      opts,
		})
	}

	subSubsBySub := make(map[uint][]SubSubcategoryNode)
	for _, s := range rows.SubSubcategories {
		subSubsBySub[s.SubcategoryID] = append(subSubsBySub[s.SubcategoryID], SubSubcategoryNode{
			ID: s.ID, Name: s.Name, Slug: s.Slug, DisplayOrder: s.DisplayOrder,
		})
	}

	subsByCategory := make(map[uint][]SubcategoryNode)
	for _, s := range rows.Subcategories {
		fields := fieldsBySub[s.ID]
		if fields == nil {
			fields = []FieldNode{}
		}
		SortNodes(fields, func(f FieldNode) (int, string) { return f.DisplayOrder, f.Name })
		subSubs := subSubsBySub[s.ID]
		if subSubs == nil {
			subSubs = []SubSubcategoryNode{}
		}
		SortNodes(subSubs, func(n SubSubcategoryNode) (int, string) { return n.DisplayOrder, n.Name })
		subsByCategory[s.CategoryID] = append(subsByCategory[s.CategoryID], SubcategoryNode{
			ID:               s.ID,
			CategoryID:       s.CategoryID,
			Name:             s.Name,
			Slug:             s.Slug,
			DisplayOrder:     s.DisplayOrder,
			AssignedStaffID:  s.AssignedStaffID,
			Fields:           fields,
			SubSubcategories: subSubs,
		})
	}

	out := make([]CategoryNode, 0, len(rows.Categories))
	for _, c := range rows.Categories {
		subs := subsByCategory[c.ID]
		if subs == nil {
			subs = []SubcategoryNode{}
		}
		SortNodes(subs, func(s SubcategoryNode) (int, string) { return s.DisplayOrder, s.Name })
		out = append(out, CategoryNode{
			ID:            c.ID,
			Name:          c.Name,
			Slug:          c.Slug,
			Description:   c.Description,
			Icon:          c.Icon,
			Color:         c.Color,
			SLAHours:      c.SLAHours,
			DisplayOrder:  c.DisplayOrder,
			CommitteeID:   c.CommitteeID,
			Subcategories: subs,
		})
	}
	SortNodes(out, func(c CategoryNode) (int, string) { return c.DisplayOrder, c.Name })
	return out
}

// SortNodes orders by display order, then name compared case-insensitively,
// then by the exact name so the result does not depend on input order.
func SortNodes[T any](items []T, key func(T) (int, string)) {
	slices.SortStableFunc(items, func(a, b T) int {
		ao, an := key(a)
		bo, bn := key(b)
		if c := cmp.Compare(ao, bo); c != 0 {
			return c
		}
		if c := cmp.Compare(strings.ToLower(an), strings.ToLower(bn)); c != 0 {
			return c
		}
		return cmp.Compare(an, bn)
	})
}

// FindSubcategory locates a subcategory under the given category.
func (h Hierarchy) FindSubcategory(categoryID, subcategoryID uint) (*CategoryNode, *SubcategoryNode) {
	for i := range h.Categories {
		c := &h.Categories[i]
		if c.ID != categoryID {
			continue
		}
		for j := range c.Subcategories {
			if c.Subcategories[j].ID == subcategoryID {
				return c, &c.Subcategories[j]
			}
		}
		return c, nil
	}
	return nil, nil
}

func (s SubcategoryNode) HasSubSubcategory(id uint) bool {
	for _, n := range s.SubSubcategories {
		if n.ID == id {
			return true
		}
	}
	return false
}

// Specs converts the subcategory's fields into validators, in display order.
func (s SubcategoryNode) Specs() ([]FieldSpec, error) {
	specs := make([]FieldSpec, 0, len(s.Fields))
	for _, f := range s.Fields {
		kind, err := KindOf(f.FieldType, f.Rules, f.Options)
		if err != nil {
			return nil, err
		}
		specs = append(specs, FieldSpec{Slug: f.Slug, Label: f.Name, Required: f.Required, Kind: kind})
	}
	return specs, nil
}

// Subtree is one category with its subcategories, as served to the ticket
// detail view.
type Subtree struct {
	Category CategoryNode `json:"category"`
	Degraded bool         `json:"degraded"`
}
