package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/linskybing/campus-helpdesk/internal/domain/category"
	"github.com/linskybing/campus-helpdesk/internal/domain/outbox"
	"github.com/linskybing/campus-helpdesk/internal/domain/status"
	"github.com/linskybing/campus-helpdesk/internal/domain/student"
	"github.com/linskybing/campus-helpdesk/internal/domain/ticket"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/linskybing/campus-helpdesk/internal/repository"
)

// ImagePolicy decides whether an uploaded image URL may be attached.
type ImagePolicy interface {
	Owns(rawURL string) bool
}

type IntakeService struct {
	Repos       *repository.Repos
	Hierarchy   *HierarchyService
	Statuses    *StatusService
	Spoc        *SpocService
	Images      ImagePolicy
	EmailDomain string
}

func NewIntakeService(repos *repository.Repos, hierarchy *HierarchyService, statuses *StatusService, spoc *SpocService, images ImagePolicy, emailDomain string) *IntakeService {
	return &IntakeService{
		Repos:       repos,
		Hierarchy:   hierarchy,
		Statuses:    statuses,
		Spoc:        spoc,
		Images:      images,
		EmailDomain: emailDomain,
	}
}

// CreateTicket files a ticket for a student with a complete profile. The
// ticket row and its ticket.created event commit together.
func (s *IntakeService) CreateTicket(ctx context.Context, actor user.Actor, in ticket.CreateTicketInput) (ticket.Ticket, error) {
	if !actor.HasRole(user.RoleStudent) {
		return ticket.Ticket{}, ErrForbidden
	}

	stu, err := s.Repos.Student.GetStudentByUserID(actor.UserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return ticket.Ticket{}, ErrProfileIncomplete
		}
		return ticket.Ticket{}, err
	}
	if !stu.Active {
		return ticket.Ticket{}, ErrInactiveAccount
	}
	if !stu.IsComplete() {
		return ticket.Ticket{}, ErrProfileIncomplete
	}

	if s.Images != nil {
		for _, img := range in.Images {
			if !s.Images.Owns(img) {
				return ticket.Ticket{}, invalid("images", "images must be uploaded to the ticket image store")
			}
		}
	}

	payload := BuildTicketPayload(in, stu.Profile(), in.Images, s.EmailDomain)

	h, err := s.Hierarchy.GetHierarchy(ctx)
	if err != nil {
		return ticket.Ticket{}, err
	}
	answers, err := ValidatePayload(h, payload)
	if err != nil {
		return ticket.Ticket{}, err
	}

	open, err := s.Statuses.Resolve(ctx, status.Open)
	if err != nil {
		return ticket.Ticket{}, fmt.Errorf("resolve initial status: %w", err)
	}

	assignee := s.Spoc.ResolveDefaultAssignee(ctx, payload.CategoryID, payload.SubcategoryID)
	if assignee.Degraded {
		slog.WarnContext(ctx, "filing ticket unassigned", "category_id", payload.CategoryID, "cause", assignee.Cause)
	}

	meta := ticket.Metadata{
		Version: ticket.MetadataVersion,
		Answers: answers,
		Images:  payload.Images,
		Profile: payload.Profile,
	}
	meta.Normalize()
	if err := ticket.ValidateMetadataDocument(meta); err != nil {
		return ticket.Ticket{}, invalid("details", err.Error())
	}

	t := ticket.Ticket{
		UserID:           actor.UserID,
		CategoryID:       payload.CategoryID,
		SubcategoryID:    payload.SubcategoryID,
		SubSubcategoryID: payload.SubSubcategoryID,
		Description:      payload.Description,
		Location:         payload.Location,
		StatusID:         open.ID,
		AssigneeID:       assignee.Value,
	}
	t.SetMeta(meta)

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Ticket.CreateTicket(&t); err != nil {
			return err
		}
		return recordEvent(tx, outbox.TicketCreated, outbox.TicketPayload{
			TicketID: t.ID,
			ActorID:  actor.UserID,
			Extra: map[string]any{
				"category_id": t.CategoryID,
				"assignee_id": t.AssigneeID,
			},
		})
	})
	if err != nil {
		return ticket.Ticket{}, err
	}
	t.Status = open
	return t, nil
}

// logical profile fields and the keys accepted for each inside
// details.profile.
var profileKeys = map[string][]string{
	"roll_no":       {"rollNo", "roll_no", "rollNumber"},
	"full_name":     {"fullName", "full_name", "name"},
	"phone":         {"phone", "phoneNumber", "phone_number"},
	"email":         {"email"},
	"hostel":        {"hostel", "location"},
	"room_number":   {"roomNumber", "room_number", "room"},
	"batch_year":    {"batchYear", "batch_year", "batch"},
	"class_section": {"classSection", "class_section", "section"},
}

// BuildTicketPayload merges form input with the stored profile. For each
// profile field the dynamic details.profile value wins, then the legacy flat
// field, then the value on file. A missing email is synthesized from name and
// roll number.
func BuildTicketPayload(in ticket.CreateTicketInput, stored student.StoredProfile, images []string, emailDomain string) ticket.NormalizedTicketPayload {
	dyn := profileObject(in.Details)

	pick := func(key, legacy, onFile string) string {
		for _, k := range profileKeys[key] {
			if v, ok := dyn[k]; ok {
				if s := stringValue(v); s != "" {
					return s
				}
			}
		}
		if s := strings.TrimSpace(legacy); s != "" {
			return s
		}
		return strings.TrimSpace(onFile)
	}

	p := student.StoredProfile{
		RollNo:       pick("roll_no", in.RollNo, stored.RollNo),
		FullName:     pick("full_name", in.FullName, stored.FullName),
		Phone:        pick("phone", in.Phone, stored.Phone),
		Email:        pick("email", in.Email, stored.Email),
		Hostel:       pick("hostel", in.Hostel, stored.Hostel),
		RoomNumber:   pick("room_number", in.RoomNumber, stored.RoomNumber),
		BatchYear:    pick("batch_year", in.BatchYear, stored.BatchYear),
		ClassSection: pick("class_section", in.ClassSection, stored.ClassSection),
	}
	if p.Email == "" {
		p.Email = SynthesizeEmail(p.FullName, p.RollNo, emailDomain)
	}

	location := strings.TrimSpace(in.Location)
	if location == "" && p.Hostel != "" {
		location = p.Hostel
		if p.RoomNumber != "" {
			location += ", Room " + p.RoomNumber
		}
	}

	answers := make(map[string]any, len(in.Details)+len(dyn))
	for k, v := range dyn {
		answers[k] = v
	}
	for k, v := range in.Details {
		if k == "profile" {
			continue
		}
		answers[k] = v
	}

	imgs := make([]string, 0, len(images))
	for _, img := range images {
		if s := strings.TrimSpace(img); s != "" {
			imgs = append(imgs, s)
		}
	}

	return ticket.NormalizedTicketPayload{
		CategoryID:       in.CategoryID,
		SubcategoryID:    in.SubcategoryID,
		SubSubcategoryID: in.SubSubcategoryID,
		Description:      strings.TrimSpace(in.Description),
		Location:         location,
		Profile:          p,
		Answers:          answers,
		Images:           imgs,
	}
}

// SynthesizeEmail builds "<name>.<roll>@<domain>" from whatever parts are
// present, or returns "" when neither is.
func SynthesizeEmail(fullName, rollNo, domain string) string {
	var parts []string
	if n := emailPart(fullName); n != "" {
		parts = append(parts, n)
	}
	if r := emailPart(rollNo); r != "" {
		parts = append(parts, r)
	}
	if len(parts) == 0 || domain == "" {
		return ""
	}
	return strings.Join(parts, ".") + "@" + domain
}

func emailPart(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePayload checks hierarchy membership and every field of the chosen
// subcategory. It returns the answers restricted to known fields.
func ValidatePayload(h category.Hierarchy, p ticket.NormalizedTicketPayload) (map[string]any, error) {
	if p.Description == "" {
		return nil, invalid("Description", "Description is required")
	}

	var sub *category.SubcategoryNode
	if p.SubcategoryID != nil {
		cat, sc := h.FindSubcategory(p.CategoryID, *p.SubcategoryID)
		if cat == nil {
			return nil, invalid("Category", "Category is not available")
		}
		if sc == nil {
			return nil, invalid("Subcategory", "Subcategory does not belong to the selected category")
		}
		sub = sc
	} else {
		cat, _ := h.FindSubcategory(p.CategoryID, 0)
		if cat == nil {
			return nil, invalid("Category", "Category is not available")
		}
		if len(cat.Subcategories) > 0 {
			return nil, invalid("Subcategory", "Subcategory is required")
		}
	}

	if p.SubSubcategoryID != nil {
		if sub == nil || !sub.HasSubSubcategory(*p.SubSubcategoryID) {
			return nil, invalid("Sub-subcategory", "Sub-subcategory does not belong to the selected subcategory")
		}
	}

	answers := map[string]any{}
	if sub == nil {
		return answers, nil
	}

	specs, err := sub.Specs()
	if err != nil {
		return nil, err
	}
	for _, fs := range specs {
		v := p.Answers[fs.Slug]
		if fe := fs.Validate(v); fe != nil {
			return nil, fieldError(fe)
		}
		if !isBlankAnswer(v) {
			answers[fs.Slug] = v
		}
	}
	return answers, nil
}

func profileObject(details map[string]any) map[string]any {
	if details == nil {
		return map[string]any{}
	}
	if m, ok := details["profile"].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64, int, int64, bool:
		return strings.TrimSpace(fmt.Sprint(t))
	}
	return ""
}

func isBlankAnswer(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	}
	return false
}
