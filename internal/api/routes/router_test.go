package routes_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/linskybing/campus-helpdesk/internal/application"
	"github.com/linskybing/campus-helpdesk/internal/domain/campus"
	"github.com/linskybing/campus-helpdesk/internal/domain/category"
	"github.com/linskybing/campus-helpdesk/internal/domain/outbox"
	"github.com/linskybing/campus-helpdesk/internal/domain/status"
	"github.com/linskybing/campus-helpdesk/internal/domain/student"
	"github.com/linskybing/campus-helpdesk/internal/domain/ticket"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/linskybing/campus-helpdesk/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	s := setupRouter(t)

	w := s.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	report := decode[application.HealthReport](t, w)
	assert.Equal(t, application.HealthHealthy, report.Status)
	assert.Equal(t, application.HealthHealthy, report.Checks["database"].Status)
	assert.Equal(t, application.HealthDisabled, report.Checks["storage"].Status)
}

func TestIdentityGate(t *testing.T) {
	s := setupRouter(t)

	t.Run("no token", func(t *testing.T) {
		w := s.do(http.MethodGet, "/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown subject", func(t *testing.T) {
		w := s.do(http.MethodGet, "/me", "user_stranger", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("onboarding registers a student", func(t *testing.T) {
		hostel := campus.Unit{Kind: campus.KindHostel, Name: "Ganga", Active: true}
		require.NoError(t, s.repos.Campus.CreateUnit(&hostel))

		w := s.do(http.MethodPost, "/me", "user_new", student.OnboardInput{
			FullName:   "Asha Rao",
			RollNo:     "21cs045",
			RoomNumber: "B-214",
			HostelID:   &hostel.ID,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		me := decode[user.MeDTO](t, w)
		assert.Equal(t, user.RoleStudent, me.Role)
		assert.Equal(t, "user_new@college.edu", me.Email)

		w = s.do(http.MethodGet, "/me", "user_new", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = s.do(http.MethodPost, "/me", "user_new", student.OnboardInput{FullName: "Asha Rao", RollNo: "21CS046"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("inactive account", func(t *testing.T) {
		u := s.user("user_gone", user.RoleAdmin)
		require.NoError(t, s.repos.User.SetActive([]uint{u.ID}, false))
		w := s.do(http.MethodGet, "/me", "user_gone", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRoleGateRunsBeforeLookup(t *testing.T) {
	s := setupRouter(t)
	s.student("stu")

	w := s.do(http.MethodPatch, "/tickets/9999/assign", "stu", map[string]any{"staffClerkId": nil})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/admin/categories", "stu", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateRoleTakesEffectImmediately(t *testing.T) {
	s := setupRouter(t)
	s.user("root", user.RoleSuperAdmin)
	u := s.user("clerk", user.RoleCommittee)

	w := s.do(http.MethodGet, "/admin/students", "clerk", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPatch, fmt.Sprintf("/admin/users/%d/role", u.ID), "root", user.UpdateRoleInput{Role: user.RoleAdmin})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/admin/students", "clerk", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHierarchy(t *testing.T) {
	s := setupRouter(t)
	s.student("stu")

	hostel := category.Category{Name: "Hostel", Slug: "hostel", Active: true, DisplayOrder: 1}
	mess := category.Category{Name: "Mess", Slug: "mess", Active: true, DisplayOrder: 1}
	hidden := category.Category{Name: "Old", Slug: "old", Active: true}
	for _, c := range []*category.Category{&hostel, &mess, &hidden} {
		require.NoError(t, s.repos.Category.CreateCategory(c))
	}
	hidden.Active = false
	require.NoError(t, s.repos.Category.SaveCategory(&hidden))

	subs := []category.Subcategory{
		{CategoryID: hostel.ID, Name: "plumbing", Slug: "plumbing", Active: true},
		{CategoryID: hostel.ID, Name: "Electrical", Slug: "electrical", Active: true},
		{CategoryID: hostel.ID, Name: "Retired", Slug: "retired", Active: true},
		{CategoryID: mess.ID, Name: "Food", Slug: "food", Active: true},
	}
	for i := range subs {
		require.NoError(t, s.repos.Category.CreateSubcategory(&subs[i]))
	}
	subs[2].Active = false
	require.NoError(t, s.repos.Category.SaveSubcategory(&subs[2]))

	w := s.do(http.MethodGet, "/categories/hierarchy", "stu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Data     []category.CategoryNode `json:"data"`
		Degraded bool                    `json:"degraded"`
	}](t, w)
	assert.False(t, body.Degraded)

	require.Len(t, body.Data, 2)
	assert.Equal(t, "Hostel", body.Data[0].Name)
	assert.Equal(t, "Mess", body.Data[1].Name)
	for _, c := range body.Data {
		for _, sc := range c.Subcategories {
			assert.Equal(t, c.ID, sc.CategoryID)
			assert.NotEqual(t, "Retired", sc.Name)
		}
	}
	assert.Equal(t, "Electrical", body.Data[0].Subcategories[0].Name)
	assert.Equal(t, "plumbing", body.Data[0].Subcategories[1].Name)

	again := s.do(http.MethodGet, "/categories/hierarchy", "stu", nil)
	assert.Equal(t, w.Body.String(), again.Body.String())

	t.Run("subcategories endpoint", func(t *testing.T) {
		w := s.do(http.MethodGet, "/categories/subcategories", "stu", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = s.do(http.MethodGet, fmt.Sprintf("/categories/subcategories?category_id=%d", hidden.ID), "stu", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = s.do(http.MethodGet, fmt.Sprintf("/categories/subcategories?category_id=%d", hostel.ID), "stu", nil)
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[struct {
			Data category.CategoryNode `json:"data"`
		}](t, w)
		assert.Len(t, got.Data.Subcategories, 2)
	})
}

func TestIntakeWithSelectField(t *testing.T) {
	s := setupRouter(t)
	s.user("root", user.RoleSuperAdmin)
	s.student("stu")

	w := s.do(http.MethodPost, "/admin/categories", "root", category.CreateCategoryInput{Name: "Hostel"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	cat := decode[category.Category](t, w)

	w = s.do(http.MethodPost, "/admin/subcategories", "root", category.CreateSubcategoryInput{CategoryID: cat.ID, Name: "Maintenance"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	sub := decode[category.Subcategory](t, w)

	w = s.do(http.MethodPost, "/admin/subcategories", "root", category.CreateSubcategoryInput{CategoryID: cat.ID, Name: "Maintenance"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/admin/fields", "root", category.CreateFieldInput{
		SubcategoryID: sub.ID,
		Name:          "Issue Type",
		FieldType:     category.TypeSelect,
		Required:      true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	field := decode[category.Field](t, w)
	assert.Equal(t, "issueType", field.Slug)

	for _, label := range []string{"Electrical", "Plumbing"} {
		w = s.do(http.MethodPost, "/admin/field-options", "root", category.CreateOptionInput{FieldID: field.ID, Label: label})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	valid := ticket.CreateTicketInput{
		CategoryID:    cat.ID,
		SubcategoryID: &sub.ID,
		Description:   "Fan not working",
		Details:       map[string]any{"profile": map[string]any{"issueType": "Electrical"}},
	}
	w = s.do(http.MethodPost, "/tickets", "stu", valid)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[ticket.Ticket](t, w)
	assert.Equal(t, status.Open, created.Status.Value)
	assert.Equal(t, "Electrical", created.Metadata.Data().Answers["issueType"])

	missing := valid
	missing.Details = map[string]any{"profile": map[string]any{}}
	w = s.do(http.MethodPost, "/tickets", "stu", missing)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fe := decode[response.FieldErrorResponse](t, w)
	assert.Equal(t, "Issue Type", fe.Field)

	bogus := valid
	bogus.Details = map[string]any{"issueType": "Carpentry"}
	w = s.do(http.MethodPost, "/tickets", "stu", bogus)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var events int64
	require.NoError(t, s.db.Model(&outbox.Event{}).Where("event_type = ?", outbox.TicketCreated).Count(&events).Error)
	assert.Equal(t, int64(1), events)
}

func TestIntakeRequiresCompleteProfile(t *testing.T) {
	s := setupRouter(t)
	u := s.user("half", user.RoleStudent)
	require.NoError(t, s.repos.Student.CreateStudent(&student.Student{UserID: u.ID, RollNo: "R1", Active: true}))
	cat, sub := s.category()

	w := s.do(http.MethodPost, "/tickets", "half", ticket.CreateTicketInput{
		CategoryID:    cat.ID,
		SubcategoryID: &sub.ID,
		Description:   "x",
		Details:       map[string]any{"issue": "fan"},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// fileTicket creates a ticket for subject through the API.
func (s *testServer) fileTicket(subject string) ticket.Ticket {
	s.t.Helper()
	var cat category.Category
	var sub category.Subcategory
	if err := s.db.Where("slug = ?", "electrical").First(&cat).Error; err != nil {
		cat, sub = s.category()
	} else {
		require.NoError(s.t, s.db.Where("category_id = ?", cat.ID).First(&sub).Error)
	}
	w := s.do(http.MethodPost, "/tickets", subject, ticket.CreateTicketInput{
		CategoryID:    cat.ID,
		SubcategoryID: &sub.ID,
		Description:   "Fan not working",
		Details:       map[string]any{"issue": "fan"},
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[ticket.Ticket](s.t, w)
}

func TestRating(t *testing.T) {
	s := setupRouter(t)
	s.user("boss", user.RoleAdmin)
	s.student("stu")
	s.student("other")
	tk := s.fileTicket("stu")
	ratePath := fmt.Sprintf("/tickets/%d/rate", tk.ID)

	w := s.do(http.MethodPost, ratePath, "stu", ticket.RateInput{Rating: 4})
	assert.Equal(t, http.StatusBadRequest, w.Code, "not closed yet")

	w = s.do(http.MethodPatch, fmt.Sprintf("/tickets/%d/status", tk.ID), "boss", ticket.StatusInput{Status: "resolved"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resolved := decode[ticket.Ticket](t, w)
	assert.True(t, resolved.Metadata.Data().RatingRequired)

	w = s.do(http.MethodPost, ratePath, "other", ticket.RateInput{Rating: 1})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, ratePath, "stu", ticket.RateInput{Rating: 4, Feedback: "quick fix"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPost, ratePath, "stu", ticket.RateInput{Rating: 1})
	assert.Equal(t, http.StatusConflict, w.Code)

	stored, err := s.repos.Ticket.GetTicketByID(tk.ID)
	require.NoError(t, err)
	meta := stored.Meta()
	require.NotNil(t, meta.Rating)
	assert.Equal(t, 4, meta.Rating.Value)
	assert.False(t, meta.RatingRequired)
}

func TestCampusDeactivation(t *testing.T) {
	s := setupRouter(t)
	s.user("root", user.RoleSuperAdmin)
	_, st := s.student("stu")

	w := s.do(http.MethodDelete, fmt.Sprintf("/admin/hostels/%d", *st.HostelID), "root", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	busy, err := s.repos.Campus.GetUnit(campus.KindHostel, *st.HostelID)
	require.NoError(t, err)
	assert.True(t, busy.Active)

	w = s.do(http.MethodPost, "/admin/hostels", "root", campus.CreateUnitInput{Name: "Empty"})
	require.Equal(t, http.StatusCreated, w.Code)
	empty := decode[campus.Unit](t, w)

	w = s.do(http.MethodDelete, fmt.Sprintf("/admin/hostels/%d", empty.ID), "root", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	got, err := s.repos.Campus.GetUnit(campus.KindHostel, empty.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	w = s.do(http.MethodDelete, fmt.Sprintf("/admin/batches/%d", empty.ID), "root", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBulkClosePartialSuccess(t *testing.T) {
	s := setupRouter(t)
	s.user("boss", user.RoleAdmin)
	s.student("stu")
	a := s.fileTicket("stu")
	missing := a.ID + 100

	w := s.do(http.MethodPost, "/tickets/bulk-close", "boss", ticket.BulkCloseInput{IDs: []uint{a.ID, missing}, Comment: "closing stale tickets"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[ticket.BulkCloseResult](t, w)
	assert.Equal(t, []uint{a.ID}, res.Closed)
	assert.Equal(t, []uint{missing}, res.NotFound)
	assert.Empty(t, res.Errors)

	closed, err := s.repos.Ticket.GetTicketByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, status.Resolved, closed.Status.Value)

	w = s.do(http.MethodGet, fmt.Sprintf("/tickets/%d", a.ID), "stu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[ticket.View](t, w)
	assert.Empty(t, view.Comments, "bulk comment is an internal note")
}

func TestAssignWritesOneOutboxRow(t *testing.T) {
	s := setupRouter(t)
	boss := s.user("boss", user.RoleAdmin)
	s.student("stu")
	tk := s.fileTicket("stu")
	path := fmt.Sprintf("/tickets/%d/assign", tk.ID)

	assignments := func() []outbox.Event {
		var events []outbox.Event
		require.NoError(t, s.db.Where("event_type = ?", outbox.TicketAssignmentUpdated).Order("created_at ASC").Find(&events).Error)
		return events
	}

	staffID := "boss"
	w := s.do(http.MethodPatch, path, "boss", ticket.AssignInput{StaffClerkID: &staffID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	events := assignments()
	require.Len(t, events, 1)
	var p outbox.AssignmentPayload
	require.NoError(t, jsonUnmarshal(events[0].Payload, &p))
	assert.Nil(t, p.OldAssignee)
	require.NotNil(t, p.NewAssignee)
	assert.Equal(t, boss.ID, *p.NewAssignee)

	w = s.do(http.MethodPatch, path, "boss", map[string]any{"staffClerkId": nil})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	events = assignments()
	require.Len(t, events, 2)
	p = outbox.AssignmentPayload{}
	require.NoError(t, jsonUnmarshal(events[1].Payload, &p))
	require.NotNil(t, p.OldAssignee)
	assert.Equal(t, boss.ID, *p.OldAssignee)
	assert.Nil(t, p.NewAssignee)

	stu := "stu"
	w = s.do(http.MethodPatch, path, "boss", ticket.AssignInput{StaffClerkID: &stu})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	ghost := "nobody"
	w = s.do(http.MethodPatch, path, "boss", ticket.AssignInput{StaffClerkID: &ghost})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, assignments(), 2)
}

func TestFilterStatusesSurvivesQueryFailure(t *testing.T) {
	s := setupRouter(t)
	s.student("stu")

	require.NoError(t, s.db.Migrator().DropTable(&status.Status{}))

	w := s.do(http.MethodGet, "/filters/statuses", "stu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Data     []status.Status `json:"data"`
		Degraded bool            `json:"degraded"`
	}](t, w)
	assert.Empty(t, body.Data)
	assert.True(t, body.Degraded)
}

func TestStatusDeleteBlockedWhileReferenced(t *testing.T) {
	s := setupRouter(t)
	s.user("root", user.RoleSuperAdmin)
	s.student("stu")
	tk := s.fileTicket("stu")

	w := s.do(http.MethodDelete, fmt.Sprintf("/admin/ticket-statuses/%d", tk.StatusID), "root", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, fmt.Sprintf("/admin/ticket-statuses/%d/can-delete", tk.StatusID), "root", nil)
	require.Equal(t, http.StatusOK, w.Code)
	check := decode[status.DeleteCheck](t, w)
	assert.False(t, check.Allowed)
	assert.Equal(t, int64(1), check.BlockingTicketCount)
}
