package application

import (
	"context"
	"testing"
	"time"

	"github.com/linskybing/campus-helpdesk/internal/cache"
	"github.com/linskybing/campus-helpdesk/internal/domain/campus"
	"github.com/linskybing/campus-helpdesk/internal/domain/category"
	"github.com/linskybing/campus-helpdesk/internal/domain/outbox"
	"github.com/linskybing/campus-helpdesk/internal/domain/student"
	"github.com/linskybing/campus-helpdesk/internal/domain/ticket"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/linskybing/campus-helpdesk/internal/repository"
	"github.com/linskybing/campus-helpdesk/internal/testutils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testCtx = context.Background()

// fixture wires every service against a private SQLite database.
type fixture struct {
	t     *testing.T
	db    *gorm.DB
	repos *repository.Repos
	cache *cache.Memory
	svc   *Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(db)
	mem := cache.NewMemory()
	svc := New(repos, Deps{
		Cache:        mem,
		EmailDomain:  "college.edu",
		HierarchyTTL: time.Minute,
		StatusTTL:    time.Minute,
		RoleTTL:      time.Minute,
	})
	return &fixture{t: t, db: db, repos: repos, cache: mem, svc: svc}
}

func actorOf(u user.User) user.Actor {
	return user.Actor{UserID: u.ID, ExternalID: u.ExternalID, Role: u.Role}
}

func (f *fixture) user(subject string, role user.Role) user.User {
	f.t.Helper()
	u := user.User{ExternalID: subject, FullName: subject, Email: subject + "@college.edu", Role: role, Active: true}
	require.NoError(f.t, f.repos.User.CreateUser(&u))
	return u
}

func (f *fixture) unit(kind campus.Kind, name string) campus.Unit {
	f.t.Helper()
	u := campus.Unit{Kind: kind, Name: name, Active: true}
	require.NoError(f.t, f.repos.Campus.CreateUnit(&u))
	return u
}

// student creates a student with a complete profile in a fresh hostel.
func (f *fixture) student(subject string) (user.User, student.Student) {
	f.t.Helper()
	u := f.user(subject, user.RoleStudent)
	hostel := f.unit(campus.KindHostel, "Hostel "+subject)
	st := student.Student{UserID: u.ID, RollNo: "R-" + subject, RoomNumber: "101", HostelID: &hostel.ID, Active: true}
	require.NoError(f.t, f.repos.Student.CreateStudent(&st))
	return u, st
}

// category creates "Electrical" with subcategory "Fan" carrying a required
// text field "issue".
func (f *fixture) category() (category.Category, category.Subcategory) {
	f.t.Helper()
	c := category.Category{Name: "Electrical", Slug: "electrical", Active: true, SLAHours: 48}
	require.NoError(f.t, f.repos.Category.CreateCategory(&c))
	sc := category.Subcategory{CategoryID: c.ID, Name: "Fan", Slug: "fan", Active: true}
	require.NoError(f.t, f.repos.Category.CreateSubcategory(&sc))
	field := category.Field{SubcategoryID: sc.ID, Name: "Issue", Slug: "issue", FieldType: category.TypeText, Required: true, Active: true}
	require.NoError(f.t, f.repos.Category.CreateField(&field))
	return c, sc
}

// ticket files a ticket for owner through intake.
func (f *fixture) ticket(owner user.User, c category.Category, sc category.Subcategory) ticket.Ticket {
	f.t.Helper()
	tk, err := f.svc.Intake.CreateTicket(testCtx, actorOf(owner), ticket.CreateTicketInput{
		CategoryID:    c.ID,
		SubcategoryID: &sc.ID,
		Description:   "Fan not working",
		Details:       map[string]any{"issue": "fan"},
	})
	require.NoError(f.t, err)
	return tk
}

func (f *fixture) reload(id uint) ticket.Ticket {
	f.t.Helper()
	tk, err := f.repos.Ticket.GetTicketByID(id)
	require.NoError(f.t, err)
	return tk
}

func (f *fixture) events(eventType string) []outbox.Event {
	f.t.Helper()
	var list []outbox.Event
	require.NoError(f.t, f.db.Where("event_type = ?", eventType).Order("created_at ASC").Find(&list).Error)
	return list
}
