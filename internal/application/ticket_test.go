package application

import (
	"testing"

	"github.com/linskybing/campus-helpdesk/internal/domain/committee"
	"github.com/linskybing/campus-helpdesk/internal/domain/status"
	"github.com/linskybing/campus-helpdesk/internal/domain/ticket"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketList_Scope(t *testing.T) {
	f := newFixture(t)
	alice, _ := f.student("alice")
	bob, _ := f.student("bob")
	admin := f.user("boss", user.RoleAdmin)
	member := f.user("cm", user.RoleCommittee)
	outsider := f.user("cm2", user.RoleCommittee)
	c, sc := f.category()

	mine := f.ticket(alice, c, sc)
	f.ticket(alice, c, sc)
	theirs := f.ticket(bob, c, sc)

	cm := committee.Committee{Name: "Electrical committee", Active: true}
	require.NoError(t, f.repos.Committee.CreateCommittee(&cm))
	require.NoError(t, f.repos.Committee.AddMember(cm.ID, member.ID))
	c.CommitteeID = &cm.ID
	require.NoError(t, f.repos.Category.SaveCategory(&c))

	cases := []struct {
		name  string
		actor user.User
		want  int64
	}{
		{"student sees own", alice, 2},
		{"other student sees own", bob, 1},
		{"admin sees all", admin, 3},
		{"committee sees its categories", member, 3},
		{"committee without categories", outsider, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			views, total, err := f.svc.Ticket.List(testCtx, actorOf(tc.actor), ticket.ListFilter{Page: 1, Limit: 20})
			require.NoError(t, err)
			assert.Equal(t, tc.want, total)
			assert.Len(t, views, int(tc.want))
		})
	}

	t.Run("caller cannot widen scope", func(t *testing.T) {
		views, total, err := f.svc.Ticket.List(testCtx, actorOf(alice), ticket.ListFilter{UserID: &bob.ID, Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, v := range views {
			assert.Equal(t, alice.ID, v.UserID)
		}
	})

	t.Run("get outside scope is not found", func(t *testing.T) {
		_, err := f.svc.Ticket.Get(testCtx, actorOf(alice), theirs.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = f.svc.Ticket.Get(testCtx, actorOf(outsider), mine.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		v, err := f.svc.Ticket.Get(testCtx, actorOf(member), mine.ID)
		require.NoError(t, err)
		assert.Equal(t, mine.ID, v.ID)
	})
}

func TestTicketList_StatusFilter(t *testing.T) {
	f := newFixture(t)
	owner, _ := f.student("stu")
	admin := f.user("boss", user.RoleAdmin)
	c, sc := f.category()
	a := f.ticket(owner, c, sc)
	f.ticket(owner, c, sc)

	_, err := f.svc.Workflow.ChangeStatus(testCtx, actorOf(admin), a.ID, ticket.StatusInput{Status: status.InProgress})
	require.NoError(t, err)

	views, total, err := f.svc.Ticket.List(testCtx, actorOf(admin), ticket.ListFilter{Status: "in_progress", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, views, 1)
	assert.Equal(t, a.ID, views[0].ID)

	_, _, err = f.svc.Ticket.List(testCtx, actorOf(admin), ticket.ListFilter{Status: "NOPE"})
	assert.ErrorIs(t, err, ErrValidation)
}
