package application

import (
	"testing"

	"github.com/linskybing/campus-helpdesk/internal/domain/campus"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampusDeactivate(t *testing.T) {
	f := newFixture(t)
	root := actorOf(f.user("root", user.RoleSuperAdmin))
	_, st := f.student("stu")

	err := f.svc.Campus.Deactivate(testCtx, root, campus.KindHostel, *st.HostelID)
	assert.ErrorIs(t, err, ErrHasAssignedStudents)

	inactive := false
	_, err = f.svc.Campus.Update(testCtx, root, campus.KindHostel, *st.HostelID, campus.UpdateUnitInput{Active: &inactive})
	assert.ErrorIs(t, err, ErrHasAssignedStudents)

	u, err := f.repos.Campus.GetUnit(campus.KindHostel, *st.HostelID)
	require.NoError(t, err)
	assert.True(t, u.Active)

	require.NoError(t, f.repos.Student.SetActive([]uint{st.ID}, false))
	require.NoError(t, f.svc.Campus.Deactivate(testCtx, root, campus.KindHostel, *st.HostelID))
	require.NoError(t, f.svc.Campus.Deactivate(testCtx, root, campus.KindHostel, *st.HostelID), "repeat is a no-op")

	u, err = f.repos.Campus.GetUnit(campus.KindHostel, *st.HostelID)
	require.NoError(t, err)
	assert.False(t, u.Active)
}

func TestCampusListAndCreate(t *testing.T) {
	f := newFixture(t)
	root := actorOf(f.user("root", user.RoleSuperAdmin))
	admin := actorOf(f.user("boss", user.RoleAdmin))

	open, err := f.svc.Campus.Create(testCtx, root, campus.KindBatch, campus.CreateUnitInput{Name: " 2025 "})
	require.NoError(t, err)
	assert.Equal(t, "2025", open.Name)
	old, err := f.svc.Campus.Create(testCtx, root, campus.KindBatch, campus.CreateUnitInput{Name: "2019"})
	require.NoError(t, err)
	require.NoError(t, f.svc.Campus.Deactivate(testCtx, root, campus.KindBatch, old.ID))

	_, err = f.svc.Campus.Create(testCtx, admin, campus.KindBatch, campus.CreateUnitInput{Name: "2026"})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = f.svc.Campus.Create(testCtx, root, campus.Kind("wing"), campus.CreateUnitInput{Name: "East"})
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := f.svc.Campus.List(testCtx, admin, campus.KindBatch)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = f.svc.Campus.List(testCtx, root, campus.KindBatch)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
