package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/campus-helpdesk/internal/cache"
	"github.com/linskybing/campus-helpdesk/internal/domain/campus"
	"github.com/linskybing/campus-helpdesk/internal/domain/student"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/linskybing/campus-helpdesk/internal/repository"
	"github.com/linskybing/campus-helpdesk/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupIdentityMocks(t *testing.T) (*IdentityService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	return NewIdentityService(repos, cache.NewMemory(), time.Minute), mockUser
}

// --------------------- Resolve ---------------------
func TestResolve_CachesRole(t *testing.T) {
	svc, mockUser := setupIdentityMocks(t)
	mockUser.EXPECT().GetUserByExternalID("user_a").
		Return(user.User{ID: 4, ExternalID: "user_a", Role: user.RoleAdmin, Active: true}, nil).
		Times(1)

	for range 3 {
		actor, err := svc.Resolve(context.Background(), "user_a")
		require.NoError(t, err)
		assert.Equal(t, uint(4), actor.UserID)
		assert.Equal(t, user.RoleAdmin, actor.Role)
	}
}

func TestResolve_Failures(t *testing.T) {
	svc, mockUser := setupIdentityMocks(t)

	_, err := svc.Resolve(context.Background(), " ")
	assert.ErrorIs(t, err, ErrUnauthorized)

	mockUser.EXPECT().GetUserByExternalID("ghost").Return(user.User{}, gorm.ErrRecordNotFound)
	_, err = svc.Resolve(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUnknownIdentity)

	mockUser.EXPECT().GetUserByExternalID("gone").Return(user.User{ID: 2, Active: false}, nil)
	_, err = svc.Resolve(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrInactiveAccount)

	boom := errors.New("db down")
	mockUser.EXPECT().GetUserByExternalID("flaky").Return(user.User{}, boom)
	_, err = svc.Resolve(context.Background(), "flaky")
	assert.ErrorIs(t, err, boom)
}

// --------------------- UpdateRole ---------------------
func TestUpdateRole_InvalidatesCache(t *testing.T) {
	svc, mockUser := setupIdentityMocks(t)
	root := user.Actor{UserID: 1, Role: user.RoleSuperAdmin}

	mockUser.EXPECT().GetUserByExternalID("clerk").
		Return(user.User{ID: 5, ExternalID: "clerk", Role: user.RoleCommittee, Active: true}, nil)
	actor, err := svc.Resolve(context.Background(), "clerk")
	require.NoError(t, err)
	assert.Equal(t, user.RoleCommittee, actor.Role)

	mockUser.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5, ExternalID: "clerk", Role: user.RoleCommittee, Active: true}, nil)
	mockUser.EXPECT().UpdateRole(uint(5), user.RoleAdmin).Return(nil)
	_, err = svc.UpdateRole(context.Background(), root, 5, user.RoleAdmin)
	require.NoError(t, err)

	mockUser.EXPECT().GetUserByExternalID("clerk").
		Return(user.User{ID: 5, ExternalID: "clerk", Role: user.RoleAdmin, Active: true}, nil)
	actor, err = svc.Resolve(context.Background(), "clerk")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, actor.Role)
}

func TestUpdateRole_Guards(t *testing.T) {
	svc, _ := setupIdentityMocks(t)
	root := user.Actor{UserID: 1, Role: user.RoleSuperAdmin}

	_, err := svc.UpdateRole(context.Background(), user.Actor{UserID: 2, Role: user.RoleAdmin}, 3, user.RoleAdmin)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateRole(context.Background(), root, 3, user.Role("janitor"))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateRole(context.Background(), root, 1, user.RoleAdmin)
	assert.ErrorIs(t, err, ErrConflict)
}

// --------------------- Onboard ---------------------
func TestOnboard(t *testing.T) {
	f := newFixture(t)
	hostel := f.unit(campus.KindHostel, "Ganga")
	closed := f.unit(campus.KindHostel, "Closed")
	closed.Active = false
	require.NoError(t, f.repos.Campus.SaveUnit(&closed))

	_, err := f.svc.Identity.Resolve(testCtx, "user_new")
	require.ErrorIs(t, err, ErrUnknownIdentity)

	_, err = f.svc.Identity.Onboard(testCtx, "user_new", "", student.OnboardInput{FullName: "Asha", RollNo: "r1", HostelID: &closed.ID})
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "hostel_id", fe.Field)

	me, err := f.svc.Identity.Onboard(testCtx, "user_new", "asha@college.edu", student.OnboardInput{
		FullName: "Asha Rao", RollNo: "21cs045", RoomNumber: "B-214", HostelID: &hostel.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleStudent, me.Role)
	assert.Equal(t, "asha@college.edu", me.Email)
	st, ok := me.Profile.(student.Student)
	require.True(t, ok)
	assert.Equal(t, "21CS045", st.RollNo)
	assert.True(t, st.IsComplete())

	actor, err := f.svc.Identity.Resolve(testCtx, "user_new")
	require.NoError(t, err, "negative lookup is not cached")
	assert.Equal(t, me.ID, actor.UserID)

	_, err = f.svc.Identity.Onboard(testCtx, "user_new", "", student.OnboardInput{FullName: "Asha", RollNo: "x"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.svc.Identity.Onboard(testCtx, "user_dup", "", student.OnboardInput{FullName: "Ravi", RollNo: "21CS045"})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "roll_no", fe.Field)

	f.user("warden", user.RoleAdmin)
	_, err = f.svc.Identity.Onboard(testCtx, "warden", "", student.OnboardInput{FullName: "W", RollNo: "w1"})
	assert.ErrorIs(t, err, ErrConflict)
}
