package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/campus-helpdesk/internal/cache"
	"github.com/linskybing/campus-helpdesk/internal/domain/status"
	"github.com/linskybing/campus-helpdesk/internal/repository"
	"github.com/linskybing/campus-helpdesk/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupStatusServiceMocks(t *testing.T) (*StatusService, *mock.MockStatusRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockStatus := mock.NewMockStatusRepo(ctrl)
	repos := &repository.Repos{
		Status: mockStatus,
	}
	svc := NewStatusService(repos, cache.NewMemory(), time.Minute)
	return svc, mockStatus
}

var seededStatuses = []status.Status{
	{ID: 1, Value: status.Open, Label: "Open", IsActive: true},
	{ID: 2, Value: status.InProgress, Label: "In Progress", IsActive: true},
	{ID: 6, Value: status.Resolved, Label: "Resolved", IsActive: true, IsFinal: true},
}

// --------------------- ListActive ---------------------
func TestListActive_ReadsThroughCache(t *testing.T) {
	svc, mockStatus := setupStatusServiceMocks(t)

	mockStatus.EXPECT().ListActiveStatuses().Return(seededStatuses, nil).Times(1)

	first, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	second, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, second, 3)
}

func TestListActiveForFilter_DegradesOnError(t *testing.T) {
	svc, mockStatus := setupStatusServiceMocks(t)

	mockStatus.EXPECT().ListActiveStatuses().Return(nil, errors.New("relation does not exist"))

	out := svc.ListActiveForFilter(context.Background())
	assert.True(t, out.Degraded)
	assert.NotNil(t, out.Value)
	assert.Empty(t, out.Value)
	assert.Error(t, out.Cause)
}

// --------------------- Resolve ---------------------
func TestResolve_NormalizesValue(t *testing.T) {
	svc, mockStatus := setupStatusServiceMocks(t)
	mockStatus.EXPECT().ListActiveStatuses().Return(seededStatuses, nil)

	st, err := svc.Resolve(context.Background(), "in progress")
	require.NoError(t, err)
	assert.Equal(t, uint(2), st.ID)

	_, err = svc.Resolve(context.Background(), "archived")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Resolve(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNotFound)
}

// --------------------- Create ---------------------
func TestCreateStatus_Duplicate(t *testing.T) {
	svc, mockStatus := setupStatusServiceMocks(t)

	mockStatus.EXPECT().GetStatusByValue(status.Open).Return(seededStatuses[0], nil)

	_, err := svc.Create(context.Background(), status.CreateStatusInput{Value: "open", Label: "Open"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCreateStatus_InvalidatesCache(t *testing.T) {
	svc, mockStatus := setupStatusServiceMocks(t)

	mockStatus.EXPECT().ListActiveStatuses().Return(seededStatuses, nil).Times(2)
	_, err := svc.ListActive(context.Background())
	require.NoError(t, err)

	mockStatus.EXPECT().GetStatusByValue("ON_HOLD").Return(status.Status{}, gorm.ErrRecordNotFound)
	mockStatus.EXPECT().CreateStatus(gomock.Any()).Return(nil)

	created, err := svc.Create(context.Background(), status.CreateStatusInput{Value: "on-hold", Label: "On hold"})
	require.NoError(t, err)
	assert.Equal(t, "ON_HOLD", created.Value)

	_, err = svc.ListActive(context.Background())
	require.NoError(t, err)
}

// --------------------- Delete ---------------------
func TestDeleteStatus_BlockedByTickets(t *testing.T) {
	svc, mockStatus := setupStatusServiceMocks(t)

	mockStatus.EXPECT().GetStatusByID(uint(1)).Return(seededStatuses[0], nil)
	mockStatus.EXPECT().CountTicketsWithStatus(uint(1)).Return(int64(3), nil)

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrStatusInUse)
}

func TestDeleteStatus_Unreferenced(t *testing.T) {
	svc, mockStatus := setupStatusServiceMocks(t)

	mockStatus.EXPECT().GetStatusByID(uint(9)).Return(status.Status{ID: 9, Value: "ON_HOLD"}, nil)
	mockStatus.EXPECT().CountTicketsWithStatus(uint(9)).Return(int64(0), nil)
	mockStatus.EXPECT().DeleteStatus(uint(9)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 9))
}

func TestCanDelete_NotFound(t *testing.T) {
	svc, mockStatus := setupStatusServiceMocks(t)

	mockStatus.EXPECT().GetStatusByID(uint(42)).Return(status.Status{}, gorm.ErrRecordNotFound)

	_, err := svc.CanDelete(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCanDelete_CanonicalStatus(t *testing.T) {
	svc, mockStatus := setupStatusServiceMocks(t)

	mockStatus.EXPECT().GetStatusByID(uint(6)).Return(seededStatuses[2], nil)
	mockStatus.EXPECT().CountTicketsWithStatus(uint(6)).Return(int64(0), nil)

	check, err := svc.CanDelete(6)
	require.NoError(t, err)
	assert.False(t, check.Allowed)
	assert.Zero(t, check.BlockingTicketCount)
	assert.NotEmpty(t, check.Reason)
}

// --------------------- Update ---------------------
func TestUpdateStatus_Deactivate(t *testing.T) {
	off := false

	t.Run("blocked while tickets reference it", func(t *testing.T) {
		svc, mockStatus := setupStatusServiceMocks(t)
		mockStatus.EXPECT().GetStatusByID(uint(9)).Return(status.Status{ID: 9, Value: "ON_HOLD", IsActive: true}, nil)
		mockStatus.EXPECT().CountTicketsWithStatus(uint(9)).Return(int64(2), nil)

		_, err := svc.Update(context.Background(), 9, status.UpdateStatusInput{IsActive: &off})
		assert.ErrorIs(t, err, ErrStatusInUse)
	})

	t.Run("blocked for canonical values", func(t *testing.T) {
		svc, mockStatus := setupStatusServiceMocks(t)
		mockStatus.EXPECT().GetStatusByID(uint(1)).Return(seededStatuses[0], nil)
		mockStatus.EXPECT().CountTicketsWithStatus(uint(1)).Return(int64(0), nil)

		_, err := svc.Update(context.Background(), 1, status.UpdateStatusInput{IsActive: &off})
		assert.ErrorIs(t, err, ErrStatusInUse)
	})

	t.Run("allowed when unused", func(t *testing.T) {
		svc, mockStatus := setupStatusServiceMocks(t)
		mockStatus.EXPECT().GetStatusByID(uint(9)).Return(status.Status{ID: 9, Value: "ON_HOLD", IsActive: true}, nil)
		mockStatus.EXPECT().CountTicketsWithStatus(uint(9)).Return(int64(0), nil)
		mockStatus.EXPECT().SaveStatus(gomock.Any()).Return(nil)

		st, err := svc.Update(context.Background(), 9, status.UpdateStatusInput{IsActive: &off})
		require.NoError(t, err)
		assert.False(t, st.IsActive)
	})

	t.Run("other edits skip the check", func(t *testing.T) {
		svc, mockStatus := setupStatusServiceMocks(t)
		label := "Opened"
		mockStatus.EXPECT().GetStatusByID(uint(1)).Return(seededStatuses[0], nil)
		mockStatus.EXPECT().SaveStatus(gomock.Any()).Return(nil)

		st, err := svc.Update(context.Background(), 1, status.UpdateStatusInput{Label: &label})
		require.NoError(t, err)
		assert.Equal(t, "Opened", st.Label)
	})
}

func TestUpdateStatus_DeactivateKeepsTicketsOnActiveRows(t *testing.T) {
	f := newFixture(t)
	owner, _ := f.student("stu")
	c, sc := f.category()
	tk := f.ticket(owner, c, sc)
	off := false

	_, err := f.svc.Status.Update(testCtx, tk.StatusID, status.UpdateStatusInput{IsActive: &off})
	require.ErrorIs(t, err, ErrStatusInUse)

	stored := f.reload(tk.ID)
	assert.True(t, stored.Status.IsActive)

	second := f.ticket(owner, c, sc)
	assert.Equal(t, status.Open, f.reload(second.ID).Status.Value)
}
