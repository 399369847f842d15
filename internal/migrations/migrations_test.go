package migrations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/linskybing/campus-helpdesk/internal/domain/status"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestRun_SeedsDefaultStatusesOnce(t *testing.T) {
	db := openDB(t)

	require.NoError(t, Run(db, ""))
	require.NoError(t, Run(db, ""))

	var rows []status.Status
	require.NoError(t, db.Order("display_order").Find(&rows).Error)
	require.Len(t, rows, 7)

	values := make([]string, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.Value)
		assert.True(t, r.IsActive)
	}
	assert.Equal(t, []string{
		status.Open, status.InProgress, status.AwaitingStudent, status.Escalated,
		status.Reopened, status.Resolved, status.Closed,
	}, values)
	assert.True(t, rows[5].IsFinal)
	assert.False(t, rows[0].IsFinal)
}

func TestRun_KeepsEditedStatus(t *testing.T) {
	db := openDB(t)
	require.NoError(t, Run(db, ""))
	require.NoError(t, db.Model(&status.Status{}).Where("value = ?", status.Open).Update("label", "New").Error)

	require.NoError(t, Run(db, ""))

	var open status.Status
	require.NoError(t, db.Where("value = ?", status.Open).First(&open).Error)
	assert.Equal(t, "New", open.Label)
}

func TestLoadSeed_FileWithSuperAdmins(t *testing.T) {
	db := openDB(t)
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := "statuses:\n  - value: on-hold\n    label: On hold\n    display_order: 9\nsuper_admins:\n  - user_root\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, Run(db, path))

	var onHold status.Status
	require.NoError(t, db.Where("value = ?", "ON_HOLD").First(&onHold).Error)
	assert.Equal(t, "On hold", onHold.Label)

	var root user.User
	require.NoError(t, db.Where("external_id = ?", "user_root").First(&root).Error)
	assert.Equal(t, user.RoleSuperAdmin, root.Role)
}

func TestLoadSeed_MissingFileFallsBack(t *testing.T) {
	seed, err := LoadSeed(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Len(t, seed.Statuses, 7)
}
