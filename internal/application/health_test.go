package application

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBucket struct{ err error }

func (b stubBucket) ProbeBucket(context.Context) error { return b.err }

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	t.Run("all healthy", func(t *testing.T) {
		dbMock.ExpectPing()
		hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer hook.Close()

		svc := NewHealthService(db, stubBucket{}, "smtp.test:587", hook.URL)
		svc.Dial = func(context.Context, string, string) (net.Conn, error) {
			client, server := net.Pipe()
			_ = server.Close()
			return client, nil
		}
		report := svc.Check(context.Background())
		assert.Equal(t, HealthHealthy, report.Status)
		assert.True(t, report.Ready())
		assert.Len(t, report.Checks, 4)
	})

	t.Run("optional failure degrades", func(t *testing.T) {
		dbMock.ExpectPing()
		svc := NewHealthService(db, nil, "smtp.test:587", "")
		svc.Dial = func(context.Context, string, string) (net.Conn, error) {
			return nil, errors.New("connection refused")
		}
		report := svc.Check(context.Background())
		assert.Equal(t, HealthDegraded, report.Status)
		assert.True(t, report.Ready())
		assert.Equal(t, HealthDisabled, report.Checks["storage"].Status)
		assert.Equal(t, HealthDisabled, report.Checks["messaging"].Status)
		assert.Equal(t, "connection refused", report.Checks["email"].Error)
	})

	t.Run("required failure is unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db down"))
		hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer hook.Close()

		svc := NewHealthService(db, stubBucket{err: errors.New("bucket missing")}, "", hook.URL)
		report := svc.Check(context.Background())
		assert.Equal(t, HealthUnhealthy, report.Status)
		assert.False(t, report.Ready())
		assert.Equal(t, HealthUnhealthy, report.Checks["database"].Status)
		assert.Equal(t, HealthUnhealthy, report.Checks["messaging"].Status)
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
}
