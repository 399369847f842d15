package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/campus-helpdesk/internal/domain/outbox"
	"github.com/linskybing/campus-helpdesk/internal/repository"
	"github.com/linskybing/campus-helpdesk/internal/repository/mock"
	"github.com/linskybing/campus-helpdesk/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDispatcher struct {
	fail map[string]error
	sent []string
}

func (s *stubDispatcher) Dispatch(_ context.Context, e outbox.Event) error {
	if err := s.fail[e.ID]; err != nil {
		return err
	}
	s.sent = append(s.sent, e.ID)
	return nil
}

func setupRelay(t *testing.T) (*Relay, *mock.MockOutboxRepo, *stubDispatcher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	repo := mock.NewMockOutboxRepo(ctrl)
	d := &stubDispatcher{fail: map[string]error{}}
	r := NewRelay(repo, d, 10)
	r.Now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return r, repo, d
}

func TestRelayRunOnce(t *testing.T) {
	r, repo, d := setupRelay(t)
	events := []outbox.Event{{ID: "a", EventType: outbox.TicketCreated}, {ID: "b", EventType: outbox.TicketRated}}
	d.fail["b"] = errors.New("connection refused")

	repo.EXPECT().PendingEvents(r.Now(), 10).Return(events, nil)
	repo.EXPECT().MarkProcessed("a", r.Now()).Return(nil)
	repo.EXPECT().RecordFailure("b", "connection refused", r.Now().Add(30*time.Second)).Return(nil)

	stats, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Delivered: 1, Failed: 1}, stats)
	assert.Equal(t, []string{"a"}, d.sent)
}

func TestRelayRunOnce_LoadError(t *testing.T) {
	r, repo, _ := setupRelay(t)
	repo.EXPECT().PendingEvents(r.Now(), 10).Return(nil, errors.New("db down"))

	_, err := r.RunOnce(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestRelayRunOnce_ParksExhaustedEvent(t *testing.T) {
	r, repo, d := setupRelay(t)
	r.MaxAttempts = 3
	d.fail["a"] = errors.New("410 gone")

	repo.EXPECT().PendingEvents(r.Now(), 10).Return([]outbox.Event{{ID: "a", Attempts: 2}}, nil)
	repo.EXPECT().MarkDead("a", "410 gone", r.Now()).Return(nil)

	stats, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Dead: 1}, stats)
}

func TestRelayBackoff(t *testing.T) {
	r := NewRelay(nil, LogDispatcher{}, 10)
	tests := []struct {
		failures int
		want     time.Duration
	}{
		{1, 30 * time.Second},
		{2, time.Minute},
		{4, 4 * time.Minute},
		{8, 32 * time.Minute},
		{9, time.Hour},
		{40, time.Hour},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Backoff(tt.failures), "failures=%d", tt.failures)
	}
}

// Two events that never succeed must not keep a third, deliverable event out
// of a batch of two.
func TestRelayRunOnce_FailingEventsDoNotStarveQueue(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repo := repository.NewOutboxRepo(db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"e0", "e1", "e2"} {
		e, err := outbox.New(outbox.TicketCreated, outbox.TicketPayload{TicketID: uint(i + 1)})
		require.NoError(t, err)
		e.ID = id
		e.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.InsertEvent(&e))
	}

	d := &stubDispatcher{fail: map[string]error{
		"e0": errors.New("bad payload"),
		"e1": errors.New("bad payload"),
	}}
	r := NewRelay(repo, d, 2)
	r.MaxAttempts = 4
	clock := base.Add(time.Minute)
	r.Now = func() time.Time { return clock }

	for range 20 {
		_, err := r.RunOnce(context.Background())
		require.NoError(t, err)
		clock = clock.Add(2 * time.Hour)
	}

	assert.Equal(t, []string{"e2"}, d.sent)

	var events []outbox.Event
	require.NoError(t, db.Order("id ASC").Find(&events).Error)
	require.Len(t, events, 3)
	for _, e := range events[:2] {
		assert.NotNil(t, e.DeadAt, e.ID)
		assert.Nil(t, e.ProcessedAt, e.ID)
		assert.Equal(t, 4, e.Attempts, e.ID)
		assert.Equal(t, "bad payload", e.LastError, e.ID)
	}
	assert.NotNil(t, events[2].ProcessedAt)

	pending, err := repo.PendingEvents(clock, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRelayRunOnce_WaitsForBackoff(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repo := repository.NewOutboxRepo(db)

	e, err := outbox.New(outbox.TicketRated, outbox.TicketPayload{TicketID: 1})
	require.NoError(t, err)
	require.NoError(t, repo.InsertEvent(&e))

	d := &stubDispatcher{fail: map[string]error{e.ID: errors.New("timeout")}}
	r := NewRelay(repo, d, 10)
	clock := e.CreatedAt.Add(time.Second)
	r.Now = func() time.Time { return clock }

	stats, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Failed: 1}, stats)

	clock = clock.Add(10 * time.Second)
	stats, err = r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{}, stats, "not due before the backoff elapses")

	delete(d.fail, e.ID)
	clock = clock.Add(time.Minute)
	stats, err = r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Delivered: 1}, stats)
	assert.Equal(t, []string{e.ID}, d.sent)
}

func TestRelayPurge(t *testing.T) {
	r, repo, _ := setupRelay(t)
	repo.EXPECT().PurgeProcessed(r.Now().AddDate(0, 0, -30)).Return(int64(4), nil)

	n, err := r.Purge(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	n, err = r.Purge(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWebhookDispatcher(t *testing.T) {
	var got webhookBody
	var key string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		key = req.Header.Get("Idempotency-Key")
		_ = json.NewDecoder(req.Body).Decode(&got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	e, err := outbox.New(outbox.TicketStatusChanged, outbox.StatusPayload{TicketID: 7, From: "OPEN", To: "RESOLVED"})
	require.NoError(t, err)

	d := NewWebhookDispatcher(srv.URL, time.Second)
	require.NoError(t, d.Dispatch(context.Background(), e))
	assert.Equal(t, e.ID, key)
	assert.Equal(t, outbox.TicketStatusChanged, got.Type)
	assert.JSONEq(t, string(e.Payload), string(got.Payload))
}

func TestWebhookDispatcher_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	d := NewWebhookDispatcher(srv.URL, time.Second)
	err := d.Dispatch(context.Background(), outbox.Event{ID: "x", Payload: []byte(`{}`)})
	assert.ErrorContains(t, err, "502")
}
