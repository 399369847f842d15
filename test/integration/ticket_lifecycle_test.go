//go:build integration
// +build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linskybing/campus-helpdesk/internal/domain/category"
	"github.com/linskybing/campus-helpdesk/internal/domain/outbox"
	"github.com/linskybing/campus-helpdesk/internal/domain/status"
	"github.com/linskybing/campus-helpdesk/internal/domain/ticket"
	"github.com/linskybing/campus-helpdesk/internal/notify"
	"github.com/linskybing/campus-helpdesk/internal/repository"
)

func setupCategory(t *testing.T, name string) (category.Category, category.Field) {
	t.Helper()
	root := NewHTTPClient(testCtx.Router, tokenFor("it_root"))

	resp, err := root.POST("/admin/categories", category.CreateCategoryInput{Name: name})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	var cat category.Category
	require.NoError(t, resp.DecodeJSON(&cat))

	resp, err = root.POST("/admin/subcategories", category.CreateSubcategoryInput{CategoryID: cat.ID, Name: "General"})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	var sub category.Subcategory
	require.NoError(t, resp.DecodeJSON(&sub))

	resp, err = root.POST("/admin/fields", category.CreateFieldInput{SubcategoryID: sub.ID, Name: "Issue Type", FieldType: category.TypeSelect, Required: true})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	var field category.Field
	require.NoError(t, resp.DecodeJSON(&field))

	resp, err = root.POST("/admin/field-options", category.CreateOptionInput{FieldID: field.ID, Label: "Electrical"})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	return cat, field
}

func fileTicket(t *testing.T, cat category.Category) ticket.Ticket {
	t.Helper()
	var sub category.Subcategory
	require.NoError(t, testCtx.DB.Where("category_id = ?", cat.ID).First(&sub).Error)

	stu := NewHTTPClient(testCtx.Router, tokenFor("it_student"))
	resp, err := stu.POST("/tickets", ticket.CreateTicketInput{
		CategoryID:    cat.ID,
		SubcategoryID: &sub.ID,
		Description:   "Tube light flickering",
		Details:       map[string]any{"profile": map[string]any{"issueType": "Electrical"}},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	var tk ticket.Ticket
	require.NoError(t, resp.DecodeJSON(&tk))
	return tk
}

func TestTicketLifecycle(t *testing.T) {
	cat, _ := setupCategory(t, "Lifecycle")
	tk := fileTicket(t, cat)
	admin := NewHTTPClient(testCtx.Router, tokenFor("it_admin"))
	stu := NewHTTPClient(testCtx.Router, tokenFor("it_student"))

	staff := "it_admin"
	resp, err := admin.PATCH(fmt.Sprintf("/tickets/%d/assign", tk.ID), ticket.AssignInput{StaffClerkID: &staff})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	resp, err = admin.PATCH(fmt.Sprintf("/tickets/%d/status", tk.ID), ticket.StatusInput{Status: "awaiting_student", Comment: "Which room?"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	resp, err = stu.POST(fmt.Sprintf("/tickets/%d/comments", tk.ID), ticket.CommentInput{Text: "Room 12"})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

	resp, err = admin.PATCH(fmt.Sprintf("/tickets/%d/status", tk.ID), ticket.StatusInput{Status: status.Resolved})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	resp, err = stu.POST(fmt.Sprintf("/tickets/%d/rate", tk.ID), ticket.RateInput{Rating: 5})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	resp, err = stu.GET(fmt.Sprintf("/tickets/%d", tk.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view ticket.View
	require.NoError(t, resp.DecodeJSON(&view))
	assert.Equal(t, status.Resolved, view.Status.Value)
	assert.Len(t, view.Comments, 2)
	require.NotNil(t, view.Metadata.Data().Rating)
}

func TestConcurrentCommentsKeepEveryEvent(t *testing.T) {
	cat, _ := setupCategory(t, "Concurrency")
	tk := fileTicket(t, cat)
	admin := NewHTTPClient(testCtx.Router, tokenFor("it_admin"))

	const writers = 8
	var wg sync.WaitGroup
	codes := make([]int, writers)
	for i := range writers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := admin.POST(fmt.Sprintf("/tickets/%d/comments", tk.ID), ticket.CommentInput{Text: fmt.Sprintf("note %d", i)})
			if err == nil {
				codes[i] = resp.StatusCode
			}
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusCreated, code)
	}

	var n int64
	require.NoError(t, testCtx.DB.Model(&outbox.Event{}).
		Where("event_type = ? AND payload->>'ticket_id' = ?", outbox.TicketCommentAdded, fmt.Sprint(tk.ID)).
		Count(&n).Error)
	assert.Equal(t, int64(writers), n)

	stored, err := testCtx.Repos.Ticket.GetTicketByID(tk.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.Meta().Comments)
}

func TestOutboxRelayDeliversToWebhook(t *testing.T) {
	cat, _ := setupCategory(t, "Relay")
	fileTicket(t, cat)

	var mu sync.Mutex
	var seen []string
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		mu.Lock()
		seen = append(seen, body.Type)
		mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	}))
	defer hook.Close()

	relay := notify.NewRelay(repository.NewOutboxRepo(testCtx.DB), notify.NewWebhookDispatcher(hook.URL, 0), 500)
	stats, err := relay.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Failed)
	assert.Positive(t, stats.Delivered)

	mu.Lock()
	assert.Contains(t, seen, outbox.TicketCreated)
	mu.Unlock()

	pending, err := testCtx.Repos.Outbox.PendingEvents(time.Now().Add(time.Hour), 500)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRoleCacheInvalidationAcrossRedis(t *testing.T) {
	u := testCtx.Admin
	committee := NewHTTPClient(testCtx.Router, tokenFor("it_admin"))
	root := NewHTTPClient(testCtx.Router, tokenFor("it_root"))

	resp, err := committee.GET("/admin/students")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = root.PATCH(fmt.Sprintf("/admin/users/%d/role", u.ID), map[string]string{"role": "committee"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	resp, err = committee.GET("/admin/students")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = root.PATCH(fmt.Sprintf("/admin/users/%d/role", u.ID), map[string]string{"role": "admin"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
