package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/campus-helpdesk/internal/application"
	"github.com/linskybing/campus-helpdesk/internal/domain/ticket"
	"github.com/linskybing/campus-helpdesk/pkg/response"
)

type TicketHandler struct {
	intake   *application.IntakeService
	tickets  *application.TicketService
	workflow *application.WorkflowService
}

func NewTicketHandler(intake *application.IntakeService, tickets *application.TicketService, workflow *application.WorkflowService) *TicketHandler {
	return &TicketHandler{intake: intake, tickets: tickets, workflow: workflow}
}

// CreateTicket godoc
// @Summary File a ticket
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body ticket.CreateTicketInput true "Ticket"
// @Success 201 {object} ticket.Ticket
// @Failure 400 {object} response.FieldErrorResponse
// @Failure 403 {object} response.ErrorResponse "Profile incomplete"
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var input ticket.CreateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.intake.CreateTicket(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// ListTickets godoc
// @Summary List tickets in the caller's scope
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status value"
// @Param category_id query int false "Category ID"
// @Param assignee_id query int false "Assignee user ID"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} response.PageResponse{data=[]ticket.View}
// @Failure 400 {object} response.FieldErrorResponse
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var filter ticket.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}
	views, total, err := h.tickets.List(c.Request.Context(), actor, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	page, limit := filter.Page, filter.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	c.JSON(http.StatusOK, response.PageResponse{Data: views, Total: total, Page: page, Limit: limit})
}

// GetTicket godoc
// @Summary Get a ticket
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} ticket.View
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idOrAbort(c)
	if !ok {
		return
	}
	view, err := h.tickets.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Assign godoc
// @Summary Assign or unassign a ticket
// @Description staffClerkId is the staff member's identity-provider id; null unassigns.
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.AssignInput true "Assignee"
// @Success 200 {object} ticket.Ticket
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Ticket or staff not found"
// @Router /tickets/{id}/assign [patch]
func (h *TicketHandler) Assign(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idOrAbort(c)
	if !ok {
		return
	}
	var input ticket.AssignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.workflow.Assign(c.Request.Context(), actor, id, input.StaffClerkID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// AddComment godoc
// @Summary Comment on a ticket
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.CommentInput true "Comment"
// @Success 201 {object} ticket.Comment
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Comments closed"
// @Router /tickets/{id}/comments [post]
func (h *TicketHandler) AddComment(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idOrAbort(c)
	if !ok {
		return
	}
	var input ticket.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	comment, err := h.workflow.AddComment(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// ChangeStatus godoc
// @Summary Move a ticket to another status
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.StatusInput true "Target status"
// @Success 200 {object} ticket.Ticket
// @Failure 400 {object} response.FieldErrorResponse "Unknown or inactive status"
// @Router /tickets/{id}/status [patch]
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idOrAbort(c)
	if !ok {
		return
	}
	var input ticket.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.workflow.ChangeStatus(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Escalate godoc
// @Summary Escalate a ticket
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.EscalateInput true "Reason"
// @Success 200 {object} ticket.Ticket
// @Failure 409 {object} response.ErrorResponse "Ticket closed"
// @Router /tickets/{id}/escalate [post]
func (h *TicketHandler) Escalate(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idOrAbort(c)
	if !ok {
		return
	}
	var input ticket.EscalateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.workflow.Escalate(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// SetTAT godoc
// @Summary Set or extend the turnaround target
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.TATInput true "Target"
// @Success 200 {object} ticket.Ticket
// @Failure 400 {object} response.FieldErrorResponse
// @Router /tickets/{id}/tat [patch]
func (h *TicketHandler) SetTAT(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idOrAbort(c)
	if !ok {
		return
	}
	var input ticket.TATInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.workflow.SetTAT(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Rate godoc
// @Summary Rate a closed ticket
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.RateInput true "Rating"
// @Success 200 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse "Ticket not closed"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 409 {object} response.ErrorResponse "Already rated"
// @Router /tickets/{id}/rate [post]
func (h *TicketHandler) Rate(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idOrAbort(c)
	if !ok {
		return
	}
	var input ticket.RateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.workflow.Rate(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// BulkClose godoc
// @Summary Close many tickets
// @Description Each ticket closes independently; the result lists closed, missing and failed ids.
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body ticket.BulkCloseInput true "Tickets"
// @Success 200 {object} ticket.BulkCloseResult
// @Failure 400 {object} response.FieldErrorResponse
// @Router /tickets/bulk-close [post]
func (h *TicketHandler) BulkClose(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var input ticket.BulkCloseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	res, err := h.workflow.BulkClose(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
