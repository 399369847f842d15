package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/campus-helpdesk/internal/application"
	"github.com/linskybing/campus-helpdesk/pkg/response"
	"github.com/linskybing/campus-helpdesk/pkg/utils"
)

type StatusHandler struct {
	service *application.StatusService
}

func NewStatusHandler(service *application.StatusService) *StatusHandler {
	return &StatusHandler{service: service}
}

// FilterStatuses godoc
// @Summary Active statuses for filter dropdowns
// @Description Always 200. On a lookup failure data is empty and degraded is true.
// @Tags statuses
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.ListResponse{data=[]status.Status}
// @Router /filters/statuses [get]
func (h *StatusHandler) FilterStatuses(c *gin.Context) {
	out := h.service.ListActiveForFilter(c.Request.Context())
	c.JSON(http.StatusOK, response.ListResponse{Data: out.Value, Degraded: out.Degraded})
}

// ListStatuses godoc
// @Summary List all statuses, including inactive ones
// @Tags admin-statuses
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.ListResponse{data=[]status.Status}
// @Router /admin/ticket-statuses [get]
func (h *StatusHandler) ListStatuses(c *gin.Context) {
	list, err := h.service.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Data: list})
}

// GetStatus godoc
// @Summary Get a status
// @Tags admin-statuses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Status ID"
// @Success 200 {object} status.Status
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/ticket-statuses/{id} [get]
func (h *StatusHandler) GetStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	st, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// CanDelete godoc
// @Summary Check whether a status can be deleted
// @Tags admin-statuses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Status ID"
// @Success 200 {object} status.DeleteCheck
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/ticket-statuses/{id}/can-delete [get]
func (h *StatusHandler) CanDelete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	check, err := h.service.CanDelete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

// CreateStatus godoc
// @Summary Create a status
// @Tags admin-statuses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body status.CreateStatusInput true "Status"
// @Success 201 {object} status.Status
// @Failure 400 {object} response.ErrorResponse "Duplicate value"
// @Router /admin/ticket-statuses [post]
func (h *StatusHandler) CreateStatus(c *gin.Context) {
	createJSON(c, h.service.Create)
}

// UpdateStatus godoc
// @Summary Update a status
// @Tags admin-statuses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Status ID"
// @Param input body status.UpdateStatusInput true "Changes"
// @Success 200 {object} status.Status
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/ticket-statuses/{id} [patch]
func (h *StatusHandler) UpdateStatus(c *gin.Context) {
	updateJSON(c, h.service.Update)
}

// DeleteStatus godoc
// @Summary Delete a status no ticket references
// @Tags admin-statuses
// @Security BearerAuth
// @Param id path int true "Status ID"
// @Success 204
// @Failure 400 {object} response.ErrorResponse "Status in use"
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/ticket-statuses/{id} [delete]
func (h *StatusHandler) DeleteStatus(c *gin.Context) {
	deleteByID(c, h.service.Delete)
}
