package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/campus-helpdesk/internal/application"
	"github.com/linskybing/campus-helpdesk/internal/domain/campus"
	"github.com/linskybing/campus-helpdesk/pkg/response"
)

// CampusHandler serves hostels, batches and class sections. Each method
// returns a handler bound to one unit kind.
type CampusHandler struct {
	service *application.CampusService
}

func NewCampusHandler(service *application.CampusService) *CampusHandler {
	return &CampusHandler{service: service}
}

// List godoc
// @Summary List hostels, batches or class sections
// @Tags admin-campus
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.ListResponse{data=[]campus.Unit}
// @Router /admin/hostels [get]
// @Router /admin/batches [get]
// @Router /admin/sections [get]
func (h *CampusHandler) List(kind campus.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := actorOrAbort(c)
		if !ok {
			return
		}
		list, err := h.service.List(c.Request.Context(), actor, kind)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.ListResponse{Data: list})
	}
}

// Create godoc
// @Summary Create a hostel, batch or class section
// @Tags admin-campus
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body campus.CreateUnitInput true "Unit"
// @Success 201 {object} campus.Unit
// @Failure 400 {object} response.ErrorResponse "Duplicate name"
// @Router /admin/hostels [post]
// @Router /admin/batches [post]
// @Router /admin/sections [post]
func (h *CampusHandler) Create(kind campus.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := actorOrAbort(c)
		if !ok {
			return
		}
		var input campus.CreateUnitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindError(c, err)
			return
		}
		u, err := h.service.Create(c.Request.Context(), actor, kind, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

// Update godoc
// @Summary Update a hostel, batch or class section
// @Tags admin-campus
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Unit ID"
// @Param input body campus.UpdateUnitInput true "Changes"
// @Success 200 {object} campus.Unit
// @Failure 409 {object} response.ErrorResponse "Unit has assigned students"
// @Router /admin/hostels/{id} [patch]
// @Router /admin/batches/{id} [patch]
// @Router /admin/sections/{id} [patch]
func (h *CampusHandler) Update(kind campus.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := actorOrAbort(c)
		if !ok {
			return
		}
		id, ok := idOrAbort(c)
		if !ok {
			return
		}
		var input campus.UpdateUnitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindError(c, err)
			return
		}
		u, err := h.service.Update(c.Request.Context(), actor, kind, id, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// Deactivate godoc
// @Summary Deactivate a hostel, batch or class section
// @Tags admin-campus
// @Security BearerAuth
// @Param id path int true "Unit ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Unit has assigned students"
// @Router /admin/hostels/{id} [delete]
// @Router /admin/batches/{id} [delete]
// @Router /admin/sections/{id} [delete]
func (h *CampusHandler) Deactivate(kind campus.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := actorOrAbort(c)
		if !ok {
			return
		}
		id, ok := idOrAbort(c)
		if !ok {
			return
		}
		if err := h.service.Deactivate(c.Request.Context(), actor, kind, id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
