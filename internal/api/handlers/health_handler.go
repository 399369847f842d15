package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/campus-helpdesk/internal/application"
)

type HealthHandler struct {
	service *application.HealthService
}

func NewHealthHandler(service *application.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} application.HealthReport
// @Failure 503 {object} application.HealthReport
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	report := h.service.Check(c.Request.Context())
	code := http.StatusOK
	if !report.Ready() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, report)
}
