package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/campus-helpdesk/internal/application"
	"github.com/linskybing/campus-helpdesk/internal/domain/student"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/linskybing/campus-helpdesk/pkg/response"
)

type StudentHandler struct {
	students *application.StudentService
	identity *application.IdentityService
}

func NewStudentHandler(students *application.StudentService, identity *application.IdentityService) *StudentHandler {
	return &StudentHandler{students: students, identity: identity}
}

// ListStudents godoc
// @Summary List students
// @Tags admin-students
// @Security BearerAuth
// @Produce json
// @Param hostel_id query int false "Hostel ID"
// @Param active query bool false "Active flag"
// @Param search query string false "Roll number, name or email"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} response.PageResponse{data=[]student.Student}
// @Router /admin/students [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var filter student.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}
	list, total, err := h.students.List(c.Request.Context(), actor, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	page, limit := filter.Page, filter.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	c.JSON(http.StatusOK, response.PageResponse{Data: list, Total: total, Page: page, Limit: limit})
}

// DeactivateStudents godoc
// @Summary Deactivate students
// @Description Soft deactivation; tickets are kept. Every id appears in exactly one bucket.
// @Tags admin-students
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body student.DeactivateInput true "Student ids"
// @Success 200 {object} student.DeactivateResult
// @Failure 403 {object} response.ErrorResponse
// @Router /admin/students/deactivate [post]
func (h *StudentHandler) DeactivateStudents(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var input student.DeactivateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	res, err := h.students.Deactivate(c.Request.Context(), actor, input.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateRole godoc
// @Summary Change a user's role
// @Tags admin-users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.UpdateRoleInput true "Role"
// @Success 200 {object} user.User
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /admin/users/{id}/role [patch]
func (h *StudentHandler) UpdateRole(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idOrAbort(c)
	if !ok {
		return
	}
	var input user.UpdateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	u, err := h.identity.UpdateRole(c.Request.Context(), actor, id, input.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
