package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/campus-helpdesk/internal/application"
	"github.com/linskybing/campus-helpdesk/internal/domain/student"
	"github.com/linskybing/campus-helpdesk/pkg/response"
	"github.com/linskybing/campus-helpdesk/pkg/utils"
)

type MeHandler struct {
	identity *application.IdentityService
	students *application.StudentService
}

func NewMeHandler(identity *application.IdentityService, students *application.StudentService) *MeHandler {
	return &MeHandler{identity: identity, students: students}
}

// Onboard godoc
// @Summary Register the caller as a student
// @Tags me
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body student.OnboardInput true "Profile"
// @Success 201 {object} user.MeDTO
// @Failure 400 {object} response.FieldErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /me [post]
func (h *MeHandler) Onboard(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	var input student.OnboardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	me, err := h.identity.Onboard(c.Request.Context(), claims.Subject, claims.Email, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, me)
}

// GetMe godoc
// @Summary Current user
// @Tags me
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.MeDTO
// @Failure 403 {object} response.ErrorResponse
// @Router /me [get]
func (h *MeHandler) GetMe(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
		return
	}
	me, err := h.identity.Me(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, me)
}

// GetProfile godoc
// @Summary Current student's profile
// @Tags me
// @Security BearerAuth
// @Produce json
// @Success 200 {object} student.Student
// @Failure 404 {object} response.ErrorResponse
// @Router /me/profile [get]
func (h *MeHandler) GetProfile(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
		return
	}
	st, err := h.students.GetProfile(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// UpdateProfile godoc
// @Summary Update the current student's profile
// @Tags me
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body student.UpdateProfileInput true "Changes"
// @Success 200 {object} student.Student
// @Failure 400 {object} response.FieldErrorResponse
// @Router /me/profile [put]
func (h *MeHandler) UpdateProfile(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
		return
	}
	var input student.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	st, err := h.students.UpdateProfile(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
