package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/linskybing/campus-helpdesk/pkg/response"
	"github.com/linskybing/campus-helpdesk/pkg/utils"
)

func createJSON[In any, Out any](c *gin.Context, create func(context.Context, In) (Out, error)) {
	var input In
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	out, err := create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func updateJSON[In any, Out any](c *gin.Context, update func(context.Context, uint, In) (Out, error)) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	var input In
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	out, err := update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func deleteByID(c *gin.Context, remove func(context.Context, uint) error) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	if err := remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func actorOrAbort(c *gin.Context) (user.Actor, bool) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
		return user.Actor{}, false
	}
	return actor, true
}

func idOrAbort(c *gin.Context) (uint, bool) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return 0, false
	}
	return id, true
}
