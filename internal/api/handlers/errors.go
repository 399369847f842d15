package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/campus-helpdesk/internal/application"
	"github.com/linskybing/campus-helpdesk/pkg/response"
)

// respondError maps service errors onto the HTTP taxonomy. Anything
// unrecognised is logged and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	var fe *application.FieldError
	if errors.As(err, &fe) {
		c.JSON(http.StatusBadRequest, response.FieldErrorResponse{Error: fe.Message, Field: fe.Field})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, application.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, application.ErrForbidden),
		errors.Is(err, application.ErrProfileIncomplete),
		errors.Is(err, application.ErrNotOwner),
		errors.Is(err, application.ErrInactiveAccount),
		errors.Is(err, application.ErrUnknownIdentity):
		status = http.StatusForbidden
	case errors.Is(err, application.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, application.ErrValidation),
		errors.Is(err, application.ErrDuplicate),
		errors.Is(err, application.ErrStatusInUse),
		errors.Is(err, application.ErrTicketNotClosed):
		status = http.StatusBadRequest
	case errors.Is(err, application.ErrConflict),
		errors.Is(err, application.ErrHasAssignedStudents),
		errors.Is(err, application.ErrAlreadyRated),
		errors.Is(err, application.ErrTicketFinal):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString("request_id"),
			"error", err)
		c.JSON(status, response.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}

// respondBindError reports the first failing field of a request body.
func respondBindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		f := ve[0]
		c.JSON(http.StatusBadRequest, response.FieldErrorResponse{
			Error: fmt.Sprintf("%s failed on %s", f.Field(), describeTag(f)),
			Field: strings.ToLower(f.Field()),
		})
		return
	}
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
}

func describeTag(f validator.FieldError) string {
	if f.Param() == "" {
		return f.Tag()
	}
	return f.Tag() + "=" + f.Param()
}
