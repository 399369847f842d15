package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/campus-helpdesk/internal/application"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/linskybing/campus-helpdesk/internal/repository"
	"github.com/linskybing/campus-helpdesk/pkg/response"
	"github.com/linskybing/campus-helpdesk/pkg/utils"
)

// Auth resolves the caller's role from the database and gates routes on it.
// Token claims never carry authorization.
type Auth struct {
	repos    *repository.Repos
	identity *application.IdentityService
}

func NewAuth(repos *repository.Repos, identity *application.IdentityService) *Auth {
	return &Auth{repos: repos, identity: identity}
}

// Identify stores the actor for the token subject. Unknown subjects and
// inactive accounts are refused.
func (a *Auth) Identify() gin.HandlerFunc {
	return a.identify(false)
}

// IdentifyOptional lets unknown subjects through without an actor, for
// onboarding.
func (a *Auth) IdentifyOptional() gin.HandlerFunc {
	return a.identify(true)
}

func (a *Auth) identify(allowUnknown bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}

		actor, err := a.identity.Resolve(c.Request.Context(), claims.Subject)
		switch {
		case err == nil:
			c.Set(utils.ActorKey, actor)
		case errors.Is(err, application.ErrUnknownIdentity) && allowUnknown:
		case errors.Is(err, application.ErrUnknownIdentity):
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "account not registered"})
			return
		case errors.Is(err, application.ErrInactiveAccount):
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "account is inactive"})
			return
		default:
			slog.ErrorContext(c.Request.Context(), "identity lookup failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
			return
		}
		c.Next()
	}
}

// RequireRoles refuses the request before the handler runs unless the
// actor holds one of roles.
func (a *Auth) RequireRoles(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := utils.GetActorFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
			return
		}
		if !slices.Contains(roles, actor.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
			return
		}
		c.Next()
	}
}

// RequireCompleteProfile lets a student through only with an active,
// complete profile.
func (a *Auth) RequireCompleteProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := utils.GetActorFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
			return
		}
		st, err := a.repos.Student.GetStudentByUserID(actor.UserID)
		if repository.IsNotFound(err) || (err == nil && (!st.Active || !st.IsComplete())) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: application.ErrProfileIncomplete.Error()})
			return
		}
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "profile lookup failed", "user_id", actor.UserID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
			return
		}
		c.Next()
	}
}

// LoggingMiddleware tags each request with an id and logs one line when it
// completes.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Log(c.Request.Context(), level, "request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}

func CORSMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
