package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/campus-helpdesk/internal/api/handlers"
	"github.com/linskybing/campus-helpdesk/internal/api/middleware"
	"github.com/linskybing/campus-helpdesk/internal/application"
	"github.com/linskybing/campus-helpdesk/internal/domain/campus"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/linskybing/campus-helpdesk/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	student    = user.RoleStudent
	admin      = user.RoleAdmin
	superAdmin = user.RoleSuperAdmin
	committee  = user.RoleCommittee
)

func RegisterRoutes(r *gin.Engine, repos *repository.Repos, svc *application.Services, verifier *middleware.Verifier) {
	h := handlers.New(svc)
	authMiddleware := middleware.NewAuth(repos, svc.Identity)

	r.GET("/health", h.Health.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware(verifier))

	authed.POST("/me", authMiddleware.IdentifyOptional(), h.Me.Onboard)

	auth := authed.Group("/")
	auth.Use(authMiddleware.Identify())
	{
		auth.GET("/me", h.Me.GetMe)
		auth.GET("/me/profile", authMiddleware.RequireRoles(student), h.Me.GetProfile)
		auth.PUT("/me/profile", authMiddleware.RequireRoles(student), h.Me.UpdateProfile)

		categories := auth.Group("/categories")
		{
			categories.GET("/list", h.Category.ListCategories)
			categories.GET("/hierarchy", h.Category.GetHierarchy)
			categories.GET("/subcategories", h.Category.GetSubcategories)
		}

		auth.GET("/filters/statuses", h.Status.FilterStatuses)

		tickets := auth.Group("/tickets")
		{
			tickets.POST("", authMiddleware.RequireRoles(student), authMiddleware.RequireCompleteProfile(), h.Ticket.CreateTicket)
			tickets.GET("", h.Ticket.ListTickets)
			tickets.POST("/bulk-close", authMiddleware.RequireRoles(admin, superAdmin), h.Ticket.BulkClose)
			tickets.GET("/:id", h.Ticket.GetTicket)
			tickets.PATCH("/:id/assign", authMiddleware.RequireRoles(admin, superAdmin), h.Ticket.Assign)
			tickets.POST("/:id/comments", authMiddleware.RequireRoles(student, admin, superAdmin, committee), h.Ticket.AddComment)
			tickets.PATCH("/:id/status", authMiddleware.RequireRoles(admin, superAdmin), h.Ticket.ChangeStatus)
			tickets.POST("/:id/escalate", authMiddleware.RequireRoles(student, admin, superAdmin), h.Ticket.Escalate)
			tickets.PATCH("/:id/tat", authMiddleware.RequireRoles(admin, superAdmin), h.Ticket.SetTAT)
			tickets.POST("/:id/rate", authMiddleware.RequireRoles(student), h.Ticket.Rate)
		}

		auth.GET("/committee/tickets", authMiddleware.RequireRoles(committee), h.Ticket.ListTickets)

		staff := auth.Group("/admin")
		staff.Use(authMiddleware.RequireRoles(admin, superAdmin))
		{
			staff.GET("/students", h.Student.ListStudents)
			staff.GET("/hostels", h.Campus.List(campus.KindHostel))
			staff.GET("/batches", h.Campus.List(campus.KindBatch))
			staff.GET("/sections", h.Campus.List(campus.KindClassSection))
		}

		super := auth.Group("/admin")
		super.Use(authMiddleware.RequireRoles(superAdmin))
		{
			super.POST("/students/deactivate", h.Student.DeactivateStudents)
			super.PATCH("/users/:id/role", h.Student.UpdateRole)

			super.POST("/categories", h.Category.CreateCategory)
			super.PATCH("/categories/:id", h.Category.UpdateCategory)
			super.DELETE("/categories/:id", h.Category.DeactivateCategory)
			super.POST("/subcategories", h.Category.CreateSubcategory)
			super.PATCH("/subcategories/:id", h.Category.UpdateSubcategory)
			super.DELETE("/subcategories/:id", h.Category.DeactivateSubcategory)
			super.POST("/sub-subcategories", h.Category.CreateSubSubcategory)
			super.PATCH("/sub-subcategories/:id", h.Category.UpdateSubSubcategory)
			super.DELETE("/sub-subcategories/:id", h.Category.DeactivateSubSubcategory)
			super.POST("/fields", h.Category.CreateField)
			super.PATCH("/fields/:id", h.Category.UpdateField)
			super.DELETE("/fields/:id", h.Category.DeactivateField)
			super.POST("/field-options", h.Category.CreateOption)
			super.PATCH("/field-options/:id", h.Category.UpdateOption)
			super.DELETE("/field-options/:id", h.Category.DeactivateOption)

			super.GET("/ticket-statuses", h.Status.ListStatuses)
			super.POST("/ticket-statuses", h.Status.CreateStatus)
			super.GET("/ticket-statuses/:id", h.Status.GetStatus)
			super.GET("/ticket-statuses/:id/can-delete", h.Status.CanDelete)
			super.PATCH("/ticket-statuses/:id", h.Status.UpdateStatus)
			super.DELETE("/ticket-statuses/:id", h.Status.DeleteStatus)

			for path, kind := range map[string]campus.Kind{
				"/hostels":  campus.KindHostel,
				"/batches":  campus.KindBatch,
				"/sections": campus.KindClassSection,
			} {
				super.POST(path, h.Campus.Create(kind))
				super.PATCH(path+"/:id", h.Campus.Update(kind))
				super.DELETE(path+"/:id", h.Campus.Deactivate(kind))
			}
		}
	}
}
