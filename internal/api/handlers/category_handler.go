package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/campus-helpdesk/internal/application"
	"github.com/linskybing/campus-helpdesk/pkg/response"
)

type CategoryHandler struct {
	hierarchy *application.HierarchyService
	service   *application.CategoryService
}

func NewCategoryHandler(hierarchy *application.HierarchyService, service *application.CategoryService) *CategoryHandler {
	return &CategoryHandler{hierarchy: hierarchy, service: service}
}

// ListCategories godoc
// @Summary List active categories
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.ListResponse{data=[]category.Summary}
// @Failure 500 {object} response.ErrorResponse
// @Router /categories/list [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	list, err := h.hierarchy.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Data: list})
}

// GetHierarchy godoc
// @Summary Full intake hierarchy
// @Description Categories with subcategories, sub-subcategories, fields and options. degraded is true when options could not be loaded.
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.ListResponse{data=[]category.CategoryNode}
// @Failure 500 {object} response.ErrorResponse
// @Router /categories/hierarchy [get]
func (h *CategoryHandler) GetHierarchy(c *gin.Context) {
	tree, err := h.hierarchy.GetHierarchy(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Data: tree.Categories, Degraded: tree.Degraded})
}

// GetSubcategories godoc
// @Summary One category with its subcategory subtree
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param category_id query int true "Category ID"
// @Success 200 {object} response.ListResponse{data=category.CategoryNode}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /categories/subcategories [get]
func (h *CategoryHandler) GetSubcategories(c *gin.Context) {
	raw := c.Query("category_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "category_id is required"})
		return
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid category_id"})
		return
	}
	sub, err := h.hierarchy.GetSubcategoriesForCategory(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Data: sub.Category, Degraded: sub.Degraded})
}

// CreateCategory godoc
// @Summary Create a category
// @Tags admin-categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body category.CreateCategoryInput true "Category"
// @Success 201 {object} category.Category
// @Failure 400 {object} response.FieldErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /admin/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	createJSON(c, h.service.CreateCategory)
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags admin-categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param input body category.UpdateCategoryInput true "Changes"
// @Success 200 {object} category.Category
// @Failure 400 {object} response.FieldErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	updateJSON(c, h.service.UpdateCategory)
}

// DeactivateCategory godoc
// @Summary Deactivate a category
// @Tags admin-categories
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) DeactivateCategory(c *gin.Context) {
	deleteByID(c, h.service.DeactivateCategory)
}

// CreateSubcategory godoc
// @Summary Create a subcategory
// @Tags admin-categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body category.CreateSubcategoryInput true "Subcategory"
// @Success 201 {object} category.Subcategory
// @Failure 400 {object} response.FieldErrorResponse "Duplicate slug or inactive parent"
// @Router /admin/subcategories [post]
func (h *CategoryHandler) CreateSubcategory(c *gin.Context) {
	createJSON(c, h.service.CreateSubcategory)
}

// UpdateSubcategory godoc
// @Summary Update a subcategory
// @Tags admin-categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Subcategory ID"
// @Param input body category.UpdateSubcategoryInput true "Changes"
// @Success 200 {object} category.Subcategory
// @Failure 400 {object} response.FieldErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/subcategories/{id} [patch]
func (h *CategoryHandler) UpdateSubcategory(c *gin.Context) {
	updateJSON(c, h.service.UpdateSubcategory)
}

// DeactivateSubcategory godoc
// @Summary Deactivate a subcategory
// @Tags admin-categories
// @Security BearerAuth
// @Param id path int true "Subcategory ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/subcategories/{id} [delete]
func (h *CategoryHandler) DeactivateSubcategory(c *gin.Context) {
	deleteByID(c, h.service.DeactivateSubcategory)
}

// CreateSubSubcategory godoc
// @Summary Create a sub-subcategory
// @Tags admin-categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body category.CreateSubSubcategoryInput true "Sub-subcategory"
// @Success 201 {object} category.SubSubcategory
// @Failure 400 {object} response.FieldErrorResponse
// @Router /admin/sub-subcategories [post]
func (h *CategoryHandler) CreateSubSubcategory(c *gin.Context) {
	createJSON(c, h.service.CreateSubSubcategory)
}

// UpdateSubSubcategory godoc
// @Summary Update a sub-subcategory
// @Tags admin-categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Sub-subcategory ID"
// @Param input body category.UpdateSubSubcategoryInput true "Changes"
// @Success 200 {object} category.SubSubcategory
// @Router /admin/sub-subcategories/{id} [patch]
func (h *CategoryHandler) UpdateSubSubcategory(c *gin.Context) {
	updateJSON(c, h.service.UpdateSubSubcategory)
}

// DeactivateSubSubcategory godoc
// @Summary Deactivate a sub-subcategory
// @Tags admin-categories
// @Security BearerAuth
// @Param id path int true "Sub-subcategory ID"
// @Success 204
// @Router /admin/sub-subcategories/{id} [delete]
func (h *CategoryHandler) DeactivateSubSubcategory(c *gin.Context) {
	deleteByID(c, h.service.DeactivateSubSubcategory)
}

// CreateField godoc
// @Summary Create a dynamic form field
// @Tags admin-categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body category.CreateFieldInput true "Field"
// @Success 201 {object} category.Field
// @Failure 400 {object} response.FieldErrorResponse
// @Router /admin/fields [post]
func (h *CategoryHandler) CreateField(c *gin.Context) {
	createJSON(c, h.service.CreateField)
}

// UpdateField godoc
// @Summary Update a dynamic form field
// @Tags admin-categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Field ID"
// @Param input body category.UpdateFieldInput true "Changes"
// @Success 200 {object} category.Field
// @Router /admin/fields/{id} [patch]
func (h *CategoryHandler) UpdateField(c *gin.Context) {
	updateJSON(c, h.service.UpdateField)
}

// DeactivateField godoc
// @Summary Deactivate a dynamic form field
// @Tags admin-categories
// @Security BearerAuth
// @Param id path int true "Field ID"
// @Success 204
// @Router /admin/fields/{id} [delete]
func (h *CategoryHandler) DeactivateField(c *gin.Context) {
	deleteByID(c, h.service.DeactivateField)
}

// CreateOption godoc
// @Summary Add an option to a select field
// @Tags admin-categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body category.CreateOptionInput true "Option"
// @Success 201 {object} category.FieldOption
// @Failure 400 {object} response.FieldErrorResponse "Field is not an active select field"
// @Router /admin/field-options [post]
func (h *CategoryHandler) CreateOption(c *gin.Context) {
	createJSON(c, h.service.CreateOption)
}

// UpdateOption godoc
// @Summary Update a field option
// @Tags admin-categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Option ID"
// @Param input body category.UpdateOptionInput true "Changes"
// @Success 200 {object} category.FieldOption
// @Router /admin/field-options/{id} [patch]
func (h *CategoryHandler) UpdateOption(c *gin.Context) {
	updateJSON(c, h.service.UpdateOption)
}

// DeactivateOption godoc
// @Summary Deactivate a field option
// @Tags admin-categories
// @Security BearerAuth
// @Param id path int true "Option ID"
// @Success 204
// @Router /admin/field-options/{id} [delete]
func (h *CategoryHandler) DeactivateOption(c *gin.Context) {
	deleteByID(c, h.service.DeactivateOption)
}
