package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const categoryEntity = "Category"

// CategoryController handles the administration of categories
type CategoryController struct {
	service services.CategoryService
}

// NewCategoryController creates a new instance of CategoryController
func NewCategoryController(service services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

// ListCategories godoc
// @Summary List categories
// @Description Get every category ordered by name
// @Tags admin-categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /adm/categories [get]
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	categories, err := c.service.GetAllCategories(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, models.ErrCategoryNotFound, categoryEntity)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// GetCategory godoc
// @Summary Get category by ID
// @Tags admin-categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Category
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /adm/categories/{id} [get]
func (c *CategoryController) GetCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrCategoryNotFound, categoryEntity)
	if !ok {
		return
	}
	category, err := c.service.GetCategoryByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, models.ErrCategoryNotFound, categoryEntity)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags admin-categories
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param category body services.CategoryInput true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /adm/categories [post]
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var input services.CategoryInput
	if !bindInput(ctx, &input) {
		return
	}
	category, err := c.service.CreateCategory(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err, models.ErrCategoryNotFound, categoryEntity)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags admin-categories
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Category ID"
// @Param category body services.CategoryInput true "Category"
// @Success 200 {object} models.Category
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /adm/categories/{id} [put]
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrCategoryNotFound, categoryEntity)
	if !ok {
		return
	}
	var input services.CategoryInput
	if !bindInput(ctx, &input) {
		return
	}
	category, err := c.service.UpdateCategory(ctx.Request.Context(), id, input)
	if err != nil {
		respondError(ctx, err, models.ErrCategoryNotFound, categoryEntity)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Deletes the category and every cocktail, food and water pipe that belongs to it
// @Tags admin-categories
// @Param id path int true "Category ID"
// @Success 204 "Category deleted"
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /adm/categories/{id} [delete]
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrCategoryNotFound, categoryEntity)
	if !ok {
		return
	}
	removed, err := c.service.DeleteCategory(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, models.ErrCategoryNotFound, categoryEntity)
		return
	}
	log.WithFields(log.Fields{
		"category_id": id,
		"user_id":     ctx.GetUint("userID"),
		"cocktails":   removed.Cocktails,
		"foods":       removed.Foods,
		"water_pipes": removed.WaterPipes,
	}).Info("Category deleted by administrator")
	ctx.Status(http.StatusNoContent)
}
