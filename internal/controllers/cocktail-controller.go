package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	"github.com/gin-gonic/gin"
)

const cocktailEntity = "Cocktail"

// CocktailController handles HTTP requests related to cocktails
type CocktailController interface {
	// ListCocktails retrieves all cocktails
	ListCocktails(c *gin.Context)
	// GetCocktail retrieves a cocktail by its ID
	GetCocktail(c *gin.Context)
	// CreateCocktail creates a new cocktail
	CreateCocktail(c *gin.Context)
	// UpdateCocktail updates an existing cocktail
	UpdateCocktail(c *gin.Context)
	// DeleteCocktail deletes a cocktail by its ID
	DeleteCocktail(c *gin.Context)
}

type cocktailController struct {
	service services.CocktailService
}

// NewCocktailController creates a new instance of CocktailController
func NewCocktailController(service services.CocktailService) CocktailController {
	return &cocktailController{service: service}
}

// ListCocktails godoc
// @Summary List cocktails
// @Description Get every cocktail with its ingredients and category, ordered by name
// @Tags admin-cocktails
// @Produce json
// @Success 200 {array} models.Cocktail
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /adm/cocktails [get]
func (c *cocktailController) ListCocktails(ctx *gin.Context) {
	cocktails, err := c.service.GetAllCocktails(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, models.ErrCocktailNotFound, cocktailEntity)
		return
	}
	ctx.JSON(http.StatusOK, cocktails)
}

// GetCocktail godoc
// @Summary Get cocktail by ID
// @Tags admin-cocktails
// @Produce json
// @Param id path int true "Cocktail ID"
// @Success 200 {object} models.Cocktail
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /adm/cocktails/{id} [get]
func (c *cocktailController) GetCocktail(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrCocktailNotFound, cocktailEntity)
	if !ok {
		return
	}
	cocktail, err := c.service.GetCocktailByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, models.ErrCocktailNotFound, cocktailEntity)
		return
	}
	ctx.JSON(http.StatusOK, cocktail)
}

// CreateCocktail godoc
// @Summary Create a cocktail
// @Description Name must be unique, price positive, and the category and every ingredient must exist
// @Tags admin-cocktails
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param cocktail body services.CocktailInput true "Cocktail"
// @Success 201 {object} models.Cocktail
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /adm/cocktails [post]
func (c *cocktailController) CreateCocktail(ctx *gin.Context) {
	var input services.CocktailInput
	if !bindInput(ctx, &input) {
		return
	}
	cocktail, err := c.service.CreateCocktail(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err, models.ErrCocktailNotFound, cocktailEntity)
		return
	}
	ctx.JSON(http.StatusCreated, cocktail)
}

// UpdateCocktail godoc
// @Summary Update a cocktail
// @Description Overwrites every field, including the ingredient list
// @Tags admin-cocktails
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Cocktail ID"
// @Param cocktail body services.CocktailInput true "Cocktail"
// @Success 200 {object} models.Cocktail
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /adm/cocktails/{id} [put]
func (c *cocktailController) UpdateCocktail(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrCocktailNotFound, cocktailEntity)
	if !ok {
		return
	}
	var input services.CocktailInput
	if !bindInput(ctx, &input) {
		return
	}
	cocktail, err := c.service.UpdateCocktail(ctx.Request.Context(), id, input)
	if err != nil {
		respondError(ctx, err, models.ErrCocktailNotFound, cocktailEntity)
		return
	}
	ctx.JSON(http.StatusOK, cocktail)
}

// DeleteCocktail godoc
// @Summary Delete a cocktail
// @Tags admin-cocktails
// @Param id path int true "Cocktail ID"
// @Success 204 "Cocktail deleted"
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /adm/cocktails/{id} [delete]
func (c *cocktailController) DeleteCocktail(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrCocktailNotFound, cocktailEntity)
	if !ok {
		return
	}
	if err := c.service.DeleteCocktail(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, models.ErrCocktailNotFound, cocktailEntity)
		return
	}
	ctx.Status(http.StatusNoContent)
}
