package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	"github.com/gin-gonic/gin"
)

const ingredientEntity = "Ingredient"

// IngredientController handles the administration of cocktail ingredients
type IngredientController struct {
	service services.IngredientService
}

func NewIngredientController(service services.IngredientService) *IngredientController {
	return &IngredientController{service: service}
}

// ListIngredients godoc
// @Summary List cocktail ingredients
// @Tags admin-ingredients
// @Produce json
// @Success 200 {array} models.CocktailIngredient
// @Security BearerAuth
// @Router /adm/ingredients [get]
func (c *IngredientController) ListIngredients(ctx *gin.Context) {
	ingredients, err := c.service.GetAllIngredients(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, models.ErrIngredientNotFound, ingredientEntity)
		return
	}
	ctx.JSON(http.StatusOK, ingredients)
}

// GetIngredient godoc
// @Summary Get cocktail ingredient by ID
// @Tags admin-ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} models.CocktailIngredient
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /adm/ingredients/{id} [get]
func (c *IngredientController) GetIngredient(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrIngredientNotFound, ingredientEntity)
	if !ok {
		return
	}
	ingredient, err := c.service.GetIngredientByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, models.ErrIngredientNotFound, ingredientEntity)
		return
	}
	ctx.JSON(http.StatusOK, ingredient)
}

// CreateIngredient godoc
// @Summary Create a cocktail ingredient
// @Tags admin-ingredients
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param ingredient body services.IngredientInput true "Ingredient"
// @Success 201 {object} models.CocktailIngredient
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /adm/ingredients [post]
func (c *IngredientController) CreateIngredient(ctx *gin.Context) {
	var input services.IngredientInput
	if !bindInput(ctx, &input) {
		return
	}
	ingredient, err := c.service.CreateIngredient(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err, models.ErrIngredientNotFound, ingredientEntity)
		return
	}
	ctx.JSON(http.StatusCreated, ingredient)
}

// UpdateIngredient godoc
// @Summary Update a cocktail ingredient
// @Tags admin-ingredients
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param ingredient body services.IngredientInput true "Ingredient"
// @Success 200 {object} models.CocktailIngredient
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /adm/ingredients/{id} [put]
func (c *IngredientController) UpdateIngredient(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrIngredientNotFound, ingredientEntity)
	if !ok {
		return
	}
	var input services.IngredientInput
	if !bindInput(ctx, &input) {
		return
	}
	ingredient, err := c.service.UpdateIngredient(ctx.Request.Context(), id, input)
	if err != nil {
		respondError(ctx, err, models.ErrIngredientNotFound, ingredientEntity)
		return
	}
	ctx.JSON(http.StatusOK, ingredient)
}

// DeleteIngredient godoc
// @Summary Delete a cocktail ingredient
// @Description The ingredient is removed from every cocktail that listed it
// @Tags admin-ingredients
// @Param id path int true "Ingredient ID"
// @Success 204 "Ingredient deleted"
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /adm/ingredients/{id} [delete]
func (c *IngredientController) DeleteIngredient(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrIngredientNotFound, ingredientEntity)
	if !ok {
		return
	}
	if err := c.service.DeleteIngredient(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, models.ErrIngredientNotFound, ingredientEntity)
		return
	}
	ctx.Status(http.StatusNoContent)
}
