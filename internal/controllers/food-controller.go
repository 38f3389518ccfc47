package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	"github.com/gin-gonic/gin"
)

const foodEntity = "Food"

// FoodController handles the administration of food
type FoodController struct {
	service services.FoodService
}

func NewFoodController(service services.FoodService) *FoodController {
	return &FoodController{service: service}
}

// ListFood godoc
// @Summary List food
// @Tags admin-food
// @Produce json
// @Success 200 {array} models.Food
// @Security BearerAuth
// @Router /adm/food [get]
func (c *FoodController) ListFood(ctx *gin.Context) {
	foods, err := c.service.GetAllFoods(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, models.ErrFoodNotFound, foodEntity)
		return
	}
	ctx.JSON(http.StatusOK, foods)
}

// GetFood godoc
// @Summary Get food by ID
// @Tags admin-food
// @Produce json
// @Param id path int true "Food ID"
// @Success 200 {object} models.Food
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /adm/food/{id} [get]
func (c *FoodController) GetFood(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrFoodNotFound, foodEntity)
	if !ok {
		return
	}
	food, err := c.service.GetFoodByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, models.ErrFoodNotFound, foodEntity)
		return
	}
	ctx.JSON(http.StatusOK, food)
}

// CreateFood godoc
// @Summary Create food
// @Tags admin-food
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param food body services.FoodInput true "Food"
// @Success 201 {object} models.Food
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /adm/food [post]
func (c *FoodController) CreateFood(ctx *gin.Context) {
	var input services.FoodInput
	if !bindInput(ctx, &input) {
		return
	}
	food, err := c.service.CreateFood(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err, models.ErrFoodNotFound, foodEntity)
		return
	}
	ctx.JSON(http.StatusCreated, food)
}

// UpdateFood godoc
// @Summary Update food
// @Tags admin-food
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Food ID"
// @Param food body services.FoodInput true "Food"
// @Success 200 {object} models.Food
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /adm/food/{id} [put]
func (c *FoodController) UpdateFood(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrFoodNotFound, foodEntity)
	if !ok {
		return
	}
	var input services.FoodInput
	if !bindInput(ctx, &input) {
		return
	}
	food, err := c.service.UpdateFood(ctx.Request.Context(), id, input)
	if err != nil {
		respondError(ctx, err, models.ErrFoodNotFound, foodEntity)
		return
	}
	ctx.JSON(http.StatusOK, food)
}

// DeleteFood godoc
// @Summary Delete food
// @Tags admin-food
// @Param id path int true "Food ID"
// @Success 204 "Food deleted"
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /adm/food/{id} [delete]
func (c *FoodController) DeleteFood(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrFoodNotFound, foodEntity)
	if !ok {
		return
	}
	if err := c.service.DeleteFood(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, models.ErrFoodNotFound, foodEntity)
		return
	}
	ctx.Status(http.StatusNoContent)
}
