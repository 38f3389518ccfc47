package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	"github.com/gin-gonic/gin"
)

const waterPipeEntity = "Water pipe"

type WaterPipeController struct {
	service services.WaterPipeService
}

func NewWaterPipeController(service services.WaterPipeService) *WaterPipeController {
	return &WaterPipeController{service: service}
}

// ListWaterPipes godoc
// @Summary List water pipes
// @Tags admin-water-pipes
// @Produce json
// @Success 200 {array} models.WaterPipe
// @Security BearerAuth
// @Router /adm/water-pipes [get]
func (c *WaterPipeController) ListWaterPipes(ctx *gin.Context) {
	pipes, err := c.service.GetAllWaterPipes(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, models.ErrWaterPipeNotFound, waterPipeEntity)
		return
	}
	ctx.JSON(http.StatusOK, pipes)
}

// GetWaterPipe godoc
// @Summary Get water pipe by ID
// @Tags admin-water-pipes
// @Produce json
// @Param id path int true "Water pipe ID"
// @Success 200 {object} models.WaterPipe
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /adm/water-pipes/{id} [get]
func (c *WaterPipeController) GetWaterPipe(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrWaterPipeNotFound, waterPipeEntity)
	if !ok {
		return
	}
	pipe, err := c.service.GetWaterPipeByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, models.ErrWaterPipeNotFound, waterPipeEntity)
		return
	}
	ctx.JSON(http.StatusOK, pipe)
}

// CreateWaterPipe godoc
// @Summary Create a water pipe
// @Tags admin-water-pipes
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param pipe body services.WaterPipeInput true "Water pipe"
// @Success 201 {object} models.WaterPipe
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /adm/water-pipes [post]
func (c *WaterPipeController) CreateWaterPipe(ctx *gin.Context) {
	var input services.WaterPipeInput
	if !bindInput(ctx, &input) {
		return
	}
	pipe, err := c.service.CreateWaterPipe(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err, models.ErrWaterPipeNotFound, waterPipeEntity)
		return
	}
	ctx.JSON(http.StatusCreated, pipe)
}

// UpdateWaterPipe godoc
// @Summary Update a water pipe
// @Tags admin-water-pipes
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Water pipe ID"
// @Param pipe body services.WaterPipeInput true "Water pipe"
// @Success 200 {object} models.WaterPipe
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /adm/water-pipes/{id} [put]
func (c *WaterPipeController) UpdateWaterPipe(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrWaterPipeNotFound, waterPipeEntity)
	if !ok {
		return
	}
	var input services.WaterPipeInput
	if !bindInput(ctx, &input) {
		return
	}
	pipe, err := c.service.UpdateWaterPipe(ctx.Request.Context(), id, input)
	if err != nil {
		respondError(ctx, err, models.ErrWaterPipeNotFound, waterPipeEntity)
		return
	}
	ctx.JSON(http.StatusOK, pipe)
}

// DeleteWaterPipe godoc
// @Summary Delete a water pipe
// @Tags admin-water-pipes
// @Param id path int true "Water pipe ID"
// @Success 204 "Water pipe deleted"
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /adm/water-pipes/{id} [delete]
func (c *WaterPipeController) DeleteWaterPipe(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrWaterPipeNotFound, waterPipeEntity)
	if !ok {
		return
	}
	if err := c.service.DeleteWaterPipe(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, models.ErrWaterPipeNotFound, waterPipeEntity)
		return
	}
	ctx.Status(http.StatusNoContent)
}
