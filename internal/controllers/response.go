package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	"github.com/franciscosanchezn/gin-bar-api/internal/validation"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// parseID reads the :id path parameter. An id that cannot be parsed can never
// resolve to a record, so it is answered like a missing one.
func parseID(ctx *gin.Context, notFoundCode, entity string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundError(notFoundCode, entity))
		return 0, false
	}
	return uint(id), true
}

// bindInput decodes a JSON or form encoded body into input
func bindInput(ctx *gin.Context, input interface{}) bool {
	if err := ctx.ShouldBind(input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body",
			map[string]interface{}{"error": err.Error()}))
		return false
	}
	return true
}

// respondError maps a service error to its HTTP response
func respondError(ctx *gin.Context, err error, notFoundCode, entity string) {
	if fieldErrs, ok := validation.AsErrors(err); ok {
		ctx.JSON(http.StatusBadRequest, models.NewValidationError(fieldErrs.Details()))
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, models.NewNotFoundError(notFoundCode, entity))
	case errors.Is(err, services.ErrConflict):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict,
			entity+" conflicts with an existing record"))
	default:
		log.WithError(err).WithFields(log.Fields{
			"entity": entity,
			"path":   ctx.Request.URL.Path,
		}).Error("Request failed")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer,
			"Failed to process "+entity))
	}
}
