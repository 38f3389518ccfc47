package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type DashboardController struct {
	stats services.StatsService
}

func NewDashboardController(stats services.StatsService) *DashboardController {
	return &DashboardController{stats: stats}
}

// Dashboard godoc
// @Summary Administration dashboard
// @Description Record counts of every catalog table
// @Tags admin
// @Produce json
// @Success 200 {object} services.CatalogStats
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /adm [get]
func (d *DashboardController) Dashboard(ctx *gin.Context) {
	stats, err := d.stats.GetCatalogStats(ctx.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to count catalog records")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to load dashboard"))
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
