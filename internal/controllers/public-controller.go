package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/franciscosanchezn/gin-bar-api/internal/config"
	"github.com/franciscosanchezn/gin-bar-api/internal/filters"
	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MainPage is the landing page payload
type MainPage struct {
	Bar            string            `json:"bar"`
	Sections       map[string]string `json:"sections"`
	CheapCocktails []models.Cocktail `json:"cheap_cocktails"`
	CheapFood      []models.Food     `json:"cheap_food"`
}

// CheapList is a cheap menu together with the threshold that produced it
type CheapList[T any] struct {
	MaxPrice decimal.Decimal `json:"max_price"`
	Items    []T             `json:"items"`
}

// PublicController serves the menus anyone can browse
type PublicController struct {
	cocktails services.CocktailService
	foods     services.FoodService
	pipes     services.WaterPipeService
	cfg       *config.Config
}

func NewPublicController(cocktails services.CocktailService, foods services.FoodService,
	pipes services.WaterPipeService, cfg *config.Config) *PublicController {
	return &PublicController{cocktails: cocktails, foods: foods, pipes: pipes, cfg: cfg}
}

// MainPage godoc
// @Summary Main page
// @Description Bar name, links to the menus and the cheap highlights
// @Tags public
// @Produce json
// @Success 200 {object} MainPage
// @Router / [get]
func (p *PublicController) MainPage(ctx *gin.Context) {
	cocktails, err := p.cocktails.GetAllCocktails(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, models.ErrCocktailNotFound, cocktailEntity)
		return
	}
	foods, err := p.foods.GetAllFoods(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, models.ErrFoodNotFound, foodEntity)
		return
	}

	ctx.JSON(http.StatusOK, MainPage{
		Bar: p.cfg.Contact.BarName,
		Sections: map[string]string{
			"cocktails":       "/cocktails",
			"cheap_cocktails": "/cheap-cocktails",
			"food":            "/food",
			"cheap_food":      "/cheap-food",
			"water_pipes":     "/water-pipes",
			"contact":         "/contact",
		},
		CheapCocktails: filters.Cheap(cocktails, p.cfg.CheapCocktailPrice),
		CheapFood:      filters.Cheap(foods, p.cfg.CheapFoodPrice),
	})
}

// CocktailMenu godoc
// @Summary Cocktail menu
// @Description Cocktails grouped by base alcohol. Cocktails without a base alcohol are not listed.
// @Tags public
// @Produce json
// @Success 200 {object} map[string][]models.Cocktail
// @Router /cocktails [get]
func (p *PublicController) CocktailMenu(ctx *gin.Context) {
	cocktails, err := p.cocktails.GetAllCocktails(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, models.ErrCocktailNotFound, cocktailEntity)
		return
	}

	groups := filters.GroupByBaseAlcohol(cocktails)
	menu := make(map[string][]models.Cocktail, len(groups))
	for alcohol, items := range groups {
		menu[strings.ToLower(string(alcohol))] = items
	}
	ctx.JSON(http.StatusOK, menu)
}

// CocktailDetail godoc
// @Summary Cocktail detail
// @Tags public
// @Produce json
// @Param id path int true "Cocktail ID"
// @Success 200 {object} models.Cocktail
// @Failure 404 {object} models.APIError
// @Router /cocktails/{id} [get]
func (p *PublicController) CocktailDetail(ctx *gin.Context) {
	id, ok := parseID(ctx, models.ErrCocktailNotFound, cocktailEntity)
	if !ok {
		return
	}
	cocktail, err := p.cocktails.GetCocktailByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, models.ErrCocktailNotFound, cocktailEntity)
		return
	}
	ctx.JSON(http.StatusOK, cocktail)
}

// CheapCocktails godoc
// @Summary Cheap cocktails
// @Description Cocktails priced at or below the configured threshold (8.00 by default)
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cheap-cocktails [get]
func (p *PublicController) CheapCocktails(ctx *gin.Context) {
	cocktails, err := p.cocktails.GetCheapCocktails(ctx.Request.Context(), p.cfg.CheapCocktailPrice)
	if err != nil {
		respondError(ctx, err, models.ErrCocktailNotFound, cocktailEntity)
		return
	}
	ctx.JSON(http.StatusOK, CheapList[models.Cocktail]{MaxPrice: p.cfg.CheapCocktailPrice, Items: cocktails})
}

// FoodMenu godoc
// @Summary Food menu
// @Tags public
// @Produce json
// @Success 200 {array} models.Food
// @Router /food [get]
func (p *PublicController) FoodMenu(ctx *gin.Context) {
	foods, err := p.foods.GetAllFoods(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, models.ErrFoodNotFound, foodEntity)
		return
	}
	ctx.JSON(http.StatusOK, foods)
}

// CheapFood godoc
// @Summary Cheap food
// @Description Food priced at or below the configured threshold (10.00 by default)
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cheap-food [get]
func (p *PublicController) CheapFood(ctx *gin.Context) {
	foods, err := p.foods.GetCheapFoods(ctx.Request.Context(), p.cfg.CheapFoodPrice)
	if err != nil {
		respondError(ctx, err, models.ErrFoodNotFound, foodEntity)
		return
	}
	ctx.JSON(http.StatusOK, CheapList[models.Food]{MaxPrice: p.cfg.CheapFoodPrice, Items: foods})
}

// WaterPipeMenu godoc
// @Summary Water pipe menu
// @Description Water pipes grouped by tobacco strength
// @Tags public
// @Produce json
// @Success 200 {object} map[string][]models.WaterPipe
// @Router /water-pipes [get]
func (p *PublicController) WaterPipeMenu(ctx *gin.Context) {
	pipes, err := p.pipes.GetAllWaterPipes(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, models.ErrWaterPipeNotFound, waterPipeEntity)
		return
	}

	groups := filters.GroupByTobacco(pipes)
	menu := make(map[string][]models.WaterPipe, len(groups))
	for tobacco, items := range groups {
		menu[strings.ToLower(string(tobacco))] = items
	}
	ctx.JSON(http.StatusOK, menu)
}

// Contact godoc
// @Summary Contact page
// @Tags public
// @Produce json
// @Success 200 {object} config.Contact
// @Router /contact [get]
func (p *PublicController) Contact(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, p.cfg.Contact)
}

// Health godoc
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (p *PublicController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-bar-api",
	})
}
