package server

import (
	"github.com/franciscosanchezn/gin-bar-api/internal/auth"
	"github.com/franciscosanchezn/gin-bar-api/internal/config"
	"github.com/franciscosanchezn/gin-bar-api/internal/controllers"
	"github.com/franciscosanchezn/gin-bar-api/internal/middleware"
	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// newRouter wires services and controllers and defines the routes
func newRouter(cfg *config.Config, db *gorm.DB, sessions *auth.Sessions) *gin.Engine {
	categoryService := services.NewCategoryService(db)
	ingredientService := services.NewIngredientService(db)
	cocktailService := services.NewCocktailService(db)
	foodService := services.NewFoodService(db)
	waterPipeService := services.NewWaterPipeService(db)

	public := controllers.NewPublicController(cocktailService, foodService, waterPipeService, cfg)
	authController := controllers.NewAuthController(services.NewUserService(db), sessions)
	oauthService := auth.NewOAuthService(db, cfg.JWTSecret)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	router.GET("/health", public.Health)

	// Public menus
	router.GET("/", public.MainPage)
	router.GET("/cocktails", public.CocktailMenu)
	router.GET("/cocktails/:id", public.CocktailDetail)
	router.GET("/cheap-cocktails", public.CheapCocktails)
	router.GET("/food", public.FoodMenu)
	router.GET("/cheap-food", public.CheapFood)
	router.GET("/water-pipes", public.WaterPipeMenu)
	router.GET("/contact", public.Contact)

	// Authentication
	router.GET("/login", authController.LoginForm)
	router.POST("/login", authController.Login)
	router.POST("/logout", authController.Logout)
	router.POST("/oauth/token", oauthService.HandleToken)

	// Administration, session or Bearer token with the admin role
	adm := router.Group("/adm")
	adm.Use(middleware.AdminAuth(sessions, []byte(cfg.JWTSecret)), middleware.RequireRole(models.RoleAdmin))
	{
		adm.GET("", controllers.NewDashboardController(services.NewStatsService(db)).Dashboard)

		categories := controllers.NewCategoryController(categoryService)
		adm.GET("/categories", categories.ListCategories)
		adm.POST("/categories", categories.CreateCategory)
		adm.GET("/categories/:id", categories.GetCategory)
		adm.PUT("/categories/:id", categories.UpdateCategory)
		adm.DELETE("/categories/:id", categories.DeleteCategory)

		ingredients := controllers.NewIngredientController(ingredientService)
		adm.GET("/ingredients", ingredients.ListIngredients)
		adm.POST("/ingredients", ingredients.CreateIngredient)
		adm.GET("/ingredients/:id", ingredients.GetIngredient)
		adm.PUT("/ingredients/:id", ingredients.UpdateIngredient)
		adm.DELETE("/ingredients/:id", ingredients.DeleteIngredient)

		cocktails := controllers.NewCocktailController(cocktailService)
		adm.GET("/cocktails", cocktails.ListCocktails)
		adm.POST("/cocktails", cocktails.CreateCocktail)
		adm.GET("/cocktails/:id", cocktails.GetCocktail)
		adm.PUT("/cocktails/:id", cocktails.UpdateCocktail)
		adm.DELETE("/cocktails/:id", cocktails.DeleteCocktail)

		foods := controllers.NewFoodController(foodService)
		adm.GET("/food", foods.ListFood)
		adm.POST("/food", foods.CreateFood)
		adm.GET("/food/:id", foods.GetFood)
		adm.PUT("/food/:id", foods.UpdateFood)
		adm.DELETE("/food/:id", foods.DeleteFood)

		pipes := controllers.NewWaterPipeController(waterPipeService)
		adm.GET("/water-pipes", pipes.ListWaterPipes)
		adm.POST("/water-pipes", pipes.CreateWaterPipe)
		adm.GET("/water-pipes/:id", pipes.GetWaterPipe)
		adm.PUT("/water-pipes/:id", pipes.UpdateWaterPipe)
		adm.DELETE("/water-pipes/:id", pipes.DeleteWaterPipe)

		clients := controllers.NewClientController(services.NewClientService(db))
		adm.GET("/clients", clients.ListClients)
		adm.POST("/clients", clients.CreateClient)
		adm.DELETE("/clients/:id", clients.DeleteClient)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
