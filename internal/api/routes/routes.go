package routes

import (
	"family-finance-backend/internal/api/handlers"
	"family-finance-backend/internal/api/middleware"
	"family-finance-backend/internal/auth"
	"family-finance-backend/internal/config"
	"family-finance-backend/internal/invite"
	"family-finance-backend/internal/repository"
	"family-finance-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	familyRepo := repository.NewFamilyRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	userService := service.NewUserService(userRepo, organizationRepo, validator)
	familyService := service.NewFamilyService(familyRepo, userRepo, invite.NewGenerator(), validator)
	assetService := service.NewAssetService(assetRepo, validator)
	transactionService := service.NewTransactionService(transactionRepo, assetRepo, service.NewStaticCategorySuggester(), validator)
	analyticsService := service.NewAnalyticsService(transactionRepo)

	// Initialize auth
	authService := auth.NewAuthService(cfg)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	userHandler := handlers.NewUserHandler(userService)
	familyHandler := handlers.NewFamilyHandler(familyService)
	assetHandler := handlers.NewAssetHandler(assetService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Health and docs
	router.GET("/health", healthHandler.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Signup surface: no bearer token exists yet
	v1.POST("/organizations", organizationHandler.CreateOrganization)
	v1.POST("/users", userHandler.CreateUser)

	// Everything else requires a resolved principal
	authed := v1.Group("")
	authed.Use(authMiddleware.RequireAuth())
	{
		authed.GET("/organizations", organizationHandler.ListOrganizations)
		authed.GET("/organizations/:id", organizationHandler.GetOrganization)

		authed.GET("/users", userHandler.ListUsers)
		authed.GET("/users/:id", userHandler.GetUser)

		families := authed.Group("/families")
		{
			families.POST("", familyHandler.CreateFamily)
			families.POST("/join", familyHandler.JoinFamily)
			families.POST("/leave", familyHandler.LeaveFamily)
			families.GET("/current", familyHandler.GetCurrentFamily)
		}

		assets := authed.Group("/assets")
		{
			assets.POST("", assetHandler.CreateAsset)
			assets.GET("", assetHandler.ListAssets)
			assets.GET("/:id", assetHandler.GetAsset)
			assets.PUT("/:id", assetHandler.UpdateAsset)
			assets.DELETE("/:id", assetHandler.DeleteAsset)
		}

		transactions := authed.Group("/transactions")
		{
			transactions.POST("", transactionHandler.CreateTransaction)
			transactions.GET("", transactionHandler.ListTransactions)
			transactions.GET("/:id", transactionHandler.GetTransaction)
			transactions.PUT("/:id", transactionHandler.UpdateTransaction)
			transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
		}

		authed.GET("/analytics/summary", analyticsHandler.GetSummary)
	}

	return router
}
