package httpapi

import (
	"net/http"

	"github.com/burgerlab/backend/internal/logging"
	"github.com/burgerlab/backend/internal/obs"
	"github.com/burgerlab/backend/internal/server/config"
	"github.com/burgerlab/backend/internal/server/services"
	"github.com/gin-gonic/gin"
)

// Dependencies carries everything the router needs.
type Dependencies struct {
	Config      *config.Config
	Auth        *services.AuthService
	Ingredients *services.IngredientService
	Addresses   *services.AddressService
	Logger      logging.Logger
}

// NewRouter assembles the REST surface. Services stay transport-agnostic;
// all status-code decisions happen in this package.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(obs.Instrument())

	authHandler := NewAuthHandler(deps.Auth)
	userHandler := NewUserHandler(deps.Auth)
	ingredientHandler := NewIngredientHandler(deps.Ingredients)
	addressHandler := NewAddressHandler(deps.Addresses)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(obs.Handler()))

	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(RateLimit(deps.Config.AuthRatePerMinute))
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/forgot", authHandler.Forgot)
		authGroup.POST("/reset", authHandler.Reset)
	}

	api.POST("/users", userHandler.Register)

	protected := api.Group("")
	protected.Use(Auth(deps.Auth, deps.Logger))
	{
		protected.GET("/me", userHandler.Me)
		protected.PUT("/users/password", authHandler.ChangePassword)

		protected.GET("/ingredients", ingredientHandler.List)
		protected.GET("/ingredients/:name", ingredientHandler.Get)

		protected.GET("/addresses", addressHandler.List)
		protected.POST("/addresses", addressHandler.Create)
		protected.DELETE("/addresses/:id", addressHandler.Delete)
	}

	// catalog mutations are admin-only
	admin := protected.Group("")
	admin.Use(RequireRole("admin"))
	{
		admin.POST("/ingredients", ingredientHandler.Create)
		admin.PUT("/ingredients/:name", ingredientHandler.Update)
		admin.DELETE("/ingredients/:name", ingredientHandler.Delete)
	}

	return router
}
