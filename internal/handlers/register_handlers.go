package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rumahamal/ref26-backend/cmd/docs"
	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/internal/middleware"
	"github.com/rumahamal/ref26-backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Setup /api routes, passing service interfaces
	setupAPIRoutes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific entity
// route registrations. Read routes stay open; mutating routes require the
// session of the realm that owns them.
func setupAPIRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api")

	validasiOnly := middleware.SessionAuthMiddleware(services.Auth, domain.RealmValidation)
	uploadOnly := middleware.SessionAuthMiddleware(services.Auth, domain.RealmUpload)

	registerFinanceRoutes(api, services.Ingest, services.Donation, validasiOnly, uploadOnly)
	registerDashboardRoutes(api, services.Dashboard, services.Dropdown)
	registerEventRoutes(api, services.Event, uploadOnly)
	registerKemitraanRoutes(api, services.Kemitraan, uploadOnly)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
