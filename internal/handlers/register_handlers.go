package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/property_management_app/cmd/docs"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/SscSPs/property_management_app/internal/platform/config"
	"github.com/SscSPs/property_management_app/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	logger *slog.Logger,
	posthogClient *utils.PosthogClientWrapper,
) error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			return err
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services, logger)

	setupAPIRoutes(r, cfg, services, posthogClient)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes configures the authenticated /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer), middleware.PosthogMiddleware(posthogClient))

	registerMeRoute(api, services.Auth)
	registerCompanyRoutes(api, services.Company)
	registerBuildingRoutes(api, services)
	registerUnitRoutes(api, services.Unit)
	registerTenantRoutes(api, services.Tenant)
	registerLeaseRoutes(api, services.Lease, services.RentPayment)
	registerTransactionRoutes(api, services.Transaction)
	registerConstructionRoutes(api, services)
	registerReportingRoutes(api, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
