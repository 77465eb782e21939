package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/comandas_backend/cmd/docs"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/dto"
	"github.com/SscSPs/comandas_backend/internal/middleware"
	"github.com/SscSPs/comandas_backend/pkg/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			return fmt.Errorf("failed to register validators: %w", err)
		}
	}

	// Without allowed origins only same-origin clients are served.
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) error {
	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid LOGIN_RATE_LIMIT %q: %w", cfg.LoginRateLimit, err)
	}

	public := r.Group("/api/v1")
	// Apply AuthMiddleware to every other route of the v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(service.Auth), middleware.RequireUUIDParams("id"))
	recorder := service.Audit

	authH := newAuthHandler(service.Auth, service.GoogleAuth, cfg.IsProduction)
	registerAuthRoutes(public, v1, authH, middleware.RateLimit(loginLimiter), recorder, cfg.GoogleEnabled())

	// Delegate route registration to specific handlers, passing required services
	registerPersonalRoutes(v1, service.Personal, recorder)
	registerCajaRoutes(v1, service.Caja, service.Movimiento)
	registerCotizacionRoutes(v1, service.Cotizacion, recorder)
	registerClienteRoutes(v1, service.Cliente, service.Prepago, recorder)
	registerPrepagoRoutes(v1, service.Prepago, recorder)
	registerComandaRoutes(v1, service.Comanda, recorder)
	registerMovimientoRoutes(v1, service.Movimiento, recorder)
	registerAuditRoutes(v1, service.Audit)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
