package v1

import (
	"marketing-site-backend/config"
	"marketing-site-backend/internal/delivery/http/middleware"
	"marketing-site-backend/internal/domain"
	"marketing-site-backend/internal/usecase"
	"marketing-site-backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	FooterUC  domain.FooterUsecase
	HealthUC  usecase.HealthUsecase // optional
	Events    *security.EventLogger // optional submission audit log
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	isProduction := deps.Config != nil && deps.Config.GinMode == gin.ReleaseMode
	var origins []string
	if deps.Config != nil {
		origins = deps.Config.Origins()
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(origins, isProduction)) // CORS must be first!
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	NewHealthHandler(v1, deps.HealthUC)

	// Public routes
	NewContactHandler(v1, deps.ContactUC, deps.Events)
	NewFooterHandler(v1, deps.FooterUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
