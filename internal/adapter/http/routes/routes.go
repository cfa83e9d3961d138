package routes

import (
	"context"
	"fmt"
	"strconv"

	_ "atelie/docs" // generated by swag init
	"atelie/internal/adapter/http/handlers"
	"atelie/internal/adapter/http/middleware"
	"atelie/internal/adapter/persistence/repository"
	"atelie/internal/config"
	"atelie/internal/infrastructure/auth"
	"atelie/internal/infrastructure/database"
	"atelie/internal/infrastructure/storage"
	"atelie/internal/usecase"
	"atelie/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run wires the application and blocks serving HTTP.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router.MaxMultipartMemory = handlers.MaxUploadBytes

	h, authUseCase, err := buildHandlers(ctx, cfg, logger)
	if err != nil {
		return err
	}

	setMiddlewares(router, logger, authUseCase)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(router, h)

	addr := ":" + strconv.Itoa(cfg.HTTP.Port)
	logger.Info("http server listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

type routeHandlers struct {
	quotes    *handlers.QuoteHandler
	orders    *handlers.OrderHandler
	clients   *handlers.ClientHandler
	catalog   *handlers.CatalogHandler
	dashboard *handlers.DashboardHandler
	images    *handlers.ImageHandler
	auth      *handlers.AuthHandler
}

func buildHandlers(ctx context.Context, cfg config.Config, logger *zap.Logger) (routeHandlers, usecase.IAuthUseCase, error) {
	loc, err := cfg.Location()
	if err != nil {
		return routeHandlers{}, nil, err
	}

	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return routeHandlers{}, nil, err
	}
	ddb := database.ConnectDynamoDB(awsCfg, cfg.Tables.Endpoint)

	var blobs interfaces.IBlobStorage
	s3Storage, err := storage.NewS3BlobStorage(storage.NewS3Client(awsCfg, cfg.Storage.Endpoint), cfg.Storage, cfg.AWS.Region, logger)
	if err != nil {
		logger.Warn("blob storage disabled, photos and images will not be stored", zap.Error(err))
	} else {
		blobs = s3Storage
	}

	tokens, err := auth.NewJWTTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
	if err != nil {
		return routeHandlers{}, nil, err
	}

	clientRepo := repository.NewClientDynamoRepository(ddb, cfg.Tables.Clients)
	orderRepo := repository.NewOrderDynamoRepository(ddb, cfg.Tables.Orders)
	productRepo := repository.NewProductDynamoRepository(ddb, cfg.Tables.Products)
	serviceRepo := repository.NewServiceDynamoRepository(ddb, cfg.Tables.Services)
	userRepo := repository.NewUserDynamoRepository(ddb, cfg.Tables.Users)

	enricher := usecase.NewOrderEnrichmentUseCase(clientRepo, productRepo, serviceRepo, logger)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, blobs, loc, logger)
	quoteUseCase := usecase.NewQuoteIntakeUseCase(clientRepo, orderRepo, blobs, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, blobs, logger)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, blobs, logger)
	clientUseCase := usecase.NewClientUseCase(clientRepo, orderUseCase, enricher, logger)
	dashboardUseCase := usecase.NewDashboardUseCase(productRepo, serviceRepo, clientRepo, orderRepo, enricher)
	imageUseCase := usecase.NewImageUseCase(blobs, logger)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokens, auth.NewBcryptHasher(0), logger)

	return routeHandlers{
		quotes:    handlers.NewQuoteHandler(quoteUseCase),
		orders:    handlers.NewOrderHandler(orderUseCase, enricher, loc),
		clients:   handlers.NewClientHandler(clientUseCase, loc),
		catalog:   handlers.NewCatalogHandler(productUseCase, serviceUseCase),
		dashboard: handlers.NewDashboardHandler(dashboardUseCase, loc),
		images:    handlers.NewImageHandler(imageUseCase),
		auth:      handlers.NewAuthHandler(authUseCase),
	}, authUseCase, nil
}

func setMiddlewares(r *gin.Engine, logger *zap.Logger, authUseCase usecase.IAuthUseCase) {
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Authenticate(authUseCase, logger))
}

func registerRoutes(r *gin.Engine, h routeHandlers) {
	v1 := r.Group("/v1")
	addPublicRoutes(v1, h)
	addClientRoutes(v1, h)
	addAdminRoutes(v1, h)
}
