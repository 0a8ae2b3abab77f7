package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "fibra_provisioning/docs" // swag generated
	"fibra_provisioning/internal/adapter/http/handlers"
	"fibra_provisioning/internal/adapter/http/middleware"
	"fibra_provisioning/internal/adapter/persistence/repository"
	"fibra_provisioning/internal/config"
	"fibra_provisioning/internal/infrastructure/cache"
	"fibra_provisioning/internal/infrastructure/database"
	"fibra_provisioning/internal/infrastructure/evidence"
	"fibra_provisioning/internal/infrastructure/observability"
	"fibra_provisioning/internal/usecase"
	"fibra_provisioning/internal/usecase/interfaces"
	"fibra_provisioning/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Viability    *handlers.ViabilityHandler
	P2P          *handlers.P2PHandler
	ServiceOrder *handlers.ServiceOrderHandler
	Enlace       *handlers.EnlaceHandler
}

// Run wires the service and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	h, err := buildHandlers(ctx, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           NewRouter(cfg, h),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return Serve(ctx, srv, cfg.Server.ShutdownTimeout)
}

// Serve blocks on srv until ctx is done, then drains in-flight requests for
// at most shutdownTimeout.
func Serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("http server listening", zap.String("addr", srv.Addr))

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	observability.RegisterMetrics()

	router := gin.New()
	setMiddlewares(router, cfg)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addViabilityRoutes(v1, h.Viability)
	addP2PRoutes(v1, h.P2P)
	addServiceOrderRoutes(v1, h.ServiceOrder, h.Enlace)
	addEnlaceRoutes(v1, h.Enlace)
	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(observability.RequestLogger(logger.L()))
	router.Use(observability.RequestMetricsMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("request_id", middleware.GetRequestID(c.Request.Context())),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 || cfg.Server.CORSAllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Server.CORSAllowedOrigins
	}
	router.Use(cors.New(corsCfg))
}

func buildHandlers(ctx context.Context, cfg *config.Config) (Handlers, error) {
	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return Handlers{}, err
	}
	ddb := database.ConnectDynamoDB(awsCfg, cfg.AWS)
	s3Client := database.ConnectS3(awsCfg, cfg.AWS)

	viabilidades := repository.NewViabilidadDynamoRepository(ddb, cfg.Tables.Viabilities)
	p2ps := repository.NewP2PDynamoRepository(ddb, cfg.Tables.P2P)
	ordenes := repository.NewOrdenServicioDynamoRepository(ddb, cfg.Tables.ServiceOrders, cfg.Tables.Viabilities)
	enlaces := repository.NewEnlaceDynamoRepository(ddb, cfg.Tables.Enlaces, cfg.Tables.ServiceOrders)
	seq := repository.NewSequenceDynamoRepository(ddb, cfg.Tables.Counters)

	catalog := repository.NewCatalogDynamoRepository(ddb, cfg.Tables.Empresas, cfg.Tables.TiposEnlace)
	var catalogGateway interfaces.ICatalogGateway = catalog
	if rdb := cache.NewRedisClient(ctx, cfg.Catalog.RedisAddr); rdb != nil {
		catalogGateway = cache.NewCatalogCache(rdb, catalogGateway, cfg.Catalog.CacheTTL)
	}

	var store interfaces.IEvidenceStore
	s3Store, err := evidence.NewS3EvidenceStore(s3Client, cfg.Evidence)
	if err != nil {
		logger.Warn("evidence store not configured, activations will fail", zap.Error(err))
	} else {
		store = s3Store
	}

	noCharge := usecase.NewNoChargePolicy(cfg.Workflow.NoChargeLinkTypes, catalogGateway)

	viabilityUseCase := usecase.NewViabilityUseCase(viabilidades, seq, catalogGateway, cfg.Workflow.ViabilityValidityDays)
	p2pUseCase := usecase.NewP2PUseCase(p2ps, viabilidades, seq)
	serviceOrderUseCase := usecase.NewServiceOrderUseCase(ordenes, viabilidades, seq)
	activationUseCase := usecase.NewCircuitActivationUseCase(ordenes, enlaces, store, seq, noCharge)

	return Handlers{
		Viability:    handlers.NewViabilityHandler(viabilityUseCase),
		P2P:          handlers.NewP2PHandler(p2pUseCase),
		ServiceOrder: handlers.NewServiceOrderHandler(serviceOrderUseCase),
		Enlace:       handlers.NewEnlaceHandler(activationUseCase),
	}, nil
}
