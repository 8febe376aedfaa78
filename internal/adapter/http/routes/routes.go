package routes

import (
	"database/sql"
	"fmt"
	"log"
	_ "granite_estimator/docs" // This will be auto-generated
	"granite_estimator/internal/adapter/http/handlers"
	"granite_estimator/internal/adapter/persistence/repository"
	"granite_estimator/internal/config"
	"granite_estimator/internal/domain/estimator"
	"granite_estimator/internal/infrastructure/database"
	"granite_estimator/internal/infrastructure/narrative"
	"granite_estimator/internal/infrastructure/payments"
	"granite_estimator/internal/infrastructure/pricesheet"
	"granite_estimator/internal/usecase"
	"granite_estimator/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type appHandlers struct {
	estimate  *handlers.EstimateHandler
	payment   *handlers.DepositPaymentHandler
	assistant *handlers.AssistantHandler
}

// Run will start the server
func Run(cfg config.Config) {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h, closeStore, err := buildHandlers(cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer closeStore()

	registerRoutes(router, h)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Printf("Failed to startup the application: %v", err.Error())
	}
}

func registerRoutes(router *gin.Engine, h appHandlers) {
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, h.estimate)
	addPaymentRoutes(v1, h.payment)
	addAssistantRoutes(v1, h.assistant)

	addLegacyRoutes(router.Group("/api"), h.estimate, h.assistant)
}

func buildHandlers(cfg config.Config) (appHandlers, func(), error) {
	estimateRepo, paymentRepo, closeStore, err := openStore(cfg)
	if err != nil {
		return appHandlers{}, nil, err
	}

	prices := pricesheet.NewCachedProvider(priceSource(cfg.Prices), cfg.Prices.CacheTTL)
	openAI := narrative.NewOpenAIGenerator(cfg.OpenAI)

	mode := estimator.ModeLaborIncluded
	if !cfg.IncludeLabor {
		mode = estimator.ModeMaterialsOnly
	}
	log.Printf("[routes] calculation mode=%s store=%s", mode, cfg.Store.Driver)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, prices, openAI, mode)
	paymentUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, estimateRepo, paymentGateway, cfg.Payments)
	assistantUseCase := usecase.NewAssistantUseCase(openAI, cfg.Business)

	return appHandlers{
		estimate:  handlers.NewEstimateHandler(estimateUseCase, cfg.Business),
		payment:   handlers.NewDepositPaymentHandler(paymentUseCase, cfg.Payments.Mock),
		assistant: handlers.NewAssistantHandler(assistantUseCase),
	}, closeStore, nil
}

func openStore(cfg config.Config) (interfaces.IEstimateRepository, interfaces.IDepositPaymentRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreSQLite:
		db, err := database.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return repository.NewEstimateSQLiteRepository(db),
			repository.NewDepositPaymentSQLiteRepository(db),
			func() { closeDB(db) },
			nil
	default:
		ddb := database.ConnectDynamoDB(cfg.AWS)
		return repository.NewEstimateDynamoRepository(ddb, cfg.AWS.EstimatesTable),
			repository.NewDepositPaymentDynamoRepository(ddb, cfg.AWS.PaymentsTable),
			func() {},
			nil
	}
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		log.Printf("[routes] closing sqlite store failed: %v", err)
	}
}

func priceSource(cfg config.PriceSheetConfig) pricesheet.Source {
	if cfg.File != "" {
		log.Printf("[routes] price list from file path=%s", cfg.File)
		return pricesheet.NewFileSource(cfg.File)
	}
	return pricesheet.NewHTTPSource(cfg.URL, cfg.FetchTimeout)
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsCfg.ExposeHeaders = []string{"Content-Disposition"}
	router.Use(cors.New(corsCfg))
}
