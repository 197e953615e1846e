package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "coldchain_pricing/docs" // This will be auto-generated
	"coldchain_pricing/internal/adapter/http/handlers"
	"coldchain_pricing/internal/adapter/http/middleware"
	repository2 "coldchain_pricing/internal/adapter/persistence/repository"
	"coldchain_pricing/internal/domain/entities"
	"coldchain_pricing/internal/infrastructure/aiparse"
	"coldchain_pricing/internal/infrastructure/database"
	"coldchain_pricing/internal/infrastructure/quotes"
	"coldchain_pricing/internal/resilience"
	"coldchain_pricing/internal/usecase"
	"coldchain_pricing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
)

var router = gin.Default()

const PORT = 8080

// Resilience defaults; the breaker threshold/cooldown and caller admission
// window mirror the upstream services' published limits.
const (
	breakerFailureThreshold = 5
	breakerCooldown         = time.Minute

	callerRequestsPerWindow = 10
	callerWindow            = time.Minute

	quotePacerPerSecond = 2
	quotePacerBurst     = 1

	// Outbound service budgets sit above the pacer's sustained throughput
	// (120 calls/min) so admission never rejects a paced calibration run.
	quoteRequestsPerWindow = 150
	aiRequestsPerWindow    = 60
	serviceWindow          = time.Minute
)

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	warehouseRepo := repository2.NewWarehouseDynamoRepository(ddb)
	rateRepo := repository2.NewFreightRateDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	sheetRepo := repository2.NewPriceSheetDynamoRepository(ddb)
	dealRepo := repository2.NewDealDynamoRepository(ddb)
	breakerStore := repository2.NewBreakerStateDynamoRepository(ddb)

	windowStore := newWindowStore()
	breaker := resilience.NewCircuitBreaker(breakerStore, breakerFailureThreshold, breakerCooldown)

	quoteGuard := newQuoteGuard(breaker, windowStore)
	aiGuard := newAIGuard(breaker, windowStore)

	var quoteGateway interfaces.ILTLQuoteGateway
	ltlGateway, err := quotes.NewLTLQuoteGateway()
	if err != nil {
		log.Printf("LTL quote gateway not configured: %v", err)
	} else {
		quoteGateway = ltlGateway
	}

	var packSizeParser interfaces.IPackSizeParser
	aiGateway, err := aiparse.NewPackSizeGateway()
	if err != nil {
		log.Printf("AI pack-size gateway not configured: %v", err)
	} else {
		packSizeParser = aiGateway
	}

	pacer := rate.NewLimiter(rate.Limit(quotePacerPerSecond), quotePacerBurst)

	calibrationUseCase := usecase.NewCalibrationUseCase(warehouseRepo, rateRepo, quoteGateway, quoteGuard, pacer)
	priceSheetUseCase := usecase.NewPriceSheetUseCase(sheetRepo, productRepo, rateRepo)
	dealUseCase := usecase.NewDealUseCase(dealRepo, productRepo, warehouseRepo, packSizeParser, aiGuard)

	calibrationHandler := handlers.NewCalibrationHandler(calibrationUseCase)
	priceSheetHandler := handlers.NewPriceSheetHandler(priceSheetUseCase)
	dealHandler := handlers.NewDealHandler(dealUseCase)

	logZoneMappingDiscrepancies()

	callerLimiter := resilience.NewRateLimiter(windowStore, callerRequestsPerWindow, callerWindow)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", middleware.AuthContext(), middleware.RateLimit(callerLimiter))
	addPricingRoutes(authed, calibrationHandler, priceSheetHandler, dealHandler)
}

// newQuoteGuard wraps LTL quote calls with the full breaker, limiter and
// retry chain. The quote budget is its own window, wider than the pacer's
// throughput, so a full calibration run never trips its own admission gate.
func newQuoteGuard(breaker *resilience.CircuitBreaker, store resilience.WindowStore) resilience.Guard {
	return resilience.Guard{
		Breaker:    breaker,
		ServiceKey: "ltl-quotes",
		Limiter:    resilience.NewRateLimiter(store, quoteRequestsPerWindow, serviceWindow),
		Retry:      resilience.DefaultRetryConfig(),
	}
}

// newAIGuard wraps pack-size parse calls with the same chain under the AI
// provider's budget.
func newAIGuard(breaker *resilience.CircuitBreaker, store resilience.WindowStore) resilience.Guard {
	return resilience.Guard{
		Breaker:    breaker,
		ServiceKey: "ai-parse",
		Limiter:    resilience.NewRateLimiter(store, aiRequestsPerWindow, serviceWindow),
		Retry:      resilience.DefaultRetryConfig(),
	}
}

// newWindowStore picks the rate-limit window backend: Redis when REDIS_ADDR
// is set (shared counters across replicas), otherwise an in-process store
// with a background janitor sweeping ended windows.
func newWindowStore() resilience.WindowStore {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		log.Printf("[ratelimit][store] using redis window store addr=%s", addr)
		return resilience.NewRedisWindowStore(client, "ratelimit")
	}

	store := resilience.NewMemoryWindowStore()
	store.StartJanitor(context.Background(), time.Minute)
	log.Printf("[ratelimit][store] using in-memory window store")
	return store
}

// logZoneMappingDiscrepancies reports states where the legacy ZIP-prefix
// table disagrees with the canonical state table, once, at startup.
func logZoneMappingDiscrepancies() {
	for prefix, legacyZone := range entities.ZoneMappingDiscrepancies() {
		log.Printf("[zones][startup] mapping discrepancy zip_prefix=%s legacy=%s (canonical state table wins)",
			prefix, legacyZone)
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
