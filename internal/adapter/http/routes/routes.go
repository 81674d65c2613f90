package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/umeshgehlot/SolanaMarket/docs" // This will be auto-generated
	"github.com/umeshgehlot/SolanaMarket/internal/adapter/http/feed"
	"github.com/umeshgehlot/SolanaMarket/internal/adapter/http/handlers"
	"github.com/umeshgehlot/SolanaMarket/internal/adapter/http/middleware"
	repository2 "github.com/umeshgehlot/SolanaMarket/internal/adapter/persistence/repository"
	"github.com/umeshgehlot/SolanaMarket/internal/infrastructure/database"
	"github.com/umeshgehlot/SolanaMarket/internal/infrastructure/ledger"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase"
)

var router = gin.Default()

const PORT = 8080

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

	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	nftRepo := repository2.NewNFTDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	collectionRepo := repository2.NewCollectionDynamoRepository(ddb)
	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)
	settlementRepo := repository2.NewSettlementDynamoRepository(ddb)

	chain, err := ledger.NewSolanaLedger()
	if err != nil {
		log.Fatalf("Ledger not configured: %v", err)
	}

	hub := feed.NewHub()
	go hub.Run()

	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, nftRepo, userRepo, transactionRepo, settlementRepo, chain, hub)
	nftUseCase := usecase.NewNFTUseCase(nftRepo, userRepo, collectionRepo, transactionRepo, settlementRepo, chain, hub)
	userUseCase := usecase.NewUserUseCase(userRepo)
	collectionUseCase := usecase.NewCollectionUseCase(collectionRepo, userRepo)
	transactionUseCase := usecase.NewTransactionUseCase(transactionRepo)

	offerHandler := handlers.NewOfferHandler(proposalUseCase)
	bidHandler := handlers.NewBidHandler(proposalUseCase)
	nftHandler := handlers.NewNFTHandler(nftUseCase)
	userHandler := handlers.NewUserHandler(userUseCase, transactionUseCase)
	collectionHandler := handlers.NewCollectionHandler(collectionUseCase)
	transactionHandler := handlers.NewTransactionHandler(transactionUseCase)
	activityHandler := handlers.NewActivityHandler(hub)

	limiter := middleware.NewRateLimiter(rateLimitRPS(), rateLimitBurst())

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, limiter, nftHandler, offerHandler, bidHandler, userHandler, collectionHandler, transactionHandler, activityHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func rateLimitRPS() float64 {
	if raw := os.Getenv("RATE_LIMIT_RPS"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			return v
		}
	}
	return 10
}

func rateLimitBurst() int {
	if raw := os.Getenv("RATE_LIMIT_BURST"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return 20
}
