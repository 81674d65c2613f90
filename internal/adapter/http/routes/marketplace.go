package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umeshgehlot/SolanaMarket/internal/adapter/http/handlers"
	"github.com/umeshgehlot/SolanaMarket/internal/adapter/http/middleware"
)

const (
	PathNFTs        = "/nfts"
	PathOffers      = "/offers"
	PathBids        = "/bids"
	PathUsers       = "/users"
	PathCollections = "/collections"
	PathActivity    = "/activity"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	limiter *middleware.RateLimiter,
	nftHandler *handlers.NFTHandler,
	offerHandler *handlers.ProposalHandler,
	bidHandler *handlers.ProposalHandler,
	userHandler *handlers.UserHandler,
	collectionHandler *handlers.CollectionHandler,
	transactionHandler *handlers.TransactionHandler,
	activityHandler *handlers.ActivityHandler,
) {
	limited := limiter.Handle()

	nfts := rg.Group(PathNFTs)
	{
		nfts.GET("", nftHandler.Browse)
		nfts.POST("", limited, nftHandler.Create)
		nfts.GET("/:id", nftHandler.Get)
		nfts.GET("/mint/:mint_address", nftHandler.GetByMint)
		nfts.GET("/:id/transactions", transactionHandler.ListForNFT)
		nfts.POST("/:id/list", limited, nftHandler.List)
		nfts.POST("/:id/unlist", limited, nftHandler.Unlist)
		nfts.POST("/:id/buy", limited, nftHandler.Buy)
		nfts.POST("/:id/transfer", limited, nftHandler.Transfer)

		// Offers and bids live under the NFT they target.
		nfts.GET("/:id/offers", offerHandler.ListForNFT)
		nfts.POST("/:id/offers", limited, offerHandler.Create)
		nfts.GET("/:id/bids", bidHandler.ListForNFT)
		nfts.POST("/:id/bids", limited, bidHandler.Create)
	}

	offers := rg.Group(PathOffers)
	{
		offers.GET("/:id", offerHandler.Get)
		offers.POST("/:id/accept", limited, offerHandler.Accept)
		offers.POST("/:id/cancel", limited, offerHandler.Cancel)
	}

	bids := rg.Group(PathBids)
	{
		bids.GET("/:id", bidHandler.Get)
		bids.POST("/:id/accept", limited, bidHandler.Accept)
		bids.POST("/:id/cancel", limited, bidHandler.Cancel)
	}

	users := rg.Group(PathUsers)
	{
		users.POST("/connect", limited, userHandler.Connect)
		users.GET("/:wallet", userHandler.GetByWallet)
		users.PUT("/:wallet", limited, userHandler.UpdateProfile)
		users.GET("/:wallet/transactions", userHandler.ListTransactions)
	}

	collections := rg.Group(PathCollections)
	{
		collections.GET("", collectionHandler.List)
		collections.POST("", limited, collectionHandler.Create)
		collections.GET("/:id", collectionHandler.Get)
	}

	rg.GET(PathActivity, activityHandler.Stream)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
