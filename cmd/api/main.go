package main

import (
	_ "github.com/umeshgehlot/SolanaMarket/docs"
	"github.com/umeshgehlot/SolanaMarket/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           SolanaMarket API
// @version         1.0
// @description     NFT marketplace (offers, bids, listings) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey WalletAddress
// @in header
// @name X-Wallet-Address
// @description Wallet address asserting the caller's identity.

func main() {
	routes.Run()
}
