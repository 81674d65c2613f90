package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/umeshgehlot/SolanaMarket/pkg"
)

// HeaderWalletAddress carries the caller's wallet identity. The address is
// asserted by the client; binding it cryptographically to the caller is the
// API gateway's problem, not this service's.
const HeaderWalletAddress = "X-Wallet-Address"

var errMissingWallet = pkg.NewDomainErrorSimple("MISSING_WALLET", "Missing "+HeaderWalletAddress+" header", http.StatusBadRequest)

func walletFromRequest(c *gin.Context) (string, *pkg.AppError) {
	wallet := strings.TrimSpace(c.GetHeader(HeaderWalletAddress))
	if wallet == "" {
		return "", errMissingWallet
	}
	return wallet, nil
}
