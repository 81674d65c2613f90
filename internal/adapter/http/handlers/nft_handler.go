package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	request "github.com/umeshgehlot/SolanaMarket/internal/adapter/http/dto/request"
	response "github.com/umeshgehlot/SolanaMarket/internal/adapter/http/dto/response"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase/interfaces"
	"github.com/umeshgehlot/SolanaMarket/pkg"
)

// NFTHandler handles HTTP requests for NFTs: browsing, minting, listing
// state, purchase and transfer.

type NFTHandler struct {
	usecase usecase.INFTUseCase
}

func NewNFTHandler(uc usecase.INFTUseCase) *NFTHandler {
	return &NFTHandler{usecase: uc}
}

// Browse returns the NFT catalog, optionally filtered by owner_id,
// collection_id or listed.
func (h *NFTHandler) Browse(c *gin.Context) {
	f := interfaces.NFTFilter{
		OwnerID:      strings.TrimSpace(c.Query("owner_id")),
		CollectionID: strings.TrimSpace(c.Query("collection_id")),
	}
	if raw := strings.TrimSpace(c.Query("listed")); raw != "" {
		listed, err := strconv.ParseBool(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid listed filter", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		f.Listed = &listed
	}

	list, err := h.usecase.Browse(c.Request.Context(), f)
	if err != nil {
		appErr := mapNFTError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNFTs(list))
}

func (h *NFTHandler) Get(c *gin.Context) {
	n, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapNFTError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNFT(n))
}

// GetByMint resolves an NFT by its on-chain mint address.
func (h *NFTHandler) GetByMint(c *gin.Context) {
	n, err := h.usecase.GetByMintAddress(c.Request.Context(), c.Param("mint_address"))
	if err != nil {
		appErr := mapNFTError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNFT(n))
}

// Create mints a new NFT owned by the calling wallet.
func (h *NFTHandler) Create(c *gin.Context) {
	wallet, walletErr := walletFromRequest(c)
	if walletErr != nil {
		c.JSON(walletErr.HTTPStatus, walletErr.ToHTTPError())
		return
	}

	var payload request.CreateNFTRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[nft][handler] create start name=%q wallet=%s", payload.Name, wallet)
	n, err := h.usecase.Create(c.Request.Context(), usecase.CreateNFTCommand{
		CreatorWallet:     wallet,
		Name:              payload.Name,
		Description:       payload.Description,
		Image:             payload.Image,
		MintAddress:       payload.MintAddress,
		CollectionID:      payload.CollectionID,
		RoyaltyPercentage: payload.RoyaltyPercentage,
	})
	if err != nil {
		log.Printf("[nft][handler] create failed wallet=%s err=%v", wallet, err)
		appErr := mapNFTError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromNFT(n))
}

func (h *NFTHandler) List(c *gin.Context) {
	nftID := c.Param("id")
	wallet, walletErr := walletFromRequest(c)
	if walletErr != nil {
		c.JSON(walletErr.HTTPStatus, walletErr.ToHTTPError())
		return
	}

	var payload request.ListNFTRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[nft][handler] list start nft_id=%s wallet=%s price=%s", nftID, wallet, payload.Price)
	n, err := h.usecase.List(c.Request.Context(), nftID, wallet, payload.Price)
	if err != nil {
		log.Printf("[nft][handler] list failed nft_id=%s err=%v", nftID, err)
		appErr := mapNFTError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNFT(n))
}

func (h *NFTHandler) Unlist(c *gin.Context) {
	nftID := c.Param("id")
	wallet, walletErr := walletFromRequest(c)
	if walletErr != nil {
		c.JSON(walletErr.HTTPStatus, walletErr.ToHTTPError())
		return
	}

	log.Printf("[nft][handler] unlist start nft_id=%s wallet=%s", nftID, wallet)
	n, err := h.usecase.Unlist(c.Request.Context(), nftID, wallet)
	if err != nil {
		log.Printf("[nft][handler] unlist failed nft_id=%s err=%v", nftID, err)
		appErr := mapNFTError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNFT(n))
}

func (h *NFTHandler) Buy(c *gin.Context) {
	nftID := c.Param("id")
	wallet, walletErr := walletFromRequest(c)
	if walletErr != nil {
		c.JSON(walletErr.HTTPStatus, walletErr.ToHTTPError())
		return
	}

	log.Printf("[nft][handler] buy start nft_id=%s wallet=%s", nftID, wallet)
	tx, err := h.usecase.Buy(c.Request.Context(), nftID, wallet)
	if err != nil {
		log.Printf("[nft][handler] buy failed nft_id=%s err=%v", nftID, err)
		appErr := mapNFTError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

func (h *NFTHandler) Transfer(c *gin.Context) {
	nftID := c.Param("id")
	wallet, walletErr := walletFromRequest(c)
	if walletErr != nil {
		c.JSON(walletErr.HTTPStatus, walletErr.ToHTTPError())
		return
	}

	var payload request.TransferNFTRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[nft][handler] transfer start nft_id=%s from=%s to=%s", nftID, wallet, payload.ToWalletAddress)
	tx, err := h.usecase.Transfer(c.Request.Context(), nftID, wallet, payload.ToWalletAddress)
	if err != nil {
		log.Printf("[nft][handler] transfer failed nft_id=%s err=%v", nftID, err)
		appErr := mapNFTError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

func mapNFTError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNFTID),
		errors.Is(err, usecase.ErrInvalidNFTName),
		errors.Is(err, usecase.ErrInvalidNFTImage),
		errors.Is(err, usecase.ErrInvalidRoyalty),
		errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrInvalidWallet):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNFTNotFound):
		return pkg.NewDomainErrorSimple("NFT_NOT_FOUND", "NFT not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCollectionNotFound):
		return pkg.NewDomainErrorSimple("COLLECTION_NOT_FOUND", "Collection not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotNFTOwner):
		return pkg.NewDomainErrorSimple("NOT_NFT_OWNER", "Only the NFT owner can do this", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNFTNotListed):
		return pkg.NewDomainErrorSimple("NFT_NOT_LISTED", "NFT is not listed for sale", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyOwner):
		return pkg.NewDomainErrorSimple("ALREADY_OWNER", "Wallet already owns this NFT", http.StatusConflict)
	case errors.Is(err, usecase.ErrOwnershipConflict):
		return pkg.NewDomainErrorSimple("OWNERSHIP_CONFLICT", "NFT ownership changed, refresh and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrSettlementFailed):
		return pkg.NewDomainError("SETTLEMENT_FAILED", "Ledger settlement failed, no state was changed; safe to retry", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
