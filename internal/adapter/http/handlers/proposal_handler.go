package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "github.com/umeshgehlot/SolanaMarket/internal/adapter/http/dto/request"
	response "github.com/umeshgehlot/SolanaMarket/internal/adapter/http/dto/response"
	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase"
	"github.com/umeshgehlot/SolanaMarket/pkg"
)

// ProposalHandler serves the offer and bid routes. One handler per kind,
// both backed by the same lifecycle engine.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
	kind    entities.ProposalKind
}

func NewOfferHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc, kind: entities.ProposalKindOffer}
}

func NewBidHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc, kind: entities.ProposalKindBid}
}

// ListForNFT returns proposals for an NFT, best price first. Without a
// ?status= filter only ACTIVE proposals are returned.
func (h *ProposalHandler) ListForNFT(c *gin.Context) {
	nftID := c.Param("id")
	status := entities.ProposalStatus(strings.ToUpper(strings.TrimSpace(c.Query("status"))))

	list, err := h.usecase.ListForNFT(c.Request.Context(), h.kind, nftID, status)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(list))
}

func (h *ProposalHandler) Get(c *gin.Context) {
	p, err := h.usecase.Get(c.Request.Context(), h.kind, c.Param("id"))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

func (h *ProposalHandler) Create(c *gin.Context) {
	nftID := c.Param("id")
	wallet, walletErr := walletFromRequest(c)
	if walletErr != nil {
		c.JSON(walletErr.HTTPStatus, walletErr.ToHTTPError())
		return
	}

	var payload request.CreateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[%s][handler] create start nft_id=%s wallet=%s", h.area(), nftID, wallet)
	p, err := h.usecase.Create(c.Request.Context(), h.kind, nftID, wallet, payload.Price, payload.ExpirationDays)
	if err != nil {
		log.Printf("[%s][handler] create failed nft_id=%s err=%v", h.area(), nftID, err)
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProposal(p))
}

func (h *ProposalHandler) Accept(c *gin.Context) {
	id := c.Param("id")
	wallet, walletErr := walletFromRequest(c)
	if walletErr != nil {
		c.JSON(walletErr.HTTPStatus, walletErr.ToHTTPError())
		return
	}

	log.Printf("[%s][handler] accept start proposal_id=%s wallet=%s", h.area(), id, wallet)
	tx, err := h.usecase.Accept(c.Request.Context(), h.kind, id, wallet)
	if err != nil {
		log.Printf("[%s][handler] accept failed proposal_id=%s err=%v", h.area(), id, err)
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

func (h *ProposalHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	wallet, walletErr := walletFromRequest(c)
	if walletErr != nil {
		c.JSON(walletErr.HTTPStatus, walletErr.ToHTTPError())
		return
	}

	log.Printf("[%s][handler] cancel start proposal_id=%s wallet=%s", h.area(), id, wallet)
	tx, err := h.usecase.Cancel(c.Request.Context(), h.kind, id, wallet)
	if err != nil {
		log.Printf("[%s][handler] cancel failed proposal_id=%s err=%v", h.area(), id, err)
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

func (h *ProposalHandler) area() string {
	if h.kind == entities.ProposalKindBid {
		return "bid"
	}
	return "offer"
}

func (h *ProposalHandler) codePrefix() string {
	return strings.ToUpper(h.area())
}

func (h *ProposalHandler) label() string {
	if h.kind == entities.ProposalKindBid {
		return "Bid"
	}
	return "Offer"
}

func (h *ProposalHandler) mapError(err error) *pkg.AppError {
	prefix := h.codePrefix()
	var stateErr *usecase.ProposalStateError
	switch {
	case errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrInvalidExpiration),
		errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidWallet),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple(prefix+"_NOT_FOUND", fmt.Sprintf("%s not found", h.label()), http.StatusNotFound)
	case errors.Is(err, usecase.ErrNFTNotFound):
		return pkg.NewDomainErrorSimple("NFT_NOT_FOUND", "NFT not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalExpired):
		return pkg.NewDomainErrorSimple(prefix+"_EXPIRED", fmt.Sprintf("This %s has expired", h.area()), http.StatusConflict)
	case errors.As(err, &stateErr):
		return pkg.NewDomainErrorSimple(prefix+"_NOT_ACTIVE",
			fmt.Sprintf("%s is not active, current status: %s", h.label(), stateErr.Status), http.StatusConflict)
	case errors.Is(err, usecase.ErrNotNFTOwner):
		return pkg.NewDomainErrorSimple("NOT_NFT_OWNER", "Only the NFT owner can accept", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotProposer):
		return pkg.NewDomainErrorSimple("NOT_PROPOSER", fmt.Sprintf("Only the %s creator can cancel it", h.area()), http.StatusForbidden)
	case errors.Is(err, usecase.ErrSettlementFailed):
		return pkg.NewDomainError("SETTLEMENT_FAILED", "Ledger settlement failed, no state was changed; safe to retry", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
