package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/umeshgehlot/SolanaMarket/internal/adapter/http/dto/response"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase"
	"github.com/umeshgehlot/SolanaMarket/pkg"
)

type TransactionHandler struct {
	usecase usecase.ITransactionUseCase
}

func NewTransactionHandler(uc usecase.ITransactionUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc}
}

// ListForNFT returns the provenance of one NFT, newest first.
func (h *TransactionHandler) ListForNFT(c *gin.Context) {
	list, err := h.usecase.ListByNFT(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(list))
}

func mapTransactionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNFTID),
		errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
